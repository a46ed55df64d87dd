package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteError writes a standardized JSON error response. The error field
// is a stable kind the client can switch on; the message is for humans.
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// WriteJSON writes a JSON success response
func WriteJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log
		log.Printf("Failed to encode response: %v", err)
	}
}
