package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"Linkup/internal/api/middleware"
	"Linkup/internal/api/routes"
	"Linkup/internal/core/auth"
	"Linkup/internal/core/comments"
	"Linkup/internal/core/posts"
	"Linkup/internal/core/social"
	"Linkup/internal/core/timeline"
	"Linkup/internal/core/users"
	"Linkup/internal/db/mongodb"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "linkup_dev"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-do-not-use-in-production"
		log.Println("WARN: JWT_SECRET not set, using dev default")
	}

	ctx := context.Background()

	client, err := mongodb.Connect(ctx, mongoURI)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect from database: %v", err)
		}
	}()

	log.Println("Connected to MongoDB")

	db := client.Database(dbName)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	log.Println("Indexes ensured")

	// Repositories
	userRepo := mongodb.NewUserRepository(db)
	socialRepo := mongodb.NewSocialGraphRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	// Services
	authService := auth.NewAuthService(userRepo, jwtSecret, 0)
	userService := users.NewUserService(userRepo)
	socialService := social.NewSocialGraphService(socialRepo)
	postService := posts.NewPostService(postRepo, userRepo, commentRepo, posts.NewAccessPolicy())
	commentService := comments.NewCommentService(commentRepo, postRepo)
	timelineService := timeline.NewTimelineService(userRepo, postRepo)

	authMW := middleware.NewAuthMiddleware(authService)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Rate limiting: 100 requests per minute per IP
	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	r.Mount("/api/v1/users", routes.UserRoutes(authService, userService, socialService, authMW))
	r.Mount("/api/v1/posts", routes.PostRoutes(postService, timelineService, authMW))
	r.Mount("/api/v1/comments", routes.CommentRoutes(commentService, authMW))
	r.Mount("/api/v1/auth", routes.AuthRoutes(authService, userService, authMW))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		fmt.Printf("Linkup API starting on port %s\n", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed: ", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, drain in-flight ones,
	// then let the deferred disconnect close the database client.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
