package auth

import (
	"context"

	"Linkup/internal/core/users"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *users.User) (*users.User, error)
	GetByUsername(ctx context.Context, username string) (*users.User, error)
}

// Service issues and validates identity tokens. The rest of the system
// treats it as an opaque capability: hand it a token, get back the
// authenticated user.
type Service interface {
	// Signup creates a new account. The password is hashed before it
	// reaches the repository. Duplicate usernames/emails surface as
	// users.ErrUsernameTaken / users.ErrEmailTaken.
	Signup(ctx context.Context, req SignupRequest) (*users.User, error)

	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (*LoginResponse, error)

	// ValidateToken parses and verifies a bearer token and resolves the
	// account it names. Any failure is ErrInvalidToken.
	ValidateToken(ctx context.Context, token string) (*users.User, error)
}

// SignupRequest is the input for account creation.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token plus the identity it belongs to.
type LoginResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}
