package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"Linkup/internal/core/users"
)

const tokenTTL = 24 * time.Hour

type authService struct {
	userStore  UserStore
	jwtSecret  []byte
	bcryptCost int
}

// NewAuthService creates a new auth service
func NewAuthService(userStore UserStore, jwtSecret string, bcryptCost int) Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userStore:  userStore,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
	}
}

// Signup creates a new account after validating inputs and hashing the
// password. The repository's unique indexes are the authoritative
// duplicate check; the pre-read below just gives a friendlier error for
// the common case.
func (s *authService) Signup(ctx context.Context, req SignupRequest) (*users.User, error) {
	req.Username = strings.TrimSpace(strings.ToLower(req.Username))
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if err := s.validateSignup(req); err != nil {
		return nil, err
	}

	if _, err := s.userStore.GetByUsername(ctx, req.Username); err == nil {
		return nil, users.ErrUsernameTaken
	} else if !errors.Is(err, users.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Followers:    []primitive.ObjectID{},
		Following:    []primitive.ObjectID{},
		Posts:        []primitive.ObjectID{},
	}

	return s.userStore.Create(ctx, user)
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || password == "" {
		return nil, NewValidationError("credentials", "username and password are required")
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		ID:          user.ID.Hex(),
		Username:    user.Username,
		Email:       user.Email,
		AccessToken: token,
	}, nil
}

// ValidateToken verifies the signature and expiry, then resolves the
// subject to a live account. A token for a deleted account is invalid.
func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*users.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	// The sub claim must still match the account the username resolves
	// to, in case the username was reassigned after issuance.
	if user.ID.Hex() != sub {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (s *authService) generateToken(user *users.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID.Hex(),
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) validateSignup(req SignupRequest) error {
	if req.Username == "" {
		return NewValidationError("username", "username is required")
	}
	if len(req.Username) > 30 {
		return NewValidationError("username", "username must be at most 30 characters")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return NewValidationError("email", "a valid email address is required")
	}
	if len(req.Password) < 8 {
		return NewValidationError("password", "password must be at least 8 characters")
	}
	return nil
}
