package users

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultSearchLimit = 20

type userService struct {
	repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	if id.IsZero() {
		return nil, NewValidationError("id", "user id is required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*User, error) {
	// Usernames are stored lowercase; normalize before lookup.
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return nil, NewValidationError("username", "username is required")
	}
	return s.repo.GetByUsername(ctx, username)
}

func (s *userService) GetProfile(ctx context.Context, username string) (*ProfileView, error) {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return NewProfileView(user), nil
}

func (s *userService) Search(ctx context.Context, query string, limit int) ([]*ProfileView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewValidationError("query", "search query is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	found, err := s.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	profiles := make([]*ProfileView, 0, len(found))
	for _, u := range found {
		profiles = append(profiles, NewProfileView(u))
	}
	return profiles, nil
}

func (s *userService) ListFollowing(ctx context.Context, username string) ([]*ProfileView, error) {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.resolveProfiles(ctx, user.Following)
}

func (s *userService) ListFollowers(ctx context.Context, username string) ([]*ProfileView, error) {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.resolveProfiles(ctx, user.Followers)
}

// resolveProfiles batch-fetches the referenced users and preserves the
// reference order. Dangling references (deleted users) are skipped.
func (s *userService) resolveProfiles(ctx context.Context, ids []primitive.ObjectID) ([]*ProfileView, error) {
	if len(ids) == 0 {
		return []*ProfileView{}, nil
	}

	userMap, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve users: %w", err)
	}

	profiles := make([]*ProfileView, 0, len(ids))
	for _, id := range ids {
		if u, found := userMap[id]; found {
			profiles = append(profiles, NewProfileView(u))
		}
	}
	return profiles, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actorID primitive.ObjectID, actorRole string, targetID primitive.ObjectID, changes ProfileChanges) (*ProfileView, error) {
	if targetID.IsZero() {
		return nil, NewValidationError("id", "user id is required")
	}
	if actorID != targetID && actorRole != RoleAdmin {
		return nil, ErrNotAuthorized
	}
	if changes.IsEmpty() {
		return nil, NewValidationError("body", "no updatable fields provided")
	}

	updated, err := s.repo.UpdateProfile(ctx, targetID, changes)
	if err != nil {
		return nil, err
	}
	return NewProfileView(updated), nil
}
