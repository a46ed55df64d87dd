package social

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/users"
)

type socialService struct {
	repo Repository
}

// NewSocialGraphService creates a new social graph service
func NewSocialGraphService(repo Repository) Service {
	return &socialService{repo: repo}
}

// FollowOrUnfollow toggles the follow relation. The dual write goes
// actor-side first, target-side second: the actor's following set is
// the side the toggle itself is conditioned on, so a retry after a
// partial failure re-resolves the current direction correctly.
func (s *socialService) FollowOrUnfollow(ctx context.Context, actorID primitive.ObjectID, targetUsername string) (*FollowResult, error) {
	if actorID.IsZero() {
		return nil, users.NewValidationError("actor", "actor id is required")
	}
	targetUsername = strings.TrimSpace(strings.ToLower(targetUsername))
	if targetUsername == "" {
		return nil, users.NewValidationError("username", "target username is required")
	}

	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	target, err := s.repo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}

	if actor.ID == target.ID {
		return nil, ErrSelfFollow
	}

	// Add-if-absent on the actor's side decides the toggle direction.
	// If it modified the document, this call won the "follow" race and
	// must mirror onto the target; otherwise the relation already
	// existed and we unfollow instead.
	added, err := s.repo.AddFollowing(ctx, actor.ID, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update following set: %w", err)
	}

	if added {
		if err := s.repo.AddFollower(ctx, target.ID, actor.ID); err != nil {
			return nil, &PartialWriteError{
				Action:    ActionFollowed,
				Committed: "following",
				Err:       err,
			}
		}
		return &FollowResult{Action: ActionFollowed, TargetUsername: target.Username}, nil
	}

	if _, err := s.repo.RemoveFollowing(ctx, actor.ID, target.ID); err != nil {
		return nil, fmt.Errorf("failed to update following set: %w", err)
	}
	if err := s.repo.RemoveFollower(ctx, target.ID, actor.ID); err != nil {
		return nil, &PartialWriteError{
			Action:    ActionUnfollowed,
			Committed: "following",
			Err:       err,
		}
	}

	return &FollowResult{Action: ActionUnfollowed, TargetUsername: target.Username}, nil
}
