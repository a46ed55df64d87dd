package comments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/posts"
)

const maxDescriptionLen = 1000

type commentService struct {
	repo      Repository
	postStore PostStore
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, postStore PostStore) Service {
	return &commentService{
		repo:      repo,
		postStore: postStore,
	}
}

func (s *commentService) Add(ctx context.Context, req AddCommentRequest) (*Comment, error) {
	if req.AuthorID.IsZero() {
		return nil, NewValidationError("author", "author id is required")
	}
	if req.PostID.IsZero() {
		return nil, NewValidationError("postId", "post id is required")
	}
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		return nil, NewValidationError("description", "description is required")
	}
	if len(req.Description) > maxDescriptionLen {
		return nil, NewValidationError("description", fmt.Sprintf("description must be at most %d characters", maxDescriptionLen))
	}

	if _, err := s.postStore.GetByID(ctx, req.PostID); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to check post: %w", err)
	}

	comment := &Comment{
		AuthorID:    req.AuthorID,
		PostID:      req.PostID,
		Description: req.Description,
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// The comment document carries the postId, so even if this append
	// fails the comment is reachable by query; the reference list is
	// repaired on the next successful append or cascade.
	if err := s.postStore.AddComment(ctx, req.PostID, created.ID); err != nil {
		log.Printf("WARN: comment %s created but post reference update failed: %v", created.ID.Hex(), err)
	}

	return created, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*Comment, error) {
	if postID.IsZero() {
		return nil, NewValidationError("postId", "post id is required")
	}

	if _, err := s.postStore.GetByID(ctx, postID); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to check post: %w", err)
	}

	return s.repo.ListByPost(ctx, postID)
}
