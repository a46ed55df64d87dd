package posts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/users"
)

const maxDescriptionLen = 2000

type postService struct {
	repo      Repository
	userStore UserStore
	comments  CommentStore
	policy    *AccessPolicy
}

// NewPostService creates a new post service
func NewPostService(repo Repository, userStore UserStore, comments CommentStore, policy *AccessPolicy) Service {
	return &postService{
		repo:      repo,
		userStore: userStore,
		comments:  comments,
		policy:    policy,
	}
}

func (s *postService) Create(ctx context.Context, req CreatePostRequest) (*PostView, error) {
	if req.AuthorID.IsZero() {
		return nil, NewValidationError("author", "author id is required")
	}
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		return nil, NewValidationError("description", "description is required")
	}
	if len(req.Description) > maxDescriptionLen {
		return nil, NewValidationError("description", fmt.Sprintf("description must be at most %d characters", maxDescriptionLen))
	}

	author, err := s.userStore.GetByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}

	post := &Post{
		AuthorID:    author.ID,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Likes:       []primitive.ObjectID{},
		Comments:    []primitive.ObjectID{},
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// Mirror the reference onto the author's posts list. The post is
	// already durable; a failure here only loses the profile-side
	// reference, which a retry of AddPost repairs.
	if err := s.userStore.AddPost(ctx, author.ID, created.ID); err != nil {
		log.Printf("WARN: post %s created but author reference update failed: %v", created.ID.Hex(), err)
	}

	return NewPostView(created, authorView(author)), nil
}

func (s *postService) Get(ctx context.Context, id primitive.ObjectID) (*PostView, error) {
	if id.IsZero() {
		return nil, NewValidationError("id", "post id is required")
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := s.userStore.GetByID(ctx, post.AuthorID)
	if err != nil && !errors.Is(err, users.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to resolve post author: %w", err)
	}

	return NewPostView(post, authorView(author)), nil
}

func (s *postService) ListByUsername(ctx context.Context, username string) ([]*PostView, error) {
	user, err := s.userStore.GetByUsername(ctx, strings.TrimSpace(strings.ToLower(username)))
	if err != nil {
		return nil, err
	}

	found, err := s.repo.ListByAuthor(ctx, user.ID, nil, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	av := authorView(user)
	views := make([]*PostView, 0, len(found))
	for _, p := range found {
		views = append(views, NewPostView(p, av))
	}
	return views, nil
}

func (s *postService) Update(ctx context.Context, actorID, postID primitive.ObjectID, req UpdatePostRequest) error {
	if req.IsEmpty() {
		return NewValidationError("body", "no updatable fields provided")
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed == "" {
			return NewValidationError("description", "description cannot be empty")
		}
		if len(trimmed) > maxDescriptionLen {
			return NewValidationError("description", fmt.Sprintf("description must be at most %d characters", maxDescriptionLen))
		}
		req.Description = &trimmed
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !s.policy.CanMutate(actorID, post) {
		return ErrNotAuthorized
	}

	return s.repo.Update(ctx, postID, req)
}

// Delete cascades: comments first, then the post, then the author-side
// reference. Comment deletion before post deletion means a crash in
// between leaves a comment-less post rather than orphaned comments.
func (s *postService) Delete(ctx context.Context, actorID primitive.ObjectID, actorRole string, postID primitive.ObjectID) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !s.policy.CanDelete(actorID, actorRole, post) {
		return ErrNotAuthorized
	}

	removed, err := s.comments.DeleteByPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to delete comments for post %s: %w", postID.Hex(), err)
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return &PartialDeleteError{
			PostID:          postID.Hex(),
			CommentsRemoved: removed,
			Err:             err,
		}
	}

	if err := s.userStore.RemovePost(ctx, post.AuthorID, postID); err != nil {
		log.Printf("WARN: post %s deleted but author reference removal failed: %v", postID.Hex(), err)
	}

	return nil
}

// ToggleLike relies on membership-conditioned updates in the repository
// rather than a read-modify-write, so two racing toggles from the same
// actor settle as one add and one remove instead of a lost update.
func (s *postService) ToggleLike(ctx context.Context, actorID, postID primitive.ObjectID) (*LikeResult, error) {
	if actorID.IsZero() {
		return nil, NewValidationError("actor", "actor id is required")
	}

	added, err := s.repo.AddLike(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}
	if added {
		return &LikeResult{Action: ActionLiked, PostID: postID}, nil
	}

	if _, err := s.repo.RemoveLike(ctx, postID, actorID); err != nil {
		return nil, err
	}
	return &LikeResult{Action: ActionUnliked, PostID: postID}, nil
}

func authorView(u *users.User) *AuthorView {
	if u == nil {
		return nil
	}
	return &AuthorView{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
	}
}
