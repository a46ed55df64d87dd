package timeline

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"Linkup/internal/core/posts"
	"Linkup/internal/core/users"
)

const maxPageSize = 50

type timelineService struct {
	userStore UserStore
	postStore PostStore
}

// NewTimelineService creates a new timeline service
func NewTimelineService(userStore UserStore, postStore PostStore) Service {
	return &timelineService{
		userStore: userStore,
		postStore: postStore,
	}
}

// GetTimeline assembles the caller's feed: their own recent posts
// first, then recent posts from each followed user. Every segment is
// sorted descending by creation time and windowed by the same
// (offset, pageSize) pair independently; segments are concatenated in
// follow order with no global re-sort.
func (s *timelineService) GetTimeline(ctx context.Context, req GetTimelineRequest) (*TimelineResponse, error) {
	if err := s.validateRequest(&req); err != nil {
		return nil, err
	}

	caller, err := s.userStore.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	offset := req.Page - 1
	if offset < 0 {
		offset = 0
	}
	skip := offset * req.PageSize

	own, err := s.postStore.ListByAuthor(ctx, caller.ID, nil, skip, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load own posts: %w", err)
	}

	// One query per followee, issued concurrently. Results land in a
	// slice indexed by follow order so concurrency never reorders the
	// feed; all queries must finish before assembly.
	since := time.Now().Add(-FolloweeWindow)
	segments := make([][]*posts.Post, len(caller.Following))

	g, gctx := errgroup.WithContext(ctx)
	for i, followeeID := range caller.Following {
		i, followeeID := i, followeeID
		g.Go(func() error {
			segment, err := s.postStore.ListByAuthor(gctx, followeeID, &since, skip, req.PageSize)
			if err != nil {
				return fmt.Errorf("failed to load posts of followee %s: %w", followeeID.Hex(), err)
			}
			segments[i] = segment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	feed := make([]*posts.Post, 0, len(own))
	feed = append(feed, own...)
	for _, segment := range segments {
		feed = append(feed, segment...)
	}

	views, err := s.enrich(ctx, caller, feed)
	if err != nil {
		return nil, err
	}

	return &TimelineResponse{
		Feed:     views,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// enrich attaches each post's author profile with a single batch user
// lookup. The caller is already in hand and never re-fetched.
func (s *timelineService) enrich(ctx context.Context, caller *users.User, feed []*posts.Post) ([]*posts.PostView, error) {
	authorIDs := make([]primitive.ObjectID, 0, len(feed))
	seen := map[primitive.ObjectID]bool{caller.ID: true}
	for _, p := range feed {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			authorIDs = append(authorIDs, p.AuthorID)
		}
	}

	authors := map[primitive.ObjectID]*users.User{}
	if len(authorIDs) > 0 {
		var err error
		authors, err = s.userStore.GetByIDs(ctx, authorIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve post authors: %w", err)
		}
	}
	authors[caller.ID] = caller

	views := make([]*posts.PostView, 0, len(feed))
	for _, p := range feed {
		var av *posts.AuthorView
		if author, found := authors[p.AuthorID]; found {
			av = &posts.AuthorView{
				ID:        author.ID,
				Username:  author.Username,
				AvatarURL: author.AvatarURL,
			}
		}
		views = append(views, posts.NewPostView(p, av))
	}
	return views, nil
}

func (s *timelineService) validateRequest(req *GetTimelineRequest) error {
	if req.UserID.IsZero() {
		return ErrUnauthenticated
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = DefaultPageSize
	}
	if req.PageSize > maxPageSize {
		return NewValidationError("pageSize", fmt.Sprintf("pageSize must not exceed %d", maxPageSize))
	}
	return nil
}
