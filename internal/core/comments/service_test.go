package comments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/posts"
)

// MockCommentRepository is a mock implementation of Repository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *Comment) (*Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPostStore is a mock implementation of PostStore
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) GetByID(ctx context.Context, id primitive.ObjectID) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostStore) AddComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

func TestAdd_AppendsReferenceToPost(t *testing.T) {
	repo := new(MockCommentRepository)
	postStore := new(MockPostStore)

	author := primitive.NewObjectID()
	post := &posts.Post{ID: primitive.NewObjectID()}
	created := &Comment{ID: primitive.NewObjectID(), AuthorID: author, PostID: post.ID, Description: "nice"}

	postStore.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *Comment) bool {
		return c.AuthorID == author && c.PostID == post.ID && c.Description == "nice"
	})).Return(created, nil)
	postStore.On("AddComment", mock.Anything, post.ID, created.ID).Return(nil)

	svc := NewCommentService(repo, postStore)
	comment, err := svc.Add(context.Background(), AddCommentRequest{
		AuthorID:    author,
		PostID:      post.ID,
		Description: " nice ",
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, comment.ID)
	postStore.AssertExpectations(t)
}

func TestAdd_PostNotFound(t *testing.T) {
	repo := new(MockCommentRepository)
	postStore := new(MockPostStore)

	postID := primitive.NewObjectID()
	postStore.On("GetByID", mock.Anything, postID).Return(nil, posts.ErrNotFound)

	svc := NewCommentService(repo, postStore)
	_, err := svc.Add(context.Background(), AddCommentRequest{
		AuthorID:    primitive.NewObjectID(),
		PostID:      postID,
		Description: "orphan",
	})

	assert.ErrorIs(t, err, ErrPostNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdd_RequiresDescription(t *testing.T) {
	svc := NewCommentService(new(MockCommentRepository), new(MockPostStore))

	_, err := svc.Add(context.Background(), AddCommentRequest{
		AuthorID:    primitive.NewObjectID(),
		PostID:      primitive.NewObjectID(),
		Description: "   ",
	})

	assert.True(t, IsValidationError(err))
}

// A failed reference append doesn't fail the comment creation; the
// comment document is already durable and queryable by postId.
func TestAdd_ReferenceAppendFailureTolerated(t *testing.T) {
	repo := new(MockCommentRepository)
	postStore := new(MockPostStore)

	post := &posts.Post{ID: primitive.NewObjectID()}
	created := &Comment{ID: primitive.NewObjectID(), PostID: post.ID, Description: "nice"}

	postStore.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(created, nil)
	postStore.On("AddComment", mock.Anything, post.ID, created.ID).Return(errors.New("connection reset"))

	svc := NewCommentService(repo, postStore)
	comment, err := svc.Add(context.Background(), AddCommentRequest{
		AuthorID:    primitive.NewObjectID(),
		PostID:      post.ID,
		Description: "nice",
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, comment.ID)
}

func TestListByPost_ReturnsComments(t *testing.T) {
	repo := new(MockCommentRepository)
	postStore := new(MockPostStore)

	post := &posts.Post{ID: primitive.NewObjectID()}
	stored := []*Comment{
		{ID: primitive.NewObjectID(), PostID: post.ID, Description: "first"},
		{ID: primitive.NewObjectID(), PostID: post.ID, Description: "second"},
	}

	postStore.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	repo.On("ListByPost", mock.Anything, post.ID).Return(stored, nil)

	svc := NewCommentService(repo, postStore)
	comments, err := svc.ListByPost(context.Background(), post.ID)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Description)
}

func TestListByPost_PostNotFound(t *testing.T) {
	postStore := new(MockPostStore)

	postID := primitive.NewObjectID()
	postStore.On("GetByID", mock.Anything, postID).Return(nil, posts.ErrNotFound)

	svc := NewCommentService(new(MockCommentRepository), postStore)
	_, err := svc.ListByPost(context.Background(), postID)

	assert.ErrorIs(t, err, ErrPostNotFound)
}
