package posts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/users"
)

// MockPostRepository is a mock implementation of Repository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID primitive.ObjectID, since *time.Time, skip, limit int) ([]*Post, error) {
	args := m.Called(ctx, authorID, since, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, id primitive.ObjectID, req UpdatePostRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) AddLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) AddComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

// MockUserStore is a mock implementation of UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*users.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[primitive.ObjectID]*users.User), args.Error(1)
}

func (m *MockUserStore) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockUserStore) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

// MockCommentStore is a mock implementation of CommentStore
type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func newService(repo *MockPostRepository, userStore *MockUserStore, comments *MockCommentStore) Service {
	return NewPostService(repo, userStore, comments, NewAccessPolicy())
}

func TestCreate_AppendsToAuthorPosts(t *testing.T) {
	repo := new(MockPostRepository)
	userStore := new(MockUserStore)
	comments := new(MockCommentStore)

	author := &users.User{ID: primitive.NewObjectID(), Username: "alice"}
	created := &Post{ID: primitive.NewObjectID(), AuthorID: author.ID, Description: "hello"}

	userStore.On("GetByID", mock.Anything, author.ID).Return(author, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.AuthorID == author.ID && p.Description == "hello"
	})).Return(created, nil)
	userStore.On("AddPost", mock.Anything, author.ID, created.ID).Return(nil)

	svc := newService(repo, userStore, comments)
	view, err := svc.Create(context.Background(), CreatePostRequest{AuthorID: author.ID, Description: "hello"})

	require.NoError(t, err)
	assert.Equal(t, created.ID, view.ID)
	assert.Equal(t, "alice", view.Author.Username)
	userStore.AssertExpectations(t)
}

func TestCreate_RequiresDescription(t *testing.T) {
	svc := newService(new(MockPostRepository), new(MockUserStore), new(MockCommentStore))

	_, err := svc.Create(context.Background(), CreatePostRequest{
		AuthorID:    primitive.NewObjectID(),
		Description: "   ",
	})

	assert.True(t, IsValidationError(err))
}

func TestUpdate_OwnerOnly(t *testing.T) {
	repo := new(MockPostRepository)
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	post := &Post{ID: primitive.NewObjectID(), AuthorID: owner}

	repo.On("GetByID", mock.Anything, post.ID).Return(post, nil)

	svc := newService(repo, new(MockUserStore), new(MockCommentStore))

	desc := "edited"
	err := svc.Update(context.Background(), stranger, post.ID, UpdatePostRequest{Description: &desc})

	assert.ErrorIs(t, err, ErrNotAuthorized)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

// TestDelete_CascadesComments verifies the ordering contract: comments
// are removed before the post, and the author-side reference after.
func TestDelete_CascadesComments(t *testing.T) {
	repo := new(MockPostRepository)
	userStore := new(MockUserStore)
	comments := new(MockCommentStore)

	owner := primitive.NewObjectID()
	post := &Post{ID: primitive.NewObjectID(), AuthorID: owner}

	repo.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	comments.On("DeleteByPost", mock.Anything, post.ID).Return(int64(3), nil)
	repo.On("Delete", mock.Anything, post.ID).Return(nil)
	userStore.On("RemovePost", mock.Anything, owner, post.ID).Return(nil)

	svc := newService(repo, userStore, comments)
	err := svc.Delete(context.Background(), owner, "", post.ID)

	require.NoError(t, err)
	comments.AssertExpectations(t)
	repo.AssertExpectations(t)
	userStore.AssertExpectations(t)
}

func TestDelete_AdminMayDeleteOthersPost(t *testing.T) {
	repo := new(MockPostRepository)
	userStore := new(MockUserStore)
	comments := new(MockCommentStore)

	owner := primitive.NewObjectID()
	admin := primitive.NewObjectID()
	post := &Post{ID: primitive.NewObjectID(), AuthorID: owner}

	repo.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	comments.On("DeleteByPost", mock.Anything, post.ID).Return(int64(0), nil)
	repo.On("Delete", mock.Anything, post.ID).Return(nil)
	userStore.On("RemovePost", mock.Anything, owner, post.ID).Return(nil)

	svc := newService(repo, userStore, comments)
	err := svc.Delete(context.Background(), admin, users.RoleAdmin, post.ID)

	require.NoError(t, err)
}

func TestDelete_StrangerRejected(t *testing.T) {
	repo := new(MockPostRepository)
	comments := new(MockCommentStore)

	post := &Post{ID: primitive.NewObjectID(), AuthorID: primitive.NewObjectID()}
	repo.On("GetByID", mock.Anything, post.ID).Return(post, nil)

	svc := newService(repo, new(MockUserStore), comments)
	err := svc.Delete(context.Background(), primitive.NewObjectID(), "", post.ID)

	assert.ErrorIs(t, err, ErrNotAuthorized)
	comments.AssertNotCalled(t, "DeleteByPost", mock.Anything, mock.Anything)
}

// TestDelete_PartialFailureSurfaced verifies that a post-deletion
// failure after the comments were removed is reported as a partial
// failure carrying the cascade count.
func TestDelete_PartialFailureSurfaced(t *testing.T) {
	repo := new(MockPostRepository)
	userStore := new(MockUserStore)
	comments := new(MockCommentStore)

	owner := primitive.NewObjectID()
	post := &Post{ID: primitive.NewObjectID(), AuthorID: owner}

	repo.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	comments.On("DeleteByPost", mock.Anything, post.ID).Return(int64(5), nil)
	repo.On("Delete", mock.Anything, post.ID).Return(errors.New("connection reset"))

	svc := newService(repo, userStore, comments)
	err := svc.Delete(context.Background(), owner, "", post.ID)

	require.True(t, IsPartialDelete(err))

	var pd *PartialDeleteError
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, int64(5), pd.CommentsRemoved)
	userStore.AssertNotCalled(t, "RemovePost", mock.Anything, mock.Anything, mock.Anything)
}

// TestToggleLike_Pair verifies two consecutive toggles by the same
// actor return the likes set to its original state.
func TestToggleLike_Pair(t *testing.T) {
	repo := new(MockPostRepository)
	actor := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	// First toggle: the add-if-absent wins
	repo.On("AddLike", mock.Anything, postID, actor).Return(true, nil).Once()

	svc := newService(repo, new(MockUserStore), new(MockCommentStore))
	result, err := svc.ToggleLike(context.Background(), actor, postID)
	require.NoError(t, err)
	assert.Equal(t, ActionLiked, result.Action)

	// Second toggle: already a member, so the pull runs
	repo.On("AddLike", mock.Anything, postID, actor).Return(false, nil).Once()
	repo.On("RemoveLike", mock.Anything, postID, actor).Return(true, nil).Once()

	result, err = svc.ToggleLike(context.Background(), actor, postID)
	require.NoError(t, err)
	assert.Equal(t, ActionUnliked, result.Action)
	repo.AssertExpectations(t)
}

func TestToggleLike_PostNotFound(t *testing.T) {
	repo := new(MockPostRepository)
	actor := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	repo.On("AddLike", mock.Anything, postID, actor).Return(false, ErrNotFound)

	svc := newService(repo, new(MockUserStore), new(MockCommentStore))
	_, err := svc.ToggleLike(context.Background(), actor, postID)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_EnrichesAuthor(t *testing.T) {
	repo := new(MockPostRepository)
	userStore := new(MockUserStore)

	author := &users.User{ID: primitive.NewObjectID(), Username: "alice", AvatarURL: "https://cdn.example/alice.png"}
	post := &Post{
		ID:       primitive.NewObjectID(),
		AuthorID: author.ID,
		Likes:    []primitive.ObjectID{primitive.NewObjectID()},
	}

	repo.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	userStore.On("GetByID", mock.Anything, author.ID).Return(author, nil)

	svc := newService(repo, userStore, new(MockCommentStore))
	view, err := svc.Get(context.Background(), post.ID)

	require.NoError(t, err)
	assert.Equal(t, "alice", view.Author.Username)
	assert.Equal(t, "https://cdn.example/alice.png", view.Author.AvatarURL)
	assert.Equal(t, 1, view.LikeCount)
}
