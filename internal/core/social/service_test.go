package social

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/users"
)

// MockSocialRepository is a mock implementation of Repository
type MockSocialRepository struct {
	mock.Mock
}

func (m *MockSocialRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockSocialRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockSocialRepository) AddFollowing(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, actorID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) RemoveFollowing(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, actorID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	args := m.Called(ctx, userID, followerID)
	return args.Error(0)
}

func (m *MockSocialRepository) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	args := m.Called(ctx, userID, followerID)
	return args.Error(0)
}

func newTestUser(username string) *users.User {
	return &users.User{
		ID:       primitive.NewObjectID(),
		Username: username,
	}
}

// TestFollow_UpdatesBothSides verifies that a fresh follow writes both
// the actor's following set and the target's followers set.
func TestFollow_UpdatesBothSides(t *testing.T) {
	repo := new(MockSocialRepository)
	actor := newTestUser("alice")
	target := newTestUser("bob")

	repo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	repo.On("GetByUsername", mock.Anything, "bob").Return(target, nil)
	repo.On("AddFollowing", mock.Anything, actor.ID, target.ID).Return(true, nil)
	repo.On("AddFollower", mock.Anything, target.ID, actor.ID).Return(nil)

	svc := NewSocialGraphService(repo)
	result, err := svc.FollowOrUnfollow(context.Background(), actor.ID, "bob")

	require.NoError(t, err)
	assert.Equal(t, ActionFollowed, result.Action)
	assert.Equal(t, "bob", result.TargetUsername)
	repo.AssertExpectations(t)
}

// TestUnfollow_RemovesBothSides verifies the toggle's second leg: when
// the relation already exists, both sides are removed.
func TestUnfollow_RemovesBothSides(t *testing.T) {
	repo := new(MockSocialRepository)
	actor := newTestUser("alice")
	target := newTestUser("bob")
	actor.Following = []primitive.ObjectID{target.ID}

	repo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	repo.On("GetByUsername", mock.Anything, "bob").Return(target, nil)
	// Add-if-absent reports no modification: already following
	repo.On("AddFollowing", mock.Anything, actor.ID, target.ID).Return(false, nil)
	repo.On("RemoveFollowing", mock.Anything, actor.ID, target.ID).Return(true, nil)
	repo.On("RemoveFollower", mock.Anything, target.ID, actor.ID).Return(nil)

	svc := NewSocialGraphService(repo)
	result, err := svc.FollowOrUnfollow(context.Background(), actor.ID, "bob")

	require.NoError(t, err)
	assert.Equal(t, ActionUnfollowed, result.Action)
	repo.AssertExpectations(t)
}

// TestFollow_SelfRejected verifies self-follows fail before any write.
func TestFollow_SelfRejected(t *testing.T) {
	repo := new(MockSocialRepository)
	actor := newTestUser("alice")

	repo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	repo.On("GetByUsername", mock.Anything, "alice").Return(actor, nil)

	svc := NewSocialGraphService(repo)
	result, err := svc.FollowOrUnfollow(context.Background(), actor.ID, "alice")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSelfFollow)
	repo.AssertNotCalled(t, "AddFollowing", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "RemoveFollowing", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollow_TargetNotFound(t *testing.T) {
	repo := new(MockSocialRepository)
	actor := newTestUser("alice")

	repo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, users.ErrUserNotFound)

	svc := NewSocialGraphService(repo)
	_, err := svc.FollowOrUnfollow(context.Background(), actor.ID, "ghost")

	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestFollow_ActorNotFound(t *testing.T) {
	repo := new(MockSocialRepository)
	actorID := primitive.NewObjectID()

	repo.On("GetByID", mock.Anything, actorID).Return(nil, users.ErrUserNotFound)

	svc := NewSocialGraphService(repo)
	_, err := svc.FollowOrUnfollow(context.Background(), actorID, "bob")

	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

// TestFollow_PartialWriteSurfaced verifies that a failure on the
// mirror side after the actor side committed is reported as a partial
// write, not a generic error.
func TestFollow_PartialWriteSurfaced(t *testing.T) {
	repo := new(MockSocialRepository)
	actor := newTestUser("alice")
	target := newTestUser("bob")

	repo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	repo.On("GetByUsername", mock.Anything, "bob").Return(target, nil)
	repo.On("AddFollowing", mock.Anything, actor.ID, target.ID).Return(true, nil)
	repo.On("AddFollower", mock.Anything, target.ID, actor.ID).Return(errors.New("connection reset"))

	svc := NewSocialGraphService(repo)
	result, err := svc.FollowOrUnfollow(context.Background(), actor.ID, "bob")

	assert.Nil(t, result)
	require.True(t, IsPartialWrite(err))

	var pw *PartialWriteError
	require.ErrorAs(t, err, &pw)
	assert.Equal(t, ActionFollowed, pw.Action)
	assert.Equal(t, "following", pw.Committed)
}

// TestFollow_CaseInsensitiveTarget verifies usernames are normalized
// before lookup.
func TestFollow_CaseInsensitiveTarget(t *testing.T) {
	repo := new(MockSocialRepository)
	actor := newTestUser("alice")
	target := newTestUser("bob")

	repo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil)
	repo.On("GetByUsername", mock.Anything, "bob").Return(target, nil)
	repo.On("AddFollowing", mock.Anything, actor.ID, target.ID).Return(true, nil)
	repo.On("AddFollower", mock.Anything, target.ID, actor.ID).Return(nil)

	svc := NewSocialGraphService(repo)
	result, err := svc.FollowOrUnfollow(context.Background(), actor.ID, "  Bob ")

	require.NoError(t, err)
	assert.Equal(t, ActionFollowed, result.Action)
}
