package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Linkup/internal/core/social"
	"Linkup/internal/core/users"
)

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new MongoDB user repository.
// The returned value also satisfies the social graph repository and the
// narrower user-store interfaces of the auth, post, and timeline
// packages.
func NewUserRepository(db *mongo.Database) users.UserRepository {
	return &mongoUserRepo{coll: db.Collection(usersCollection)}
}

// NewSocialGraphRepository exposes the follow-graph primitives over the
// same users collection.
func NewSocialGraphRepository(db *mongo.Database) social.Repository {
	return &mongoUserRepo{coll: db.Collection(usersCollection)}
}

// Create inserts a new user document. Unique index violations on
// username/email are translated to the matching sentinel.
func (r *mongoUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Followers == nil {
		user.Followers = []primitive.ObjectID{}
	}
	if user.Following == nil {
		user.Following = []primitive.ObjectID{}
	}
	if user.Posts == nil {
		user.Posts = []primitive.ObjectID{}
	}

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if writeErrorContains(err, "email") {
				return nil, users.ErrEmailTaken
			}
			return nil, users.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*users.User, error) {
	user := &users.User{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	user := &users.User{}
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// GetByIDs retrieves multiple users in one $in query. Missing users are
// simply absent from the result map.
func (r *mongoUserRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*users.User, error) {
	result := make(map[primitive.ObjectID]*users.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to get users by ids: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		user := &users.User{}
		if err := cursor.Decode(user); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		result[user.ID] = user
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return result, nil
}

// Search matches usernames case-insensitively. The query is quoted so
// user input can't smuggle regex metacharacters.
func (r *mongoUserRepo) Search(ctx context.Context, query string, limit int) ([]*users.User, error) {
	filter := bson.M{"username": bson.M{
		"$regex":   regexp.QuoteMeta(query),
		"$options": "i",
	}}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "username", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer cursor.Close(ctx)

	var found []*users.User
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return found, nil
}

func (r *mongoUserRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, changes users.ProfileChanges) (*users.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if changes.Email != nil {
		set["email"] = *changes.Email
	}
	if changes.AvatarURL != nil {
		set["avatarUrl"] = *changes.AvatarURL
	}
	if changes.Bio != nil {
		set["bio"] = *changes.Bio
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	user := &users.User{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, users.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// AddPost appends the post reference; $push keeps creation order.
func (r *mongoUserRepo) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"posts": postID}},
	)
	if err != nil {
		return fmt.Errorf("failed to add post reference: %w", err)
	}
	if res.MatchedCount == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

// RemovePost is a remove-if-present set operation; retries are no-ops.
func (r *mongoUserRepo) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"posts": postID}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove post reference: %w", err)
	}
	if res.MatchedCount == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

// AddFollowing adds target to the actor's following set. $addToSet is
// atomic and membership-conditioned, so concurrent toggles can't insert
// duplicates; ModifiedCount tells the caller whether this call won.
func (r *mongoUserRepo) AddFollowing(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": actorID},
		bson.M{"$addToSet": bson.M{"following": targetID}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to add following: %w", err)
	}
	if res.MatchedCount == 0 {
		return false, users.ErrUserNotFound
	}
	return res.ModifiedCount > 0, nil
}

func (r *mongoUserRepo) RemoveFollowing(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": actorID},
		bson.M{"$pull": bson.M{"following": targetID}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove following: %w", err)
	}
	if res.MatchedCount == 0 {
		return false, users.ErrUserNotFound
	}
	return res.ModifiedCount > 0, nil
}

func (r *mongoUserRepo) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"followers": followerID}},
	)
	if err != nil {
		return fmt.Errorf("failed to add follower: %w", err)
	}
	if res.MatchedCount == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

func (r *mongoUserRepo) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"followers": followerID}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove follower: %w", err)
	}
	if res.MatchedCount == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

// writeErrorContains reports whether any write error message mentions
// the given substring. Used to tell which unique index a duplicate-key
// error came from.
func writeErrorContains(err error, substr string) bool {
	var writeErr mongo.WriteException
	if !errors.As(err, &writeErr) {
		return false
	}
	for _, we := range writeErr.WriteErrors {
		if strings.Contains(we.Message, substr) {
			return true
		}
	}
	return false
}
