package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Linkup/internal/core/posts"
)

type mongoPostRepo struct {
	coll *mongo.Collection
}

// NewPostRepository creates a new MongoDB post repository.
// The returned value also satisfies the timeline and comment packages'
// post-store interfaces.
func NewPostRepository(db *mongo.Database) posts.Repository {
	return &mongoPostRepo{coll: db.Collection(postsCollection)}
}

func (r *mongoPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []primitive.ObjectID{}
	}

	res, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	post.ID = res.InsertedID.(primitive.ObjectID)
	return post, nil
}

func (r *mongoPostRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*posts.Post, error) {
	post := &posts.Post{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(post)
	if err == mongo.ErrNoDocuments {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// ListByAuthor windows the author's posts, newest first. The optional
// since bound and the skip/limit pair map straight onto the query, so
// each caller gets its own independent window.
func (r *mongoPostRepo) ListByAuthor(ctx context.Context, authorID primitive.ObjectID, since *time.Time, skip, limit int) ([]*posts.Post, error) {
	filter := bson.M{"userId": authorID}
	if since != nil {
		filter["createdAt"] = bson.M{"$gte": *since}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip))
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	found := []*posts.Post{}
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return found, nil
}

func (r *mongoPostRepo) Update(ctx context.Context, id primitive.ObjectID, req posts.UpdatePostRequest) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.ImageURL != nil {
		set["imageUrl"] = *req.ImageURL
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return posts.ErrNotFound
	}
	return nil
}

func (r *mongoPostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return posts.ErrNotFound
	}
	return nil
}

// AddLike is a single atomic add-if-absent update: $addToSet only
// modifies the document when the user isn't in the like set yet, which
// is what makes concurrent double-clicks settle correctly.
func (r *mongoPostRepo) AddLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}
	if res.MatchedCount == 0 {
		return false, posts.ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}

func (r *mongoPostRepo) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}
	if res.MatchedCount == 0 {
		return false, posts.ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}

// AddComment appends to the ordered comments list; $push preserves
// insertion order, which is the order comments are served in.
func (r *mongoPostRepo) AddComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": commentID}},
	)
	if err != nil {
		return fmt.Errorf("failed to add comment reference: %w", err)
	}
	if res.MatchedCount == 0 {
		return posts.ErrNotFound
	}
	return nil
}
