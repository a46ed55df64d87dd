package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Linkup/internal/core/comments"
)

type mongoCommentRepo struct {
	coll *mongo.Collection
}

// NewCommentRepository creates a new MongoDB comment repository
func NewCommentRepository(db *mongo.Database) comments.Repository {
	return &mongoCommentRepo{coll: db.Collection(commentsCollection)}
}

func (r *mongoCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	comment.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	comment.ID = res.InsertedID.(primitive.ObjectID)
	return comment, nil
}

func (r *mongoCommentRepo) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*comments.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{"postId": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(ctx)

	found := []*comments.Comment{}
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return found, nil
}

// DeleteByPost removes every comment referencing the post in one
// DeleteMany. Idempotent: a retry after a partial cascade simply
// matches zero documents.
func (r *mongoCommentRepo) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments: %w", err)
	}
	return res.DeletedCount, nil
}
