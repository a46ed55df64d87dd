package posts

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/users"
)

// AccessPolicy decides who may mutate or delete a post. Kept separate
// from the service so the rules are testable in isolation and reusable
// by any future moderation surface.
type AccessPolicy struct{}

// NewAccessPolicy creates the post access policy
func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// CanMutate reports whether the actor may edit the post. Only the owner
// may edit; the admin role grants no edit rights.
func (AccessPolicy) CanMutate(actorID primitive.ObjectID, post *Post) bool {
	return actorID == post.AuthorID
}

// CanDelete reports whether the actor may delete the post: the owner,
// or any actor carrying the admin role.
func (AccessPolicy) CanDelete(actorID primitive.ObjectID, actorRole string, post *Post) bool {
	return actorID == post.AuthorID || actorRole == users.RoleAdmin
}
