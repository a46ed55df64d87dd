package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin marks users allowed to moderate content they don't own.
const RoleAdmin = "admin"

// User represents an account document in the users collection.
// Followers/Following/Posts hold ObjectID references, never embedded
// documents; both sides of the follow relation live on the user records
// and are kept consistent by the social graph service.
type User struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Username     string               `json:"username" bson:"username"`
	Email        string               `json:"email" bson:"email"`
	PasswordHash string               `json:"-" bson:"password"`
	AvatarURL    string               `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Bio          string               `json:"bio,omitempty" bson:"bio,omitempty"`
	Role         string               `json:"role,omitempty" bson:"role,omitempty"`
	Followers    []primitive.ObjectID `json:"followers" bson:"followers"`
	Following    []primitive.ObjectID `json:"following" bson:"following"`
	Posts        []primitive.ObjectID `json:"posts" bson:"posts"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileView is the public shape of a user: everything a stranger may
// see. The password hash never leaves the core.
type ProfileView struct {
	ID             primitive.ObjectID `json:"id"`
	Username       string             `json:"username"`
	AvatarURL      string             `json:"avatarUrl,omitempty"`
	Bio            string             `json:"bio,omitempty"`
	FollowerCount  int                `json:"followerCount"`
	FollowingCount int                `json:"followingCount"`
	PostCount      int                `json:"postCount"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// NewProfileView projects a user document onto its public view.
func NewProfileView(u *User) *ProfileView {
	return &ProfileView{
		ID:             u.ID,
		Username:       u.Username,
		AvatarURL:      u.AvatarURL,
		Bio:            u.Bio,
		FollowerCount:  len(u.Followers),
		FollowingCount: len(u.Following),
		PostCount:      len(u.Posts),
		CreatedAt:      u.CreatedAt,
	}
}

// ProfileChanges carries the fields a profile update may touch.
// Nil pointers mean "leave unchanged".
type ProfileChanges struct {
	Email     *string `json:"email,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// IsEmpty reports whether the update would touch nothing.
func (c ProfileChanges) IsEmpty() bool {
	return c.Email == nil && c.AvatarURL == nil && c.Bio == nil
}
