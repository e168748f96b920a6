package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is an account. Password holds the bcrypt hash and never leaves the server.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Avatar    string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPatch is a profile update. Password must already be hashed.
type UserPatch struct {
	Username *string
	Email    *string
	Avatar   *string
	Password *string
	Role     *string
}

func (p UserPatch) ChangesRole() bool {
	return p.Role != nil
}

func MergeUser(existing User, patch UserPatch, now time.Time) User {
	merged := existing
	mergeString(&merged.Username, patch.Username)
	mergeString(&merged.Email, patch.Email)
	mergeString(&merged.Avatar, patch.Avatar)
	mergeString(&merged.Password, patch.Password)
	mergeString(&merged.Role, patch.Role)
	merged.UpdatedAt = now
	return merged
}

func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleAdmin
}
