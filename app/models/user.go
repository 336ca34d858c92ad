package models

import "time"

// Roles a user record may carry. Every new account starts as RoleUser;
// promotion to admin happens out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the primary user model. The document key is the account UID.
type User struct {
	UID           string    `bson:"_id"       json:"uid"`
	Name          string    `bson:"name"      json:"name"`
	Email         string    `bson:"email"     json:"email"`
	Password      string    `bson:"password"  json:"-"` // hashed, never serialised
	Role          string    `bson:"rol"       json:"rol"`
	EmailVerified bool      `bson:"emailVerified" json:"emailVerified"`
	CreatedAt     time.Time `bson:"createdAt" json:"-"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"-"`
}

// UserView is the API shape of a user profile.
type UserView struct {
	UID           string    `json:"uid"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"rol"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     Timestamp `json:"createdAt"`
	UpdatedAt     Timestamp `json:"updatedAt"`
}

// View converts u to its API shape.
func (u User) View() UserView {
	return UserView{
		UID:           u.UID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		CreatedAt:     NewTimestamp(u.CreatedAt),
		UpdatedAt:     NewTimestamp(u.UpdatedAt),
	}
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name                 string `json:"name"     validate:"required,min=2"`
	Email                string `json:"email"    validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8,confirmed"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginInput is the payload for email/password sign-in.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
