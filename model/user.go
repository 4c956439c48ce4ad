package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a document of the users collection
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username   string             `bson:"username" json:"username"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	IsVerified bool               `bson:"isVerified" json:"isVerified"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"-"`
}

// UserFilter for querying users
type UserFilter struct {
	ID       primitive.ObjectID
	Email    string
	Username string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *RegisterRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"username.required": "Username is required",
		"username.min":      "Username should have a minimum length of 3",
		"username.max":      "Username should have a maximum length of 30",
		"email.required":    "Email is required",
		"email.email":       "Please provide a valid email",
		"password.required": "Password is required",
		"password.min":      "Password should have a minimum length of 6",
		"password.maxbytes": "Password should have a maximum length of 72",
	}
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email.required":    "Email is required",
		"email.email":       "Please provide a valid email",
		"password.required": "Password is required",
	}
}

// UserResponse is the public projection of a user; the password never leaves the store.
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	IsVerified bool      `json:"isVerified"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:         u.ID.Hex(),
		Username:   u.Username,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
		IsVerified: u.IsVerified,
	}
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type VerifyEmailResponse struct {
	User UserResponse `json:"user"`
}
