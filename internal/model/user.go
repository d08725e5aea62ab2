package model

import "time"

// User represents a user in the database. AuthHash is never serialized.
type User struct {
	ID             int64
	Email          string
	AuthHash       string
	FirstName      string
	LastName       string
	DateOfBirth    *string
	ProfilePicture *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents an authentication response with a session token and user summary.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse represents a full profile view, excluding the credential hash.
type ProfileResponse struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    *string   `json:"date_of_birth,omitempty"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpdateProfileRequest represents a partial profile update. Nil optional fields
// leave the stored values untouched.
type UpdateProfileRequest struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}
