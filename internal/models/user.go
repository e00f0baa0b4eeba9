package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest represents the request body for signup
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token  string `json:"token"`
	UserID int    `json:"userId"`
	User   *User  `json:"user"`
}

// UpdateUserRequest represents the request body for updating a user.
// Empty fields are filtered out before the merge.
type UpdateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"` // Optional
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
