package models

import "time"

// Player represents a registered account.
type Player struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest defines the structure for a registration request.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=6,max=50"`
}

// LoginRequest defines the structure for a login request.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse defines the structure for a successful login response.
type LoginResponse struct {
	Token string `json:"token"`
}

// UpdatePlayerRequest changes an account's username, password, or both.
// Absent fields are left as they are.
type UpdatePlayerRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=20"`
	Password *string `json:"password" binding:"omitempty,min=6,max=50"`
}
