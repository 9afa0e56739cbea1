package domain

import "time"

// User is a registered account. Email and username are unique; the password
// is stored only as a bcrypt hash.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Principal is the verified identity attached to an authenticated request.
// It is derived from the session token, never persisted.
type Principal struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// RegisterInput is the payload for account creation. Fields are validated
// after normalization (email lowercased and trimmed, username trimmed).
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput is the payload for credential verification.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
