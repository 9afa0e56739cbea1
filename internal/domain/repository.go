package domain

import "context"

// UserRepository defines the interface for account persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user User) error

	// FindByEmail returns the user with the given (already normalized)
	// email, or nil when no such user exists
	FindByEmail(ctx context.Context, email string) (*User, error)

	// EmailExists reports whether a user with the email is registered
	EmailExists(ctx context.Context, email string) (bool, error)

	// UsernameExists reports whether a user with the username is registered
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// FavoriteRepository defines the interface for saved-city persistence.
// Upsert must be atomic under the (userID, cityKey) uniqueness constraint;
// concurrent adds for the same pair must result in exactly one row.
type FavoriteRepository interface {
	// ListByUser returns the user's favorites, most recent first
	ListByUser(ctx context.Context, userID string) ([]FavoriteCity, error)

	// Upsert inserts the favorite unless the (userID, cityKey) pair already
	// exists, in which case it is a no-op and the stored display casing wins
	Upsert(ctx context.Context, fav FavoriteCity) error

	// Delete removes the matching row and reports how many were removed
	Delete(ctx context.Context, userID, cityKey string) (int64, error)
}
