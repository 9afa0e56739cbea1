package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skycast/backend/internal/domain"
)

// PostgresRepository implements domain.UserRepository and
// domain.FavoriteRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the tables and uniqueness constraints on startup.
// The composite primary key on favorite_cities is what makes concurrent
// adds of the same (user, city) pair collapse into a single row.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS favorite_cities (
			user_id      TEXT NOT NULL,
			city_key     TEXT NOT NULL,
			city_display TEXT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (user_id, city_key)
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: failed to ensure schema: %w", err)
		}
	}
	return nil
}

// Create persists a new user
func (r *PostgresRepository) Create(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (id, email, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to create user: %w", err)
	}

	return nil
}

// FindByEmail returns the user with the given email, or nil when absent
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, username, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to find user by email: %w", err)
	}

	return &u, nil
}

// EmailExists reports whether a user with the email is registered
func (r *PostgresRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to check email: %w", err)
	}
	return exists, nil
}

// UsernameExists reports whether a user with the username is registered
func (r *PostgresRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to check username: %w", err)
	}
	return exists, nil
}

// ListByUser returns the user's favorites, most recent first
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteCity, error) {
	query := `
		SELECT user_id, city_key, city_display, created_at
		FROM favorite_cities
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query favorites: %w", err)
	}
	defer rows.Close()

	var results []domain.FavoriteCity
	for rows.Next() {
		var f domain.FavoriteCity
		if err := rows.Scan(&f.UserID, &f.CityKey, &f.CityDisplay, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan favorite row: %w", err)
		}
		results = append(results, f)
	}

	return results, nil
}

// Upsert inserts the favorite unless the (userID, cityKey) pair already
// exists. ON CONFLICT DO NOTHING keeps the original display casing and makes
// the operation atomic under concurrent adds.
func (r *PostgresRepository) Upsert(ctx context.Context, fav domain.FavoriteCity) error {
	query := `
		INSERT INTO favorite_cities (user_id, city_key, city_display, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, city_key) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, fav.UserID, fav.CityKey, fav.CityDisplay, fav.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to upsert favorite: %w", err)
	}

	return nil
}

// Delete removes the matching favorite and reports how many rows went away
func (r *PostgresRepository) Delete(ctx context.Context, userID, cityKey string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM favorite_cities WHERE user_id = $1 AND city_key = $2`,
		userID, cityKey,
	)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to delete favorite: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
