package postgres

import (
	"context"
	"sync"

	"github.com/skycast/backend/internal/domain"
)

// MockRepository implements the domain repositories in memory for demo mode
// and tests. A single mutex guards both maps; that is enough to give Upsert
// the same check-then-insert atomicity the real schema constraint provides.
type MockRepository struct {
	mu        sync.Mutex
	users     []domain.User
	favorites map[string][]domain.FavoriteCity
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{
		favorites: make(map[string][]domain.FavoriteCity),
	}
}

// Create persists a new user in memory
func (r *MockRepository) Create(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	return nil
}

// FindByEmail returns the user with the given email, or nil when absent
func (r *MockRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// EmailExists reports whether a user with the email is registered
func (r *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

// UsernameExists reports whether a user with the username is registered
func (r *MockRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}

// ListByUser returns the user's favorites, most recent first
func (r *MockRepository) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteCity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.favorites[userID]
	results := make([]domain.FavoriteCity, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		results = append(results, stored[i])
	}
	return results, nil
}

// Upsert inserts the favorite unless the (userID, cityKey) pair exists
func (r *MockRepository) Upsert(ctx context.Context, fav domain.FavoriteCity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.favorites[fav.UserID] {
		if existing.CityKey == fav.CityKey {
			return nil
		}
	}
	r.favorites[fav.UserID] = append(r.favorites[fav.UserID], fav)
	return nil
}

// Delete removes the matching favorite and reports how many rows went away
func (r *MockRepository) Delete(ctx context.Context, userID, cityKey string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.favorites[userID]
	for i, existing := range stored {
		if existing.CityKey == cityKey {
			r.favorites[userID] = append(stored[:i], stored[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// Health is always healthy in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
