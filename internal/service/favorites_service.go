package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skycast/backend/internal/apperror"
	"github.com/skycast/backend/internal/domain"
)

// FavoritesService manages each user's saved-city set
type FavoritesService struct {
	favorites domain.FavoriteRepository
}

// NewFavoritesService creates a new favorites service
func NewFavoritesService(favorites domain.FavoriteRepository) *FavoritesService {
	return &FavoritesService{favorites: favorites}
}

// CityKey normalizes a city name into its storage key.
func CityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// List returns the user's favorites, most recently added first.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]domain.FavoriteCity, error) {
	favs, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("favorites: listing: %w", err))
	}
	return favs, nil
}

// Add saves a city for the user. Adding a city whose key is already saved is
// a silent no-op; the display casing from the first add is kept.
func (s *FavoritesService) Add(ctx context.Context, userID, cityDisplay string) error {
	cityKey := CityKey(cityDisplay)
	if cityKey == "" {
		return apperror.NewValidation("City is required")
	}

	fav := domain.FavoriteCity{
		UserID:      userID,
		CityKey:     cityKey,
		CityDisplay: strings.TrimSpace(cityDisplay),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.favorites.Upsert(ctx, fav); err != nil {
		return apperror.NewInternal(fmt.Errorf("favorites: upserting: %w", err))
	}
	return nil
}

// Remove deletes the user's favorite with the given key and returns how many
// rows were removed. Removing a key that was never saved is not an error.
func (s *FavoritesService) Remove(ctx context.Context, userID, rawCity string) (string, int64, error) {
	cityKey := CityKey(rawCity)
	if cityKey == "" {
		return "", 0, apperror.NewValidation("City is required")
	}

	deleted, err := s.favorites.Delete(ctx, userID, cityKey)
	if err != nil {
		return "", 0, apperror.NewInternal(fmt.Errorf("favorites: deleting: %w", err))
	}
	return cityKey, deleted, nil
}
