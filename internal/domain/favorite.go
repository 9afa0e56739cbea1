package domain

import "time"

// FavoriteCity is a saved city for one user. CityKey is the trimmed,
// lowercased lookup key and is unique per (UserID, CityKey); CityDisplay
// keeps the casing from the first time the city was saved.
type FavoriteCity struct {
	UserID      string    `json:"-"`
	CityKey     string    `json:"cityKey"`
	CityDisplay string    `json:"city"`
	CreatedAt   time.Time `json:"createdAt"`
}
