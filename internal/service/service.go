package service

import (
	"github.com/skycast/backend/internal/domain"
)

// Repository interfaces are re-exported from domain for convenience
type (
	UserRepository     = domain.UserRepository
	FavoriteRepository = domain.FavoriteRepository
)
