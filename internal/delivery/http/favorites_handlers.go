package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/skycast/backend/internal/apperror"
	"github.com/skycast/backend/internal/domain"
)

// ListFavorites returns the authenticated user's saved cities
func (h *Handler) ListFavorites(c *fiber.Ctx) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoritesSvc.List(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	if favorites == nil {
		favorites = []domain.FavoriteCity{}
	}

	return c.JSON(fiber.Map{"favorites": favorites})
}

// AddFavorite saves a city for the authenticated user
func (h *Handler) AddFavorite(c *fiber.Ctx) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	var body struct {
		City string `json:"city"`
	}
	if err := c.BodyParser(&body); err != nil {
		return apperror.NewValidation("Invalid request body")
	}

	if err := h.favoritesSvc.Add(c.Context(), principal.UserID, body.City); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"ok": true})
}

// RemoveFavorite deletes one saved city for the authenticated user
func (h *Handler) RemoveFavorite(c *fiber.Ctx) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	rawCity := c.Params("city")
	if decoded, err := url.PathUnescape(rawCity); err == nil {
		rawCity = decoded
	}

	cityKey, deleted, err := h.favoritesSvc.Remove(c.Context(), principal.UserID, rawCity)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"ok":           true,
		"deletedCount": deleted,
		"cityKey":      cityKey,
	})
}
