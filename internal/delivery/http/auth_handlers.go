package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/skycast/backend/internal/apperror"
	"github.com/skycast/backend/internal/domain"
)

// sessionCookieName carries the session token for browser clients. API
// clients can send the same token as a bearer header instead.
const sessionCookieName = "skycast_session"

// Register creates a new account
func (h *Handler) Register(c *fiber.Ctx) error {
	var input domain.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.NewValidation("Invalid request body")
	}

	if err := h.authSvc.Register(c.Context(), input); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// Login verifies credentials and issues a session token
func (h *Handler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.NewValidation("Invalid request body")
	}

	principal, err := h.authSvc.Authenticate(c.Context(), input)
	if err != nil {
		return err
	}

	token, err := h.tokenSvc.Sign(principal)
	if err != nil {
		return apperror.NewInternal(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(h.tokenSvc.TTL()),
	})

	return c.JSON(fiber.Map{
		"ok":    true,
		"token": token,
		"user": fiber.Map{
			"userId":   principal.UserID,
			"username": principal.Username,
		},
	})
}
