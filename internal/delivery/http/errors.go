package http

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/skycast/backend/internal/apperror"
)

// ErrorHandler converts classified errors to JSON exactly once, at the
// outermost layer. Upstream diagnostics are logged here and never exposed
// to clients.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		if appErr.UpstreamStatus != 0 || appErr.UpstreamBody != "" {
			log.Printf("Upstream failure on %s %s: status=%d body=%q",
				c.Method(), c.Path(), appErr.UpstreamStatus, truncate(appErr.UpstreamBody, 512))
		}
		if appErr.Internal != nil {
			log.Printf("Error on %s %s: %v", c.Method(), c.Path(), appErr)
		}
		return c.Status(appErr.Code).JSON(fiber.Map{"error": appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": apperror.SafeMessage(err),
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
