package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skycast/backend/internal/apperror"
	"github.com/skycast/backend/internal/domain"
)

// principalKey is the fiber locals key the auth middleware stores the
// verified principal under.
const principalKey = "principal"

// RequireAuth verifies the session token (bearer header or cookie) and
// attaches the principal to the request. Requests without a valid token are
// rejected before any handler or storage access runs.
func (h *Handler) RequireAuth(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		token = c.Cookies(sessionCookieName)
	}
	if token == "" {
		return apperror.NewUnauthorized("Unauthorized")
	}

	principal, err := h.tokenSvc.Verify(token)
	if err != nil {
		return apperror.NewUnauthorized("Unauthorized")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// requestPrincipal returns the principal set by RequireAuth.
func requestPrincipal(c *fiber.Ctx) (domain.Principal, error) {
	principal, ok := c.Locals(principalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, apperror.NewUnauthorized("Unauthorized")
	}
	return principal, nil
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
