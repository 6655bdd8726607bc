package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const localsKey = "principal"

// NewMiddleware returns a Fiber middleware that extracts and validates a
// Bearer JWT from the Authorization header and stores the Principal in the
// request locals.
func NewMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing authorization header"})
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid authorization header"})
		}
		p, err := Parse(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals(localsKey, p)
		return c.Next()
	}
}

// FromCtx retrieves the principal stored by NewMiddleware.
func FromCtx(c *fiber.Ctx) (*Principal, error) {
	p, ok := c.Locals(localsKey).(*Principal)
	if !ok || p == nil {
		return nil, errors.New("missing principal")
	}
	return p, nil
}
