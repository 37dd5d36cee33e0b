package middleware

import (
	"github.com/gofiber/fiber/v3"

	pasetotoken "github.com/tinysteps/session-service/pkg/paseto"
)

// RequireRole allows the request through only when the authenticated principal
// carries at least one of the given roles. Must run after AuthRequired.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if !claims.HasAnyRole(roles...) {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}
