// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRolesSlice rejects any authenticated user whose role claim is not in
// allowed. Runs after AuthMiddleware has filled the locals.
func OnlyRolesSlice(message string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, message)
	}
}
