package auth

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
)

// OnlyRoles allows the request through when the resolved caller role is in
// the allowed set.
func OnlyRoles(customForbiddenMessage string, allowed ...constants.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := c.Locals(LocUserRole).(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}
		role, ok := constants.ParseRole(raw)
		if ok {
			for _, a := range allowed {
				if role == a {
					return c.Next()
				}
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// RouteAccessGuard enforces the static route→role table. The table is built
// once at startup and passed in by reference; paths outside the table pass
// through untouched.
func RouteAccessGuard(table *constants.RouteAccessTable) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed := table.AllowedRoles(c.Path())
		if allowed == nil {
			return c.Next()
		}
		raw, _ := c.Locals(LocUserRole).(string)
		if role, ok := constants.ParseRole(raw); ok {
			for _, a := range allowed {
				if role == a {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden: your role cannot access this route",
		})
	}
}

// GetCallerID returns the resolved caller id string from Locals.
func GetCallerID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocUserID).(string)
	return v
}

// GetCallerRole returns the resolved caller role from Locals.
func GetCallerRole(c *fiber.Ctx) (constants.Role, bool) {
	raw, _ := c.Locals(LocUserRole).(string)
	return constants.ParseRole(raw)
}
