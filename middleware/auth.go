// middleware/auth.go
package middleware

import (
	"fmt"
	"log"
	"strings"

	"state-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

// SessionAuth resolves the session token into the current user and attaches
// it to the request context. Token arrives in X-Session-Token or as an
// Authorization bearer token.
//
// With required=false the request proceeds anonymously when no valid token
// is present; with required=true it is rejected with 401.
func SessionAuth(userService *services.UserService, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("X-Session-Token")
		if token == "" {
			authHeader := c.Get("Authorization")
			trimmed := strings.TrimPrefix(authHeader, "Bearer ")
			if trimmed != authHeader {
				token = trimmed
			}
		}

		if token == "" {
			if required {
				log.Printf("🚫 [AUTH] missing session token for %s", c.Path())
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "not authenticated",
				})
			}
			return c.Next()
		}

		user, err := userService.GetSessionUser(token)
		if err != nil {
			if required {
				log.Printf("❌ [AUTH] invalid session for %s: %v", c.Path(), err)
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "session expired or invalid",
				})
			}
			return c.Next()
		}

		// Attach to ctx for handlers. user_id uses the user_<id> spelling the
		// visited-state rows are keyed by.
		c.Locals("user", user)
		c.Locals("user_id", fmt.Sprintf("user_%d", user.ID))
		c.Locals("session_token", token)

		return c.Next()
	}
}
