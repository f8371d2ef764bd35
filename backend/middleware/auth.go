package middleware

import (
	"coursetracker/backend/config"
	"coursetracker/backend/models"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// AuthMiddleware validates the bearer token and stores the caller's
// services.Session for the handlers.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(sessionKey, services.Session{
			UserID: claims.UserID,
			Role:   models.Role(claims.Role),
		})
		return c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !CurrentSession(c).IsAdmin() {
			return utils.Forbidden(c, "Forbidden - Admin access required")
		}
		return c.Next()
	}
}

// CurrentSession returns the session stored by AuthMiddleware, or an
// anonymous one.
func CurrentSession(c *fiber.Ctx) services.Session {
	sess, _ := c.Locals(sessionKey).(services.Session)
	return sess
}
