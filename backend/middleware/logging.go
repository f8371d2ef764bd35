package middleware

import (
	"time"

	"coursetracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

func LoggingMiddleware(logger *utils.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		kv := []interface{}{
			"ip", c.IP(),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start),
		}
		if err != nil {
			logger.Error("request failed", append(kv, "error", err)...)
		} else if status >= fiber.StatusInternalServerError {
			logger.Warn("request", kv...)
		} else {
			logger.Info("request", kv...)
		}

		return err
	}
}
