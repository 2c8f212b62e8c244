package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags each request with a uuid, reusing the client's
// X-Request-Id when one is supplied, so log lines from one request
// can be correlated.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestid", id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}
