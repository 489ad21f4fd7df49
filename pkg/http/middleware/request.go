package middleware

import (
	"github.com/go-arcade/ats/pkg/id"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const RequestIDKey = "request_id"

func RequestMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  id.GetUUID,
		ContextKey: RequestIDKey,
	})
}

// RequestID returns the id assigned by RequestMiddleware.
func RequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(RequestIDKey).(string); ok {
		return v
	}
	return ""
}
