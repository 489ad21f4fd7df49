package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const realIPKey = "ip"

func RealIPMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if xff := c.Get(fiber.HeaderXForwardedFor); xff != "" {
			// XFF: client, proxy1, proxy2
			if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
				c.Locals(realIPKey, ip)
				return c.Next()
			}
		}
		if ip := strings.TrimSpace(c.Get("X-Real-IP")); ip != "" {
			c.Locals(realIPKey, ip)
		}
		return c.Next()
	}
}

// ClientIP returns the address resolved by RealIPMiddleware, falling back to the peer address.
func ClientIP(c *fiber.Ctx) string {
	if ip, ok := c.Locals(realIPKey).(string); ok && ip != "" {
		return ip
	}
	return c.IP()
}
