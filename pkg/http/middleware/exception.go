package middleware

import (
	"runtime/debug"

	"github.com/go-arcade/ats/pkg/http"
	"github.com/go-arcade/ats/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// ExceptionMiddleware recovers panics into an Internal error envelope.
// Panic values are logged and never echoed to the caller.
func ExceptionMiddleware(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.WithContext(c.UserContext()).Errorw("panic recovered",
				"path", c.Path(),
				"method", c.Method(),
				"panic", r,
				"stack", string(debug.Stack()),
			)
			err = http.WithRepErr(c, http.InternalError.Code, "Internal", http.InternalError.Msg, c.Path())
		}
	}()

	return c.Next()
}
