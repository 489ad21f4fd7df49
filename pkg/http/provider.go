package http

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(ProvideFiberConfig)

// ProvideFiberConfig builds the fiber server config. Errors that escape the
// middleware chain are rendered through the same error envelope.
func ProvideFiberConfig(cfg *Http) fiber.Config {
	return fiber.Config{
		AppName:               "ats",
		BodyLimit:             cfg.BodyLimit * 1024 * 1024,
		ReadTimeout:           time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(cfg.IdleTimeout) * time.Second,
		DisableStartupMessage: true,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := InternalError.Msg
			if fe := (*fiber.Error)(nil); errors.As(err, &fe) {
				code = fe.Code
				msg = fe.Message
			}
			return WithRepErrMsg(c, code, msg, c.Path())
		},
	}
}
