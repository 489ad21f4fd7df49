package http

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the success envelope.
type Response struct {
	Code   int    `json:"code"`
	Detail any    `json:"detail,omitempty"`
	Msg    string `json:"msg"`
}

func WithRepJSON(c *fiber.Ctx, detail any) error {
	return WithRepDetail(c, Success.Code, Success.Msg, detail)
}

func WithRepDetail(c *fiber.Ctx, code int, msg string, detail any) error {
	return c.Status(code).JSON(Response{
		Code:   code,
		Detail: detail,
		Msg:    msg,
	})
}

func WithRepNotDetail(c *fiber.Ctx) error {
	return c.Status(Success.Code).JSON(Response{
		Code: Success.Code,
		Msg:  Success.Msg,
	})
}
