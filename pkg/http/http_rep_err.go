package http

import (
	"github.com/gofiber/fiber/v2"
)

// ResponseErr is the error envelope: a stable machine readable kind plus a
// human readable message.
type ResponseErr struct {
	ErrCode int    `json:"code"`
	Kind    string `json:"kind"`
	ErrMsg  string `json:"msg"`
	Path    string `json:"path,omitempty"`
}

// WithRepErr writes an error envelope with status code as both the HTTP status and body code.
func WithRepErr(c *fiber.Ctx, code int, kind, errMsg, path string) error {
	return c.Status(code).JSON(ResponseErr{
		ErrCode: code,
		Kind:    kind,
		ErrMsg:  errMsg,
		Path:    path,
	})
}

// WithRepErrMsg writes an error envelope whose kind is derived from the status code.
func WithRepErrMsg(c *fiber.Ctx, code int, errMsg, path string) error {
	return WithRepErr(c, code, KindForStatus(code), errMsg, path)
}

// KindForStatus names the generic error kind of an HTTP status.
func KindForStatus(code int) string {
	switch code {
	case fiber.StatusBadRequest:
		return "Validation"
	case fiber.StatusUnauthorized:
		return "Unauthorized"
	case fiber.StatusForbidden:
		return "Forbidden"
	case fiber.StatusNotFound:
		return "NotFound"
	case fiber.StatusConflict:
		return "Conflict"
	case fiber.StatusRequestEntityTooLarge:
		return "Validation"
	case fiber.StatusTooManyRequests:
		return "RateLimited"
	case fiber.StatusServiceUnavailable:
		return "UpstreamUnavailable"
	default:
		return "Internal"
	}
}
