package middleware

import (
	"github.com/gofiber/fiber/v2"
	httpx "github.com/go-arcade/ats/pkg/http"
)

// UnifiedResponse 统一响应
const (
	// DETAIL 用于设置响应数据，例如查询，新增等需要返回数据的操作
	// e.g: c.Locals(DETAIL, value)
	DETAIL = "detail"

	// OPERATION 用于标记不需要返回数据的操作，例如删除，只返回操作结果
	// e.g: c.Locals(OPERATION, "delete applicant")
	OPERATION = "operation"
)

// UnifiedResponseMiddleware wraps handler results in the success envelope.
// Handlers that already wrote an error envelope are left untouched.
func UnifiedResponseMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status == 0 {
			status = fiber.StatusOK
		}
		if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
			return nil
		}

		if detail := c.Locals(DETAIL); detail != nil {
			msg := httpx.Success.Msg
			if status == fiber.StatusCreated {
				msg = httpx.Created.Msg
			}
			return httpx.WithRepDetail(c, status, msg, detail)
		}
		if c.Locals(OPERATION) != nil {
			return httpx.WithRepNotDetail(c)
		}
		return nil
	}
}
