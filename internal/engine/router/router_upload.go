package router

import (
	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// uploadRouter registers the public resume upload broker.
func (rt *Router) uploadRouter(r fiber.Router) {
	r.Post("/upload/resume", rt.rateLimited("upload"), rt.requestUploadSlot)
}

func (rt *Router) requestUploadSlot(c *fiber.Ctx) error {
	var req model.UploadSlotReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	slot, err := rt.Services.Upload.RequestSlot(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, slot)
	return nil
}
