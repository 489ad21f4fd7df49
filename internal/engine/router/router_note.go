package router

import (
	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) noteRouter(r fiber.Router, auth fiber.Handler) {
	noteGroup := r.Group("/applicants/:id/notes")
	{
		noteGroup.Get("/", auth, rt.listNotes)
		noteGroup.Post("/", auth, rt.appendNote)
	}
}

func (rt *Router) listNotes(c *fiber.Ctx) error {
	p, err := rt.principal(c)
	if err != nil {
		return fail(c, err)
	}
	notes, err := rt.Services.Note.List(c.UserContext(), p, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, notes)
	return nil
}

func (rt *Router) appendNote(c *fiber.Ctx) error {
	p, err := rt.principal(c)
	if err != nil {
		return fail(c, err)
	}

	var req model.CreateNoteReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	note, err := rt.Services.Note.Append(c.UserContext(), p, c.Params("id"), &req)
	if err != nil {
		return fail(c, err)
	}

	c.Status(fiber.StatusCreated)
	c.Locals(middleware.DETAIL, note)
	return nil
}
