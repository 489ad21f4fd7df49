package router

import (
	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// applicantRouter registers applicant routes. Intake is public and rate limited,
// everything else is scoped to the caller's shop.
func (rt *Router) applicantRouter(r fiber.Router, auth fiber.Handler) {
	applicantGroup := r.Group("/applicants")
	{
		applicantGroup.Post("/", rt.rateLimited("intake"), rt.submitApplicant)
		applicantGroup.Get("/", auth, rt.listApplicants)
		applicantGroup.Get("/:id", auth, rt.getApplicant)
		applicantGroup.Patch("/:id", auth, rt.updateApplicant)
		applicantGroup.Delete("/:id", auth, rt.deleteApplicant)
		applicantGroup.Get("/:id/transitions", auth, rt.getTransitions)
		applicantGroup.Post("/:id/transitions", auth, rt.transitionApplicant)
	}
}

func (rt *Router) submitApplicant(c *fiber.Ctx) error {
	var draft model.ApplicantDraft
	if err := c.BodyParser(&draft); err != nil {
		return badBody(c)
	}

	a, err := rt.Services.Intake.Submit(c.UserContext(), &draft)
	if err != nil {
		return fail(c, err)
	}

	c.Status(fiber.StatusCreated)
	c.Locals(middleware.DETAIL, a)
	return nil
}

func (rt *Router) listApplicants(c *fiber.Ctx) error {
	p, err := rt.principal(c)
	if err != nil {
		return fail(c, err)
	}

	list, err := rt.Services.Applicant.List(c.UserContext(), p, model.ApplicantFilter{
		Status:   c.Query("status"),
		Position: c.Query("position"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []*model.ApplicantSummary{}
	}

	c.Locals(middleware.DETAIL, list)
	return nil
}

func (rt *Router) getApplicant(c *fiber.Ctx) error {
	p, err := rt.principal(c)
	if err != nil {
		return fail(c, err)
	}
	a, err := rt.Services.Applicant.Get(c.UserContext(), p, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, a)
	return nil
}

func (rt *Router) updateApplicant(c *fiber.Ctx) error {
	p, err := rt.principal(c)
	if err != nil {
		return fail(c, err)
	}

	var patch model.ApplicantPatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c)
	}

	a, err := rt.Services.Applicant.Update(c.UserContext(), p, c.Params("id"), &patch)
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, a)
	return nil
}

func (rt *Router) deleteApplicant(c *fiber.Ctx) error {
	p, err := rt.principal(c)
	if err != nil {
		return fail(c, err)
	}
	if err := rt.Services.Applicant.Delete(c.UserContext(), p, c.Params("id")); err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.OPERATION, "delete applicant")
	return nil
}

func (rt *Router) getTransitions(c *fiber.Ctx) error {
	p, err := rt.principal(c)
	if err != nil {
		return fail(c, err)
	}
	next, err := rt.Services.Pipeline.NextStages(c.UserContext(), p, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, next)
	return nil
}

func (rt *Router) transitionApplicant(c *fiber.Ctx) error {
	p, err := rt.principal(c)
	if err != nil {
		return fail(c, err)
	}

	var req model.TransitionReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	a, err := rt.Services.Pipeline.Transition(c.UserContext(), p, c.Params("id"), req.Status)
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, a)
	return nil
}
