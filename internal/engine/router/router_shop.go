package router

import (
	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// shopRouter registers shop onboarding and lookup routes
func (rt *Router) shopRouter(r fiber.Router, auth fiber.Handler) {
	shopGroup := r.Group("/shops")
	{
		shopGroup.Post("/", auth, rt.createShop)          // POST /shops - onboard the caller's shop
		shopGroup.Get("/mine", auth, rt.getMyShop)        // GET /shops/mine - the caller's shop
		shopGroup.Get("/by-slug/:slug", rt.getShopBySlug) // GET /shops/by-slug/:slug - public lookup
		shopGroup.Get("/by-id/:id", rt.getShopById)       // GET /shops/by-id/:id - public lookup
	}
}

func (rt *Router) createShop(c *fiber.Ctx) error {
	p, err := rt.principal(c)
	if err != nil {
		return fail(c, err)
	}

	var req model.CreateShopReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	shop, err := rt.Services.Shop.Create(c.UserContext(), p, &req)
	if err != nil {
		return fail(c, err)
	}

	c.Status(fiber.StatusCreated)
	c.Locals(middleware.DETAIL, shop)
	return nil
}

func (rt *Router) getMyShop(c *fiber.Ctx) error {
	p, err := rt.principal(c)
	if err != nil {
		return fail(c, err)
	}
	shop, err := rt.Services.Shop.Mine(c.UserContext(), p)
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, shop)
	return nil
}

func (rt *Router) getShopBySlug(c *fiber.Ctx) error {
	shop, err := rt.Services.Shop.BySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, shop)
	return nil
}

func (rt *Router) getShopById(c *fiber.Ctx) error {
	shop, err := rt.Services.Shop.ById(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Locals(middleware.DETAIL, shop)
	return nil
}
