// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import (
	"time"

	"github.com/go-arcade/ats/internal/engine/config"
	"github.com/go-arcade/ats/internal/engine/model"
	"github.com/go-arcade/ats/internal/engine/service"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/pkg/cache"
	"github.com/go-arcade/ats/pkg/http"
	"github.com/go-arcade/ats/pkg/http/middleware"
	"github.com/go-arcade/ats/pkg/log"
	"github.com/go-arcade/ats/pkg/metrics"
	"github.com/go-arcade/ats/pkg/shutdown"
	"github.com/go-arcade/ats/pkg/version"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/pprof"
)

/**
 * @file: router.go
 * @description: public http surface of the applicant tracker
 */

const principalKey = "principal"

type Router struct {
	Http     *http.Http
	Intake   config.IntakeConfig
	Services *service.Services
	Limiter  middleware.Limiter
	Metrics  *metrics.Server
	Drain    *shutdown.Manager
}

func NewRouter(
	httpConf *http.Http,
	intakeConf config.IntakeConfig,
	services *service.Services,
	c cache.ICache,
	metricsServer *metrics.Server,
	drain *shutdown.Manager,
) *Router {
	return &Router{
		Http:     httpConf,
		Intake:   intakeConf,
		Services: services,
		Limiter:  middleware.NewLimiter(c),
		Metrics:  metricsServer,
		Drain:    drain,
	}
}

func (rt *Router) Router() *fiber.App {
	app := fiber.New(http.ProvideFiberConfig(rt.Http))

	app.Use(
		middleware.ExceptionMiddleware,
		middleware.RequestMiddleware(),
		middleware.RealIPMiddleware(),
		middleware.TraceMiddleware(),
		middleware.AccessLogMiddleware(rt.Http),
		middleware.CorsMiddleware(),
		middleware.TimeoutMiddleware(rt.Http.RequestTimeoutDuration()),
		middleware.UnifiedResponseMiddleware(),
	)

	app.Get("/health", func(c *fiber.Ctx) error {
		if rt.Drain != nil && rt.Drain.IsShuttingDown() {
			return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
		}
		return c.SendString("ok")
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})

	if rt.Http.PProf {
		app.Use(pprof.New())
	}

	if rt.Http.ExposeMetrics && rt.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(rt.Metrics.Handler()))
	}

	api := app.Group("/api")
	{
		auth := middleware.AuthorizationMiddleware(rt.Http.Auth)

		api.Get("/constants", rt.getConstants)
		rt.shopRouter(api, auth)
		rt.applicantRouter(api, auth)
		rt.noteRouter(api, auth)
		rt.uploadRouter(api)
	}

	// must be registered after every route
	app.Use(func(c *fiber.Ctx) error {
		return http.WithRepErr(c, fiber.StatusNotFound, string(apperr.KindNotFound), "request path not found", c.Path())
	})

	return app
}

// rateLimited applies the intake limits to a public endpoint.
func (rt *Router) rateLimited(scope string) fiber.Handler {
	window := time.Duration(rt.Intake.RateWindow) * time.Second
	return middleware.RateLimitMiddleware(rt.Limiter, scope, rt.Intake.RateLimit, window)
}

// principal resolves the authenticated caller once per request.
func (rt *Router) principal(c *fiber.Ctx) (*service.Principal, error) {
	if p, ok := c.Locals(principalKey).(*service.Principal); ok {
		return p, nil
	}
	claims := middleware.Claims(c)
	if claims == nil {
		return nil, apperr.Unauthorized("missing credentials")
	}
	p, err := rt.Services.Identity.Resolve(c.UserContext(), claims.UserId(), claims.Email)
	if err != nil {
		return nil, err
	}
	c.Locals(principalKey, p)
	return p, nil
}

// fail renders err as an error envelope. Causes of Internal and
// UpstreamUnavailable errors are logged and never returned.
func fail(c *fiber.Ctx, err error) error {
	ae := apperr.As(err)
	switch ae.Kind {
	case apperr.KindInternal, apperr.KindUpstreamUnavailable:
		log.WithContext(c.UserContext()).Errorw("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", middleware.RequestID(c),
			"kind", ae.Kind,
			"error", err,
		)
	}
	return http.WithRepErr(c, ae.Kind.Status(), string(ae.Kind), ae.Detail, c.Path())
}

func badBody(c *fiber.Ctx) error {
	return fail(c, apperr.Validation("invalid request body"))
}

func (rt *Router) getConstants(c *fiber.Ctx) error {
	c.Locals(middleware.DETAIL, model.GetConstants())
	return nil
}
