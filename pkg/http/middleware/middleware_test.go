package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	httpx "github.com/go-arcade/ats/pkg/http"
	"github.com/go-arcade/ats/pkg/http/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func newTestApp() *fiber.App {
	auth := httpx.Auth{JWTSecret: testSecret, Audience: "authenticated"}
	app := fiber.New()
	app.Use(ExceptionMiddleware)
	app.Use(RequestMiddleware())
	app.Use(RealIPMiddleware())
	app.Use(UnifiedResponseMiddleware())

	app.Get("/whoami", AuthorizationMiddleware(auth), func(c *fiber.Ctx) error {
		c.Locals(DETAIL, fiber.Map{"sub": Claims(c).UserId()})
		return nil
	})
	app.Post("/things", func(c *fiber.Ctx) error {
		c.Status(fiber.StatusCreated)
		c.Locals(DETAIL, fiber.Map{"id": "t-1"})
		return nil
	})
	app.Delete("/things/:id", func(c *fiber.Ctx) error {
		c.Locals(OPERATION, "delete thing")
		return nil
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	return app
}

func TestAuthorizationMiddleware(t *testing.T) {
	app := newTestApp()

	token, err := jwt.GenToken("user-1", "a@b.c", []byte(testSecret), "authenticated", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"bad scheme", "Basic abc", fiber.StatusUnauthorized},
		{"bad token", "Bearer abc.def.ghi", fiber.StatusUnauthorized},
		{"ok", "Bearer " + token, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode(t, resp.Body)
			if tt.status == fiber.StatusOK {
				assert.Equal(t, "user-1", body["detail"].(map[string]any)["sub"])
			} else {
				assert.Equal(t, "Unauthorized", body["kind"])
				assert.Equal(t, "/whoami", body["path"])
			}
		})
	}
}

func TestUnifiedResponseMiddleware(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/things", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	body := decode(t, resp.Body)
	assert.Equal(t, float64(201), body["code"])
	assert.Equal(t, "t-1", body["detail"].(map[string]any)["id"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/things/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decode(t, resp.Body)
	assert.Equal(t, httpx.Success.Msg, body["msg"])
	assert.Nil(t, body["detail"])
}

func TestExceptionMiddleware(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, "Internal", body["kind"])
	assert.NotContains(t, body["msg"], "boom")
}

func TestRateLimiter_Window(t *testing.T) {
	rl := NewRateLimiter()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("k", 2, time.Minute))
	assert.True(t, rl.Allow("k", 2, time.Minute))
	assert.False(t, rl.Allow("k", 2, time.Minute))
	assert.True(t, rl.Allow("other", 2, time.Minute))

	now = now.Add(2 * time.Minute)
	assert.True(t, rl.Allow("k", 2, time.Minute))
}

func TestRateLimitMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RealIPMiddleware())
	app.Post("/intake", RateLimitMiddleware(NewRateLimiter(), "intake", 1, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	req := func(ip string) int {
		r := httptest.NewRequest(fiber.MethodPost, "/intake", nil)
		r.Header.Set(fiber.HeaderXForwardedFor, ip)
		resp, err := app.Test(r)
		require.NoError(t, err)
		return resp.StatusCode
	}
	assert.Equal(t, fiber.StatusCreated, req("10.0.0.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, req("10.0.0.1"))
	assert.Equal(t, fiber.StatusCreated, req("10.0.0.2"))
}
