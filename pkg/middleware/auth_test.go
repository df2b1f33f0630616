package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = &config.Jwt{Secret: "middleware-secret", Expiry: time.Hour}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Use(JwtProtected(testCfg))
	app.Get("/", func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		return c.JSON(token.Claims)
	})
	return app
}

func sign(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "0b6d6d8e-5c1e-4a44-9d0c-2f1a6f3c1e11",
		"exp":     exp.Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func do(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestJwtProtected(t *testing.T) {
	app := protectedApp()

	t.Run("missing", func(t *testing.T) {
		resp, body := do(t, app, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("valid", func(t *testing.T) {
		resp, body := do(t, app, "Bearer "+sign(t, testCfg.Secret, time.Now().Add(time.Hour)))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "0b6d6d8e-5c1e-4a44-9d0c-2f1a6f3c1e11", body["user_id"])
	})

	t.Run("expired", func(t *testing.T) {
		resp, body := do(t, app, "Bearer "+sign(t, testCfg.Secret, time.Now().Add(-time.Hour)))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("wrong secret", func(t *testing.T) {
		resp, _ := do(t, app, "Bearer "+sign(t, "other", time.Now().Add(time.Hour)))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestJwtError_Malformed(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, errors.New("Missing or malformed JWT"))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestJwtError_Invalid(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, errors.New("any other error"))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
