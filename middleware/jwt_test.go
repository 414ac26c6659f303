package middleware

import (
	"net/http/httptest"
	"testing"

	"dojo/config"
	"dojo/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userId")})
	})
	return app
}

func TestJWTRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := jwtApp()

	token, err := GenerateJWT(7, "alice", models.RoleStudent, "alice@test.dev")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTRejectsBadTokens(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := jwtApp()

	// No header
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Wrong scheme
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Token signed with another key
	config.AppConfig.JWTKey = "other-secret"
	token, err := GenerateJWT(7, "alice", models.RoleStudent, "alice@test.dev")
	require.NoError(t, err)
	config.AppConfig.JWTKey = "test-secret"

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
