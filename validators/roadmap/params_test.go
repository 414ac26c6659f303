package roadmapValidator

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/roadmaps/:id", handler, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"roadmap_id": c.Locals("roadmapID")})
	})
	return app
}

func TestRoadmapParamParsesID(t *testing.T) {
	app := paramApp(RoadmapParam())

	resp, err := app.Test(httptest.NewRequest("GET", "/roadmaps/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoadmapParamRejectsGarbage(t *testing.T) {
	app := paramApp(RoadmapParam())

	for _, raw := range []string{"abc", "0", "-3", "1.5"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/roadmaps/"+raw, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "param %q", raw)
	}
}
