package router

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/ai-service/pkg/config"
	handlers "github.com/carebridge/ai-service/pkg/handlers/http"
	"github.com/carebridge/ai-service/pkg/middleware"
)

type stubHandler struct{}

func (stubHandler) Handle(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func testAPIRouter(cfg *config.Config) ServerRouter {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewAPIRouter(
		cfg,
		middleware.Transport{
			CORSMiddleware:      middleware.NewCORSMiddleware(nil),
			RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
			TimingMiddleware:    middleware.NewTimingMiddleware(logger),
		},
		handlers.HandlerTransport{
			RedactHandler:              stubHandler{},
			DeRedactHandler:            stubHandler{},
			ReleaseMapHandler:          stubHandler{},
			SummarizeHandler:           stubHandler{},
			HighlightsHandler:          stubHandler{},
			DraftPatientMessageHandler: stubHandler{},
		},
	)
}

func TestAPIRouterRegistersRoutes(t *testing.T) {
	app := fiber.New()
	require.NoError(t, testAPIRouter(&config.Config{}).BuildRoutes(app))

	routes := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/ai/redact"},
		{fiber.MethodPost, "/api/ai/deredact"},
		{fiber.MethodDelete, "/api/ai/redaction-maps/abc"},
		{fiber.MethodPost, "/api/ai/summarize"},
		{fiber.MethodPost, "/api/ai/highlights"},
		{fiber.MethodPost, "/api/ai/draft-patient-message"},
	}

	for _, route := range routes {
		resp, err := app.Test(httptest.NewRequest(route.method, route.path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "%s %s", route.method, route.path)
	}
}

func TestAPIRouterHealthAndReadiness(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{APIKey: "test-key"},
	}

	app := fiber.New()
	require.NoError(t, testAPIRouter(cfg).BuildRoutes(app))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/ready", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var ready map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &ready))
	assert.Equal(t, true, ready["llm_configured"])
	assert.Equal(t, false, ready["database_configured"])
}
