package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/ai-service/pkg/redaction"
)

type releaseMapHandler struct {
	logger *logrus.Logger
	engine *redaction.Engine
}

func NewReleaseMapHandler(logger *logrus.Logger, engine *redaction.Engine) Handler {
	return &releaseMapHandler{
		logger: logger,
		engine: engine,
	}
}

// Handle drops a retained redaction map. Releasing an unknown or
// already-released id reports released:false rather than an error.
func (h *releaseMapHandler) Handle(c *fiber.Ctx) error {
	mapID := c.Params("map_id")

	released := h.engine.Release(mapID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"redaction_map_id": mapID,
		"released":         released,
	})
}
