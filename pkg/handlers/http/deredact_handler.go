package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/ai-service/pkg/handlers/http/request"
	"github.com/carebridge/ai-service/pkg/redaction"
)

type deRedactHandler struct {
	logger *logrus.Logger
	engine *redaction.Engine
}

func NewDeRedactHandler(logger *logrus.Logger, engine *redaction.Engine) Handler {
	return &deRedactHandler{
		logger: logger,
		engine: engine,
	}
}

func (h *deRedactHandler) Handle(c *fiber.Ctx) error {
	var req request.DeRedactRequest

	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := req.Validate(); err != nil {
		return handleDomainError(c, h.logger, err)
	}

	restored, err := h.engine.DeRedact(req.Text, req.RedactionMapID)
	if err != nil {
		return handleDomainError(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"text": restored})
}
