package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/ai-service/pkg/handlers/http/request"
	"github.com/carebridge/ai-service/pkg/handlers/http/response"
	"github.com/carebridge/ai-service/pkg/redaction"
)

type redactHandler struct {
	logger *logrus.Logger
	engine *redaction.Engine
}

func NewRedactHandler(logger *logrus.Logger, engine *redaction.Engine) Handler {
	return &redactHandler{
		logger: logger,
		engine: engine,
	}
}

func (h *redactHandler) Handle(c *fiber.Ctx) error {
	var req request.RedactRequest

	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := req.Validate(); err != nil {
		return handleDomainError(c, h.logger, err)
	}

	redactedText, m := h.engine.Redact(req.Text)

	out := response.RedactOutput{
		RedactedText:   redactedText,
		EntityCount:    m.TotalEntities(),
		EntitiesByType: response.SortedEntityCounts(m.CategoryCounts()),
	}

	if req.Cleanup() {
		h.engine.Release(m.ID)
	} else {
		out.RedactionMapID = m.ID
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
