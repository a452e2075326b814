package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/ai-service/pkg/handlers/http/request"
	"github.com/carebridge/ai-service/pkg/handlers/http/response"
	"github.com/carebridge/ai-service/pkg/infra/llm"
	"github.com/carebridge/ai-service/pkg/redaction"
)

type draftPatientMessageHandler struct {
	logger *logrus.Logger
	engine *redaction.Engine
	llm    llm.Client
}

func NewDraftPatientMessageHandler(logger *logrus.Logger, engine *redaction.Engine, llmClient llm.Client) Handler {
	return &draftPatientMessageHandler{
		logger: logger,
		engine: engine,
		llm:    llmClient,
	}
}

// Handle drafts a patient-facing update from the note entries. The patient
// name never reaches the model; it is echoed back as the recipient so the
// caller can address the message.
func (h *draftPatientMessageHandler) Handle(c *fiber.Ctx) error {
	var req request.PatientMessageRequest

	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := req.Validate(); err != nil {
		return handleDomainError(c, h.logger, err)
	}

	entries, maps := redactEntries(h.engine, req.Entries)
	defer releaseAll(h.engine, maps)

	message, err := h.llm.GeneratePatientMessage(c.Context(), entries, llm.MessageTypeFamilyUpdate)
	if err != nil {
		return handleDomainError(c, h.logger, err)
	}

	out := response.PatientMessageOutput{
		CareNoteID:  req.CareNoteID,
		MessageType: llm.MessageTypeFamilyUpdate,
		Summary:     restoreAll(maps, message.Summary),
		Recipient:   req.PatientName,
		AuthorRole:  req.AuthorRole,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	out.KeyPoints = make([]string, 0, len(message.KeyPoints))
	for _, point := range message.KeyPoints {
		out.KeyPoints = append(out.KeyPoints, restoreAll(maps, point))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
