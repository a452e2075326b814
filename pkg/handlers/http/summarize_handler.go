package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/ai-service/pkg/handlers/http/request"
	"github.com/carebridge/ai-service/pkg/handlers/http/response"
	"github.com/carebridge/ai-service/pkg/infra/llm"
	"github.com/carebridge/ai-service/pkg/redaction"
)

type summarizeHandler struct {
	logger *logrus.Logger
	engine *redaction.Engine
	llm    llm.Client
}

func NewSummarizeHandler(logger *logrus.Logger, engine *redaction.Engine, llmClient llm.Client) Handler {
	return &summarizeHandler{
		logger: logger,
		engine: engine,
		llm:    llmClient,
	}
}

func (h *summarizeHandler) Handle(c *fiber.Ctx) error {
	var req request.SummarizeRequest

	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := req.Validate(); err != nil {
		return handleDomainError(c, h.logger, err)
	}

	entries, maps := redactEntries(h.engine, req.Entries)
	defer func() {
		releaseAll(h.engine, maps)
	}()

	patientContext := req.PatientContext
	if strings.TrimSpace(patientContext) != "" {
		redactedContext, m := h.engine.Redact(patientContext)
		maps = append(maps, m)
		patientContext = redactedContext
	}

	summary, err := h.llm.GenerateSummary(c.Context(), entries, patientContext)
	if err != nil {
		return handleDomainError(c, h.logger, err)
	}

	out := response.SummarizeOutput{
		CareNoteID:     req.CareNoteID,
		CarePlanScore:  summary.CarePlanScore,
		PatientSummary: restoreAll(maps, summary.PatientSummary),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	out.Highlights = make([]string, 0, len(summary.Highlights))
	for _, item := range summary.Highlights {
		out.Highlights = append(out.Highlights, restoreAll(maps, item))
	}
	out.ChangesSinceLastVisit = make([]string, 0, len(summary.ChangesSinceLastVisit))
	for _, item := range summary.ChangesSinceLastVisit {
		out.ChangesSinceLastVisit = append(out.ChangesSinceLastVisit, restoreAll(maps, item))
	}
	out.CarePlanItems = make([]llm.CarePlanItem, 0, len(summary.CarePlanItems))
	for _, item := range summary.CarePlanItems {
		item.Item = restoreAll(maps, item.Item)
		out.CarePlanItems = append(out.CarePlanItems, item)
	}

	h.logger.WithFields(logrus.Fields{
		"care_note_id":    req.CareNoteID,
		"entries":         len(req.Entries),
		"care_plan_score": summary.CarePlanScore,
	}).Info("generated summary")

	return c.Status(fiber.StatusOK).JSON(out)
}
