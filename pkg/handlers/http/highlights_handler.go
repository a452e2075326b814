package http

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/carebridge/ai-service/pkg/handlers/http/request"
	"github.com/carebridge/ai-service/pkg/handlers/http/response"
	"github.com/carebridge/ai-service/pkg/importance"
	"github.com/carebridge/ai-service/pkg/infra/llm"
	"github.com/carebridge/ai-service/pkg/redaction"
)

// entryRefPattern matches the "Entry N" provenance pointers the model is
// asked to emit.
var entryRefPattern = regexp.MustCompile(`Entry\s+(\d+)`)

type highlightsHandler struct {
	logger *logrus.Logger
	engine *redaction.Engine
	llm    llm.Client
	scorer *importance.Scorer
}

func NewHighlightsHandler(
	logger *logrus.Logger,
	engine *redaction.Engine,
	llmClient llm.Client,
	scorer *importance.Scorer,
) Handler {
	return &highlightsHandler{
		logger: logger,
		engine: engine,
		llm:    llmClient,
		scorer: scorer,
	}
}

func (h *highlightsHandler) Handle(c *fiber.Ctx) error {
	var req request.HighlightsRequest

	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := req.Validate(); err != nil {
		return handleDomainError(c, h.logger, err)
	}

	entries, maps := redactEntries(h.engine, req.Entries)
	defer releaseAll(h.engine, maps)

	highlights, err := h.llm.GenerateHighlights(c.Context(), entries)
	if err != nil {
		return handleDomainError(c, h.logger, err)
	}

	// Recency scoring needs a timestamp; pull it from the source entry the
	// provenance pointer names.
	for _, hl := range highlights {
		if hl.CreatedAt != "" {
			continue
		}
		if idx, ok := entryIndex(hl.ProvenancePointer); ok && idx < len(req.Entries) {
			hl.CreatedAt = req.Entries[idx].CreatedAt
		}
	}

	h.scorer.BatchScore(c.Context(), highlights, req.PatientID)

	for _, hl := range highlights {
		hl.ContentSnippet = restoreAll(maps, hl.ContentSnippet)
		hl.RiskReason = restoreAll(maps, hl.RiskReason)
	}

	sort.SliceStable(highlights, func(i, j int) bool {
		return highlights[i].ImportanceScore > highlights[j].ImportanceScore
	})

	riskSummary := make(map[string]int)
	for _, hl := range highlights {
		riskSummary[hl.RiskLevel]++
	}

	return c.Status(fiber.StatusOK).JSON(response.HighlightsOutput{
		Highlights:  highlights,
		Count:       len(highlights),
		RiskSummary: riskSummary,
	})
}

// entryIndex resolves an "Entry N" pointer to a zero-based entry index.
func entryIndex(pointer string) (int, bool) {
	match := entryRefPattern.FindStringSubmatch(pointer)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
