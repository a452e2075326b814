package importance

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carebridge/ai-service/pkg/common"
	"github.com/carebridge/ai-service/pkg/domain/highlight"
	"github.com/carebridge/ai-service/pkg/domain/interaction"
	"github.com/carebridge/ai-service/pkg/infra/metrics"
)

// Component weights of the composite score. They sum to 1.0 so the result
// stays in [0,1] before clamping.
const (
	recencyWeight    = 0.3
	riskLevelWeight  = 0.3
	unresolvedWeight = 0.2
	learnedWeight    = 0.2
)

var riskLevelScores = map[string]float64{
	highlight.RiskCritical: 1.0,
	highlight.RiskHigh:     0.8,
	highlight.RiskMedium:   0.5,
	highlight.RiskLow:      0.2,
}

// Keywords indicating open clinical follow-up. Matched case-insensitively as
// substrings.
var unresolvedKeywords = []string{
	"pending", "monitor", "follow up", "follow-up", "reassess",
	"unresolved", "continue", "review", "escalate", "refer",
	"outstanding", "awaiting", "to be", "tbd", "scheduled",
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Scorer computes composite importance scores for clinical highlights. The
// history reader is optional; a nil reader disables the learned component,
// which then contributes its neutral default.
type Scorer struct {
	history        interaction.Reader
	logger         *logrus.Logger
	historyWindow  int
	historyTimeout time.Duration
	now            func() time.Time
}

// Options tunes the learned-signal history query. Zero values fall back to
// the package defaults.
type Options struct {
	HistoryWindow  int
	HistoryTimeout time.Duration
}

func NewScorer(history interaction.Reader, logger *logrus.Logger) *Scorer {
	return NewScorerWithOptions(history, logger, Options{})
}

func NewScorerWithOptions(history interaction.Reader, logger *logrus.Logger, opts Options) *Scorer {
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = common.InteractionWindow
	}
	if opts.HistoryTimeout <= 0 {
		opts.HistoryTimeout = common.HistoryQueryTimeout
	}
	return &Scorer{
		history:        history,
		logger:         logger,
		historyWindow:  opts.HistoryWindow,
		historyTimeout: opts.HistoryTimeout,
		now:            time.Now,
	}
}

// Score blends recency, risk level, unresolved-action language and learned
// clinician engagement into one value in [0,1], rounded to 3 decimals.
// patientID is accepted for future per-patient personalization and is not
// used by the current learned signal.
func (s *Scorer) Score(ctx context.Context, content, riskLevel, createdAt, patientID string) float64 {
	recency := s.recencyScore(createdAt)
	risk := riskScore(riskLevel)
	unresolved := unresolvedScore(content)
	learned := s.learnedScore(ctx, content)

	score := recencyWeight*recency +
		riskLevelWeight*risk +
		unresolvedWeight*unresolved +
		learnedWeight*learned

	final := math.Max(0.0, math.Min(1.0, score))
	final = math.Round(final*1000) / 1000

	s.logger.WithFields(logrus.Fields{
		"score":      final,
		"recency":    recency,
		"risk":       risk,
		"unresolved": unresolved,
		"learned":    learned,
	}).Debug("computed importance score")

	return final
}

// BatchScore scores every highlight in place, preserving order. Items are
// independent; failures in the learned signal degrade to the neutral default
// and never abort the batch.
func (s *Scorer) BatchScore(ctx context.Context, highlights []*highlight.Highlight, patientID string) {
	for _, h := range highlights {
		h.ImportanceScore = s.Score(ctx, h.ContentSnippet, h.RiskLevel, h.CreatedAt, patientID)
		metrics.ScoredHighlights.Inc()
	}
}

// recencyScore maps entry age to a step function: entries within 24h score
// 1.0, decaying to 0.1 past 30 days. An absent or unparsable timestamp is
// neutral, not an error.
func (s *Scorer) recencyScore(createdAt string) float64 {
	if createdAt == "" {
		return 0.5
	}

	ts, ok := parseTimestamp(createdAt)
	if !ok {
		return 0.5
	}

	ageHours := s.now().UTC().Sub(ts).Hours()
	if ageHours < 0 {
		ageHours = 0
	}

	switch {
	case ageHours <= 24:
		return 1.0
	case ageHours <= 72:
		return 0.8
	case ageHours <= 168: // 7 days
		return 0.6
	case ageHours <= 336: // 14 days
		return 0.4
	case ageHours <= 720: // 30 days
		return 0.2
	default:
		return 0.1
	}
}

// parseTimestamp accepts RFC3339 and naive ISO timestamps; naive values are
// taken as UTC.
func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

func riskScore(riskLevel string) float64 {
	if score, ok := riskLevelScores[strings.TrimSpace(strings.ToLower(riskLevel))]; ok {
		return score
	}
	return 0.5
}

// unresolvedScore counts unresolved-action keywords in the content and maps
// the count to a score: 0 matches 0.0, 1 match 0.5, 2 matches 0.8, 3+ 1.0.
func unresolvedScore(content string) float64 {
	if content == "" {
		return 0.0
	}

	lower := strings.ToLower(content)
	matches := 0
	for _, keyword := range unresolvedKeywords {
		if strings.Contains(lower, keyword) {
			matches++
		}
	}

	switch {
	case matches >= 3:
		return 1.0
	case matches == 2:
		return 0.8
	case matches == 1:
		return 0.5
	default:
		return 0.0
	}
}
