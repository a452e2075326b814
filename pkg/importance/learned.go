package importance

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/carebridge/ai-service/pkg/common"
	"github.com/carebridge/ai-service/pkg/domain/interaction"
)

// Tunable constants of the learned signal. Empirically chosen in the scoring
// experiments; keep in sync with the values the historical scores were
// produced with.
const (
	// defaultOverlapRatio is credited to history records that carry no
	// keyword metadata, so unlabeled history still contributes weakly.
	defaultOverlapRatio = 0.2
	// learnedSoftCap normalizes the overlap-weighted mean into [0,1].
	learnedSoftCap = 5.0
	// defaultActionWeight applies to action types missing from the table.
	defaultActionWeight = 0.3
)

// actionTypeWeights cover every action type the interaction log records.
// Positive actions reinforce similar content; rejections and dismissals
// push it down.
var actionTypeWeights = map[string]float64{
	interaction.ActionAccept:          1.0,
	interaction.ActionManualHighlight: 0.8,
	interaction.ActionComment:         0.7,
	interaction.ActionPin:             0.7,
	interaction.ActionEdit:            0.5,
	interaction.ActionView:            0.3,
	interaction.ActionReject:          -0.3,
	interaction.ActionDismiss:         -0.2,
	interaction.ActionUnpin:           0.0,
}

var keywordPattern = regexp.MustCompile(`[a-z]{3,}`)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "was": {}, "for": {}, "that": {}, "with": {},
	"this": {}, "from": {}, "are": {}, "were": {}, "been": {}, "have": {},
	"has": {}, "had": {}, "not": {}, "but": {}, "what": {}, "all": {},
	"can": {}, "her": {}, "his": {}, "one": {}, "our": {}, "out": {},
	"also": {}, "into": {}, "its": {}, "may": {}, "than": {}, "then": {},
	"them": {}, "some": {}, "she": {}, "him": {}, "how": {}, "did": {},
	"who": {}, "will": {},
}

// learnedScore queries recent clinician interactions with highlights and
// scores the content by keyword overlap with what clinicians engaged with.
// Every failure path degrades to the neutral 0.5; this signal must never
// fail a scoring operation.
func (s *Scorer) learnedScore(ctx context.Context, content string) float64 {
	if s.history == nil {
		return 0.5
	}

	keywords := extractKeywords(content)
	if len(keywords) == 0 {
		return 0.5
	}

	ctx, cancel := context.WithTimeout(ctx, s.historyTimeout)
	defer cancel()

	records, err := s.history.Recent(ctx, common.HighlightTargetType, s.historyWindow)
	if err != nil {
		s.logger.WithError(err).Warn("interaction history unavailable, using neutral learned weight")
		return 0.5
	}
	if len(records) == 0 {
		return 0.5
	}

	targetScores := make(map[string]float64)
	targetOverlap := make(map[string]float64)

	for _, record := range records {
		stored := metadataKeywords(record.Metadata)

		var overlapRatio float64
		if len(stored) > 0 {
			overlap := 0
			for keyword := range keywords {
				if _, ok := stored[keyword]; ok {
					overlap++
				}
			}
			if overlap == 0 {
				continue
			}
			overlapRatio = float64(overlap) / float64(len(keywords))
		} else {
			overlapRatio = defaultOverlapRatio
		}

		weight, ok := actionTypeWeights[record.ActionType]
		if !ok {
			weight = defaultActionWeight
		}

		targetScores[record.TargetID] += weight
		if overlapRatio > targetOverlap[record.TargetID] {
			targetOverlap[record.TargetID] = overlapRatio
		}
	}

	if len(targetScores) == 0 {
		return 0.5
	}

	var totalScore, totalWeight float64
	for targetID, score := range targetScores {
		overlap := targetOverlap[targetID]
		totalScore += overlap * score
		totalWeight += overlap
	}

	if totalWeight == 0 {
		return 0.5
	}

	raw := totalScore / totalWeight
	normalized := math.Min(1.0, raw/learnedSoftCap)
	return math.Max(0.0, normalized)
}

// extractKeywords pulls lowercase alphabetic tokens of length >= 3, minus a
// small stoplist of common words.
func extractKeywords(text string) map[string]struct{} {
	words := keywordPattern.FindAllString(strings.ToLower(text), -1)
	keywords := make(map[string]struct{}, len(words))
	for _, word := range words {
		if _, stop := stopwords[word]; stop {
			continue
		}
		keywords[word] = struct{}{}
	}
	return keywords
}

type recordMetadata struct {
	Keywords []string `mapstructure:"keywords"`
}

// metadataKeywords decodes the optional keywords field of a record's
// metadata. It may be stored as a JSON list or as a comma-joined string.
func metadataKeywords(metadata map[string]interface{}) map[string]struct{} {
	set := make(map[string]struct{})
	if metadata == nil {
		return set
	}

	var decoded recordMetadata
	if err := mapstructure.Decode(metadata, &decoded); err == nil && len(decoded.Keywords) > 0 {
		for _, keyword := range decoded.Keywords {
			set[keyword] = struct{}{}
		}
		return set
	}

	if raw, ok := metadata["keywords"].(string); ok && raw != "" {
		for _, keyword := range strings.Split(raw, ",") {
			set[keyword] = struct{}{}
		}
	}
	return set
}
