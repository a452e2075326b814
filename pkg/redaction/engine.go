package redaction

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	domain "github.com/carebridge/ai-service/pkg/domain/errors"
	"github.com/carebridge/ai-service/pkg/infra/metrics"
)

// span is a detected PHI occurrence, with offsets into the original text.
type span struct {
	start    int
	end      int
	category string
	text     string
}

// Engine detects PHI spans, replaces them with deterministic placeholders
// and restores originals from a previously stored map.
type Engine struct {
	registry []Pattern
	store    *Store
	logger   *logrus.Logger
}

func NewEngine(store *Store, logger *logrus.Logger) *Engine {
	return &Engine{
		registry: Patterns(),
		store:    store,
		logger:   logger,
	}
}

// Redact replaces every detected PHI span in text with a placeholder and
// returns the redacted text together with the owning map. The map is placed
// in the store before return; the caller must Release it when done.
// Empty or whitespace-only input is returned unchanged with an empty map.
func (e *Engine) Redact(text string) (string, *Map) {
	m := NewMap()
	e.store.Put(m)

	if strings.TrimSpace(text) == "" {
		return text, m
	}

	var spans []span
	for _, pattern := range e.registry {
		for _, loc := range pattern.Regexp.FindAllStringIndex(text, -1) {
			spans = append(spans, span{
				start:    loc[0],
				end:      loc[1],
				category: pattern.Category,
				text:     text[loc[0]:loc[1]],
			})
		}
	}

	if len(spans) == 0 {
		return text, m
	}

	kept := resolveOverlaps(spans)

	// Assign placeholders in reading order so the first occurrence of a
	// category gets ordinal 1.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].start < kept[j].start
	})
	placeholders := make([]string, len(kept))
	for i, s := range kept {
		placeholders[i] = m.Add(s.text, s.category)
	}

	// Replace from the highest start offset down so earlier replacements
	// never shift the offsets of later ones.
	redacted := text
	for i := len(kept) - 1; i >= 0; i-- {
		s := kept[i]
		redacted = redacted[:s.start] + placeholders[i] + redacted[s.end:]
	}

	counts := m.CategoryCounts()
	for category, count := range counts {
		metrics.RedactedEntities.WithLabelValues(category).Add(float64(count))
	}

	e.logger.WithFields(logrus.Fields{
		"map_id":      m.ID,
		"entities":    m.TotalEntities(),
		"categories":  len(counts),
		"text_length": len(text),
	}).Info("redacted text")

	return redacted, m
}

// resolveOverlaps orders candidate spans by start offset descending and
// greedily keeps every span that does not intersect an already-kept one.
// For spans sharing a start offset the first match enumerated by the
// registry wins; the registry order is fixed, so the result is
// deterministic.
func resolveOverlaps(spans []span) []span {
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start > spans[j].start
	})

	kept := make([]span, 0, len(spans))
	for _, candidate := range spans {
		overlaps := false
		for _, existing := range kept {
			if candidate.start < existing.end && candidate.end > existing.start {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, candidate)
		}
	}
	return kept
}

// DeRedact restores original PHI values in text using the map identified by
// mapID. An unknown ID is a caller-lifecycle bug and is surfaced as a
// not-found error, never by returning the input with placeholders intact.
func (e *Engine) DeRedact(text, mapID string) (string, error) {
	m, ok := e.store.Get(mapID)
	if !ok {
		return "", domain.NewMapNotFoundError(mapID)
	}
	return m.Restore(text), nil
}

// Release drops the map from the store and reports whether it was present.
// Releasing an unknown or already-released ID is safe.
func (e *Engine) Release(mapID string) bool {
	return e.store.Delete(mapID)
}
