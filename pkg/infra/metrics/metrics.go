package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RedactedEntities = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aiservice_redacted_entities_total",
			Help: "Total number of PHI entities redacted, by category",
		},
		[]string{"category"},
	)

	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aiservice_llm_requests_total",
			Help: "Total number of LLM requests, by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	ScoredHighlights = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aiservice_scored_highlights_total",
			Help: "Total number of highlights run through importance scoring",
		},
	)
)
