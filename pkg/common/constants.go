package common

import "time"

const (
	// HighlightTargetType is the interaction_log target kind consulted by the
	// learned-weight scorer.
	HighlightTargetType = "highlight"

	// InteractionWindow bounds how many recent interaction records are pulled
	// per learned-weight lookup.
	InteractionWindow = 200

	HistoryQueryTimeout = 2 * time.Second

	ProcessTimeHeader = "X-Process-Time"
	RequestIDHeader   = "X-Request-Id"
)
