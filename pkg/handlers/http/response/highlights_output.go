package response

import "github.com/carebridge/ai-service/pkg/domain/highlight"

type HighlightsOutput struct {
	Highlights  []*highlight.Highlight `json:"highlights"`
	Count       int                    `json:"count"`
	RiskSummary map[string]int         `json:"risk_summary"`
}
