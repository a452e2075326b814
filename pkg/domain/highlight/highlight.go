package highlight

// Risk levels, ordered critical > high > medium > low. Unknown labels are
// treated as medium by the scorer.
const (
	RiskCritical = "critical"
	RiskHigh     = "high"
	RiskMedium   = "medium"
	RiskLow      = "low"
)

// Highlight is a clinically significant excerpt extracted by the LLM from
// redacted care notes and enriched with an importance score. Text fields may
// contain placeholders until the caller de-redacts them.
type Highlight struct {
	ContentSnippet    string  `json:"content_snippet"`
	RiskReason        string  `json:"risk_reason"`
	RiskLevel         string  `json:"risk_level"`
	ImportanceScore   float64 `json:"importance_score"`
	ProvenancePointer string  `json:"provenance_pointer"`

	// CreatedAt is copied from the source entry matched via the provenance
	// pointer, for recency scoring. Empty when no entry matched.
	CreatedAt string `json:"created_at,omitempty"`
}
