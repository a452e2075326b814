package request

import (
	"strings"

	domain "github.com/carebridge/ai-service/pkg/domain/errors"
)

type RedactRequest struct {
	Text       string `json:"text"`
	CleanupMap *bool  `json:"cleanup_map"`
}

// Cleanup defaults to true: callers who want to de-redact later must opt in
// to keeping the map alive.
func (r *RedactRequest) Cleanup() bool {
	return r.CleanupMap == nil || *r.CleanupMap
}

func (r *RedactRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return domain.NewValidationError("text must not be empty")
	}
	return nil
}
