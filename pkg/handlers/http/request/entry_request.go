package request

import (
	"strings"

	domain "github.com/carebridge/ai-service/pkg/domain/errors"
)

// EntryRequest is one care note entry as submitted by the platform. CreatedAt
// stays a string on the wire; the scorer tolerates absent or malformed
// timestamps.
type EntryRequest struct {
	Content   string `json:"content"`
	EntryType string `json:"entry_type"`
	CreatedAt string `json:"created_at"`
	EntryID   string `json:"entry_id"`
}

func validateEntries(entries []EntryRequest) error {
	if len(entries) == 0 {
		return domain.NewValidationError("entries must contain at least one item")
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Content) == "" {
			return domain.NewValidationError("entry content must not be empty")
		}
	}
	return nil
}
