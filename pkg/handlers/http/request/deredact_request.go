package request

import (
	"strings"

	domain "github.com/carebridge/ai-service/pkg/domain/errors"
)

type DeRedactRequest struct {
	Text           string `json:"text"`
	RedactionMapID string `json:"redaction_map_id"`
}

func (r *DeRedactRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return domain.NewValidationError("text must not be empty")
	}
	if strings.TrimSpace(r.RedactionMapID) == "" {
		return domain.NewValidationError("redaction_map_id must not be empty")
	}
	return nil
}
