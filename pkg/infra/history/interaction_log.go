package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/carebridge/ai-service/pkg/domain/interaction"
)

// interactionLogRow mirrors the interaction_log table written by the main
// platform whenever a clinician acts on a highlight.
type interactionLogRow struct {
	ID             string    `gorm:"column:id"`
	ActionType     string    `gorm:"column:action_type"`
	TargetType     string    `gorm:"column:target_type"`
	TargetID       string    `gorm:"column:target_id"`
	TargetMetadata []byte    `gorm:"column:target_metadata"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (interactionLogRow) TableName() string {
	return "interaction_log"
}

type interactionLogReader struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewInteractionLogReader returns a read-only interaction.Reader backed by
// the interaction_log table.
func NewInteractionLogReader(db *gorm.DB, logger *logrus.Logger) interaction.Reader {
	return &interactionLogReader{
		db:     db,
		logger: logger,
	}
}

func (r *interactionLogReader) Recent(ctx context.Context, targetType string, limit int) ([]interaction.Record, error) {
	var rows []interactionLogRow
	err := r.db.WithContext(ctx).
		Where("target_type = ?", targetType).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query interaction_log: %w", err)
	}

	records := make([]interaction.Record, 0, len(rows))
	for _, row := range rows {
		record := interaction.Record{
			ActionType: row.ActionType,
			TargetType: row.TargetType,
			TargetID:   row.TargetID,
		}
		if len(row.TargetMetadata) > 0 {
			var metadata map[string]interface{}
			if err := json.Unmarshal(row.TargetMetadata, &metadata); err != nil {
				// Malformed metadata only weakens the learned signal for
				// this record; keep the record itself.
				r.logger.WithError(err).WithField("target_id", row.TargetID).
					Debug("skipping malformed interaction metadata")
			} else {
				record.Metadata = metadata
			}
		}
		records = append(records, record)
	}
	return records, nil
}
