package interaction

import "context"

// Action types recorded in the interaction log.
const (
	ActionAccept          = "accept"
	ActionManualHighlight = "manual_highlight"
	ActionComment         = "comment"
	ActionPin             = "pin"
	ActionEdit            = "edit"
	ActionView            = "view"
	ActionReject          = "reject"
	ActionDismiss         = "dismiss"
	ActionUnpin           = "unpin"
)

// Record is one historical user interaction with a target entity.
type Record struct {
	ActionType string
	TargetType string
	TargetID   string
	Metadata   map[string]interface{}
}

//go:generate mockery --name=Reader --dir=. --output=./mocks --filename=interaction_reader_mock.go --case=underscore --with-expecter

// Reader provides read-only access to recent interaction history. The
// learned-weight scorer is its only consumer; implementations must be safe
// for concurrent use.
type Reader interface {
	Recent(ctx context.Context, targetType string, limit int) ([]Record, error)
}
