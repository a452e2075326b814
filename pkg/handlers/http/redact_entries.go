package http

import (
	"golang.org/x/sync/errgroup"

	"github.com/carebridge/ai-service/pkg/handlers/http/request"
	"github.com/carebridge/ai-service/pkg/infra/llm"
	"github.com/carebridge/ai-service/pkg/redaction"
)

// redactEntries runs the redaction engine over every entry concurrently.
// Index order is preserved so "Entry N" provenance pointers stay aligned
// with the caller's entry list.
func redactEntries(engine *redaction.Engine, entries []request.EntryRequest) ([]llm.Entry, []*redaction.Map) {
	redacted := make([]llm.Entry, len(entries))
	maps := make([]*redaction.Map, len(entries))

	var g errgroup.Group
	for i := range entries {
		i := i
		g.Go(func() error {
			text, m := engine.Redact(entries[i].Content)
			maps[i] = m
			redacted[i] = llm.Entry{
				Content:   text,
				EntryType: entries[i].EntryType,
				CreatedAt: entries[i].CreatedAt,
				EntryID:   entries[i].EntryID,
			}
			return nil
		})
	}
	// Redact cannot fail; the group is only the fan-out mechanism.
	_ = g.Wait()

	return redacted, maps
}

// restoreAll runs text through every map. Each entry owns its own map, so
// restoring a cross-entry synthesis (a summary, a snippet) needs all of them.
func restoreAll(maps []*redaction.Map, text string) string {
	for _, m := range maps {
		text = m.Restore(text)
	}
	return text
}

func releaseAll(engine *redaction.Engine, maps []*redaction.Map) {
	for _, m := range maps {
		engine.Release(m.ID)
	}
}
