package importance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carebridge/ai-service/pkg/domain/interaction"
)

func learnedTestScorer(reader interaction.Reader) *Scorer {
	return fixedScorer(reader, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
}

func TestLearnedScoreNeutralCases(t *testing.T) {
	tests := []struct {
		name    string
		scorer  *Scorer
		content string
	}{
		{"nil reader", learnedTestScorer(nil), "patient wound infection"},
		{"no extractable keywords", learnedTestScorer(&fakeReader{}), "a b c 12"},
		{"reader error", learnedTestScorer(&fakeReader{err: assert.AnError}), "patient wound infection"},
		{"empty history", learnedTestScorer(&fakeReader{}), "patient wound infection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.5, tt.scorer.learnedScore(context.Background(), tt.content))
		})
	}
}

func TestLearnedScoreOverlapWeighting(t *testing.T) {
	reader := &fakeReader{records: []interaction.Record{
		{
			ActionType: interaction.ActionAccept,
			TargetID:   "h1",
			Metadata:   map[string]interface{}{"keywords": []interface{}{"wound", "infection"}},
		},
	}}
	scorer := learnedTestScorer(reader)

	// overlap 2/3, single target with weight 1.0: mean 1.0, soft cap /5.
	got := scorer.learnedScore(context.Background(), "patient wound infection")
	assert.InDelta(t, 0.2, got, 1e-9)
}

func TestLearnedScoreSkipsDisjointRecords(t *testing.T) {
	reader := &fakeReader{records: []interaction.Record{
		{
			ActionType: interaction.ActionAccept,
			TargetID:   "h1",
			Metadata:   map[string]interface{}{"keywords": []interface{}{"cardiac", "arrhythmia"}},
		},
	}}
	scorer := learnedTestScorer(reader)

	// Stored keywords exist but share nothing with the content: the record is
	// skipped rather than credited the default overlap.
	got := scorer.learnedScore(context.Background(), "patient wound infection")
	assert.Equal(t, 0.5, got)
}

func TestLearnedScoreDefaultOverlapForUnlabeledRecords(t *testing.T) {
	reader := &fakeReader{records: []interaction.Record{
		{ActionType: interaction.ActionAccept, TargetID: "h1"},
	}}
	scorer := learnedTestScorer(reader)

	// No metadata: default overlap 0.2 with weight 1.0 gives mean 1.0 before
	// the soft cap.
	got := scorer.learnedScore(context.Background(), "patient wound infection")
	assert.InDelta(t, 0.2, got, 1e-9)
}

func TestLearnedScoreNegativeActionsClampToZero(t *testing.T) {
	reader := &fakeReader{records: []interaction.Record{
		{
			ActionType: interaction.ActionReject,
			TargetID:   "h1",
			Metadata:   map[string]interface{}{"keywords": []interface{}{"wound"}},
		},
	}}
	scorer := learnedTestScorer(reader)

	got := scorer.learnedScore(context.Background(), "patient wound infection")
	assert.Equal(t, 0.0, got)
}

func TestLearnedScoreSoftCap(t *testing.T) {
	var records []interaction.Record
	for i := 0; i < 6; i++ {
		records = append(records, interaction.Record{
			ActionType: interaction.ActionAccept,
			TargetID:   "h1",
			Metadata:   map[string]interface{}{"keywords": []interface{}{"patient", "wound", "infection"}},
		})
	}
	scorer := learnedTestScorer(&fakeReader{records: records})

	// Six accepts on one target sum to 6.0; the cap holds the result at 1.0.
	got := scorer.learnedScore(context.Background(), "patient wound infection")
	assert.Equal(t, 1.0, got)
}

func TestLearnedScoreUnknownActionUsesDefaultWeight(t *testing.T) {
	reader := &fakeReader{records: []interaction.Record{
		{
			ActionType: "wave",
			TargetID:   "h1",
			Metadata:   map[string]interface{}{"keywords": []interface{}{"wound"}},
		},
	}}
	scorer := learnedTestScorer(reader)

	got := scorer.learnedScore(context.Background(), "patient wound infection")
	assert.InDelta(t, defaultActionWeight/learnedSoftCap, got, 1e-9)
}

func TestActionTypeWeightsCoverAllRecordedActions(t *testing.T) {
	actions := []string{
		interaction.ActionAccept,
		interaction.ActionManualHighlight,
		interaction.ActionComment,
		interaction.ActionPin,
		interaction.ActionEdit,
		interaction.ActionView,
		interaction.ActionReject,
		interaction.ActionDismiss,
		interaction.ActionUnpin,
	}

	assert.Len(t, actionTypeWeights, len(actions))
	for _, action := range actions {
		assert.Contains(t, actionTypeWeights, action)
	}
}

func TestExtractKeywords(t *testing.T) {
	keywords := extractKeywords("The patient WAS stable; BP 120/80, wound dressing changed")

	assert.Contains(t, keywords, "patient")
	assert.Contains(t, keywords, "wound")
	assert.Contains(t, keywords, "dressing")
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "was")
	assert.NotContains(t, keywords, "bp")
}

func TestMetadataKeywords(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]interface{}
		expected []string
	}{
		{"nil metadata", nil, nil},
		{"list form", map[string]interface{}{"keywords": []interface{}{"wound", "fall"}}, []string{"wound", "fall"}},
		{"comma string form", map[string]interface{}{"keywords": "wound,fall"}, []string{"wound", "fall"}},
		{"missing key", map[string]interface{}{"source": "note"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := metadataKeywords(tt.metadata)
			assert.Len(t, set, len(tt.expected))
			for _, keyword := range tt.expected {
				assert.Contains(t, set, keyword)
			}
		})
	}
}
