package redaction

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/carebridge/ai-service/pkg/domain/errors"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestEngineRedactRoundTrip(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store, testLogger())

	original := "Call John at 91234567, NRIC S1234567A"
	redacted, m := engine.Redact(original)

	assert.Equal(t, "Call John at <PHONE_NUMBER_1>, NRIC <SG_NRIC_1>", redacted)
	assert.Equal(t, 2, m.TotalEntities())
	assert.Equal(t, map[string]int{
		CategoryPhoneNumber: 1,
		CategoryNRIC:        1,
	}, m.CategoryCounts())

	restored, err := engine.DeRedact(redacted, m.ID)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestEngineRedactOrdinalsFollowReadingOrder(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store, testLogger())

	redacted, m := engine.Redact("Call 91234567 or 81234567 and 91234567")

	assert.Equal(t, "Call <PHONE_NUMBER_1> or <PHONE_NUMBER_2> and <PHONE_NUMBER_1>", redacted)
	assert.Equal(t, 2, m.TotalEntities())
}

func TestEngineRedactDetectsCommonCategories(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store, testLogger())

	tests := []struct {
		name     string
		text     string
		category string
	}{
		{"nric", "patient S1234567A admitted", CategoryNRIC},
		{"mobile", "contact 91234567 please", CategoryPhoneNumber},
		{"landline", "office 61234567 line", CategoryPhoneNumber},
		{"mrn", "chart MRN:1234567 updated", CategoryMedicalRecord},
		{"email", "send to jane.doe@example.com today", CategoryEmail},
		{"card", "billed to 4111 1111 1111 1111 yesterday", CategoryCreditCard},
		{"ipv4", "accessed from 192.168.1.10 remotely", CategoryIPAddress},
		{"url", "portal https://example.com/visit today", CategoryURL},
		{"date slash", "seen on 01/02/2024 morning", CategoryDateTime},
		{"date iso", "seen on 2024-02-01 morning", CategoryDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redacted, m := engine.Redact(tt.text)
			assert.NotEqual(t, tt.text, redacted)
			counts := m.CategoryCounts()
			assert.Equal(t, 1, counts[tt.category], "expected one %s entity", tt.category)
		})
	}
}

func TestEngineRedactEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			engine := NewEngine(store, testLogger())

			redacted, m := engine.Redact(tt.text)

			assert.Equal(t, tt.text, redacted)
			assert.Equal(t, 0, m.TotalEntities())
			// The empty map is still registered for a uniform lifecycle.
			_, ok := store.Get(m.ID)
			assert.True(t, ok)
		})
	}
}

func TestEngineRedactOverlappingSpans(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store, testLogger())

	// The ISO date inside the URL overlaps the URL match; the later-starting
	// span wins and the URL is left partially intact.
	redacted, m := engine.Redact("see https://portal.example.com/visits/2024-05-01 for details")

	assert.Equal(t, "see https://portal.example.com/visits/<DATE_TIME_1> for details", redacted)
	assert.Equal(t, 1, m.TotalEntities())

	restored, err := engine.DeRedact(redacted, m.ID)
	require.NoError(t, err)
	assert.Contains(t, restored, "2024-05-01")
}

func TestEngineDeRedactUnknownMap(t *testing.T) {
	engine := NewEngine(NewStore(), testLogger())

	_, err := engine.DeRedact("text with <SG_NRIC_1>", "does-not-exist")
	require.Error(t, err)
	assert.True(t, domain.IsMapNotFound(err))
}

func TestEngineReleaseIsIdempotent(t *testing.T) {
	store := NewStore()
	engine := NewEngine(store, testLogger())

	_, m := engine.Redact("NRIC S1234567A")

	assert.True(t, engine.Release(m.ID))
	assert.False(t, engine.Release(m.ID))
	assert.Equal(t, 0, store.Len())

	_, err := engine.DeRedact("<SG_NRIC_1>", m.ID)
	assert.Error(t, err)
}
