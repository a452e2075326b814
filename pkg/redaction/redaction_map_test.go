package redaction

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAddAssignsPerCategoryOrdinals(t *testing.T) {
	m := NewMap()

	assert.Equal(t, "<PHONE_NUMBER_1>", m.Add("91234567", CategoryPhoneNumber))
	assert.Equal(t, "<PHONE_NUMBER_2>", m.Add("81234567", CategoryPhoneNumber))
	assert.Equal(t, "<SG_NRIC_1>", m.Add("S1234567A", CategoryNRIC))

	assert.Equal(t, 3, m.TotalEntities())
	assert.Equal(t, map[string]int{
		CategoryPhoneNumber: 2,
		CategoryNRIC:        1,
	}, m.CategoryCounts())
}

func TestMapAddReusesPlaceholderForKnownValue(t *testing.T) {
	m := NewMap()

	first := m.Add("91234567", CategoryPhoneNumber)
	second := m.Add("91234567", CategoryPhoneNumber)
	assert.Equal(t, first, second)

	// A repeated value keeps its placeholder even under another category.
	third := m.Add("91234567", CategoryCreditCard)
	assert.Equal(t, first, third)

	assert.Equal(t, 1, m.TotalEntities())
	assert.Equal(t, map[string]int{CategoryPhoneNumber: 1}, m.CategoryCounts())
}

func TestMapRestoreReplacesLongestPlaceholdersFirst(t *testing.T) {
	m := NewMap()
	for i := 0; i < 10; i++ {
		m.Add(fmt.Sprintf("9000000%d", i), CategoryPhoneNumber)
	}

	p10, ok := m.Placeholder("90000009")
	require.True(t, ok)
	require.Equal(t, "<PHONE_NUMBER_10>", p10)

	restored := m.Restore("a <PHONE_NUMBER_10> b <PHONE_NUMBER_1> c")
	assert.Equal(t, "a 90000009 b 90000000 c", restored)
}

func TestMapLookups(t *testing.T) {
	m := NewMap()
	placeholder := m.Add("jane@example.com", CategoryEmail)

	got, ok := m.Original(placeholder)
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", got)

	_, ok = m.Original("<EMAIL_ADDRESS_99>")
	assert.False(t, ok)

	_, ok = m.Placeholder("unknown@example.com")
	assert.False(t, ok)
}

func TestMapCategoryCountsReturnsCopy(t *testing.T) {
	m := NewMap()
	m.Add("91234567", CategoryPhoneNumber)

	counts := m.CategoryCounts()
	counts[CategoryPhoneNumber] = 99

	assert.Equal(t, map[string]int{CategoryPhoneNumber: 1}, m.CategoryCounts())
}
