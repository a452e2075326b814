package redaction

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Map is the server-side bidirectional mapping between original PHI values
// and their placeholders for a single redact operation. It is never exposed
// to clients; only its ID travels over the wire.
type Map struct {
	ID string

	mu             sync.RWMutex
	forward        map[string]string // original -> placeholder
	reverse        map[string]string // placeholder -> original
	categoryCounts map[string]int
	placeholders   []string // insertion order
}

func NewMap() *Map {
	return &Map{
		ID:             strings.ReplaceAll(uuid.NewString(), "-", ""),
		forward:        make(map[string]string),
		reverse:        make(map[string]string),
		categoryCounts: make(map[string]int),
	}
}

// Add registers an original value under a category and returns its
// placeholder. A value already registered keeps its existing placeholder
// regardless of category.
func (m *Map) Add(original, category string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if placeholder, ok := m.forward[original]; ok {
		return placeholder
	}

	count := m.categoryCounts[category] + 1
	m.categoryCounts[category] = count
	placeholder := "<" + category + "_" + strconv.Itoa(count) + ">"

	m.forward[original] = placeholder
	m.reverse[placeholder] = original
	m.placeholders = append(m.placeholders, placeholder)
	return placeholder
}

// Restore replaces every placeholder occurrence in text with its original
// value. Placeholders are matched as literal substrings, longest first, so
// <PHONE_NUMBER_1> can never clobber part of <PHONE_NUMBER_10>.
func (m *Map) Restore(text string) string {
	m.mu.RLock()
	ordered := make([]string, len(m.placeholders))
	copy(ordered, m.placeholders)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	result := text
	for _, placeholder := range ordered {
		result = strings.ReplaceAll(result, placeholder, m.reverse[placeholder])
	}
	m.mu.RUnlock()
	return result
}

// TotalEntities reports the number of distinct original values registered.
func (m *Map) TotalEntities() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.forward)
}

// CategoryCounts returns a copy of the per-category distinct value counts.
func (m *Map) CategoryCounts() map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int, len(m.categoryCounts))
	for category, count := range m.categoryCounts {
		counts[category] = count
	}
	return counts
}

// Placeholder looks up the placeholder issued for an original value.
func (m *Map) Placeholder(original string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	placeholder, ok := m.forward[original]
	return placeholder, ok
}

// Original looks up the value a placeholder stands for.
func (m *Map) Original(placeholder string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	original, ok := m.reverse[placeholder]
	return original, ok
}
