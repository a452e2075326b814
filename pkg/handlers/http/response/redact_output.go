package response

import "sort"

type EntityTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type RedactOutput struct {
	RedactedText   string            `json:"redacted_text"`
	EntityCount    int               `json:"entity_count"`
	EntitiesByType []EntityTypeCount `json:"entities_by_type"`
	RedactionMapID string            `json:"redaction_map_id,omitempty"`
}

// SortedEntityCounts orders category counts highest first, ties broken
// alphabetically so the output is stable.
func SortedEntityCounts(counts map[string]int) []EntityTypeCount {
	out := make([]EntityTypeCount, 0, len(counts))
	for category, count := range counts {
		out = append(out, EntityTypeCount{Type: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}
