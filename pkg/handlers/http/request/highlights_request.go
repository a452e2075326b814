package request

type HighlightsRequest struct {
	Entries   []EntryRequest `json:"entries"`
	PatientID string         `json:"patient_id"`
}

func (r *HighlightsRequest) Validate() error {
	return validateEntries(r.Entries)
}
