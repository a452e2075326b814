package request

type SummarizeRequest struct {
	CareNoteID     string         `json:"care_note_id"`
	Entries        []EntryRequest `json:"entries"`
	PatientContext string         `json:"patient_context"`
}

func (r *SummarizeRequest) Validate() error {
	return validateEntries(r.Entries)
}
