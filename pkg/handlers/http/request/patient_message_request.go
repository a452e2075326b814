package request

type PatientMessageRequest struct {
	CareNoteID  string         `json:"care_note_id"`
	Entries     []EntryRequest `json:"entries"`
	PatientName string         `json:"patient_name"`
	AuthorRole  string         `json:"author_role"`
}

func (r *PatientMessageRequest) Validate() error {
	return validateEntries(r.Entries)
}
