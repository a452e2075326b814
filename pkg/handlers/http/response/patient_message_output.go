package response

type PatientMessageOutput struct {
	CareNoteID  string   `json:"care_note_id,omitempty"`
	MessageType string   `json:"message_type"`
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"key_points"`
	Recipient   string   `json:"recipient,omitempty"`
	AuthorRole  string   `json:"author_role,omitempty"`
	GeneratedAt string   `json:"generated_at"`
}
