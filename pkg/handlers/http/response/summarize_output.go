package response

import "github.com/carebridge/ai-service/pkg/infra/llm"

type SummarizeOutput struct {
	CareNoteID            string             `json:"care_note_id,omitempty"`
	Highlights            []string           `json:"highlights"`
	ChangesSinceLastVisit []string           `json:"changes_since_last_visit"`
	CarePlanScore         int                `json:"care_plan_score"`
	CarePlanItems         []llm.CarePlanItem `json:"care_plan_items"`
	PatientSummary        string             `json:"patient_summary"`
	GeneratedAt           string             `json:"generated_at"`
}
