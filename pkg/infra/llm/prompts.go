package llm

import (
	"fmt"
	"strings"
)

const (
	MessageTypeShiftHandover  = "shift_handover"
	MessageTypeFamilyUpdate   = "family_update"
	MessageTypeClinicalReview = "clinical_review"
)

// The model is instructed to echo redaction placeholders (<CATEGORY_N>)
// verbatim; they are part of the wire contract and are resolved after the
// response comes back.

const summarySystemPrompt = `You are a clinical summarization assistant for home healthcare professionals. ` +
	`You receive de-identified care notes and produce structured summaries. ` +
	`Placeholders like <SG_NRIC_1> must be preserved verbatim in your output. ` +
	`Always respond with valid JSON matching the schema below. ` +
	`Be concise, clinically precise, and highlight actionable information.

Output JSON schema:
{
  "highlights": ["string - key clinical observation"],
  "changes_since_last_visit": ["string - notable change"],
  "care_plan_score": <integer 0-100>,
  "care_plan_items": [
    {
      "item": "string - action item",
      "priority": "high | medium | low",
      "status": "new | ongoing | resolved"
    }
  ],
  "patient_summary": "string - 2-4 sentence prose summary"
}`

const highlightsSystemPrompt = `You are a clinical risk assessment assistant. Analyze care notes and extract ` +
	`highlights that require clinical attention. Focus on: medication changes, ` +
	`vital sign anomalies, new symptoms, falls, wounds, behavioral changes, ` +
	`and care plan deviations. ` +
	`Placeholders like <SG_NRIC_1> must be preserved verbatim in your output.

Respond with valid JSON matching this schema:
{
  "highlights": [
    {
      "content_snippet": "string - relevant excerpt from the note",
      "risk_reason": "string - clinical rationale for flagging",
      "risk_level": "critical | high | medium | low",
      "importance_score": <float 0.0-1.0>,
      "provenance_pointer": "string - Entry N reference"
    }
  ]
}`

var messageTypeInstructions = map[string]string{
	MessageTypeShiftHandover: "Write a concise shift handover summary suitable for the incoming " +
		"care professional. Prioritize immediate needs, pending tasks, and " +
		"observations from the current shift.",
	MessageTypeFamilyUpdate: "You are a clinician writing directly to the patient. Write a warm, " +
		"compassionate message addressed to the patient (use 'you' and 'your'). " +
		"Use simple, jargon-free language. Focus on their progress, what they " +
		"should do next (medications, diet, lifestyle), and encouragement. " +
		"Do NOT refer to the patient in third person or as 'your loved one'. " +
		"Example tone: 'Your blood pressure is looking better! Please continue...'",
	MessageTypeClinicalReview: "Write a detailed clinical summary suitable for a physician review. " +
		"Include vital trends, medication adherence, symptom progression, " +
		"and any concerns requiring medical intervention.",
}

func formatEntries(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		entryType := e.EntryType
		if entryType == "" {
			entryType = "note"
		}
		createdAt := e.CreatedAt
		if createdAt == "" {
			createdAt = "unknown date"
		}
		parts = append(parts, fmt.Sprintf("[%s | %s]\n%s", entryType, createdAt, e.Content))
	}
	return strings.Join(parts, "\n\n")
}

func formatIndexedEntries(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for i, e := range entries {
		entryType := e.EntryType
		if entryType == "" {
			entryType = "note"
		}
		createdAt := e.CreatedAt
		if createdAt == "" {
			createdAt = "unknown"
		}
		parts = append(parts, fmt.Sprintf("[Entry %d | %s | %s]\n%s", i+1, entryType, createdAt, e.Content))
	}
	return strings.Join(parts, "\n\n")
}
