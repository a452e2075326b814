package redaction

import "regexp"

// Category labels become part of the placeholder wire format (<CATEGORY_N>),
// so they are uppercase snake and must stay stable once released.
const (
	CategoryNRIC          = "SG_NRIC"
	CategoryPhoneNumber   = "PHONE_NUMBER"
	CategoryMedicalRecord = "MEDICAL_RECORD_NUMBER"
	CategoryEmail         = "EMAIL_ADDRESS"
	CategoryCreditCard    = "CREDIT_CARD"
	CategoryIPAddress     = "IP_ADDRESS"
	CategoryURL           = "URL"
	CategoryDateTime      = "DATE_TIME"
)

// Pattern pairs a PHI category with the expression that detects it.
type Pattern struct {
	Category string
	Regexp   *regexp.Regexp
}

// patternRegistry is scanned in order on every redact call. The ordering is
// part of the detection contract: when two matches start at the same offset
// the earlier entry wins, so reordering entries changes redaction output.
var patternRegistry = []Pattern{
	// Singapore NRIC/FIN
	{CategoryNRIC, regexp.MustCompile(`\b[STFGM]\d{7}[A-Z]\b`)},
	// SG mobile
	{CategoryPhoneNumber, regexp.MustCompile(`\b[89]\d{7}\b`)},
	// SG landline
	{CategoryPhoneNumber, regexp.MustCompile(`\b6\d{7}\b`)},
	// SG phone with country prefix
	{CategoryPhoneNumber, regexp.MustCompile(`\b\+65\s?[689]\d{7}\b`)},
	// Medical record number
	{CategoryMedicalRecord, regexp.MustCompile(`(?i)\bMRN[:\s-]?\d{6,10}\b`)},
	// Email address
	{CategoryEmail, regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	// Payment card (basic 13-19 digit)
	{CategoryCreditCard, regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{1,7}\b`)},
	// IPv4 address
	{CategoryIPAddress, regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)},
	// URL
	{CategoryURL, regexp.MustCompile(`(?i)https?://[^\s<>"']+`)},
	// Dates (DD/MM/YYYY, MM/DD/YYYY and ISO)
	{CategoryDateTime, regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)},
	{CategoryDateTime, regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)},
}

// Patterns returns the registry in canonical order.
func Patterns() []Pattern {
	return patternRegistry
}
