package reconcile

import "strings"

// Field enumerates the canonical semantic fields a source column can map
// to.
type Field int

const (
	FieldPayerName Field = iota
	FieldPlayerName
	FieldPaymentAmount
	FieldPaymentDate
	FieldPlanName
	FieldTicketDetails
	FieldRecurringStatus
	FieldDateOfBirth

	numFields
)

// fieldPatterns lists the candidate header phrases per field, most
// specific first. Order is part of the mapping contract: the first
// pattern that matches any header wins, so reordering changes which
// column is picked for ambiguous sheets.
var fieldPatterns = [numFields][]string{
	FieldPayerName:       {"payer name", "name", "donor name", "payer", "donor", "guardian name", "guardian"},
	FieldPlayerName:      {"player name", "student name", "beneficiary", "player", "student", "child name"},
	FieldPaymentAmount:   {"amount", "payment amount", "total", "price", "payment"},
	FieldPaymentDate:     {"date", "payment date", "transaction date", "created at", "timestamp"},
	FieldPlanName:        {"campaign", "program", "plan", "item", "membership plan", "membership", "product"},
	FieldTicketDetails:   {"details", "ticket details", "description", "notes", "ticket", "info"},
	FieldRecurringStatus: {"recurring status", "recurring", "subscription status", "recurrence"},
	FieldDateOfBirth:     {"date of birth", "dob", "birth date", "birthdate", "birthday"},
}

// ColumnMapping maps each canonical field to at most one source header.
type ColumnMapping struct {
	headers [numFields]string
	mapped  [numFields]bool
}

// Header returns the source header mapped to the field, if any.
func (m ColumnMapping) Header(f Field) (string, bool) {
	return m.headers[f], m.mapped[f]
}

// MapColumns resolves the header row against the pattern table. Matching
// is a permissive substring check in both directions over lower-cased,
// trimmed headers; within a field the first pattern with any matching
// header wins, and within a pattern the first matching header wins.
func MapColumns(headers []string) ColumnMapping {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var mapping ColumnMapping
	for f := Field(0); f < numFields; f++ {
		if header, ok := findMatchingHeader(normalized, headers, fieldPatterns[f]); ok {
			mapping.headers[f] = header
			mapping.mapped[f] = true
		}
	}
	return mapping
}

func findMatchingHeader(normalized, original []string, patterns []string) (string, bool) {
	for _, pattern := range patterns {
		for i, h := range normalized {
			if strings.Contains(h, pattern) || strings.Contains(pattern, h) {
				return original[i], true
			}
		}
	}
	return "", false
}
