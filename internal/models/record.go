package models

import (
	"time"

	"github.com/clubops/membership-backend/internal/spreadsheet"
)

// PaymentRecord is one observed payment after normalization. String
// fields are trimmed, with "" standing in for a missing value; dates are
// calendar dates at UTC midnight. Records are immutable after
// normalization except for the duplicate-exclusion flags.
type PaymentRecord struct {
	PayerName           string           `json:"payerName,omitempty"`       // guardian / billing name
	PlayerName          string           `json:"playerName,omitempty"`      // beneficiary; may equal payer
	PaymentAmount       float64          `json:"paymentAmount"`             // 0 when absent or unparseable
	PaymentDate         *time.Time       `json:"paymentDate,omitempty"`
	PlanName            string           `json:"planName,omitempty"`        // membership plan, free text as found
	TicketDetails       string           `json:"ticketDetails,omitempty"`
	RecurringStatus     string           `json:"recurringStatus,omitempty"` // blank = one-time annual fee
	DateOfBirth         *time.Time       `json:"dateOfBirth,omitempty"`
	IsComplete          bool             `json:"isComplete"`
	IsExcludedDuplicate bool             `json:"isExcludedDuplicate,omitempty"`
	Raw                 spreadsheet.Row  `json:"-"` // source row, retained for diagnostics
}

// Identity returns the member identity key for grouping: the player name
// when present, otherwise the payer name. Two records with the same key
// belong to the same member regardless of other field differences.
func (r *PaymentRecord) Identity() string {
	if r.PlayerName != "" {
		return r.PlayerName
	}
	return r.PayerName
}
