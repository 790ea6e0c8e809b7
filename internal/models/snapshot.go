package models

import (
	"time"
)

// MemberSnapshot is the reconciled view of one member. Snapshots are
// recomputed wholesale on every import, never patched in place, and own a
// read-only slice of the session's payment records.
type MemberSnapshot struct {
	MemberName        string           `json:"memberName"`
	GuardianName      string           `json:"guardianName"`
	DateOfBirth       *time.Time       `json:"dateOfBirth,omitempty"`
	PlanName          string           `json:"planName"`
	TicketDetails     string           `json:"ticketDetails,omitempty"`
	LastPaymentDate   time.Time        `json:"lastPaymentDate"`
	LastPaymentAmount float64          `json:"lastPaymentAmount"`
	ExpiryDate        *time.Time       `json:"expiryDate,omitempty"`
	Status            MembershipStatus `json:"status"`
	DaysUntilExpiry   int              `json:"daysUntilExpiry"` // 0 when no expiry
	TotalPayments     int              `json:"totalPayments"`
	TotalAmountPaid   float64          `json:"totalAmountPaid"`
	PaymentHistory    []*PaymentRecord `json:"paymentHistory"` // oldest first
	DuplicateGroups   []DuplicateGroup `json:"duplicateGroups,omitempty"`
	HasUnknownPlan    bool             `json:"hasUnknownPlan"`
}
