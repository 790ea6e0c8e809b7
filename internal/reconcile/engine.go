package reconcile

import (
	"sort"
	"time"

	"github.com/clubops/membership-backend/internal/models"
)

// expiringSoonWindowDays is the inclusive number of days before expiry
// during which a membership counts as expiring soon.
const expiringSoonWindowDays = 7

// Reconcile derives one MemberSnapshot per member from the complete
// records in the input. Incomplete records are ignored; an empty complete
// set yields an empty result. Snapshots come back sorted by member name,
// and per-member payment ordering is deterministic: ties on payment date
// keep their input order.
func Reconcile(records []*models.PaymentRecord, plans PlanLookup, today time.Time) []*models.MemberSnapshot {
	today = Midnight(today)

	var keys []string
	groups := make(map[string][]*models.PaymentRecord)
	for _, record := range records {
		if !record.IsComplete {
			continue
		}
		key := record.Identity()
		if key == "" {
			continue
		}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], record)
	}

	snapshots := make([]*models.MemberSnapshot, 0, len(keys))
	for _, key := range keys {
		snapshots = append(snapshots, buildSnapshot(key, groups[key], plans, today))
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].MemberName < snapshots[j].MemberName
	})
	return snapshots
}

// buildSnapshot reconciles one member's payment group. payments is never
// empty: the group was constructed from at least one record.
func buildSnapshot(key string, payments []*models.PaymentRecord, plans PlanLookup, today time.Time) *models.MemberSnapshot {
	// Most recent payment first; stable so equal dates keep input order.
	recentFirst := make([]*models.PaymentRecord, len(payments))
	copy(recentFirst, payments)
	sort.SliceStable(recentFirst, func(i, j int) bool {
		return recentFirst[i].PaymentDate.After(*recentFirst[j].PaymentDate)
	})
	anchor := recentFirst[0]

	memberName := key
	guardianName := key
	if anchor.PlayerName != "" {
		memberName = anchor.PlayerName
		guardianName = anchor.PayerName
	}

	_, planKnown := plans.Lookup(anchor.PlanName)

	expiry := ExpiryDate(anchor, plans)
	status := DetermineStatus(expiry, anchor.RecurringStatus, today)

	daysUntilExpiry := 0
	if expiry != nil {
		daysUntilExpiry = daysBetween(today, *expiry)
	}

	var totalPaid float64
	for _, p := range payments {
		totalPaid += p.PaymentAmount
	}

	history := make([]*models.PaymentRecord, len(payments))
	copy(history, payments)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].PaymentDate.Before(*history[j].PaymentDate)
	})

	duplicates := DetectDuplicates(history)

	return &models.MemberSnapshot{
		MemberName:        memberName,
		GuardianName:      guardianName,
		DateOfBirth:       anchor.DateOfBirth,
		PlanName:          anchor.PlanName,
		TicketDetails:     anchor.TicketDetails,
		LastPaymentDate:   *anchor.PaymentDate,
		LastPaymentAmount: anchor.PaymentAmount,
		ExpiryDate:        expiry,
		Status:            status,
		DaysUntilExpiry:   daysUntilExpiry,
		TotalPayments:     len(payments),
		TotalAmountPaid:   totalPaid,
		PaymentHistory:    history,
		DuplicateGroups:   duplicates.Groups,
		HasUnknownPlan:    !planKnown,
	}
}

// ExpiryDate applies the expiry rule to a member's anchor payment. A
// blank recurring status marks a one-time annual fee, which never
// expires; an unknown plan has no duration to add.
func ExpiryDate(anchor *models.PaymentRecord, plans PlanLookup) *time.Time {
	if anchor.PaymentDate == nil || anchor.PlanName == "" {
		return nil
	}
	if isBlank(anchor.RecurringStatus) {
		return nil
	}
	plan, ok := plans.Lookup(anchor.PlanName)
	if !ok || plan.DurationDays <= 0 {
		return nil
	}
	expiry := anchor.PaymentDate.AddDate(0, 0, plan.DurationDays)
	return &expiry
}

// DetermineStatus is a pure function of (expiry, recurring status)
// relative to today at midnight.
func DetermineStatus(expiry *time.Time, recurringStatus string, today time.Time) models.MembershipStatus {
	if expiry == nil {
		if isBlank(recurringStatus) {
			return models.StatusAnnualFee
		}
		// Meant to recur, but the expiry could not be derived.
		return models.StatusLapsed
	}

	days := daysBetween(Midnight(today), Midnight(*expiry))
	switch {
	case days < 0:
		return models.StatusLapsed
	case days <= expiringSoonWindowDays:
		return models.StatusExpiringSoon
	default:
		return models.StatusActive
	}
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

// daysBetween counts whole calendar days from a to b; both must already
// be midnight values, so the division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
