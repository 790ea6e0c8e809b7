package reconcile

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/clubops/membership-backend/internal/models"
)

// FilterAll is the wildcard accepted by both report filters.
const FilterAll = "all"

const reportDateLayout = "Jan 2, 2006"

// ReportHeaders is the fixed export column order.
var ReportHeaders = []string{
	"Player Name",
	"Guardian Name",
	"Membership Plan",
	"Ticket Details",
	"Last Payment Date",
	"Last Payment Amount",
	"Expiry Date",
	"Status",
	"Days Until Expiry",
}

// ReportColumnWidths are the corresponding worksheet column widths.
var ReportColumnWidths = []float64{20, 20, 18, 30, 18, 18, 15, 15, 18}

// SortColumn names accepted by SortSnapshots.
var sortColumns = map[string]struct{}{
	"memberName":        {},
	"guardianName":      {},
	"planName":          {},
	"ticketDetails":     {},
	"lastPaymentDate":   {},
	"lastPaymentAmount": {},
	"expiryDate":        {},
	"status":            {},
	"daysUntilExpiry":   {},
	"totalPayments":     {},
	"totalAmountPaid":   {},
}

// ValidSortColumn reports whether column is sortable. "" is valid and
// means the default (member name).
func ValidSortColumn(column string) bool {
	if column == "" {
		return true
	}
	_, ok := sortColumns[column]
	return ok
}

// FilterSnapshots narrows by status and plan. "" or "all" disables the
// corresponding filter.
func FilterSnapshots(snapshots []*models.MemberSnapshot, status, plan string) []*models.MemberSnapshot {
	filtered := make([]*models.MemberSnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if status != "" && status != FilterAll && string(s.Status) != status {
			continue
		}
		if plan != "" && plan != FilterAll && s.PlanName != plan {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// SortSnapshots returns an ordered copy. The comparison is a generic
// three-way: dates by instant, numbers by value, everything else as
// strings; direction "desc" flips the result. The underlying sort is
// stable, so ties keep their incoming order.
func SortSnapshots(snapshots []*models.MemberSnapshot, column, direction string) []*models.MemberSnapshot {
	if column == "" {
		column = "memberName"
	}
	multiplier := 1
	if direction == "desc" {
		multiplier = -1
	}

	sorted := make([]*models.MemberSnapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareSnapshots(sorted[i], sorted[j], column)*multiplier < 0
	})
	return sorted
}

func compareSnapshots(a, b *models.MemberSnapshot, column string) int {
	switch column {
	case "lastPaymentDate":
		return compareTimes(a.LastPaymentDate, b.LastPaymentDate)
	case "expiryDate":
		return compareTimes(timeOrZero(a.ExpiryDate), timeOrZero(b.ExpiryDate))
	case "lastPaymentAmount":
		return compareFloats(a.LastPaymentAmount, b.LastPaymentAmount)
	case "totalAmountPaid":
		return compareFloats(a.TotalAmountPaid, b.TotalAmountPaid)
	case "daysUntilExpiry":
		return a.DaysUntilExpiry - b.DaysUntilExpiry
	case "totalPayments":
		return a.TotalPayments - b.TotalPayments
	case "guardianName":
		return strings.Compare(a.GuardianName, b.GuardianName)
	case "planName":
		return strings.Compare(a.PlanName, b.PlanName)
	case "ticketDetails":
		return strings.Compare(a.TicketDetails, b.TicketDetails)
	case "status":
		return strings.Compare(string(a.Status), string(b.Status))
	default:
		return strings.Compare(a.MemberName, b.MemberName)
	}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// ToRows serializes snapshots into export rows, header row first.
func ToRows(snapshots []*models.MemberSnapshot) [][]string {
	rows := make([][]string, 0, len(snapshots)+1)
	rows = append(rows, ReportHeaders)

	for _, s := range snapshots {
		expiry := "Unknown"
		days := "N/A"
		if s.ExpiryDate != nil {
			expiry = FormatDate(*s.ExpiryDate)
			days = strconv.Itoa(s.DaysUntilExpiry)
		}
		details := s.TicketDetails
		if details == "" {
			details = "N/A"
		}
		rows = append(rows, []string{
			s.MemberName,
			s.GuardianName,
			s.PlanName,
			details,
			FormatDate(s.LastPaymentDate),
			strconv.FormatFloat(s.LastPaymentAmount, 'f', 2, 64),
			expiry,
			s.Status.Label(),
			days,
		})
	}
	return rows
}

// ExportSheetName names the worksheet after the active status filter.
func ExportSheetName(status string) string {
	if status == "" || status == FilterAll {
		return "All Members"
	}
	return models.MembershipStatus(status).Label()
}

// FormatDate renders a calendar date for reports.
func FormatDate(t time.Time) string {
	return t.Format(reportDateLayout)
}
