package reconcile

import (
	"fmt"
	"strings"

	"github.com/clubops/membership-backend/internal/models"
)

// DetectDuplicates scans a record sequence left to right and clusters
// records indistinguishable by (date, payer, amount). A group only
// materializes once a key is seen a second time; records missing any of
// the three key inputs never participate. The scan is deterministic, so
// running it twice over the same input yields identical groups.
func DetectDuplicates(records []*models.PaymentRecord) models.DuplicateReport {
	var groups []models.DuplicateGroup
	seen := make(map[string]int)      // key -> first-seen index
	groupIdx := make(map[string]int)  // key -> index into groups

	for i, record := range records {
		key, ok := duplicateKey(record)
		if !ok {
			continue
		}

		first, dup := seen[key]
		if !dup {
			seen[key] = i
			continue
		}

		if gi, ok := groupIdx[key]; ok {
			groups[gi].Indices = append(groups[gi].Indices, i)
			continue
		}

		groupIdx[key] = len(groups)
		groups = append(groups, models.DuplicateGroup{
			Key:           key,
			Indices:       []int{first, i},
			PayerName:     record.PayerName,
			PaymentDate:   *record.PaymentDate,
			PaymentAmount: record.PaymentAmount,
		})
	}

	total := 0
	for _, g := range groups {
		total += len(g.Indices) - 1
	}

	return models.DuplicateReport{
		HasDuplicates:   len(groups) > 0,
		Groups:          groups,
		TotalDuplicates: total,
	}
}

// duplicateKey builds the identity key for duplicate detection:
// ISO date | lower-cased payer | amount fixed to 2 decimals.
func duplicateKey(r *models.PaymentRecord) (string, bool) {
	if r.PayerName == "" || r.PaymentDate == nil || r.PaymentAmount == 0 {
		return "", false
	}
	return fmt.Sprintf("%s|%s|%.2f",
		r.PaymentDate.Format("2006-01-02"),
		strings.ToLower(strings.TrimSpace(r.PayerName)),
		r.PaymentAmount,
	), true
}

// ExcludeDuplicates drops every non-first occurrence named by the report,
// returning the surviving records in order. Dropped records are marked
// excluded and forced incomplete, so they stay invisible to
// reconciliation even if something still holds a reference to them.
func ExcludeDuplicates(records []*models.PaymentRecord, report models.DuplicateReport) []*models.PaymentRecord {
	excluded := make(map[int]bool)
	for _, group := range report.Groups {
		for _, idx := range group.Indices[1:] {
			excluded[idx] = true
		}
	}

	kept := make([]*models.PaymentRecord, 0, len(records)-len(excluded))
	for i, record := range records {
		if excluded[i] {
			record.IsExcludedDuplicate = true
			record.IsComplete = false
			continue
		}
		kept = append(kept, record)
	}
	return kept
}
