package services

import (
	"context"

	"github.com/clubops/membership-backend/internal/dto"
	"github.com/clubops/membership-backend/internal/errs"
	"github.com/clubops/membership-backend/internal/models"
	"github.com/clubops/membership-backend/internal/reconcile"
)

// memberStore is the read side of the session state.
type memberStore interface {
	Snapshots() []*models.MemberSnapshot
}

type memberService struct {
	store memberStore
}

func NewMemberService(store memberStore) *memberService {
	return &memberService{store: store}
}

// List returns the current snapshots narrowed and ordered by the query.
func (s *memberService) List(ctx context.Context, q dto.MemberQuery) ([]*models.MemberSnapshot, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	snapshots := reconcile.FilterSnapshots(s.store.Snapshots(), q.Status, q.Plan)
	return reconcile.SortSnapshots(snapshots, q.Sort, q.Direction), nil
}

// Get returns one member's snapshot, including payment history and
// intra-member duplicate groups.
func (s *memberService) Get(ctx context.Context, name string) (*models.MemberSnapshot, error) {
	for _, snap := range s.store.Snapshots() {
		if snap.MemberName == name {
			return snap, nil
		}
	}
	return nil, errs.NewNotFoundError("no member named " + name + " in the current session")
}

// Summary counts members per status across the whole session.
func (s *memberService) Summary(ctx context.Context) (dto.MemberSummary, error) {
	var summary dto.MemberSummary
	for _, snap := range s.store.Snapshots() {
		summary.Total++
		summary.TotalPayments += snap.TotalPayments
		summary.TotalAmountPaid += snap.TotalAmountPaid
		switch snap.Status {
		case models.StatusActive:
			summary.Active++
		case models.StatusExpiringSoon:
			summary.ExpiringSoon++
		case models.StatusLapsed:
			summary.Lapsed++
		case models.StatusAnnualFee:
			summary.AnnualFee++
		}
	}
	return summary, nil
}

func validateQuery(q dto.MemberQuery) error {
	if q.Status != "" && q.Status != reconcile.FilterAll {
		if _, ok := models.ParseStatus(q.Status); !ok {
			return errs.NewValidationError("unknown status filter: " + q.Status)
		}
	}
	if !reconcile.ValidSortColumn(q.Sort) {
		return errs.NewValidationError("unknown sort column: " + q.Sort)
	}
	if q.Direction != "" && q.Direction != "asc" && q.Direction != "desc" {
		return errs.NewValidationError(`direction must be "asc" or "desc"`)
	}
	return nil
}
