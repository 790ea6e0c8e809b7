package services

import (
	"context"

	"github.com/clubops/membership-backend/internal/models"
)

// planStore exposes the registered plans.
type planStore interface {
	Plans() []models.MembershipPlan
}

type planService struct {
	store planStore
}

func NewPlanService(store planStore) *planService {
	return &planService{store: store}
}

// List returns every plan registered so far this session, in
// registration order.
func (s *planService) List(ctx context.Context) ([]models.MembershipPlan, error) {
	return s.store.Plans(), nil
}
