package services

import (
	"testing"

	"github.com/clubops/membership-backend/internal/models"
	"github.com/clubops/membership-backend/pkg/helpers"
)

type fakePlanStore struct {
	plans []models.MembershipPlan
}

func (s *fakePlanStore) Plans() []models.MembershipPlan {
	return s.plans
}

func TestPlanList(t *testing.T) {
	svc := NewPlanService(&fakePlanStore{plans: []models.MembershipPlan{
		{Name: "Monthly", DurationDays: 30, AutoDetected: true},
		{Name: "Annual", DurationDays: 30, AutoDetected: true},
	}})

	plans, err := svc.List(helpers.TestCtx())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(plans) != 2 || plans[0].Name != "Monthly" || plans[1].Name != "Annual" {
		t.Fatalf("plans = %+v", plans)
	}
}

func TestPlanListEmpty(t *testing.T) {
	svc := NewPlanService(&fakePlanStore{})
	plans, err := svc.List(helpers.TestCtx())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("plans = %+v, want empty", plans)
	}
}
