package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clubops/membership-backend/internal/models"
)

type stubPlanService struct {
	plans []models.MembershipPlan
	err   error
}

func (s *stubPlanService) List(ctx context.Context) ([]models.MembershipPlan, error) {
	return s.plans, s.err
}

func TestListPlans(t *testing.T) {
	rh := &stubResponseHandler{}
	h := NewPlanHandlers(&Deps{
		ResponseHandler: rh,
		PlanSvc: &stubPlanService{plans: []models.MembershipPlan{
			{Name: "Monthly", DurationDays: 30, AutoDetected: true},
		}},
	})

	h.ListPlans(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plans", nil))

	if rh.status != http.StatusOK {
		t.Fatalf("status = %d, want 200", rh.status)
	}
	plans, ok := rh.data.([]models.MembershipPlan)
	if !ok || len(plans) != 1 || plans[0].Name != "Monthly" {
		t.Fatalf("data = %+v", rh.data)
	}
}

func TestListPlansError(t *testing.T) {
	wantErr := errors.New("store unavailable")
	rh := &stubResponseHandler{}
	h := NewPlanHandlers(&Deps{
		ResponseHandler: rh,
		PlanSvc:         &stubPlanService{err: wantErr},
	})

	h.ListPlans(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plans", nil))

	if !errors.Is(rh.err, wantErr) {
		t.Fatalf("error = %v, want the service's error", rh.err)
	}
}
