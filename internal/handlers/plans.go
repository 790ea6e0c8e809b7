package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/membership-backend/internal/models"
	"github.com/clubops/membership-backend/internal/response"
)

type PlanService interface {
	List(ctx context.Context) ([]models.MembershipPlan, error)
}

type planHandlers struct {
	ResponseHandler response.ResponseHandler
	PlanSvc         PlanService
}

func NewPlanHandlers(deps *Deps) *planHandlers {
	return &planHandlers{
		ResponseHandler: deps.ResponseHandler,
		PlanSvc:         deps.PlanSvc,
	}
}

func (h *planHandlers) PlanRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListPlans)
	return r
}

func (h *planHandlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.PlanSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, plans)
}
