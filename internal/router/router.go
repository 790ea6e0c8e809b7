package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/clubops/membership-backend/internal/handlers"
	"github.com/clubops/membership-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	ih := handlers.NewImportHandlers(deps)
	mh := handlers.NewMemberHandlers(deps)
	ph := handlers.NewPlanHandlers(deps)

	r.Mount("/imports", ih.ImportRoutes())
	r.Mount("/members", mh.MemberRoutes())
	r.Mount("/plans", ph.PlanRoutes())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		deps.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
