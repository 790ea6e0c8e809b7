package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/membership-backend/internal/dto"
	"github.com/clubops/membership-backend/internal/models"
	"github.com/clubops/membership-backend/internal/response"
)

type MemberService interface {
	List(ctx context.Context, q dto.MemberQuery) ([]*models.MemberSnapshot, error)
	Get(ctx context.Context, name string) (*models.MemberSnapshot, error)
	Summary(ctx context.Context) (dto.MemberSummary, error)
}

type ExportService interface {
	Export(ctx context.Context, q dto.MemberQuery) (dto.ExportFile, error)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type memberHandlers struct {
	ResponseHandler response.ResponseHandler
	MemberSvc       MemberService
	ExportSvc       ExportService
}

func NewMemberHandlers(deps *Deps) *memberHandlers {
	return &memberHandlers{
		ResponseHandler: deps.ResponseHandler,
		MemberSvc:       deps.MemberSvc,
		ExportSvc:       deps.ExportSvc,
	}
}

func (h *memberHandlers) MemberRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListMembers)
	r.Get("/summary", h.GetSummary)
	r.Get("/export", h.ExportMembers) // must be before /{name}
	r.Get("/{name}", h.GetMember)
	return r
}

func (h *memberHandlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.MemberSvc.List(r.Context(), queryFromRequest(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, members)
}

func (h *memberHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.MemberSvc.Summary(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *memberHandlers) GetMember(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	member, err := h.MemberSvc.Get(r.Context(), name)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, member)
}

func (h *memberHandlers) ExportMembers(w http.ResponseWriter, r *http.Request) {
	file, err := h.ExportSvc.Export(r.Context(), queryFromRequest(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(file.Data)
}

func queryFromRequest(r *http.Request) dto.MemberQuery {
	q := r.URL.Query()
	return dto.MemberQuery{
		Status:    q.Get("status"),
		Plan:      q.Get("plan"),
		Sort:      q.Get("sort"),
		Direction: q.Get("direction"),
	}
}
