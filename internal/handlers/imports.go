package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/clubops/membership-backend/internal/dto"
	"github.com/clubops/membership-backend/internal/errs"
	"github.com/clubops/membership-backend/internal/response"
)

type ImportService interface {
	Import(ctx context.Context, data []byte, opts dto.ImportOptions) (dto.ImportResult, error)
}

type importHandlers struct {
	ResponseHandler response.ResponseHandler
	ImportSvc       ImportService
	MaxUploadBytes  int64
}

func NewImportHandlers(deps *Deps) *importHandlers {
	return &importHandlers{
		ResponseHandler: deps.ResponseHandler,
		ImportSvc:       deps.ImportSvc,
		MaxUploadBytes:  deps.MaxUploadBytes,
	}
}

func (h *importHandlers) ImportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateImport)
	return r
}

// CreateImport accepts a workbook either as a multipart "file" part or as
// the raw request body, and replaces the session with its reconciled
// contents.
func (h *importHandlers) CreateImport(w http.ResponseWriter, r *http.Request) {
	data, err := h.readWorkbook(w, r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	opts := dto.ImportOptions{
		ExcludeDuplicates: r.URL.Query().Get("excludeDuplicates") == "true",
	}
	result, err := h.ImportSvc.Import(r.Context(), data, opts)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, result)
}

func (h *importHandlers) readWorkbook(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, ferr := r.FormFile("file")
		if ferr != nil {
			return nil, errs.NewValidationError(`multipart upload must include a "file" part`)
		}
		defer file.Close()
		data, err = io.ReadAll(file)
	} else {
		data, err = io.ReadAll(r.Body)
	}
	if err != nil {
		return nil, errs.NewValidationError("failed to read upload: " + err.Error())
	}
	if len(data) == 0 {
		return nil, errs.NewValidationError("upload is empty")
	}
	return data, nil
}
