package handlers

import (
	"net/http"

	"github.com/clubops/membership-backend/internal/response"
)

// stubResponseHandler records what the handler under test wrote.
type stubResponseHandler struct {
	status  int
	data    any
	err     error
	code    string
	message string
}

var _ response.ResponseHandler = (*stubResponseHandler)(nil)

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	s.status = status
	s.data = data
	w.WriteHeader(status)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.status = status
	s.code = code
	s.message = message
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.err = err
	w.WriteHeader(http.StatusTeapot) // sentinel; tests assert on s.err
}
