package handlers

import (
	"log/slog"

	"github.com/clubops/membership-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	ImportSvc       ImportService
	MemberSvc       MemberService
	ExportSvc       ExportService
	PlanSvc         PlanService
	MaxUploadBytes  int64
}
