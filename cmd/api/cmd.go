package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/clubops/membership-backend/internal/config"
	"github.com/clubops/membership-backend/internal/handlers"
	"github.com/clubops/membership-backend/internal/response"
	"github.com/clubops/membership-backend/internal/router"
	"github.com/clubops/membership-backend/internal/services"
	"github.com/clubops/membership-backend/internal/spreadsheet"
	"github.com/clubops/membership-backend/internal/store"
	"github.com/clubops/membership-backend/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	godotenv.Load()
	cfg := config.New()
	log := logger.New(cfg.LogLevel, logger.NewServerHandler)

	// session state
	sessionStore := store.NewSessionStore(cfg.DefaultPlanDays)

	// codec
	codec := spreadsheet.NewCodec()

	// services
	importSvc := services.NewImportService(codec, sessionStore)
	memberSvc := services.NewMemberService(sessionStore)
	exportSvc := services.NewExportService(memberSvc, codec)
	planSvc := services.NewPlanService(sessionStore)

	// response handler
	rh := response.New(log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = log
	deps.ResponseHandler = rh
	deps.ImportSvc = importSvc
	deps.MemberSvc = memberSvc
	deps.ExportSvc = exportSvc
	deps.PlanSvc = planSvc
	deps.MaxUploadBytes = cfg.MaxUploadBytes

	// router
	r := router.NewRouter(deps)
	log.Info("listening", "port", cfg.Port)
	err := http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, log)
}
