package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/clubops/membership-backend/internal/config"
	"github.com/clubops/membership-backend/internal/dto"
	"github.com/clubops/membership-backend/internal/services"
	"github.com/clubops/membership-backend/internal/spreadsheet"
	"github.com/clubops/membership-backend/internal/store"
	"github.com/clubops/membership-backend/pkg/logger"
)

// One-shot pipeline: read a workbook of payment rows, reconcile it, and
// write the member report back out as a workbook.
func main() {
	var (
		inPath       = flag.String("in", "", "Path to the payment workbook to import")
		outPath      = flag.String("out", "membership-report.xlsx", "Path for the exported report")
		status       = flag.String("status", "all", "Status filter: all, active, expiring_soon, lapsed, annual_fee")
		plan         = flag.String("plan", "all", "Plan filter, or all")
		sortColumn   = flag.String("sort", "memberName", "Sort column")
		direction    = flag.String("direction", "asc", "Sort direction: asc or desc")
		excludeDupes = flag.Bool("exclude-duplicates", false, "Drop all but the first occurrence of each duplicate payment")
	)
	flag.Parse()

	godotenv.Load()
	cfg := config.New()
	log := logger.New(cfg.LogLevel, logger.NewCLIHandler)

	if *inPath == "" {
		log.Error("missing required -in flag")
		os.Exit(1)
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Error("failed to read workbook", "error", err, "path", *inPath)
		os.Exit(1)
	}

	sessionStore := store.NewSessionStore(cfg.DefaultPlanDays)
	codec := spreadsheet.NewCodec()
	importSvc := services.NewImportService(codec, sessionStore)
	memberSvc := services.NewMemberService(sessionStore)
	exportSvc := services.NewExportService(memberSvc, codec)

	ctx := logger.ToContext(context.Background(), log)

	result, err := importSvc.Import(ctx, data, dto.ImportOptions{ExcludeDuplicates: *excludeDupes})
	if err != nil {
		log.Error("import failed", "error", err, "path", *inPath)
		os.Exit(1)
	}
	log.Info("import complete",
		"records", result.TotalRecords,
		"complete", result.CompleteRecords,
		"incomplete", result.IncompleteRecords,
		"duplicates", result.Duplicates.TotalDuplicates,
		"members", result.Members)

	file, err := exportSvc.Export(ctx, dto.MemberQuery{
		Status:    *status,
		Plan:      *plan,
		Sort:      *sortColumn,
		Direction: *direction,
	})
	if err != nil {
		log.Error("export failed", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outPath, file.Data, 0o644); err != nil {
		log.Error("failed to write report", "error", err, "path", *outPath)
		os.Exit(1)
	}
	log.Info("report written", "path", *outPath)
}
