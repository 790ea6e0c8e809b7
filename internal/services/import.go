package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/clubops/membership-backend/internal/dto"
	"github.com/clubops/membership-backend/internal/errs"
	"github.com/clubops/membership-backend/internal/models"
	"github.com/clubops/membership-backend/internal/reconcile"
	"github.com/clubops/membership-backend/internal/spreadsheet"
	"github.com/clubops/membership-backend/pkg/logger"
)

// workbookDecoder parses workbook bytes into the first worksheet.
type workbookDecoder interface {
	Decode(data []byte) (*spreadsheet.Sheet, error)
}

// importStore is the session state touched by an import.
type importStore interface {
	reconcile.PlanLookup
	AutoDetectPlans(records []*models.PaymentRecord) []models.MembershipPlan
	ReplaceImport(records []*models.PaymentRecord, snapshots []*models.MemberSnapshot)
}

type importService struct {
	decoder workbookDecoder
	store   importStore
	now     func() time.Time
}

func NewImportService(decoder workbookDecoder, store importStore) *importService {
	return &importService{
		decoder: decoder,
		store:   store,
		now:     time.Now,
	}
}

// Import runs the full pipeline over uploaded workbook bytes: decode,
// map columns, normalize, detect duplicates, optionally exclude them,
// auto-register plans, reconcile, and replace the session state. On any
// error the prior session state is left untouched.
func (s *importService) Import(ctx context.Context, data []byte, opts dto.ImportOptions) (dto.ImportResult, error) {
	importID := uuid.New().String()
	log := logger.FromContext(ctx).With("import_id", importID)

	sheet, err := s.decoder.Decode(data)
	if err != nil {
		switch {
		case errors.Is(err, spreadsheet.ErrEncryptedWorkbook):
			return dto.ImportResult{}, errs.NewWorkbookFormatError(
				"Cannot read encrypted or password-protected files. Remove the password protection and try again.")
		case errors.Is(err, spreadsheet.ErrNotAWorkbook):
			return dto.ImportResult{}, errs.NewWorkbookFormatError(
				"The file could not be read as a spreadsheet workbook. It may be corrupted, empty, or in an unsupported format.")
		default:
			return dto.ImportResult{}, err
		}
	}
	if len(sheet.Rows) == 0 {
		return dto.ImportResult{}, errs.NewEmptyImportError(
			"The first worksheet contains no data rows.")
	}

	mapping := reconcile.MapColumns(sheet.Headers)

	records := make([]*models.PaymentRecord, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		record, ok := reconcile.NormalizeRow(row, mapping)
		if !ok {
			continue // blank row
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return dto.ImportResult{}, errs.NewEmptyImportError(
			"No payment records found in the file. Check that it contains payment data with the required columns.")
	}

	result := dto.ImportResult{
		ImportID:     importID,
		TotalRecords: len(records),
	}

	result.Duplicates = reconcile.DetectDuplicates(records)
	if result.Duplicates.HasDuplicates {
		log.Warn("duplicate payments detected",
			"groups", len(result.Duplicates.Groups),
			"duplicates", result.Duplicates.TotalDuplicates)
	}

	if opts.ExcludeDuplicates {
		records = reconcile.ExcludeDuplicates(records, result.Duplicates)
		result.ExcludedDuplicates = result.Duplicates.TotalDuplicates
	}

	for _, record := range records {
		if record.IsComplete {
			result.CompleteRecords++
		} else {
			result.IncompleteRecords++
		}
	}
	if result.IncompleteRecords > 0 {
		log.Warn("incomplete records excluded from analysis",
			"incomplete", result.IncompleteRecords,
			"complete", result.CompleteRecords)
	}
	if result.CompleteRecords == 0 {
		return dto.ImportResult{}, errs.NewEmptyImportError(
			"No complete payment records found. All records are missing required fields (payer name, payment amount, payment date, or membership plan).")
	}

	newPlans := s.store.AutoDetectPlans(records)
	for _, plan := range newPlans {
		result.NewPlans = append(result.NewPlans, plan.Name)
		log.Info("auto-detected membership plan",
			"plan", plan.Name,
			"duration_days", plan.DurationDays)
	}

	snapshots := reconcile.Reconcile(records, s.store, s.now())
	for _, snap := range snapshots {
		if snap.HasUnknownPlan {
			result.UnknownPlanMembers++
		}
	}
	result.Members = len(snapshots)

	s.store.ReplaceImport(records, snapshots)

	log.Info("import processed",
		"records", result.TotalRecords,
		"complete", result.CompleteRecords,
		"members", result.Members)
	return result, nil
}
