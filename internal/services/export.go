package services

import (
	"context"
	"fmt"
	"time"

	"github.com/clubops/membership-backend/internal/dto"
	"github.com/clubops/membership-backend/internal/errs"
	"github.com/clubops/membership-backend/internal/models"
	"github.com/clubops/membership-backend/internal/reconcile"
	"github.com/clubops/membership-backend/pkg/logger"
)

// memberLister provides the filtered/sorted snapshots to export.
type memberLister interface {
	List(ctx context.Context, q dto.MemberQuery) ([]*models.MemberSnapshot, error)
}

// workbookEncoder writes tabular rows into workbook bytes.
type workbookEncoder interface {
	Encode(sheetName string, rows [][]string, colWidths []float64) ([]byte, error)
}

type exportService struct {
	members memberLister
	encoder workbookEncoder
	now     func() time.Time
}

func NewExportService(members memberLister, encoder workbookEncoder) *exportService {
	return &exportService{
		members: members,
		encoder: encoder,
		now:     time.Now,
	}
}

// Export serializes the filtered, sorted member report into a workbook
// suitable for round-tripping back through an import.
func (s *exportService) Export(ctx context.Context, q dto.MemberQuery) (dto.ExportFile, error) {
	snapshots, err := s.members.List(ctx, q)
	if err != nil {
		return dto.ExportFile{}, err
	}
	if len(snapshots) == 0 {
		return dto.ExportFile{}, errs.NewEmptyImportError(
			"No members to export. Import a file first and check the active filters.")
	}

	rows := reconcile.ToRows(snapshots)
	data, err := s.encoder.Encode(reconcile.ExportSheetName(q.Status), rows, reconcile.ReportColumnWidths)
	if err != nil {
		return dto.ExportFile{}, err
	}

	filterLabel := q.Status
	if filterLabel == "" {
		filterLabel = reconcile.FilterAll
	}
	file := dto.ExportFile{
		Filename: fmt.Sprintf("membership-export-%s-%s.xlsx", filterLabel, s.now().Format("2006-01-02")),
		Data:     data,
	}

	logger.FromContext(ctx).Info("report exported",
		"members", len(snapshots),
		"filename", file.Filename)
	return file, nil
}
