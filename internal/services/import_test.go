package services

import (
	"errors"
	"testing"
	"time"

	"github.com/clubops/membership-backend/internal/dto"
	"github.com/clubops/membership-backend/internal/errs"
	"github.com/clubops/membership-backend/internal/models"
	"github.com/clubops/membership-backend/internal/reconcile"
	"github.com/clubops/membership-backend/internal/spreadsheet"
	"github.com/clubops/membership-backend/pkg/helpers"
)

type fakeDecoder struct {
	sheet *spreadsheet.Sheet
	err   error
}

func (d *fakeDecoder) Decode(data []byte) (*spreadsheet.Sheet, error) {
	return d.sheet, d.err
}

// fakeImportStore wraps a real registry and records the ReplaceImport
// call so tests can assert on what the pipeline produced.
type fakeImportStore struct {
	plans         *reconcile.PlanRegistry
	replaced      bool
	lastRecords   []*models.PaymentRecord
	lastSnapshots []*models.MemberSnapshot
}

func newFakeImportStore() *fakeImportStore {
	return &fakeImportStore{plans: reconcile.NewPlanRegistry(0)}
}

func (s *fakeImportStore) Lookup(name string) (*models.MembershipPlan, bool) {
	return s.plans.Lookup(name)
}

func (s *fakeImportStore) AutoDetectPlans(records []*models.PaymentRecord) []models.MembershipPlan {
	return s.plans.AutoDetect(records)
}

func (s *fakeImportStore) ReplaceImport(records []*models.PaymentRecord, snapshots []*models.MemberSnapshot) {
	s.replaced = true
	s.lastRecords = records
	s.lastSnapshots = snapshots
}

func headeredSheet(rows ...spreadsheet.Row) *spreadsheet.Sheet {
	return &spreadsheet.Sheet{
		Headers: []string{"Payer Name", "Player Name", "Amount", "Date", "Plan", "Recurring Status"},
		Rows:    rows,
	}
}

func paymentRow(payer, player string, amount, serial float64, plan string) spreadsheet.Row {
	return spreadsheet.Row{
		"Payer Name":       spreadsheet.Text(payer),
		"Player Name":      spreadsheet.Text(player),
		"Amount":           spreadsheet.Number(amount),
		"Date":             spreadsheet.Number(serial),
		"Plan":             spreadsheet.Text(plan),
		"Recurring Status": spreadsheet.Text("yes"),
	}
}

func fixedNow() time.Time {
	return time.Date(2024, time.February, 1, 10, 30, 0, 0, time.UTC)
}

func TestImportHappyPath(t *testing.T) {
	store := newFakeImportStore()
	svc := NewImportService(&fakeDecoder{sheet: headeredSheet(
		paymentRow("Jane Doe", "Junior Doe", 100, 45306, "Monthly"), // 2024-01-15
		paymentRow("John Doe", "", 80, 45306, "Monthly"),
	)}, store)
	svc.now = fixedNow

	result, err := svc.Import(helpers.TestCtx(), []byte("ignored"), dto.ImportOptions{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if result.ImportID == "" {
		t.Fatal("expected a generated import id")
	}
	if result.TotalRecords != 2 || result.CompleteRecords != 2 || result.IncompleteRecords != 0 {
		t.Fatalf("counts = %d/%d/%d", result.TotalRecords, result.CompleteRecords, result.IncompleteRecords)
	}
	if result.Members != 2 {
		t.Fatalf("members = %d, want 2", result.Members)
	}
	if len(result.NewPlans) != 1 || result.NewPlans[0] != "Monthly" {
		t.Fatalf("new plans = %v", result.NewPlans)
	}
	if result.UnknownPlanMembers != 0 {
		t.Fatalf("unknown plan members = %d", result.UnknownPlanMembers)
	}

	if !store.replaced {
		t.Fatal("expected session state to be replaced")
	}
	if len(store.lastSnapshots) != 2 {
		t.Fatalf("stored snapshots = %d", len(store.lastSnapshots))
	}
	// Both members paid 2024-01-15 on a 30-day plan; as of 2024-02-01 the
	// expiry 2024-02-14 is 13 days out.
	if store.lastSnapshots[0].Status != models.StatusActive {
		t.Fatalf("status = %q, want active", store.lastSnapshots[0].Status)
	}
}

func TestImportEncryptedWorkbook(t *testing.T) {
	store := newFakeImportStore()
	svc := NewImportService(&fakeDecoder{err: spreadsheet.ErrEncryptedWorkbook}, store)

	_, err := svc.Import(helpers.TestCtx(), nil, dto.ImportOptions{})
	var formatErr *errs.WorkbookFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("error = %v, want WorkbookFormatError", err)
	}
	if store.replaced {
		t.Fatal("failed import must not touch session state")
	}
}

func TestImportNotAWorkbook(t *testing.T) {
	svc := NewImportService(&fakeDecoder{err: spreadsheet.ErrNotAWorkbook}, newFakeImportStore())

	_, err := svc.Import(helpers.TestCtx(), nil, dto.ImportOptions{})
	var formatErr *errs.WorkbookFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("error = %v, want WorkbookFormatError", err)
	}
}

func TestImportDecoderFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewImportService(&fakeDecoder{err: boom}, newFakeImportStore())

	if _, err := svc.Import(helpers.TestCtx(), nil, dto.ImportOptions{}); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want the decoder's own error", err)
	}
}

func TestImportNoRows(t *testing.T) {
	svc := NewImportService(&fakeDecoder{sheet: headeredSheet()}, newFakeImportStore())

	_, err := svc.Import(helpers.TestCtx(), nil, dto.ImportOptions{})
	var emptyErr *errs.EmptyImportError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("error = %v, want EmptyImportError", err)
	}
}

func TestImportOnlyBlankRows(t *testing.T) {
	blank := spreadsheet.Row{
		"Payer Name": spreadsheet.Empty(),
		"Amount":     spreadsheet.Empty(),
		"Date":       spreadsheet.Empty(),
		"Plan":       spreadsheet.Empty(),
	}
	svc := NewImportService(&fakeDecoder{sheet: headeredSheet(blank, blank)}, newFakeImportStore())

	_, err := svc.Import(helpers.TestCtx(), nil, dto.ImportOptions{})
	var emptyErr *errs.EmptyImportError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("error = %v, want EmptyImportError", err)
	}
}

func TestImportAllIncompleteLeavesStateUntouched(t *testing.T) {
	store := newFakeImportStore()
	svc := NewImportService(&fakeDecoder{sheet: headeredSheet(
		paymentRow("Jane Doe", "", 0, 45306, "Monthly"), // zero amount
	)}, store)

	_, err := svc.Import(helpers.TestCtx(), nil, dto.ImportOptions{})
	var emptyErr *errs.EmptyImportError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("error = %v, want EmptyImportError", err)
	}
	if store.replaced {
		t.Fatal("import with no complete records must not touch session state")
	}
	if got := len(store.plans.Plans()); got != 0 {
		t.Fatalf("plans = %d, want none registered", got)
	}
}

func TestImportReportsDuplicatesWithoutExcluding(t *testing.T) {
	store := newFakeImportStore()
	svc := NewImportService(&fakeDecoder{sheet: headeredSheet(
		paymentRow("Jane Doe", "", 100, 45306, "Monthly"),
		paymentRow("JANE DOE", "", 100, 45306, "Monthly"),
	)}, store)
	svc.now = fixedNow

	result, err := svc.Import(helpers.TestCtx(), nil, dto.ImportOptions{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !result.Duplicates.HasDuplicates || result.Duplicates.TotalDuplicates != 1 {
		t.Fatalf("duplicates = %+v", result.Duplicates)
	}
	if result.ExcludedDuplicates != 0 {
		t.Fatalf("excluded = %d, want 0", result.ExcludedDuplicates)
	}
	if result.CompleteRecords != 2 || len(store.lastRecords) != 2 {
		t.Fatalf("both occurrences should survive: %d/%d", result.CompleteRecords, len(store.lastRecords))
	}
}

func TestImportExcludesDuplicates(t *testing.T) {
	store := newFakeImportStore()
	svc := NewImportService(&fakeDecoder{sheet: headeredSheet(
		paymentRow("Jane Doe", "", 100, 45306, "Monthly"),
		paymentRow("Jane Doe", "", 100, 45306, "Monthly"),
		paymentRow("John Doe", "", 80, 45306, "Monthly"),
	)}, store)
	svc.now = fixedNow

	result, err := svc.Import(helpers.TestCtx(), nil, dto.ImportOptions{ExcludeDuplicates: true})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.ExcludedDuplicates != 1 {
		t.Fatalf("excluded = %d, want 1", result.ExcludedDuplicates)
	}
	if result.CompleteRecords != 2 {
		t.Fatalf("complete = %d, want 2", result.CompleteRecords)
	}
	if len(store.lastRecords) != 2 {
		t.Fatalf("stored records = %d, want survivors only", len(store.lastRecords))
	}
	if len(store.lastSnapshots) != 2 {
		t.Fatalf("stored snapshots = %d, want 2", len(store.lastSnapshots))
	}
	// The surviving Jane Doe snapshot counts a single payment.
	for _, snap := range store.lastSnapshots {
		if snap.MemberName == "Jane Doe" && snap.TotalPayments != 1 {
			t.Fatalf("Jane Doe payments = %d, want 1", snap.TotalPayments)
		}
	}
}
