package reconcile

import (
	"strconv"
	"strings"
	"time"

	"github.com/clubops/membership-backend/internal/models"
	"github.com/clubops/membership-backend/internal/spreadsheet"
)

// serialEpoch is the spreadsheet serial-date epoch: two days before
// 1900-01-01, absorbing the format's phantom 1900 leap day so that
// observed serials land on the right calendar date.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// currencyRunes are stripped from textual amounts before numeric parsing.
const currencyRunes = "$€£¥,"

// textDateLayouts are tried in order when a date arrives as text.
var textDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// NormalizeRow converts one raw row into a typed PaymentRecord using the
// column mapping. The second return is false when the row is blank
// (payer, amount, date, and plan all absent) and should be dropped
// before completeness is even considered.
func NormalizeRow(row spreadsheet.Row, mapping ColumnMapping) (*models.PaymentRecord, bool) {
	record := &models.PaymentRecord{
		PayerName:       textField(row, mapping, FieldPayerName),
		PlayerName:      textField(row, mapping, FieldPlayerName),
		PaymentAmount:   amountField(row, mapping, FieldPaymentAmount),
		PaymentDate:     dateField(row, mapping, FieldPaymentDate),
		PlanName:        textField(row, mapping, FieldPlanName),
		TicketDetails:   textField(row, mapping, FieldTicketDetails),
		RecurringStatus: textField(row, mapping, FieldRecurringStatus),
		DateOfBirth:     dateField(row, mapping, FieldDateOfBirth),
		Raw:             row,
	}

	if record.PayerName == "" && record.PaymentAmount == 0 &&
		record.PaymentDate == nil && record.PlanName == "" {
		return nil, false
	}

	record.IsComplete = validateRecord(record)
	return record, true
}

// validateRecord reports completeness: payer, plan, date present and a
// positive amount. A zero amount deliberately fails the check, which is
// how unparseable amounts are signalled downstream.
func validateRecord(r *models.PaymentRecord) bool {
	return r.PayerName != "" &&
		r.PaymentAmount > 0 &&
		r.PaymentDate != nil &&
		r.PlanName != ""
}

func cellFor(row spreadsheet.Row, mapping ColumnMapping, f Field) (spreadsheet.Cell, bool) {
	header, ok := mapping.Header(f)
	if !ok {
		return spreadsheet.Empty(), false
	}
	cell, ok := row[header]
	if !ok {
		return spreadsheet.Empty(), false
	}
	return cell, true
}

func textField(row spreadsheet.Row, mapping ColumnMapping, f Field) string {
	cell, ok := cellFor(row, mapping, f)
	if !ok {
		return ""
	}
	switch cell.Kind {
	case spreadsheet.KindEmpty:
		return ""
	case spreadsheet.KindText:
		return strings.TrimSpace(cell.Text)
	case spreadsheet.KindNumber:
		return strconv.FormatFloat(cell.Number, 'f', -1, 64)
	case spreadsheet.KindDate:
		return cell.Date.Format("2006-01-02")
	}
	return ""
}

func amountField(row spreadsheet.Row, mapping ColumnMapping, f Field) float64 {
	cell, ok := cellFor(row, mapping, f)
	if !ok {
		return 0
	}
	switch cell.Kind {
	case spreadsheet.KindEmpty, spreadsheet.KindDate:
		return 0
	case spreadsheet.KindNumber:
		return cell.Number
	case spreadsheet.KindText:
		return parseAmountText(cell.Text)
	}
	return 0
}

// parseAmountText strips currency symbols, group separators, and
// whitespace before the numeric parse. Anything that still fails to
// parse becomes 0, not an error.
func parseAmountText(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(currencyRunes, r) || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

func dateField(row spreadsheet.Row, mapping ColumnMapping, f Field) *time.Time {
	cell, ok := cellFor(row, mapping, f)
	if !ok {
		return nil
	}
	switch cell.Kind {
	case spreadsheet.KindEmpty:
		return nil
	case spreadsheet.KindNumber:
		return serialToDate(cell.Number)
	case spreadsheet.KindText:
		return parseDateText(cell.Text)
	case spreadsheet.KindDate:
		d := Midnight(cell.Date)
		return &d
	}
	return nil
}

// serialToDate converts a spreadsheet serial day count to a calendar
// date. Fractional day parts (times of day) are discarded.
func serialToDate(serial float64) *time.Time {
	if serial <= 0 {
		return nil
	}
	d := Midnight(serialEpoch.Add(time.Duration(serial * 24 * float64(time.Hour))))
	return &d
}

func parseDateText(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := Midnight(t)
			return &d
		}
	}
	return nil
}

// Midnight truncates a time to its calendar date at UTC midnight. All
// date arithmetic in the engine happens on these values.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
