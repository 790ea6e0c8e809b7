package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrNotAWorkbook is returned when the input bytes cannot be decoded
	// as a spreadsheet workbook.
	ErrNotAWorkbook = errors.New("not a decodable workbook")
	// ErrEncryptedWorkbook is returned for password-protected workbooks,
	// which cannot be read without the password.
	ErrEncryptedWorkbook = errors.New("workbook is encrypted")
)

// Codec reads and writes xlsx workbooks. Decode only looks at the first
// worksheet; Encode produces a single-sheet workbook.
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses workbook bytes into header-keyed rows of tagged cells.
// The first row is treated as the header row; columns with a blank header
// are ignored. Cells are decoded from their raw stored value, so date
// cells surface as their serial number (the caller decides what is a
// date, matching how spreadsheet formats actually store them).
func (c *Codec) Decode(data []byte) (*Sheet, error) {
	if len(data) == 0 {
		return nil, ErrNotAWorkbook
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, excelize.ErrWorkbookPassword) ||
			strings.Contains(strings.ToLower(err.Error()), "encrypt") {
			return nil, fmt.Errorf("%w: %v", ErrEncryptedWorkbook, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotAWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Sheet{}, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAWorkbook, err)
	}
	if len(rows) == 0 {
		return &Sheet{}, nil
	}

	type column struct {
		idx  int
		name string
	}
	var cols []column
	for i, h := range rows[0] {
		name := strings.TrimSpace(h)
		if name == "" {
			continue
		}
		cols = append(cols, column{idx: i, name: name})
	}

	sheet := &Sheet{Headers: make([]string, 0, len(cols))}
	for _, col := range cols {
		sheet.Headers = append(sheet.Headers, col.name)
	}

	for _, raw := range rows[1:] {
		row := make(Row, len(cols))
		for _, col := range cols {
			var value string
			if col.idx < len(raw) {
				value = raw[col.idx]
			}
			row[col.name] = classifyCell(value)
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

// classifyCell maps a raw stored value onto the Cell union. Numeric
// content (including date serials) becomes a Number; everything else
// stays Text.
func classifyCell(raw string) Cell {
	if raw == "" {
		return Empty()
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return Number(n)
	}
	return Text(raw)
}

// Encode writes tabular rows into a single-sheet workbook. colWidths are
// applied positionally; extra entries are ignored.
func (c *Codec) Encode(sheetName string, rows [][]string, colWidths []float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, ref, &cells); err != nil {
			return nil, err
		}
	}

	for i, width := range colWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
