package spreadsheet

import "time"

// CellKind discriminates the value held by a Cell. Source spreadsheets mix
// numbers, text, and dates within the same column, so consumers must
// switch on the kind for every field.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindNumber
	KindText
	KindDate
)

// Cell is a tagged union over the value shapes a worksheet cell can take.
// Exactly one of Number, Text, Date is meaningful, selected by Kind.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
	Date   time.Time
}

func Empty() Cell {
	return Cell{Kind: KindEmpty}
}

func Number(n float64) Cell {
	return Cell{Kind: KindNumber, Number: n}
}

func Text(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

func Date(t time.Time) Cell {
	return Cell{Kind: KindDate, Date: t}
}

// IsEmpty reports whether the cell holds no usable value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty || (c.Kind == KindText && c.Text == "")
}

// Row maps a header name to the cell under it for one worksheet row.
type Row map[string]Cell

// Sheet is the decoded first worksheet: the header row in source order
// plus one Row per data row.
type Sheet struct {
	Headers []string
	Rows    []Row
}
