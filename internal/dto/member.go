package dto

// MemberQuery narrows and orders the member listing and export.
// Status and Plan accept "" or "all" as no filter; Sort is a snapshot
// field name ("" = member name); Direction is "asc" or "desc".
type MemberQuery struct {
	Status    string
	Plan      string
	Sort      string
	Direction string
}

// MemberSummary mirrors the per-status counts shown next to the listing
// filters, plus session-wide totals.
type MemberSummary struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	ExpiringSoon    int     `json:"expiringSoon"`
	Lapsed          int     `json:"lapsed"`
	AnnualFee       int     `json:"annualFee"`
	TotalPayments   int     `json:"totalPayments"`
	TotalAmountPaid float64 `json:"totalAmountPaid"`
}

// ExportFile is a generated workbook ready to be sent as an attachment.
type ExportFile struct {
	Filename string
	Data     []byte
}
