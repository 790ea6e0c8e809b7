package models

import "time"

// DuplicateGroup is one cluster of payments indistinguishable by
// (payment date, payer, amount). Indices point into the scanned record
// sequence; the first index is the occurrence that is kept when
// duplicates are excluded.
type DuplicateGroup struct {
	Key           string    `json:"key"`
	Indices       []int     `json:"indices"`
	PayerName     string    `json:"payerName"`
	PaymentDate   time.Time `json:"paymentDate"`
	PaymentAmount float64   `json:"paymentAmount"`
}

// DuplicateReport summarizes duplicate detection over a record sequence.
// TotalDuplicates counts repeats only, excluding the first occurrence of
// each group.
type DuplicateReport struct {
	HasDuplicates   bool             `json:"hasDuplicates"`
	Groups          []DuplicateGroup `json:"groups"`
	TotalDuplicates int              `json:"totalDuplicates"`
}
