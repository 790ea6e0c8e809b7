package dto

import "github.com/clubops/membership-backend/internal/models"

// ImportOptions controls how an upload is processed.
type ImportOptions struct {
	// ExcludeDuplicates drops every non-first member of each duplicate
	// group before reconciliation (first occurrence always kept).
	ExcludeDuplicates bool
}

// ImportResult summarizes one processed upload.
type ImportResult struct {
	ImportID           string                 `json:"importId"`
	TotalRecords       int                    `json:"totalRecords"`
	CompleteRecords    int                    `json:"completeRecords"`
	IncompleteRecords  int                    `json:"incompleteRecords"`
	ExcludedDuplicates int                    `json:"excludedDuplicates"`
	Duplicates         models.DuplicateReport `json:"duplicates"`
	Members            int                    `json:"members"`
	UnknownPlanMembers int                    `json:"unknownPlanMembers"`
	NewPlans           []string               `json:"newPlans,omitempty"`
}
