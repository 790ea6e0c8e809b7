package models

// MembershipPlan is a named subscription tier. Names are unique within a
// registry; auto-detected plans get the registry's default duration.
type MembershipPlan struct {
	Name         string `json:"name"`
	DurationDays int    `json:"durationDays"`
	AutoDetected bool   `json:"autoDetected"`
}
