package models

import "strings"

// MembershipStatus is the derived standing of a member relative to today.
type MembershipStatus string

const (
	StatusActive       MembershipStatus = "active"
	StatusExpiringSoon MembershipStatus = "expiring_soon"
	StatusLapsed       MembershipStatus = "lapsed"
	StatusAnnualFee    MembershipStatus = "annual_fee"
)

// ParseStatus accepts the wire form of a status. "" and "all" are not
// statuses; callers treat them as "no filter".
func ParseStatus(s string) (MembershipStatus, bool) {
	switch MembershipStatus(s) {
	case StatusActive, StatusExpiringSoon, StatusLapsed, StatusAnnualFee:
		return MembershipStatus(s), true
	}
	return "", false
}

// Label renders the status for humans: underscores become spaces and
// each word is title-cased ("expiring_soon" → "Expiring Soon").
func (s MembershipStatus) Label() string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
