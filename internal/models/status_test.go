package models

import "testing"

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"active", "expiring_soon", "lapsed", "annual_fee"} {
		status, ok := ParseStatus(raw)
		if !ok || string(status) != raw {
			t.Fatalf("ParseStatus(%q) = %q, %v", raw, status, ok)
		}
	}
	for _, raw := range []string{"", "all", "Active", "frozen"} {
		if _, ok := ParseStatus(raw); ok {
			t.Fatalf("ParseStatus(%q) unexpectedly accepted", raw)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status MembershipStatus
		want   string
	}{
		{StatusActive, "Active"},
		{StatusExpiringSoon, "Expiring Soon"},
		{StatusLapsed, "Lapsed"},
		{StatusAnnualFee, "Annual Fee"},
	}
	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Fatalf("%q.Label() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestRecordIdentity(t *testing.T) {
	withPlayer := &PaymentRecord{PayerName: "Jane Doe", PlayerName: "Junior Doe"}
	if got := withPlayer.Identity(); got != "Junior Doe" {
		t.Fatalf("identity = %q, want player name", got)
	}
	payerOnly := &PaymentRecord{PayerName: "Jane Doe"}
	if got := payerOnly.Identity(); got != "Jane Doe" {
		t.Fatalf("identity = %q, want payer name", got)
	}
}
