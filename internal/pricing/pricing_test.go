package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/bookmypanditji/internal/validation"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		opts     Options
		service  string
		platform string
		total    string
	}{
		{"premium with add-on", "1000", Options{Type: BookingPremium, IncludeAddOn: true}, "1800", "90", "1890"},
		{"normal", "1000", Options{Type: BookingNormal}, "1000", "50", "1050"},
		{"add-on only", "2500", Options{Type: BookingNormal, IncludeAddOn: true}, "3000", "150", "3150"},
		{"premium only", "3500", Options{Type: BookingPremium}, "5250", "263", "5513"},
		{"half rounds up", "1010", Options{Type: BookingNormal}, "1010", "51", "1061"},
		{"below half rounds down", "1009", Options{Type: BookingNormal}, "1009", "50", "1059"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(decimal.RequireFromString(tc.base), tc.opts)
			check := func(field string, have decimal.Decimal, want string) {
				if !have.Equal(decimal.RequireFromString(want)) {
					t.Fatalf("%s = %s, want %s", field, have, want)
				}
			}
			check("service fee", got.ServiceFee, tc.service)
			check("platform fee", got.PlatformFee, tc.platform)
			check("total", got.Total, tc.total)
		})
	}
}

func TestCheckPremiumWindow(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	if err := CheckPremiumWindow(BookingPremium, now.Add(47*time.Hour), now); err != nil {
		t.Fatalf("47h out must be allowed: %v", err)
	}
	if err := CheckPremiumWindow(BookingPremium, now.Add(48*time.Hour), now); err != nil {
		t.Fatalf("exactly 48h out must be allowed: %v", err)
	}
	if err := CheckPremiumWindow(BookingNormal, now.AddDate(0, 0, 5), now); err != nil {
		t.Fatalf("normal bookings have no window: %v", err)
	}

	err := CheckPremiumWindow(BookingPremium, now.AddDate(0, 0, 5), now)
	rule, ok := validation.AsRule(err)
	if !ok || rule.Field != "booking_type" {
		t.Fatalf("expected booking_type rule error, got %v", err)
	}
}
