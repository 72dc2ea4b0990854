package validation

import (
	"fmt"
	"testing"
)

func TestErrorsKeepFirstMessage(t *testing.T) {
	e := Errors{}
	e.Required("date", " ", "Date")
	e.Add("date", "Date must be in the future")

	if got := e["date"]; got != "Date is required" {
		t.Fatalf("expected first message kept, got %q", got)
	}
	if e.Err() == nil {
		t.Fatal("expected non-nil error")
	}
	if (Errors{}).Err() != nil {
		t.Fatal("empty bag must not be an error")
	}
}

func TestAsHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w", Errors{"address": "Address is required"})
	fields, ok := AsErrors(wrapped)
	if !ok || fields["address"] == "" {
		t.Fatalf("expected field errors, got %v", wrapped)
	}

	rule := fmt.Errorf("quote: %w", NewRuleError("booking_type", "premium needs a close date"))
	r, ok := AsRule(rule)
	if !ok || r.Field != "booking_type" {
		t.Fatalf("expected rule error, got %v", rule)
	}
	if _, ok := AsErrors(rule); ok {
		t.Fatal("rule error must not look like field errors")
	}
}

func TestFormats(t *testing.T) {
	cases := []struct {
		name string
		fn   func(string) bool
		in   string
		want bool
	}{
		{"mobile ok", IsMobile, "9876543210", true},
		{"mobile short", IsMobile, "987654321", false},
		{"mobile letters", IsMobile, "98765abcde", false},
		{"pincode ok", IsPincode, "110001", true},
		{"pincode long", IsPincode, "1100011", false},
		{"ifsc ok", IsIFSC, "SBIN0001234", true},
		{"ifsc lower", IsIFSC, "sbin0abc123", true},
		{"ifsc no zero", IsIFSC, "SBIN1001234", false},
		{"email loose", IsEmail, "a@b.c", true},
		{"email loose missing dot", IsEmail, "a@b", false},
		{"email strict", IsStrictEmail, "Devotee.One@Example.org", true},
		{"email strict short tld", IsStrictEmail, "a@b.c", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.in); got != tc.want {
				t.Fatalf("%q: got %v want %v", tc.in, got, tc.want)
			}
		})
	}
}
