// Package pricing computes what a booking costs. Amounts are decimals so the
// surcharges never pick up binary rounding noise.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/bookmypanditji/internal/validation"
)

// BookingType selects normal or expedited service
type BookingType string

const (
	BookingNormal  BookingType = "normal"
	BookingPremium BookingType = "premium"
)

// Valid reports whether t is a known booking type
func (t BookingType) Valid() bool {
	return t == BookingNormal || t == BookingPremium
}

// PremiumWindow is how close to the ceremony a premium booking must be made
const PremiumWindow = 48 * time.Hour

var (
	PremiumMultiplier = decimal.RequireFromString("1.5")
	AddOnMultiplier   = decimal.RequireFromString("1.2")
	PlatformFeeRate   = decimal.RequireFromString("0.05")
)

// Options are the choices that change the price of a booking
type Options struct {
	Type         BookingType `json:"booking_type"`
	IncludeAddOn bool        `json:"include_add_on"`
}

// Breakdown is the priced booking
type Breakdown struct {
	BasePrice   decimal.Decimal `json:"base_price"`
	ServiceFee  decimal.Decimal `json:"service_fee"`
	PlatformFee decimal.Decimal `json:"platform_fee"`
	Total       decimal.Decimal `json:"total"`
}

// Compute prices a service. The premium and samagri surcharges multiply the
// base independently. The platform fee is 5% of the service fee rounded to a
// whole unit, halves away from zero.
func Compute(base decimal.Decimal, opts Options) Breakdown {
	fee := base
	if opts.Type == BookingPremium {
		fee = fee.Mul(PremiumMultiplier)
	}
	if opts.IncludeAddOn {
		fee = fee.Mul(AddOnMultiplier)
	}

	platform := fee.Mul(PlatformFeeRate).Round(0)
	return Breakdown{
		BasePrice:   base,
		ServiceFee:  fee,
		PlatformFee: platform,
		Total:       fee.Add(platform),
	}
}

// CheckPremiumWindow rejects a premium booking for a ceremony more than
// PremiumWindow away from now
func CheckPremiumWindow(t BookingType, ceremonyAt, now time.Time) error {
	if t != BookingPremium {
		return nil
	}
	if ceremonyAt.Sub(now) > PremiumWindow {
		return validation.NewRuleError("booking_type",
			"Premium booking is only available for ceremonies within the next 48 hours")
	}
	return nil
}
