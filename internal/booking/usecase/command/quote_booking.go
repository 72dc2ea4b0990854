package command

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/tair/bookmypanditji/internal/booking/domain"
	catalog "github.com/tair/bookmypanditji/internal/catalog/domain"
	"github.com/tair/bookmypanditji/internal/pricing"
	"github.com/tair/bookmypanditji/internal/validation"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// Settings tune how bookings are checked and submitted
type Settings struct {
	SubmitDelay time.Duration
	Zone        *time.Location
	Now         func() time.Time
}

func (s Settings) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s Settings) zone() *time.Location {
	if s.Zone != nil {
		return s.Zone
	}
	return domain.CeremonyZone
}

// QuoteBookingCommand asks for the price of a booking request
type QuoteBookingCommand struct {
	Request domain.Request
}

// Quote is a validated and priced booking request
type Quote struct {
	PanditID    string              `json:"pandit_id"`
	PanditName  string              `json:"pandit_name"`
	Service     string              `json:"service"`
	CeremonyAt  time.Time           `json:"ceremony_at"`
	BookingType pricing.BookingType `json:"booking_type"`
	Breakdown   pricing.Breakdown   `json:"breakdown"`
}

// QuoteBookingHandler handles quote booking command
type QuoteBookingHandler struct {
	catalog  catalog.CatalogRepository
	settings Settings
}

// NewQuoteBookingHandler creates a new quote booking handler
func NewQuoteBookingHandler(repo catalog.CatalogRepository, settings Settings) *QuoteBookingHandler {
	return &QuoteBookingHandler{catalog: repo, settings: settings}
}

// Handle validates the request and prices it. Field problems come back as
// validation.Errors, the premium window as a validation.RuleError.
func (h *QuoteBookingHandler) Handle(ctx context.Context, cmd QuoteBookingCommand) (*Quote, error) {
	req := cmd.Request
	req.Normalize()

	errs := req.Validate()
	if len(errs) > 0 {
		logger.Debug(ctx).Interface("fields", errs).Msg("Booking request rejected")
		return nil, errs
	}

	pandit, err := h.catalog.FindByID(ctx, catalog.KindPandit, req.PanditID)
	if errors.Is(err, catalog.ErrItemNotFound) {
		return nil, validation.Errors{"pandit_id": "Selected pandit is not available"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pandit: %w", err)
	}

	service, ok := pandit.FindService(req.Service)
	if !ok {
		errs.Add("service", "Please select a service offered by this pandit")
	}

	now := h.settings.now()
	ceremonyAt, err := req.CeremonyAt(h.settings.zone())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ceremony time: %w", err)
	}
	switch {
	case !ceremonyAt.After(now):
		errs.Add("date", "Please select a future date and time")
	case ceremonyAt.After(now.AddDate(0, domain.MaxAdvance, 0)):
		errs.Add("date", "Bookings can be made up to 3 months in advance")
	}
	if len(errs) > 0 {
		logger.Debug(ctx).Interface("fields", errs).Msg("Booking request rejected")
		return nil, errs
	}

	if err := pricing.CheckPremiumWindow(req.BookingType, ceremonyAt, now); err != nil {
		logger.Debug(ctx).
			Str("pandit_id", req.PanditID).
			Time("ceremony_at", ceremonyAt).
			Msg("Premium booking outside window")
		return nil, err
	}

	return &Quote{
		PanditID:    pandit.ID,
		PanditName:  pandit.Name,
		Service:     service.Name,
		CeremonyAt:  ceremonyAt,
		BookingType: req.BookingType,
		Breakdown: pricing.Compute(service.Price, pricing.Options{
			Type:         req.BookingType,
			IncludeAddOn: req.IncludeAddOn,
		}),
	}, nil
}
