package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookmypanditji/internal/booking/domain"
	"github.com/tair/bookmypanditji/kafka"
	"github.com/tair/bookmypanditji/pkg/delay"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// CreateBookingCommand represents the command to submit a booking
type CreateBookingCommand struct {
	Request domain.Request
}

// CreateBookingHandler handles create booking command
type CreateBookingHandler struct {
	quoter    *QuoteBookingHandler
	repo      domain.BookingRepository
	publisher kafka.EventPublisher
	settings  Settings
	created   *prometheus.CounterVec
}

// NewCreateBookingHandler creates a new create booking handler
func NewCreateBookingHandler(
	quoter *QuoteBookingHandler,
	repo domain.BookingRepository,
	publisher kafka.EventPublisher,
	settings Settings,
	reg prometheus.Registerer,
) *CreateBookingHandler {
	created := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings accepted",
		},
		[]string{"booking_type", "add_on"},
	)
	reg.MustRegister(created)

	return &CreateBookingHandler{
		quoter:    quoter,
		repo:      repo,
		publisher: publisher,
		settings:  settings,
		created:   created,
	}
}

// Handle validates and prices the request, waits out the submission delay,
// stores the booking and announces it. Cancelling ctx during the delay
// abandons the submission.
func (h *CreateBookingHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*domain.Booking, error) {
	quote, err := h.quoter.Handle(ctx, QuoteBookingCommand{Request: cmd.Request})
	if err != nil {
		return nil, err
	}

	if err := delay.Wait(ctx, h.settings.SubmitDelay); err != nil {
		return nil, fmt.Errorf("booking submission abandoned: %w", err)
	}

	req := cmd.Request
	booking := &domain.Booking{
		ID:           uuid.NewString(),
		PanditID:     quote.PanditID,
		PanditName:   quote.PanditName,
		Service:      quote.Service,
		CeremonyAt:   quote.CeremonyAt,
		TimeSlot:     req.TimeSlot,
		Address:      req.Address,
		Requirements: req.Requirements,
		BookingType:  string(quote.BookingType),
		IncludeAddOn: req.IncludeAddOn,
		BasePrice:    quote.Breakdown.BasePrice,
		ServiceFee:   quote.Breakdown.ServiceFee,
		PlatformFee:  quote.Breakdown.PlatformFee,
		Total:        quote.Breakdown.Total,
		Status:       domain.StatusPending,
		VisitorID:    req.VisitorID,
		CreatedAt:    h.settings.now(),
	}

	if err := h.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	addOn := "false"
	if booking.IncludeAddOn {
		addOn = "true"
	}
	h.created.WithLabelValues(booking.BookingType, addOn).Inc()

	// Events are best effort; the booking is already stored
	if err := h.publisher.PublishBookingCreated(ctx, kafka.BookingCreatedEvent{
		BookingID:    booking.ID,
		PanditID:     booking.PanditID,
		Service:      booking.Service,
		BookingType:  booking.BookingType,
		IncludeAddOn: booking.IncludeAddOn,
		CeremonyAt:   booking.CeremonyAt,
		Total:        booking.Total.String(),
		VisitorID:    booking.VisitorID,
	}); err != nil {
		logger.Warn(ctx).Err(err).Str("booking_id", booking.ID).Msg("Failed to publish booking event")
	}

	logger.Info(ctx).
		Str("booking_id", booking.ID).
		Str("pandit_id", booking.PanditID).
		Str("service", booking.Service).
		Str("booking_type", booking.BookingType).
		Str("total", booking.Total.String()).
		Msg("Booking created")

	return booking, nil
}
