package query

import (
	"context"
	"fmt"

	"github.com/tair/bookmypanditji/internal/booking/domain"
)

// GetBookingQuery represents the query to get a booking by id
type GetBookingQuery struct {
	ID string
}

// GetBookingHandler handles get booking query
type GetBookingHandler struct {
	repo domain.BookingRepository
}

// NewGetBookingHandler creates a new get booking handler
func NewGetBookingHandler(repo domain.BookingRepository) *GetBookingHandler {
	return &GetBookingHandler{repo: repo}
}

// Handle executes the get booking query
func (h *GetBookingHandler) Handle(ctx context.Context, q GetBookingQuery) (*domain.Booking, error) {
	booking, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking %s: %w", q.ID, err)
	}
	return booking, nil
}
