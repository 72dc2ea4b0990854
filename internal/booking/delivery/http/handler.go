package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/bookmypanditji/internal/booking/domain"
	"github.com/tair/bookmypanditji/internal/booking/usecase/command"
	"github.com/tair/bookmypanditji/internal/booking/usecase/query"
	"github.com/tair/bookmypanditji/internal/validation"
	"github.com/tair/bookmypanditji/pkg/httpx"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// BookingHandler handles HTTP requests for bookings using CQRS pattern
type BookingHandler struct {
	quoteHandler  *command.QuoteBookingHandler
	createHandler *command.CreateBookingHandler
	getHandler    *query.GetBookingHandler
	metrics       *httpx.Metrics
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(
	quoteHandler *command.QuoteBookingHandler,
	createHandler *command.CreateBookingHandler,
	getHandler *query.GetBookingHandler,
	metrics *httpx.Metrics,
) *BookingHandler {
	return &BookingHandler{
		quoteHandler:  quoteHandler,
		createHandler: createHandler,
		getHandler:    getHandler,
		metrics:       metrics,
	}
}

func (h *BookingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/bookings/quote", h.metrics.Wrap("/api/bookings/quote", h.QuoteBooking)).Methods("POST")
	router.HandleFunc("/api/bookings", h.metrics.Wrap("/api/bookings", h.CreateBooking)).Methods("POST")
	router.HandleFunc("/api/bookings/{id}", h.metrics.Wrap("/api/bookings/{id}", h.GetBooking)).Methods("GET")
}

// QuoteBooking handles POST /api/bookings/quote
func (h *BookingHandler) QuoteBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.Request
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := h.quoteHandler.Handle(r.Context(), command.QuoteBookingCommand{Request: req})
	if err != nil {
		validation.Respond(r.Context(), w, err, "Failed to quote booking")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success: true,
		Data:    quote,
	})
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.Request
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.createHandler.Handle(r.Context(), command.CreateBookingCommand{Request: req})
	if errors.Is(err, context.Canceled) {
		logger.Warn(r.Context()).Msg("Booking submission cancelled by client")
		return
	}
	if err != nil {
		validation.Respond(r.Context(), w, err, "Failed to create booking")
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, httpx.Response{
		Success: true,
		Message: "Booking request received",
		Data:    booking,
	})
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	booking, err := h.getHandler.Handle(r.Context(), query.GetBookingQuery{ID: id})
	if errors.Is(err, domain.ErrBookingNotFound) {
		httpx.RespondError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("booking_id", id).Msg("Failed to get booking")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to get booking")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success: true,
		Data:    booking,
	})
}
