package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/bookmypanditji/internal/registration/domain"
	"github.com/tair/bookmypanditji/internal/registration/usecase/command"
	"github.com/tair/bookmypanditji/internal/registration/usecase/query"
	"github.com/tair/bookmypanditji/internal/validation"
	"github.com/tair/bookmypanditji/pkg/httpx"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// RegistrationHandler serves the pandit and devotee registration wizards
type RegistrationHandler struct {
	startHandler    *command.StartRegistrationHandler
	navigateHandler *command.NavigateRegistrationHandler
	sessionHandler  *query.GetSessionHandler
	getHandler      *query.GetRegistrationHandler
	metrics         *httpx.Metrics
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(
	startHandler *command.StartRegistrationHandler,
	navigateHandler *command.NavigateRegistrationHandler,
	sessionHandler *query.GetSessionHandler,
	getHandler *query.GetRegistrationHandler,
	metrics *httpx.Metrics,
) *RegistrationHandler {
	return &RegistrationHandler{
		startHandler:    startHandler,
		navigateHandler: navigateHandler,
		sessionHandler:  sessionHandler,
		getHandler:      getHandler,
		metrics:         metrics,
	}
}

func (h *RegistrationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/registrations/sessions/{id}", h.metrics.Wrap("/api/registrations/sessions/{id}", h.GetSession)).Methods("GET")
	router.HandleFunc("/api/registrations/sessions/{id}/next", h.metrics.Wrap("/api/registrations/sessions/{id}/next", h.Next)).Methods("POST")
	router.HandleFunc("/api/registrations/sessions/{id}/back", h.metrics.Wrap("/api/registrations/sessions/{id}/back", h.Back)).Methods("POST")
	router.HandleFunc("/api/registrations/{flow:pandit|devotee}", h.metrics.Wrap("/api/registrations/{flow}", h.Start)).Methods("POST")
	router.HandleFunc("/api/registrations/{id}", h.metrics.Wrap("/api/registrations/{id}", h.GetRegistration)).Methods("GET")
}

// Start handles POST /api/registrations/{flow}
func (h *RegistrationHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess, err := h.startHandler.Handle(r.Context(), command.StartRegistrationCommand{Flow: mux.Vars(r)["flow"]})
	if err != nil {
		h.respondError(r.Context(), w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, httpx.Response{Success: true, Data: sess})
}

// GetSession handles GET /api/registrations/sessions/{id}
func (h *RegistrationHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessionHandler.Handle(r.Context(), query.GetSessionQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		h.respondError(r.Context(), w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: sess})
}

// Next handles POST /api/registrations/sessions/{id}/next with the current
// step's fields as the body
func (h *RegistrationHandler) Next(w http.ResponseWriter, r *http.Request) {
	var payload json.RawMessage
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess, err := h.navigateHandler.Next(r.Context(), command.NextStepCommand{
		SessionID: mux.Vars(r)["id"],
		Payload:   payload,
	})
	if errors.Is(err, context.Canceled) {
		logger.Warn(r.Context()).Msg("Registration submission cancelled by client")
		return
	}
	if err != nil {
		h.respondError(r.Context(), w, err)
		return
	}

	resp := httpx.Response{Success: true, Data: sess}
	if sess.Submitted {
		resp.Message = "Registration submitted"
	}
	httpx.RespondJSON(w, http.StatusOK, resp)
}

// Back handles POST /api/registrations/sessions/{id}/back
func (h *RegistrationHandler) Back(w http.ResponseWriter, r *http.Request) {
	sess, err := h.navigateHandler.Previous(r.Context(), command.PreviousStepCommand{SessionID: mux.Vars(r)["id"]})
	if err != nil {
		h.respondError(r.Context(), w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: sess})
}

// GetRegistration handles GET /api/registrations/{id}
func (h *RegistrationHandler) GetRegistration(w http.ResponseWriter, r *http.Request) {
	reg, err := h.getHandler.Handle(r.Context(), query.GetRegistrationQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		h.respondError(r.Context(), w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: reg})
}

func (h *RegistrationHandler) respondError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionMissing):
		httpx.RespondError(w, http.StatusNotFound, "Registration session not found")
	case errors.Is(err, domain.ErrRegistrationNotFound):
		httpx.RespondError(w, http.StatusNotFound, "Registration not found")
	case errors.Is(err, domain.ErrUnknownFlow):
		httpx.RespondError(w, http.StatusNotFound, "Unknown registration flow")
	case errors.Is(err, domain.ErrSubmitted), errors.Is(err, domain.ErrSubmitting), errors.Is(err, domain.ErrFirstStep):
		httpx.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidPayload):
		httpx.RespondError(w, http.StatusBadRequest, "Invalid step data")
	default:
		validation.Respond(ctx, w, err, "Failed to process registration")
	}
}
