package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/bookmypanditji/internal/chat/domain"
	"github.com/tair/bookmypanditji/internal/chat/usecase"
	"github.com/tair/bookmypanditji/internal/validation"
	"github.com/tair/bookmypanditji/pkg/httpx"
)

// SendMessageRequest is the body of POST /api/visitors/{visitor}/chat
type SendMessageRequest struct {
	Text string `json:"text"`
}

// ChatHandler serves the assistant transcript
type ChatHandler struct {
	service *usecase.ChatService
	metrics *httpx.Metrics
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service *usecase.ChatService, metrics *httpx.Metrics) *ChatHandler {
	return &ChatHandler{service: service, metrics: metrics}
}

func (h *ChatHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/chat/suggestions", h.metrics.Wrap("/api/chat/suggestions", h.Suggestions)).Methods("GET")
	router.HandleFunc("/api/visitors/{visitor}/chat", h.metrics.Wrap("/api/visitors/{visitor}/chat", h.Open)).Methods("GET")
	router.HandleFunc("/api/visitors/{visitor}/chat", h.metrics.Wrap("/api/visitors/{visitor}/chat", h.Send)).Methods("POST")
	router.HandleFunc("/api/visitors/{visitor}/chat", h.metrics.Wrap("/api/visitors/{visitor}/chat", h.Clear)).Methods("DELETE")
}

// Suggestions handles GET /api/chat/suggestions
func (h *ChatHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: domain.Suggestions})
}

// Open handles GET /api/visitors/{visitor}/chat
func (h *ChatHandler) Open(w http.ResponseWriter, r *http.Request) {
	history, err := h.service.Open(r.Context(), mux.Vars(r)["visitor"])
	if err != nil {
		validation.Respond(r.Context(), w, err, "Failed to load chat")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: history})
}

// Send handles POST /api/visitors/{visitor}/chat
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	history, err := h.service.Send(r.Context(), mux.Vars(r)["visitor"], req.Text)
	if err != nil {
		validation.Respond(r.Context(), w, err, "Failed to send message")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: history})
}

// Clear handles DELETE /api/visitors/{visitor}/chat
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	history, err := h.service.Clear(r.Context(), mux.Vars(r)["visitor"])
	if err != nil {
		validation.Respond(r.Context(), w, err, "Failed to clear chat")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: history})
}
