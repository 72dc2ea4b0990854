package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/bookmypanditji/internal/collection/domain"
	"github.com/tair/bookmypanditji/internal/collection/usecase"
	"github.com/tair/bookmypanditji/internal/validation"
	"github.com/tair/bookmypanditji/pkg/httpx"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// paths map URL segments to stored lists
var paths = map[string]domain.List{
	"wishlist": domain.Wishlist,
	"compare":  domain.CompareList,
	"recent":   domain.RecentlyViewed,
}

// CollectionHandler serves per-visitor saved lists
type CollectionHandler struct {
	service *usecase.CollectionService
	metrics *httpx.Metrics
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(service *usecase.CollectionService, metrics *httpx.Metrics) *CollectionHandler {
	return &CollectionHandler{service: service, metrics: metrics}
}

func (h *CollectionHandler) RegisterRoutes(router *mux.Router) {
	base := "/api/visitors/{visitor}"
	router.HandleFunc(base+"/{list:wishlist|compare|recent}", h.metrics.Wrap(base+"/{list}", h.GetList)).Methods("GET")
	router.HandleFunc(base+"/wishlist/{id}", h.metrics.Wrap(base+"/wishlist/{id}", h.ToggleWishlist)).Methods("POST")
	router.HandleFunc(base+"/compare/{id}", h.metrics.Wrap(base+"/compare/{id}", h.ToggleCompare)).Methods("POST")
	router.HandleFunc(base+"/recent/{id}", h.metrics.Wrap(base+"/recent/{id}", h.View)).Methods("POST")
	router.HandleFunc(base+"/recent", h.metrics.Wrap(base+"/recent", h.ClearRecent)).Methods("DELETE")
}

// GetList handles GET /api/visitors/{visitor}/{list}
func (h *CollectionHandler) GetList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := h.service.Get(r.Context(), paths[vars["list"]], vars["visitor"])
	h.respond(w, r, res, err)
}

// ToggleWishlist handles POST /api/visitors/{visitor}/wishlist/{id}
func (h *CollectionHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := h.service.ToggleWishlist(r.Context(), vars["visitor"], vars["id"])
	h.respond(w, r, res, err)
}

// ToggleCompare handles POST /api/visitors/{visitor}/compare/{id}
func (h *CollectionHandler) ToggleCompare(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := h.service.ToggleCompare(r.Context(), vars["visitor"], vars["id"])
	h.respond(w, r, res, err)
}

// View handles POST /api/visitors/{visitor}/recent/{id}
func (h *CollectionHandler) View(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := h.service.View(r.Context(), vars["visitor"], vars["id"])
	h.respond(w, r, res, err)
}

// ClearRecent handles DELETE /api/visitors/{visitor}/recent
func (h *CollectionHandler) ClearRecent(w http.ResponseWriter, r *http.Request) {
	visitor := mux.Vars(r)["visitor"]
	if err := h.service.ClearRecent(r.Context(), visitor); err != nil {
		logger.Error(r.Context()).Err(err).Str("visitor", visitor).Msg("Failed to clear recently viewed")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to clear recently viewed")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Message: "Recently viewed cleared"})
}

func (h *CollectionHandler) respond(w http.ResponseWriter, r *http.Request, res *usecase.Result, err error) {
	if errors.Is(err, domain.ErrUnknownItem) {
		httpx.RespondError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		validation.Respond(r.Context(), w, err, "Failed to update list")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: res})
}
