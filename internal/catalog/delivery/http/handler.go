package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
	"github.com/tair/bookmypanditji/internal/catalog/usecase/query"
	"github.com/tair/bookmypanditji/pkg/httpx"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// PageSizes fixes how many items each listing shows per page
type PageSizes struct {
	Products int
	Pandits  int
}

// CatalogHandler handles HTTP requests for the product and pandit listings
type CatalogHandler struct {
	listHandler    *query.ListItemsHandler
	getHandler     *query.GetItemHandler
	statsHandler   *query.GetStatsHandler
	relatedHandler *query.RelatedItemsHandler

	pageSizes PageSizes
	metrics   *httpx.Metrics
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	listHandler *query.ListItemsHandler,
	getHandler *query.GetItemHandler,
	statsHandler *query.GetStatsHandler,
	relatedHandler *query.RelatedItemsHandler,
	pageSizes PageSizes,
	metrics *httpx.Metrics,
) *CatalogHandler {
	return &CatalogHandler{
		listHandler:    listHandler,
		getHandler:     getHandler,
		statsHandler:   statsHandler,
		relatedHandler: relatedHandler,
		pageSizes:      pageSizes,
		metrics:        metrics,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	for _, view := range []struct {
		prefix string
		kind   domain.Kind
	}{
		{"/api/products", domain.KindProduct},
		{"/api/pandits", domain.KindPandit},
	} {
		p, kind := view.prefix, view.kind
		router.HandleFunc(p, h.metrics.Wrap(p, h.List(kind))).Methods("GET")
		router.HandleFunc(p+"/stats", h.metrics.Wrap(p+"/stats", h.Stats(kind))).Methods("GET")
		router.HandleFunc(p+"/{id}", h.metrics.Wrap(p+"/{id}", h.Get(kind))).Methods("GET")
		router.HandleFunc(p+"/{id}/related", h.metrics.Wrap(p+"/{id}/related", h.Related(kind))).Methods("GET")
	}
}

func (h *CatalogHandler) defaults(kind domain.Kind) domain.Defaults {
	d := domain.DefaultsFor(kind)
	switch {
	case kind == domain.KindProduct && h.pageSizes.Products > 0:
		d.PageSize = h.pageSizes.Products
	case kind == domain.KindPandit && h.pageSizes.Pandits > 0:
		d.PageSize = h.pageSizes.Pandits
	}
	return d
}

// List handles GET /api/products and GET /api/pandits
func (h *CatalogHandler) List(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		d := h.defaults(kind)
		criteria := domain.ParseCriteria(r.URL.Query(), d)

		result, err := h.listHandler.Handle(ctx, query.ListItemsQuery{
			Kind:     kind,
			Criteria: criteria,
			Defaults: d,
		})
		if err != nil {
			logger.Error(ctx).Err(err).Str("kind", string(kind)).Msg("Failed to list catalog")
			httpx.RespondError(w, http.StatusInternalServerError, "Failed to list catalog")
			return
		}

		logger.Debug(ctx).
			Str("kind", string(kind)).
			Str("query", result.Query).
			Int("total", result.Total).
			Int("page", result.Page.Page).
			Msg("Catalog listed")

		httpx.RespondJSON(w, http.StatusOK, httpx.Response{
			Success: true,
			Data:    result,
		})
	}
}

// Get handles GET /api/{products|pandits}/{id}
func (h *CatalogHandler) Get(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := mux.Vars(r)["id"]

		item, err := h.getHandler.Handle(ctx, query.GetItemQuery{Kind: kind, ID: id})
		if errors.Is(err, domain.ErrItemNotFound) {
			httpx.RespondError(w, http.StatusNotFound, string(kind)+" not found")
			return
		}
		if err != nil {
			logger.Error(ctx).Err(err).Str("id", id).Msg("Failed to get catalog item")
			httpx.RespondError(w, http.StatusInternalServerError, "Failed to get item")
			return
		}

		httpx.RespondJSON(w, http.StatusOK, httpx.Response{
			Success: true,
			Data:    item,
		})
	}
}

// Stats handles GET /api/{products|pandits}/stats
func (h *CatalogHandler) Stats(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		stats, err := h.statsHandler.Handle(ctx, query.GetStatsQuery{Kind: kind})
		if err != nil {
			logger.Error(ctx).Err(err).Msg("Failed to get catalog stats")
			httpx.RespondError(w, http.StatusInternalServerError, "Failed to get stats")
			return
		}

		httpx.RespondJSON(w, http.StatusOK, httpx.Response{
			Success: true,
			Data:    stats,
		})
	}
}

// Related handles GET /api/{products|pandits}/{id}/related
func (h *CatalogHandler) Related(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := mux.Vars(r)["id"]

		items, err := h.relatedHandler.Handle(ctx, query.RelatedItemsQuery{Kind: kind, ID: id})
		if errors.Is(err, domain.ErrItemNotFound) {
			httpx.RespondError(w, http.StatusNotFound, string(kind)+" not found")
			return
		}
		if err != nil {
			logger.Error(ctx).Err(err).Str("id", id).Msg("Failed to get related items")
			httpx.RespondError(w, http.StatusInternalServerError, "Failed to get related items")
			return
		}

		httpx.RespondJSON(w, http.StatusOK, httpx.Response{
			Success: true,
			Data:    items,
		})
	}
}
