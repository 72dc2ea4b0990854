package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookmypanditji/internal/catalog/repository"
	"github.com/tair/bookmypanditji/internal/catalog/usecase/query"
	"github.com/tair/bookmypanditji/pkg/httpx"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	repo := repository.NewMemoryCatalogRepository(repository.SeedItems())
	h := NewCatalogHandler(
		query.NewListItemsHandler(repo),
		query.NewGetItemHandler(repo),
		query.NewGetStatsHandler(repo),
		query.NewRelatedItemsHandler(repo),
		PageSizes{Products: 8, Pandits: 6},
		httpx.NewMetrics(prometheus.NewRegistry(), "test"),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

type listBody struct {
	Success bool `json:"success"`
	Data    struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Total      int    `json:"total"`
		TotalPages int    `json:"total_pages"`
		Query      string `json:"query"`
	} `json:"data"`
}

func TestListProducts(t *testing.T) {
	router := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/products?minPrice=500&maxPrice=1500&sort=price-low-high&category=all", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var body listBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Total != 5 || len(body.Data.Items) != 5 || body.Data.Items[0].ID != "8" {
		t.Fatalf("unexpected listing %+v", body.Data)
	}
	if body.Data.Query != "maxPrice=1500&minPrice=500&sort=price-low-high" {
		t.Fatalf("canonical query = %q", body.Data.Query)
	}
}

func TestListOutOfRangePageIsEmpty(t *testing.T) {
	router := newRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pandits?page=9", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body listBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Items == nil || len(body.Data.Items) != 0 || body.Data.TotalPages != 1 {
		t.Fatalf("unexpected page %+v", body.Data)
	}
}

func TestGetItem(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pandits/3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/404", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestStatsRouteIsNotAnID(t *testing.T) {
	router := newRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/stats", nil))

	var body struct {
		Data struct {
			Total int `json:"total"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Code != http.StatusOK || body.Data.Total != 12 {
		t.Fatalf("status %d total %d", rec.Code, body.Data.Total)
	}
}
