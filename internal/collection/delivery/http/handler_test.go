package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookmypanditji/internal/catalog/repository"
	"github.com/tair/bookmypanditji/internal/collection/usecase"
	"github.com/tair/bookmypanditji/pkg/httpx"
	"github.com/tair/bookmypanditji/pkg/kvstore"
)

func newRouter() *mux.Router {
	reg := prometheus.NewRegistry()
	svc := usecase.NewCollectionService(kvstore.NewMemory(), repository.NewMemoryCatalogRepository(repository.SeedItems()), reg)
	router := mux.NewRouter()
	NewCollectionHandler(svc, httpx.NewMetrics(reg, "test")).RegisterRoutes(router)
	return router
}

func do(router *mux.Router, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestCompareOverflowReturnsMessage(t *testing.T) {
	router := newRouter()
	for _, id := range []string{"1", "2", "3"} {
		if rec := do(router, http.MethodPost, "/api/visitors/abc/compare/"+id); rec.Code != http.StatusOK {
			t.Fatalf("compare %s: %d", id, rec.Code)
		}
	}

	rec := do(router, http.MethodPost, "/api/visitors/abc/compare/4")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", rec.Code)
	}
	var body httpx.Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "You can only compare up to 3 products. Please remove one first." {
		t.Fatalf("error %q", body.Error)
	}
}

func TestRecentAndClear(t *testing.T) {
	router := newRouter()
	do(router, http.MethodPost, "/api/visitors/abc/recent/2")
	do(router, http.MethodPost, "/api/visitors/abc/recent/5")

	rec := do(router, http.MethodGet, "/api/visitors/abc/recent")
	var body struct {
		Data usecase.Result `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data.IDs) != 2 || body.Data.IDs[0] != "5" {
		t.Fatalf("recent %v", body.Data.IDs)
	}

	if rec := do(router, http.MethodDelete, "/api/visitors/abc/recent"); rec.Code != http.StatusOK {
		t.Fatalf("clear status %d", rec.Code)
	}
}

func TestUnknownProductIs404(t *testing.T) {
	if rec := do(newRouter(), http.MethodPost, "/api/visitors/abc/wishlist/nope"); rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}
