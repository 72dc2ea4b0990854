package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	bookingRepository "github.com/tair/bookmypanditji/internal/booking/repository"
	catalogRepository "github.com/tair/bookmypanditji/internal/catalog/repository"
	"github.com/tair/bookmypanditji/internal/config"
	registrationRepository "github.com/tair/bookmypanditji/internal/registration/repository"
	"github.com/tair/bookmypanditji/kafka"
	"github.com/tair/bookmypanditji/pkg/kvstore"
)

func newApp(t *testing.T) *App {
	t.Helper()
	infra := Infrastructure{
		Catalog:       catalogRepository.NewMemoryCatalogRepository(catalogRepository.SeedItems()),
		Bookings:      bookingRepository.NewMemoryBookingRepository(),
		Registrations: registrationRepository.NewMemoryRegistrationRepository(),
		Store:         kvstore.NewMemory(),
		Publisher:     kafka.NopPublisher{},
		Registerer:    prometheus.NewRegistry(),
	}
	a, err := InitializeApp(config.Config{ProductsPageSize: 8, PanditsPageSize: 6}, infra)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return a
}

func get(a *App, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthFollowsSnapshot(t *testing.T) {
	a := newApp(t)
	if rec := get(a, "/health"); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("before load: %d", rec.Code)
	}
	if rec := get(a, "/api/products"); rec.Code != http.StatusOK {
		t.Fatalf("products: %d", rec.Code)
	}
	if rec := get(a, "/health"); rec.Code != http.StatusOK {
		t.Fatalf("after load: %d", rec.Code)
	}
}

func TestProductsFirstPage(t *testing.T) {
	rec := get(newApp(t), "/api/products?minPrice=500&maxPrice=1500&sort=price-low-high")
	var body struct {
		Data struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
			Total int `json:"total"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, it := range body.Data.Items {
		ids = append(ids, it.ID)
	}
	if strings.Join(ids, ",") != "8,2,1,10,7" {
		t.Fatalf("ids %v", ids)
	}
}

func TestModulesAreMounted(t *testing.T) {
	a := newApp(t)
	for _, path := range []string{
		"/api/pandits",
		"/api/products/stats",
		"/api/chat/suggestions",
		"/api/visitors/v1/wishlist",
		"/api/visitors/v1/chat",
	} {
		if rec := get(a, path); rec.Code != http.StatusOK {
			t.Errorf("%s: %d", path, rec.Code)
		}
	}
}
