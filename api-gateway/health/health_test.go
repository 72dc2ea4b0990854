package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tair/bookmypanditji/api-gateway/config"
)

func checker(t *testing.T, status int) *HealthChecker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return NewHealthChecker("api-gateway", config.UpstreamConfig{
		Name:        "catalog",
		BaseURL:     srv.URL,
		Timeout:     time.Second,
		HealthCheck: "/health",
	})
}

func TestReadyFollowsUpstream(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"catalog loaded", http.StatusOK, StatusHealthy},
		{"catalog warming", http.StatusServiceUnavailable, StatusUnhealthy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker(t, tt.status).Ready(context.Background())
			if got.Status != tt.want {
				t.Fatalf("status %s, want %s (%s)", got.Status, tt.want, got.Upstream.Error)
			}
			if got.Upstream.Name != "catalog" {
				t.Fatalf("upstream %q", got.Upstream.Name)
			}
		})
	}
}

func TestCheckUpstreamUnreachable(t *testing.T) {
	h := NewHealthChecker("api-gateway", config.UpstreamConfig{Name: "catalog", BaseURL: "http://127.0.0.1:1", HealthCheck: "/health"})
	got := h.CheckUpstream(context.Background())
	if got.Status != StatusUnhealthy || got.Error == "" {
		t.Fatalf("got %+v", got)
	}
}
