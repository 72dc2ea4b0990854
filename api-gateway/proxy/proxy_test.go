package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tair/bookmypanditji/api-gateway/config"
)

func newGateway(t *testing.T, upstream http.HandlerFunc) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	p := NewReverseProxy(config.UpstreamConfig{Name: "catalog", BaseURL: srv.URL + "/", Timeout: time.Second})
	app := fiber.New()
	app.All("/*", p.ProxyRequest)
	return app
}

func TestProxyForwardsPathQueryAndBody(t *testing.T) {
	var gotPath, gotQuery, gotBody, gotForwarded string
	app := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotForwarded = r.Header.Get("X-Forwarded-Host")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings?x=1", strings.NewReader(`{"pandit_id":"p1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if gotPath != "/api/bookings" || gotQuery != "x=1" {
		t.Fatalf("forwarded %s?%s", gotPath, gotQuery)
	}
	if gotBody != `{"pandit_id":"p1"}` {
		t.Fatalf("body %q", gotBody)
	}
	if gotForwarded == "" {
		t.Fatal("X-Forwarded-Host not set")
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type %q", ct)
	}
}

func TestProxyUnreachableUpstream(t *testing.T) {
	p := NewReverseProxy(config.UpstreamConfig{Name: "catalog", BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	app := fiber.New()
	app.All("/*", p.ProxyRequest)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status %d", resp.StatusCode)
	}
}
