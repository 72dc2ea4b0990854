package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tair/bookmypanditji/api-gateway/config"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// Status values reported by the gateway
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// UpstreamHealth is the result of probing the catalog service
type UpstreamHealth struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	URL       string    `json:"url"`
	LatencyMs int64     `json:"latency_ms"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// GatewayHealth is the readiness report of the gateway
type GatewayHealth struct {
	Gateway       string         `json:"gateway"`
	Status        string         `json:"status"`
	Upstream      UpstreamHealth `json:"upstream"`
	UptimeSeconds float64        `json:"uptime_seconds"`
}

// HealthChecker probes the catalog service health endpoint. The catalog
// answers 503 there until its snapshot is loaded.
type HealthChecker struct {
	name      string
	upstream  config.UpstreamConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(name string, upstream config.UpstreamConfig) *HealthChecker {
	return &HealthChecker{
		name:      name,
		upstream:  upstream,
		client:    &http.Client{Timeout: 5 * time.Second},
		startTime: time.Now(),
	}
}

// CheckUpstream probes the catalog service once
func (h *HealthChecker) CheckUpstream(ctx context.Context) UpstreamHealth {
	start := time.Now()
	result := UpstreamHealth{
		Name:      h.upstream.Name,
		URL:       h.upstream.BaseURL,
		Status:    StatusUnhealthy,
		Timestamp: start,
	}
	defer func() {
		if result.Status != StatusHealthy {
			logger.Warn(ctx).
				Str("service", result.Name).
				Str("error", result.Error).
				Msg("Upstream health check failed")
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.upstream.BaseURL+h.upstream.HealthCheck, nil)
	if err != nil {
		result.Error = fmt.Sprintf("Failed to create request: %v", err)
		return result
	}

	resp, err := h.client.Do(req)
	result.LatencyMs = time.Since(start).Milliseconds()
	if err != nil {
		result.Error = fmt.Sprintf("Failed to reach service: %v", err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Sprintf("Unexpected status code: %d", resp.StatusCode)
		return result
	}
	result.Status = StatusHealthy
	return result
}

// Ready reports gateway readiness, which follows the catalog service
func (h *HealthChecker) Ready(ctx context.Context) GatewayHealth {
	upstream := h.CheckUpstream(ctx)
	return GatewayHealth{
		Gateway:       h.name,
		Status:        upstream.Status,
		Upstream:      upstream,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
}

// QuickCheck reports the gateway itself without probing the upstream
func (h *HealthChecker) QuickCheck() map[string]any {
	return map[string]any{
		"status":    StatusHealthy,
		"gateway":   h.name,
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}
