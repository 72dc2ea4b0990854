package proxy

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/bookmypanditji/api-gateway/config"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// hopHeaders are not forwarded in either direction
var hopHeaders = map[string]bool{
	"host":              true,
	"connection":        true,
	"content-length":    true,
	"keep-alive":        true,
	"transfer-encoding": true,
	"upgrade":           true,
}

// ReverseProxy forwards gateway requests to the catalog service
type ReverseProxy struct {
	upstream config.UpstreamConfig
	client   *http.Client
}

// NewReverseProxy creates a proxy whose outgoing requests carry the caller's
// trace context
func NewReverseProxy(upstream config.UpstreamConfig) *ReverseProxy {
	return &ReverseProxy{
		upstream: upstream,
		client: &http.Client{
			Timeout:   upstream.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// ProxyRequest forwards the request and copies the upstream response back
func (p *ReverseProxy) ProxyRequest(c *fiber.Ctx) error {
	ctx := c.UserContext()
	targetURL := p.targetURL(c)

	req, err := http.NewRequestWithContext(ctx, c.Method(), targetURL, bytes.NewReader(c.Body()))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create upstream request")
	}
	p.copyHeaders(c, req)

	resp, err := p.client.Do(req)
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Str("service", p.upstream.Name).
			Str("target_url", targetURL).
			Msg("Upstream request failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "The catalog service could not be reached",
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to read upstream response")
	}

	for key, values := range resp.Header {
		if hopHeaders[strings.ToLower(key)] {
			continue
		}
		for _, value := range values {
			c.Set(key, value)
		}
	}
	c.Status(resp.StatusCode)
	return c.Send(body)
}

func (p *ReverseProxy) targetURL(c *fiber.Ctx) string {
	target := strings.TrimRight(p.upstream.BaseURL, "/") + c.Path()
	if query := c.Request().URI().QueryString(); len(query) > 0 {
		target += "?" + string(query)
	}
	return target
}

func (p *ReverseProxy) copyHeaders(c *fiber.Ctx, req *http.Request) {
	c.Request().Header.VisitAll(func(key, value []byte) {
		if hopHeaders[strings.ToLower(string(key))] {
			return
		}
		req.Header.Set(string(key), string(value))
	})

	req.Header.Set("X-Forwarded-For", c.IP())
	req.Header.Set("X-Forwarded-Proto", c.Protocol())
	req.Header.Set("X-Forwarded-Host", c.Hostname())
	if id := c.GetRespHeader(fiber.HeaderXRequestID); id != "" {
		req.Header.Set(fiber.HeaderXRequestID, id)
	}
}
