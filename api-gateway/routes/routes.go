package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/tair/bookmypanditji/api-gateway/config"
	"github.com/tair/bookmypanditji/api-gateway/health"
	"github.com/tair/bookmypanditji/api-gateway/middleware"
	"github.com/tair/bookmypanditji/api-gateway/proxy"
)

// RouteDefinition maps a path prefix onto the catalog service
type RouteDefinition struct {
	Prefix      string `json:"prefix"`
	Description string `json:"description"`
	Cached      bool   `json:"cached"`
}

// Routes are the public API paths forwarded by the gateway
var Routes = []RouteDefinition{
	{Prefix: "/api/products", Description: "Product listing, details and stats", Cached: true},
	{Prefix: "/api/pandits", Description: "Pandit listing and details", Cached: true},
	{Prefix: "/api/bookings", Description: "Booking quotes and submissions"},
	{Prefix: "/api/visitors", Description: "Wishlist, compare, recently viewed and chat history"},
	{Prefix: "/api/registrations", Description: "Pandit and devotee registration wizards"},
	{Prefix: "/api/chat", Description: "Assistant suggestions"},
	{Prefix: "/swagger", Description: "API documentation"},
}

// Dependencies are the shared pieces route handlers run through
type Dependencies struct {
	Proxy   *proxy.ReverseProxy
	Breaker *middleware.CircuitBreaker
	Health  *health.HealthChecker
	Redis   *redis.Client
}

// NewDependencies builds proxy, breaker and health checker from cfg
func NewDependencies(cfg *config.GatewayConfig, redisClient *redis.Client) Dependencies {
	return Dependencies{
		Proxy:   proxy.NewReverseProxy(cfg.Upstream),
		Breaker: middleware.NewCircuitBreaker(cfg.Upstream.Name, cfg.MaxFailures, cfg.OpenTimeout),
		Health:  health.NewHealthChecker(cfg.ServiceName, cfg.Upstream),
		Redis:   redisClient,
	}
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(deps.Health.QuickCheck())
	})

	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	// Readiness follows the catalog, which is unready until its snapshot loads
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		report := deps.Health.Ready(ctx)
		status := fiber.StatusOK
		if report.Status != health.StatusHealthy {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(report)
	})

	app.Get("/health/circuit", func(c *fiber.Ctx) error {
		return c.JSON(deps.Breaker.Stats())
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "BookMyPanditJi API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	breaker := middleware.CircuitBreakerMiddleware(deps.Breaker)
	for _, route := range Routes {
		app.All(route.Prefix, breaker, deps.Proxy.ProxyRequest)
		app.All(route.Prefix+"/*", breaker, deps.Proxy.ProxyRequest)
	}
}
