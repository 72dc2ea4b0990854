package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"github.com/tair/bookmypanditji/api-gateway/config"
	"github.com/tair/bookmypanditji/api-gateway/middleware"
	"github.com/tair/bookmypanditji/api-gateway/routes"
	"github.com/tair/bookmypanditji/kafka"
	"github.com/tair/bookmypanditji/pkg/logger"
	"github.com/tair/bookmypanditji/pkg/tracing"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("catalog_url", cfg.Upstream.BaseURL).
		Msg("Starting API Gateway")

	tp, err := tracing.InitTracer(cfg.ServiceName, "1.0.0", cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	redisClient := connectRedis(ctx, cfg)
	if redisClient != nil {
		defer redisClient.Close()
		startCacheInvalidation(ctx, cfg, redisClient)
	}

	app := fiber.New(fiber.Config{
		AppName:      "BookMyPanditJi API Gateway",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Upstream.Timeout + 5*time.Second,
		IdleTimeout:  30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	setupMiddleware(app, cfg, redisClient)
	routes.SetupRoutes(app, routes.NewDependencies(cfg, redisClient))

	go func() {
		logger.Logger.Info().
			Str("port", cfg.Port).
			Str("upstream", cfg.Upstream.BaseURL).
			Msg("API Gateway listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down API Gateway...")
	stop()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

// connectRedis returns nil when Redis is unreachable, which disables caching
// and rate limiting
func connectRedis(ctx context.Context, cfg *config.GatewayConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", cfg.RedisAddr).
			Msg("Failed to connect to Redis - caching and rate limiting disabled")
		_ = client.Close()
		return nil
	}
	logger.Logger.Info().Str("redis_addr", cfg.RedisAddr).Msg("Connected to Redis")
	return client
}

// startCacheInvalidation drops cached catalog responses whenever the catalog
// service announces a reload
func startCacheInvalidation(ctx context.Context, cfg *config.GatewayConfig, redisClient *redis.Client) {
	if len(cfg.KafkaBrokers) == 0 {
		return
	}
	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, "api-gateway", []string{kafka.TopicCatalogUpdated})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create Kafka consumer, cache invalidation disabled")
		return
	}
	consumer.RegisterHandler(kafka.EventTypeCatalogUpdated, kafka.OnCatalogUpdated(
		func(ctx context.Context, event kafka.CatalogUpdatedEvent) error {
			n, err := middleware.InvalidateCache(ctx, redisClient)
			if err != nil {
				return err
			}
			logger.Info(ctx).Str("source", event.Source).Int("keys", n).Msg("Catalog cache invalidated")
			return nil
		},
	))
	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
		return
	}
	go func() {
		<-ctx.Done()
		_ = consumer.Close()
	}()
}

func setupMiddleware(app *fiber.App, cfg *config.GatewayConfig, redisClient *redis.Client) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Request ID first so tracing and logging can attach it
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware(cfg.ServiceName))
	app.Use(middleware.StructuredLoggingMiddleware())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     "GET,POST,DELETE,OPTIONS,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-Id, traceparent, tracestate",
		AllowCredentials: cfg.CORSAllowedOrigins != "*",
		ExposeHeaders:    "X-Request-Id, X-Trace-Id, X-Cache, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset",
		MaxAge:           86400,
	}))

	if redisClient != nil {
		app.Use(middleware.NewRateLimiter(redisClient, cfg.RateLimit, cfg.RateWindow).Middleware())
		app.Use(middleware.CacheMiddleware(redisClient, middleware.DefaultCacheConfig(cfg.CacheTTL)))
		logger.Logger.Info().
			Int("rate_limit", cfg.RateLimit).
			Dur("rate_window", cfg.RateWindow).
			Dur("cache_ttl", cfg.CacheTTL).
			Msg("Rate limiting and catalog caching enabled")
	}

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// customErrorHandler renders errors in the catalog service envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success":   false,
		"error":     err.Error(),
		"path":      c.Path(),
		"requestId": c.GetRespHeader(fiber.HeaderXRequestID),
	})
}
