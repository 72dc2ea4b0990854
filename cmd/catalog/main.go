package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	_ "github.com/tair/bookmypanditji/docs"
	"github.com/tair/bookmypanditji/internal/app"
	bookingRepository "github.com/tair/bookmypanditji/internal/booking/repository"
	catalogRepository "github.com/tair/bookmypanditji/internal/catalog/repository"
	"github.com/tair/bookmypanditji/internal/config"
	registrationRepository "github.com/tair/bookmypanditji/internal/registration/repository"
	"github.com/tair/bookmypanditji/kafka"
	"github.com/tair/bookmypanditji/pkg/database"
	"github.com/tair/bookmypanditji/pkg/grpcx"
	"github.com/tair/bookmypanditji/pkg/httpx"
	"github.com/tair/bookmypanditji/pkg/kvstore"
	"github.com/tair/bookmypanditji/pkg/logger"
	"github.com/tair/bookmypanditji/pkg/tracing"
)

const serviceVersion = "1.0.0"

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("catalog_source", string(cfg.CatalogSource)).
		Msg("Starting catalog service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, serviceVersion, cfg.JaegerEndpoint)
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

	infra, cleanup := buildInfrastructure(ctx, cfg)
	defer cleanup()

	application, err := app.InitializeApp(cfg, infra)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	go warmCatalog(ctx, application.Snapshot, healthServer)

	if cfg.KafkaEnabled() {
		startCatalogConsumer(ctx, cfg, application.Snapshot)
	}

	httpServer := newHTTPServer(cfg, application)
	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	grpcServer := startGRPCServer(cfg, healthServer)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down servers...")
	healthServer.Shutdown()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	grpcServer.GracefulStop()
}

// buildInfrastructure connects the catalog source, state store, repositories
// and event publisher selected by cfg
func buildInfrastructure(ctx context.Context, cfg config.Config) (app.Infrastructure, func()) {
	var closers []func()
	infra := app.Infrastructure{
		Registerer: prometheus.DefaultRegisterer,
		Publisher:  kafka.NopPublisher{},
	}

	switch cfg.CatalogSource {
	case config.CatalogSourcePostgres:
		db, err := database.NewGormConnection(cfg.Database)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
		}
		closers = append(closers, func() { _ = sqlDB.Close() })

		catalog := catalogRepository.NewGormCatalogRepository(db)
		bookings := bookingRepository.NewGormBookingRepository(db)
		registrations := registrationRepository.NewGormRegistrationRepository(db)
		for _, migrate := range []func() error{catalog.AutoMigrate, bookings.AutoMigrate, registrations.AutoMigrate} {
			if err := migrate(); err != nil {
				logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
			}
		}
		infra.Catalog = catalog
		infra.Bookings = bookings
		infra.Registrations = registrations
		logger.Logger.Info().Str("database", cfg.Database.DBName).Msg("Database initialized successfully")
	default:
		infra.Catalog = catalogRepository.NewMemoryCatalogRepository(catalogRepository.SeedItems())
		infra.Bookings = bookingRepository.NewMemoryBookingRepository()
		infra.Registrations = registrationRepository.NewMemoryRegistrationRepository()
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store := kvstore.NewRedis(client, "panditji:", cfg.StateTTL)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := store.Ping(pingCtx); err != nil {
			logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis not reachable yet")
		}
		cancel()
		closers = append(closers, func() { _ = client.Close() })
		infra.Store = store
	} else {
		infra.Store = kvstore.NewMemory()
	}

	if cfg.KafkaEnabled() {
		publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to create Kafka publisher, events disabled")
		} else {
			closers = append(closers, func() { _ = publisher.Close() })
			infra.Publisher = publisher
		}
	}

	return infra, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

// warmCatalog loads the snapshot, retrying until it succeeds, and then
// reports the service as serving
func warmCatalog(ctx context.Context, snapshot *catalogRepository.Snapshot, healthServer *health.Server) {
	backoff := time.Second
	for {
		err := snapshot.Refresh(ctx)
		if err == nil {
			healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
			return
		}
		logger.Logger.Warn().Err(err).Dur("retry_in", backoff).Msg("Catalog not loaded")

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func startCatalogConsumer(ctx context.Context, cfg config.Config, snapshot *catalogRepository.Snapshot) {
	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, []string{kafka.TopicCatalogUpdated})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create Kafka consumer, catalog refresh on events disabled")
		return
	}
	consumer.RegisterHandler(kafka.EventTypeCatalogUpdated, kafka.OnCatalogUpdated(
		func(ctx context.Context, event kafka.CatalogUpdatedEvent) error {
			logger.Info(ctx).
				Str("source", event.Source).
				Int("products", event.Products).
				Int("pandits", event.Pandits).
				Msg("Catalog update received")
			return snapshot.Refresh(ctx)
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

func newHTTPServer(cfg config.Config, application *app.App) *http.Server {
	router := application.Router

	httpx.RegisterMiddlewares(router, httpx.MiddlewareConfig{
		EnableLogging: true,
		EnableTracing: true,
	})

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func startGRPCServer(cfg config.Config, healthServer *health.Server) *grpc.Server {
	port := cfg.GRPCPort
	interceptors := grpcx.NewInterceptors(prometheus.DefaultRegisterer, "catalog", cfg.ServiceName)
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors.Unary()),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Register reflection service (for grpcurl and grpc tools)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("port", port).Msg("Failed to listen")
	}

	go func() {
		logger.Logger.Info().Str("port", port).Msg("gRPC health server started")
		if err := grpcServer.Serve(lis); err != nil {
			logger.Logger.Error().Err(err).Msg("gRPC server stopped")
		}
	}()
	return grpcServer
}
