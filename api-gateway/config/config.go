package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// UpstreamConfig describes the catalog service behind the gateway
type UpstreamConfig struct {
	Name        string
	BaseURL     string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the edge gateway configuration
type GatewayConfig struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	JaegerEndpoint string

	Port     string
	Upstream UpstreamConfig

	RedisAddr     string
	RedisPassword string

	// KafkaBrokers enables cache invalidation on catalog updates
	KafkaBrokers []string

	CacheTTL    time.Duration
	RateLimit   int
	RateWindow  time.Duration
	MaxFailures int
	OpenTimeout time.Duration

	CORSAllowedOrigins string
}

// IsDevelopment reports whether console logging should be used
func (c *GatewayConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig loads gateway configuration from .env and the environment
func LoadConfig() *GatewayConfig {
	_ = godotenv.Load()

	return &GatewayConfig{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "api-gateway"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", ""),

		Port: getEnv("GATEWAY_PORT", "8000"),
		Upstream: UpstreamConfig{
			Name:        "catalog",
			BaseURL:     getEnv("CATALOG_SERVICE_URL", "http://localhost:8081"),
			Timeout:     getEnvDuration("CATALOG_TIMEOUT", 10*time.Second),
			HealthCheck: "/health",
		},

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),

		CacheTTL:    getEnvDuration("GATEWAY_CACHE_TTL", time.Minute),
		RateLimit:   getEnvInt("GATEWAY_RATE_LIMIT", 100),
		RateWindow:  getEnvDuration("GATEWAY_RATE_WINDOW", time.Minute),
		MaxFailures: getEnvInt("GATEWAY_MAX_FAILURES", 5),
		OpenTimeout: getEnvDuration("GATEWAY_OPEN_TIMEOUT", 30*time.Second),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
