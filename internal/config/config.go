package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/bookmypanditji/pkg/database"
)

// CatalogSource selects where the catalog is read from
type CatalogSource string

const (
	CatalogSourceMemory   CatalogSource = "memory"
	CatalogSourcePostgres CatalogSource = "postgres"
)

// Config is the runtime configuration of the catalog service
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	JaegerEndpoint string

	HTTPPort string
	GRPCPort string

	CatalogSource CatalogSource
	Database      database.Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StateTTL      time.Duration

	KafkaBrokers []string
	KafkaGroupID string

	SubmitDelay      time.Duration
	ProductsPageSize int
	PanditsPageSize  int

	CORSAllowedOrigins []string
}

// IsDevelopment reports whether console logging should be used
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// KafkaEnabled reports whether any broker is configured
func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads an optional .env file and then the process environment
func Load() Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return Config{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "catalog-service"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),

		HTTPPort: getEnv("HTTP_PORT", "8081"),
		GRPCPort: getEnv("GRPC_PORT", "9091"),

		CatalogSource: CatalogSource(getEnv("CATALOG_SOURCE", string(CatalogSourceMemory))),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "panditji"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		StateTTL:      getEnvDuration("STATE_TTL", 0),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "catalog-service"),

		SubmitDelay:      getEnvDuration("SUBMIT_DELAY", 1500*time.Millisecond),
		ProductsPageSize: getEnvInt("PRODUCTS_PAGE_SIZE", 8),
		PanditsPageSize:  getEnvInt("PANDITS_PAGE_SIZE", 6),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
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
