package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_PORT", "KAFKA_BROKERS", "SUBMIT_DELAY", "PRODUCTS_PAGE_SIZE", "CATALOG_SOURCE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.HTTPPort != "8081" {
		t.Fatalf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.KafkaEnabled() {
		t.Fatalf("kafka must be disabled without brokers, got %v", cfg.KafkaBrokers)
	}
	if cfg.SubmitDelay != 1500*time.Millisecond {
		t.Fatalf("SubmitDelay = %v", cfg.SubmitDelay)
	}
	if cfg.ProductsPageSize != 8 {
		t.Fatalf("ProductsPageSize = %d", cfg.ProductsPageSize)
	}
	if cfg.CatalogSource != CatalogSourceMemory {
		t.Fatalf("CatalogSource = %q", cfg.CatalogSource)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("SUBMIT_DELAY", "0s")
	t.Setenv("PANDITS_PAGE_SIZE", "not-a-number")
	t.Setenv("CATALOG_SOURCE", "postgres")

	cfg := Load()
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
		t.Fatalf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
	if cfg.SubmitDelay != 0 {
		t.Fatalf("SubmitDelay = %v", cfg.SubmitDelay)
	}
	if cfg.PanditsPageSize != 6 {
		t.Fatalf("invalid int must fall back, got %d", cfg.PanditsPageSize)
	}
	if cfg.CatalogSource != CatalogSourcePostgres {
		t.Fatalf("CatalogSource = %q", cfg.CatalogSource)
	}
}
