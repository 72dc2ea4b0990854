package main

import (
	"context"
	"flag"
	"time"

	catalogDomain "github.com/tair/bookmypanditji/internal/catalog/domain"
	catalogRepository "github.com/tair/bookmypanditji/internal/catalog/repository"
	"github.com/tair/bookmypanditji/internal/config"
	"github.com/tair/bookmypanditji/kafka"
	"github.com/tair/bookmypanditji/pkg/database"
	"github.com/tair/bookmypanditji/pkg/logger"
)

func main() {
	upsert := flag.Bool("upsert", false, "merge the seed into existing rows instead of replacing the catalog")
	flag.Parse()

	cfg := config.Load()
	logger.Init("catalog-seed", cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	repo := catalogRepository.NewGormCatalogRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	items := catalogRepository.SeedItems()
	if *upsert {
		err = repo.Upsert(ctx, items)
	} else {
		sqlDB, connErr := database.NewPostgresConnection(cfg.Database)
		if connErr != nil {
			logger.Logger.Fatal().Err(connErr).Msg("Failed to open lib/pq connection")
		}
		defer sqlDB.Close()
		err = copyItems(ctx, sqlDB, items)
	}
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load catalog")
	}

	count, err := repo.Count(ctx)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to count catalog")
	}
	products := len(catalogDomain.OfKind(items, catalogDomain.KindProduct))
	pandits := len(catalogDomain.OfKind(items, catalogDomain.KindPandit))
	logger.Logger.Info().
		Int64("rows", count).
		Int("products", products).
		Int("pandits", pandits).
		Bool("upsert", *upsert).
		Msg("Catalog seeded")

	if !cfg.KafkaEnabled() {
		return
	}
	publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create Kafka publisher")
		return
	}
	defer publisher.Close()

	if err := publisher.PublishCatalogUpdated(ctx, kafka.CatalogUpdatedEvent{
		Source:   "seed",
		Products: products,
		Pandits:  pandits,
	}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to announce catalog update")
	}
}
