package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/recommendations/backend/config"
	"github.com/pageza/recommendations/backend/internal/database"
	"github.com/pageza/recommendations/backend/internal/logging"
	"github.com/pageza/recommendations/backend/internal/models"
	"github.com/pageza/recommendations/backend/internal/service"
)

var products = []string{
	"laptop", "laptop sleeve", "wireless mouse", "usb-c hub", "monitor",
	"monitor arm", "keyboard", "wrist rest", "headphones", "headphone stand",
	"phone", "phone case", "charger", "screen protector", "tablet", "stylus",
}

func main() {
	count := flag.Int("count", 25, "Number of recommendations to create")
	reset := flag.Bool("reset", false, "Delete existing recommendations first")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logging.Fatal().Err(err).Msg("Failed to run migrations")
	}

	ctx := context.Background()
	svc := service.NewRecommendationService(db)

	if *reset {
		if err := svc.DeleteAll(ctx); err != nil {
			logging.Fatal().Err(err).Msg("Failed to delete recommendations")
		}
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	types := models.RecommendationTypes()

	created := 0
	for i := 0; i < *count; i++ {
		from := rnd.Intn(len(products))
		to := (from + 1 + rnd.Intn(len(products)-1)) % len(products)

		rec := &models.Recommendation{
			Name:               products[from],
			RecommendationID:   int(uuid.New().ID() & 0x7fffffff),
			RecommendationName: products[to],
			Type:               types[rnd.Intn(len(types))],
			NumberOfLikes:      rnd.Intn(100),
		}
		if err := svc.Create(ctx, rec); err != nil {
			logging.Error().Err(err).Str("name", rec.Name).Msg("Failed to create recommendation")
			continue
		}
		created++
	}

	total, err := svc.Query(ctx).Count()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to count recommendations")
	}
	logging.Info().Int("created", created).Int64("total", total).Msg("Seeding completed")
}
