package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/pageza/recommendations/backend/config"
	"github.com/pageza/recommendations/backend/internal/database"
	"github.com/pageza/recommendations/backend/internal/logging"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "", "Migrations directory (defaults to MIGRATIONS_DIR)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if cfg.DBDriver != config.DriverPostgres {
		logging.Fatal().Str("driver", cfg.DBDriver).Msg("SQL migrations require the postgres driver")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = cfg.DSN()
	}

	migrationsDir := cfg.MigrationsDir
	if *dir != "" {
		migrationsDir = *dir
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if *rollback {
		name, err := database.RollbackLast(ctx, db, migrationsDir)
		if err != nil {
			logging.Fatal().Err(err).Msg("Rollback failed")
		}
		logging.Info().Str("migration", name).Msg("Rollback completed")
		return
	}

	applied, err := database.ApplyMigrations(ctx, db, migrationsDir)
	if err != nil {
		logging.Fatal().Err(err).Strs("applied", applied).Msg("Migration failed")
	}
	logging.Info().Int("count", len(applied)).Msg("All migrations completed successfully")
}
