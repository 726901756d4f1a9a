package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"patternmap-api/internal/catalog"
	"patternmap-api/internal/config"
	"patternmap-api/internal/models"
	"patternmap-api/internal/observability"
	"patternmap-api/internal/repository"
	"patternmap-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to a pattern CSV file (defaults to the embedded catalog)")
	configDir := flag.String("config", "configs", "Directory holding app.env")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

	if cfg.DBSource == "" {
		logger.Fatal().Msg("DB_SOURCE is required")
	}

	records, err := loadRecords(*file)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load patterns")
	}
	logger.Info().Int("patterns", len(records)).Str("source", sourceName(*file)).Msg("parsed patterns")

	ctx := context.Background()

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool, cfg.PatternsTable)
	exporter := service.NewExportService(repo)

	count, err := exporter.Export(ctx, records)
	if err != nil {
		logger.Fatal().Err(err).Msg("export failed")
	}

	// Verify data
	geom, err := repo.SampleGeometry(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot verify export")
	}
	stored, err := repo.ListPatterns(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot verify export")
	}

	logger.Info().
		Int64("patterns", count).
		Str("table", cfg.PatternsTable).
		Str("sample_geom", geom).
		Str("first", stored[0].Location).
		Str("last", stored[len(stored)-1].Location).
		Msg("successfully exported patterns")
}

func loadRecords(path string) ([]models.PatternRecord, error) {
	if path == "" {
		return catalog.Default(nil).Records(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return catalog.ParseReader(f)
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
