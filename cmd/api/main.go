package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"patternmap-api/internal/catalog"
	"patternmap-api/internal/config"
	"patternmap-api/internal/handler"
	"patternmap-api/internal/observability"
	"patternmap-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

//	@title			Pattern Map API
//	@version		1.0
//	@description	Curated Islamic geometric pattern sites for the interactive map.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := observability.NewLogger(config.LogLevel, config.LogFormat)
	gin.SetMode(config.GinMode)

	// The catalog is built once and never changes afterwards
	patterns := catalog.Default(clockwork.NewRealClock())
	logger.Info().Int("patterns", patterns.Len()).Msg("catalog loaded")

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	metrics.CatalogPatterns.Set(float64(patterns.Len()))

	// Initialize layers
	patternService := service.NewPatternService(patterns, metrics)
	patternHandler := handler.NewPatternHandler(patternService)

	r := handler.NewRouter(handler.RouterDeps{
		Patterns:  patternHandler,
		Catalog:   patterns,
		MapConfig: handler.NewMapConfig(config),
		Logger:    logger,
		Metrics:   metrics,
		Gatherer:  registry,
	})

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", config.ServerAddress).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown error")
	}
	logger.Info().Msg("shutdown complete")
}
