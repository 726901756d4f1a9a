package handler

import (
	_ "patternmap-api/docs"
	"patternmap-api/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterDeps collects what NewRouter wires together.
type RouterDeps struct {
	Patterns  *PatternHandler
	Catalog   CatalogStatus
	MapConfig MapConfig
	Logger    zerolog.Logger
	Metrics   *observability.Metrics
	Gatherer  prometheus.Gatherer
}

// NewRouter builds the HTTP routes of the pattern map API.
func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), observability.RequestID(), observability.RequestLogger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Instrument())
	}

	r.GET("/health", HealthHandler(d.Catalog))

	r.GET("/patterns", d.Patterns.ListPatterns)
	r.GET("/patterns/:index", d.Patterns.GetPattern)
	r.GET("/patterns/:index/navigate", d.Patterns.NavigatePattern)
	r.GET("/markers", d.Patterns.Markers)
	r.GET("/map/config", MapConfigHandler(d.MapConfig))

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
