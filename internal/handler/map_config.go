package handler

import (
	"net/http"
	"strings"
	"time"

	"patternmap-api/internal/config"

	"github.com/gin-gonic/gin"
)

// MapConfig is what the map client needs to draw the base map and the detail panel.
type MapConfig struct {
	Center         [2]float64 `json:"center"`
	Zoom           int        `json:"zoom"`
	FocusZoom      int        `json:"focusZoom"`
	MaxZoom        int        `json:"maxZoom"`
	TileURL        string     `json:"tileUrl"`
	TileSubdomains []string   `json:"tileSubdomains"`
	Attribution    string     `json:"attribution"`
	ImageBasePath  string     `json:"imageBasePath"`
}

// NewMapConfig extracts the map client settings from the application config.
func NewMapConfig(cfg config.Config) MapConfig {
	return MapConfig{
		Center:         [2]float64{cfg.MapCenterLat, cfg.MapCenterLon},
		Zoom:           cfg.MapZoom,
		FocusZoom:      cfg.MapFocusZoom,
		MaxZoom:        cfg.MapMaxZoom,
		TileURL:        cfg.MapTileURL,
		TileSubdomains: strings.Split(cfg.MapTileSubdomains, ""),
		Attribution:    cfg.MapAttribution,
		ImageBasePath:  cfg.ImageBasePath,
	}
}

// MapConfigHandler serves GET /map/config
//
//	@Summary	Map client settings
//	@Tags		map
//	@Produce	json
//	@Success	200	{object}	handler.MapConfig
//	@Router		/map/config [get]
func MapConfigHandler(mc MapConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, mc)
	}
}

// CatalogStatus is what the health endpoint reports about the loaded catalog.
type CatalogStatus interface {
	Len() int
	LoadedAt() time.Time
}

// HealthHandler serves GET /health
//
//	@Summary	Liveness and catalog status
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/health [get]
func HealthHandler(catalog CatalogStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"patterns":  catalog.Len(),
			"loaded_at": catalog.LoadedAt().UTC().Format(time.RFC3339),
		})
	}
}
