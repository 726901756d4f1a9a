package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"patternmap-api/internal/models"
	"patternmap-api/internal/navigator"
	"patternmap-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// PatternService interface for dependency injection
type PatternService interface {
	List(ctx context.Context) ([]models.PatternRecord, error)
	Get(ctx context.Context, index int) (*models.PatternRecord, error)
	Navigate(ctx context.Context, index int, dir navigator.Direction) (*models.IndexedPattern, error)
	Markers(ctx context.Context) (*geojson.FeatureCollection, error)
}

// PatternHandler handles pattern catalog requests
type PatternHandler struct {
	service PatternService
}

// NewPatternHandler creates a new pattern handler
func NewPatternHandler(svc PatternService) *PatternHandler {
	return &PatternHandler{service: svc}
}

// ListPatterns handles GET /patterns requests
//
//	@Summary	List all patterns
//	@Tags		patterns
//	@Produce	json
//	@Success	200	{array}		models.PatternRecord
//	@Failure	500	{object}	map[string]string
//	@Router		/patterns [get]
func (h *PatternHandler) ListPatterns(c *gin.Context) {
	patterns, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, patterns)
}

// GetPattern handles GET /patterns/:index requests
//
//	@Summary	Get one pattern by catalog index
//	@Tags		patterns
//	@Produce	json
//	@Param		index	path		int	true	"Catalog index"
//	@Success	200		{object}	models.PatternRecord
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/patterns/{index} [get]
func (h *PatternHandler) GetPattern(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern index"})
		return
	}

	pattern, err := h.service.Get(c.Request.Context(), index)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pattern)
}

// NavigatePattern handles GET /patterns/:index/navigate requests.
// The step is taken from the first of key, dx/dy or direction that is present.
//
//	@Summary	Step to the previous or next pattern, wrapping around
//	@Tags		patterns
//	@Produce	json
//	@Param		index		path		int		true	"Catalog index of the current pattern"
//	@Param		direction	query		string	false	"1, +1, next, -1, prev or previous"
//	@Param		key			query		string	false	"ArrowLeft or ArrowRight"
//	@Param		dx			query		number	false	"Horizontal swipe delta in pixels"
//	@Param		dy			query		number	false	"Vertical swipe delta in pixels"
//	@Success	200			{object}	models.IndexedPattern
//	@Failure	400			{object}	map[string]string
//	@Failure	404			{object}	map[string]string
//	@Router		/patterns/{index}/navigate [get]
func (h *PatternHandler) NavigatePattern(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern index"})
		return
	}

	dir, msg := directionFromQuery(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	result, err := h.service.Navigate(c.Request.Context(), index, dir)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Markers handles GET /markers requests
//
//	@Summary	Pattern markers as GeoJSON
//	@Tags		map
//	@Produce	application/geo+json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	500	{object}	map[string]string
//	@Router		/markers [get]
func (h *PatternHandler) Markers(c *gin.Context) {
	markers, err := h.service.Markers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	body, err := markers.MarshalJSON()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Data(http.StatusOK, "application/geo+json", body)
}

func directionFromQuery(c *gin.Context) (navigator.Direction, string) {
	if key, ok := c.GetQuery("key"); ok {
		dir, ok := navigator.DirectionFromKey(key)
		if !ok {
			return 0, "key must be ArrowLeft or ArrowRight"
		}
		return dir, ""
	}

	dxStr, hasDX := c.GetQuery("dx")
	dyStr, hasDY := c.GetQuery("dy")
	if hasDX || hasDY {
		dx, errX := strconv.ParseFloat(dxStr, 64)
		dy, errY := strconv.ParseFloat(dyStr, 64)
		if errX != nil || errY != nil {
			return 0, "invalid swipe delta format"
		}
		dir, ok := navigator.DirectionFromSwipe(dx, dy)
		if !ok {
			return 0, "swipe is not a horizontal navigation gesture"
		}
		return dir, ""
	}

	raw := c.Query("direction")
	if raw == "" {
		return 0, "missing required query parameter 'direction'"
	}
	dir, err := navigator.ParseDirection(raw)
	if err != nil {
		return 0, "invalid direction"
	}
	return dir, ""
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPatternNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "pattern not found"})
	case errors.Is(err, service.ErrInvalidDirection):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid direction"})
	case errors.Is(err, service.ErrEmptyCatalog):
		c.JSON(http.StatusNotFound, gin.H{"error": "no patterns available"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
