package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"patternmap-api/internal/models"
	"patternmap-api/internal/navigator"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

var (
	ErrPatternNotFound  = errors.New("pattern not found")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrEmptyCatalog     = errors.New("catalog is empty")
)

// PatternCatalog is the read-only record set the service serves.
type PatternCatalog interface {
	Len() int
	At(i int) (models.PatternRecord, bool)
	Records() []models.PatternRecord
}

// NavigationObserver is told about every successful navigation step.
type NavigationObserver interface {
	ObserveNavigation(dir navigator.Direction)
}

// PatternService contains the business logic for browsing the pattern catalog
type PatternService struct {
	catalog  PatternCatalog
	observer NavigationObserver
}

// NewPatternService creates a new pattern service. observer may be nil.
func NewPatternService(catalog PatternCatalog, observer NavigationObserver) *PatternService {
	return &PatternService{catalog: catalog, observer: observer}
}

// List returns every pattern in catalog order
func (s *PatternService) List(ctx context.Context) ([]models.PatternRecord, error) {
	return s.catalog.Records(), nil
}

// Get returns the pattern at index
func (s *PatternService) Get(ctx context.Context, index int) (*models.PatternRecord, error) {
	rec, ok := s.catalog.At(index)
	if !ok {
		return nil, fmt.Errorf("service: index %d: %w", index, ErrPatternNotFound)
	}
	return &rec, nil
}

// Navigate returns the pattern one step away from index, wrapping around the catalog ends
func (s *PatternService) Navigate(ctx context.Context, index int, dir navigator.Direction) (*models.IndexedPattern, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("service: %s: %w", dir, ErrInvalidDirection)
	}
	if s.catalog.Len() == 0 {
		return nil, fmt.Errorf("service: cannot navigate: %w", ErrEmptyCatalog)
	}
	if _, ok := s.catalog.At(index); !ok {
		return nil, fmt.Errorf("service: index %d: %w", index, ErrPatternNotFound)
	}

	records := s.catalog.Records()
	next := navigator.Step(records, index, dir)

	if s.observer != nil {
		s.observer.ObserveNavigation(dir)
	}

	return &models.IndexedPattern{Index: next, Pattern: records[next]}, nil
}

// Markers returns one GeoJSON point feature per pattern, identified by its catalog index
func (s *PatternService) Markers(ctx context.Context) (*geojson.FeatureCollection, error) {
	records := s.catalog.Records()

	features := make([]*geojson.Feature, 0, len(records))
	for i, rec := range records {
		point, err := geom.NewPoint(geom.XY).SetCoords(geom.Coord{rec.Longitude, rec.Latitude})
		if err != nil {
			return nil, fmt.Errorf("service: failed to build marker %d: %w", i, err)
		}
		features = append(features, &geojson.Feature{
			ID:       strconv.Itoa(i),
			Geometry: point,
			Properties: map[string]interface{}{
				"location":      rec.Location,
				"symmetryGroup": rec.SymmetryGroup,
				"fileName":      rec.FileName,
			},
		})
	}

	return &geojson.FeatureCollection{Features: features}, nil
}
