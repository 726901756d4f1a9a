package service

import (
	"context"
	"fmt"

	"patternmap-api/internal/models"
)

// ExportRepository interface for dependency injection
type ExportRepository interface {
	EnsureSchema(ctx context.Context) error
	ReplacePatterns(ctx context.Context, records []models.PatternRecord) (int64, error)
	CountPatterns(ctx context.Context) (int64, error)
}

// ExportService mirrors the pattern catalog into a spatial database
type ExportService struct {
	repo ExportRepository
}

// NewExportService creates a new export service
func NewExportService(repo ExportRepository) *ExportService {
	return &ExportService{repo: repo}
}

// Export replaces the stored patterns with records and checks that all of them landed
func (s *ExportService) Export(ctx context.Context, records []models.PatternRecord) (int64, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("service: nothing to export: %w", ErrEmptyCatalog)
	}

	if err := s.repo.EnsureSchema(ctx); err != nil {
		return 0, fmt.Errorf("service: failed to prepare schema: %w", err)
	}

	written, err := s.repo.ReplacePatterns(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("service: failed to write patterns: %w", err)
	}

	count, err := s.repo.CountPatterns(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count patterns: %w", err)
	}
	if count != int64(len(records)) || written != count {
		return 0, fmt.Errorf("service: record count mismatch: expected %d, wrote %d, stored %d", len(records), written, count)
	}

	return count, nil
}
