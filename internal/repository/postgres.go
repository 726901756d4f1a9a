package repository

import (
	"context"
	"fmt"

	"patternmap-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// DefaultTable is the table patterns are mirrored into when none is configured.
const DefaultTable = "patterns"

var patternColumns = []string{
	"position",
	"location",
	"latitude",
	"longitude",
	"file_name",
	"symmetry_group",
	"century",
	"notes",
	"tiling_search_link",
}

// Repository mirrors the pattern catalog into a PostGIS table
type Repository struct {
	db    *pgxpool.Pool
	table string
}

// NewRepository creates a new PostgreSQL repository writing to table
func NewRepository(db *pgxpool.Pool, table string) *Repository {
	if table == "" {
		table = DefaultTable
	}
	return &Repository{db: db, table: table}
}

// EnsureSchema creates the patterns table and its spatial index if they are missing
func (r *Repository) EnsureSchema(ctx context.Context) error {
	table := pq.QuoteIdentifier(r.table)
	index := pq.QuoteIdentifier(r.table + "_geom_idx")

	sql := fmt.Sprintf(`
	CREATE EXTENSION IF NOT EXISTS postgis;
	CREATE TABLE IF NOT EXISTS %s (
		position INTEGER PRIMARY KEY,
		location TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		file_name TEXT NOT NULL,
		symmetry_group TEXT NOT NULL,
		century TEXT NOT NULL,
		notes TEXT NOT NULL,
		tiling_search_link TEXT NOT NULL,
		geom GEOGRAPHY(POINT, 4326) GENERATED ALWAYS AS (
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography
		) STORED
	);
	CREATE INDEX IF NOT EXISTS %s ON %s USING GIST (geom);
	`, table, index, table)

	if _, err := r.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ReplacePatterns swaps the stored patterns for records in a single transaction
func (r *Repository) ReplacePatterns(ctx context.Context, records []models.PatternRecord) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, "TRUNCATE "+pq.QuoteIdentifier(r.table)); err != nil {
		return 0, fmt.Errorf("repository: failed to clear patterns: %w", err)
	}

	written, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{r.table},
		patternColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			p := records[i]
			return []any{i, p.Location, p.Latitude, p.Longitude, p.FileName, p.SymmetryGroup, p.Century, p.Notes, p.TilingSearchLink}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy patterns: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit patterns: %w", err)
	}
	return written, nil
}

// CountPatterns returns the number of stored patterns
func (r *Repository) CountPatterns(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+pq.QuoteIdentifier(r.table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to count patterns: %w", err)
	}
	return count, nil
}

// SampleGeometry returns the WKT geometry of the first stored pattern
func (r *Repository) SampleGeometry(ctx context.Context) (string, error) {
	var geom string
	sql := "SELECT ST_AsText(geom) FROM " + pq.QuoteIdentifier(r.table) + " ORDER BY position LIMIT 1"
	if err := r.db.QueryRow(ctx, sql).Scan(&geom); err != nil {
		return "", fmt.Errorf("repository: failed to read sample geometry: %w", err)
	}
	return geom, nil
}

// ListPatterns returns the stored patterns in catalog order
func (r *Repository) ListPatterns(ctx context.Context) ([]models.PatternRecord, error) {
	sql := "SELECT location, latitude, longitude, file_name, symmetry_group, century, notes, tiling_search_link FROM " +
		pq.QuoteIdentifier(r.table) + " ORDER BY position"

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	var patterns []models.PatternRecord
	for rows.Next() {
		var p models.PatternRecord
		err := rows.Scan(
			&p.Location,
			&p.Latitude,
			&p.Longitude,
			&p.FileName,
			&p.SymmetryGroup,
			&p.Century,
			&p.Notes,
			&p.TilingSearchLink,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan pattern: %w", err)
		}
		patterns = append(patterns, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return patterns, nil
}
