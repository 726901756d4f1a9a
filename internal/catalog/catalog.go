package catalog

import (
	_ "embed"
	"time"

	"patternmap-api/internal/models"

	"github.com/jonboulle/clockwork"
)

//go:embed data/patterns.csv
var patternsCSV string

// Catalog is the read-only set of pattern records served for the lifetime of the process.
type Catalog struct {
	records  []models.PatternRecord
	loadedAt time.Time
}

// New builds a catalog owning a copy of records.
func New(records []models.PatternRecord, clock clockwork.Clock) *Catalog {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	owned := make([]models.PatternRecord, len(records))
	copy(owned, records)
	return &Catalog{records: owned, loadedAt: clock.Now()}
}

// Default builds the catalog from the embedded curated dataset.
func Default(clock clockwork.Clock) *Catalog {
	return New(Parse(patternsCSV), clock)
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// At returns the record at index i, or false when i is out of range.
func (c *Catalog) At(i int) (models.PatternRecord, bool) {
	if i < 0 || i >= len(c.records) {
		return models.PatternRecord{}, false
	}
	return c.records[i], true
}

// Records returns a copy of all records in catalog order.
func (c *Catalog) Records() []models.PatternRecord {
	out := make([]models.PatternRecord, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}
