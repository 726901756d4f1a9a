package models

// PatternRecord is one curated pattern site: where it is, which image shows it and how it is classified.
type PatternRecord struct {
	Location         string  `json:"location" yaml:"location"`
	Latitude         float64 `json:"latitude" yaml:"latitude"`
	Longitude        float64 `json:"longitude" yaml:"longitude"`
	FileName         string  `json:"fileName" yaml:"fileName"`
	SymmetryGroup    string  `json:"symmetryGroup" yaml:"symmetryGroup"`
	Century          string  `json:"century" yaml:"century"`
	Notes            string  `json:"notes" yaml:"notes"`
	TilingSearchLink string  `json:"tilingSearchLink" yaml:"tilingSearchLink"`
}

// IndexedPattern pairs a record with its position in the catalog.
type IndexedPattern struct {
	Index   int           `json:"index" yaml:"index"`
	Pattern PatternRecord `json:"pattern" yaml:"pattern"`
}
