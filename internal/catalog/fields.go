package catalog

import (
	"strings"
	"unicode"

	"patternmap-api/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field identifies one known column of the pattern dataset.
type Field int

const (
	FieldUnknown Field = iota
	FieldLocation
	FieldLatitude
	FieldLongitude
	FieldFileName
	FieldSymmetryGroup
	FieldCentury
	FieldNotes
	FieldTilingSearchLink
)

// AllFields lists the known fields in dataset column order.
var AllFields = []Field{
	FieldLocation,
	FieldLatitude,
	FieldLongitude,
	FieldFileName,
	FieldSymmetryGroup,
	FieldCentury,
	FieldNotes,
	FieldTilingSearchLink,
}

// headerFields maps a normalized header (lowercased, whitespace removed) to its field.
var headerFields = map[string]Field{
	"location":         FieldLocation,
	"latitude":         FieldLatitude,
	"longitude":        FieldLongitude,
	"filename":         FieldFileName,
	"symmetrygroup":    FieldSymmetryGroup,
	"century":          FieldCentury,
	"notes":            FieldNotes,
	"tilingsearchlink": FieldTilingSearchLink,
}

var fieldKeys = map[Field]string{
	FieldLocation:         "location",
	FieldLatitude:         "latitude",
	FieldLongitude:        "longitude",
	FieldFileName:         "fileName",
	FieldSymmetryGroup:    "symmetryGroup",
	FieldCentury:          "century",
	FieldNotes:            "notes",
	FieldTilingSearchLink: "tilingSearchLink",
}

// Key returns the record key of the field, as used in JSON output.
func (f Field) Key() string {
	if k, ok := fieldKeys[f]; ok {
		return k
	}
	return ""
}

func (f Field) String() string {
	if k := f.Key(); k != "" {
		return k
	}
	return "unknown"
}

// FieldFromHeader resolves a raw header cell to its field.
func FieldFromHeader(header string) (Field, bool) {
	f, ok := headerFields[normalizeHeader(header)]
	return f, ok
}

// Columns returns the field of every column of a header line, FieldUnknown for unrecognized columns.
func Columns(headerLine string) []Field {
	headers := splitHeader(headerLine)
	fields := make([]Field, len(headers))
	for i, h := range headers {
		fields[i], _ = FieldFromHeader(h)
	}
	return fields
}

func normalizeHeader(header string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cases.Lower(language.Und).String(header))
}

func splitHeader(line string) []string {
	cells := strings.Split(line, ",")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(strings.ReplaceAll(c, `"`, ""))
	}
	return cells
}

func (f Field) assign(rec *models.PatternRecord, value string) {
	switch f {
	case FieldLocation:
		rec.Location = value
	case FieldLatitude:
		rec.Latitude = coerceFloat(value)
	case FieldLongitude:
		rec.Longitude = coerceFloat(value)
	case FieldFileName:
		rec.FileName = value
	case FieldSymmetryGroup:
		rec.SymmetryGroup = value
	case FieldCentury:
		rec.Century = value
	case FieldNotes:
		rec.Notes = value
	case FieldTilingSearchLink:
		rec.TilingSearchLink = value
	}
}
