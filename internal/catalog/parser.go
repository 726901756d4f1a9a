package catalog

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"patternmap-api/internal/models"
)

// byteOrderMark is prepended to CSV exports by some spreadsheet tools.
const byteOrderMark = "\ufeff"

// leadingNumber matches the longest decimal number at the start of a value.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// Parse converts the pattern dataset text into records, in input row order.
//
// The first line is the header. Blank lines are skipped, and lines with fewer
// fields than the header are dropped. Latitude and longitude that cannot be
// read as numbers become 0. Parse never fails.
func Parse(text string) []models.PatternRecord {
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(text, byteOrderMark)), "\n")
	columns := Columns(lines[0])

	records := make([]models.PatternRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := splitLine(line)
		if len(values) < len(columns) {
			continue
		}

		var rec models.PatternRecord
		for i, field := range columns {
			field.assign(&rec, cleanValue(values[i]))
		}
		records = append(records, rec)
	}

	return records
}

// ParseReader reads the whole dataset from r and parses it.
func ParseReader(r io.Reader) ([]models.PatternRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read dataset: %w", err)
	}
	return Parse(string(data)), nil
}

// splitLine splits a data line on commas outside quotes.
// Every quote flips the quoted state and is dropped, so a doubled quote is not an escape.
func splitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(fields, current.String())
}

func cleanValue(v string) string {
	v = strings.TrimPrefix(v, `"`)
	v = strings.TrimSuffix(v, `"`)
	return strings.TrimSpace(v)
}

// coerceFloat reads the leading number of v, yielding 0 when there is none.
func coerceFloat(v string) float64 {
	m := leadingNumber.FindString(v)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || f == 0 {
		// f == 0 also folds negative zero.
		return 0
	}
	return f
}
