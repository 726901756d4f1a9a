// Package navigator moves the pattern selection through the catalog.
package navigator

import (
	"fmt"
	"strings"

	"patternmap-api/internal/models"
)

// Direction is a single step through the catalog.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// Valid reports whether d is one of Previous or Next.
func (d Direction) Valid() bool {
	return d == Previous || d == Next
}

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Step returns the index one step from current in direction dir, wrapping at both ends.
//
// records must not be empty; Step panics otherwise.
func Step(records []models.PatternRecord, current int, dir Direction) int {
	n := len(records)
	return ((current+int(dir))%n + n) % n
}

// ParseDirection reads a textual direction: "1", "+1", "next", "-1", "prev" or "previous".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "+1", "next":
		return Next, nil
	case "-1", "prev", "previous":
		return Previous, nil
	default:
		return 0, fmt.Errorf("navigator: invalid direction %q", s)
	}
}
