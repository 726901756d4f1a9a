package navigator

import "patternmap-api/internal/models"

// Selection is the pattern currently shown in the detail panel, if any.
// The zero value has nothing selected.
type Selection struct {
	Index  int
	Active bool
}

// Select opens the panel on index i. Selecting the already open index closes it.
func (s Selection) Select(i int) Selection {
	if s.Active && s.Index == i {
		return Selection{}
	}
	return Selection{Index: i, Active: true}
}

// Close clears the selection.
func (s Selection) Close() Selection {
	return Selection{}
}

// Step moves an active selection one step in dir. It does nothing when
// nothing is selected, the catalog is empty or dir is not a valid direction.
// Landing on the open pattern again, as in a one-record catalog, closes it like Select does.
func (s Selection) Step(records []models.PatternRecord, dir Direction) Selection {
	if !s.Active || len(records) == 0 || !dir.Valid() {
		return s
	}
	return s.Select(Step(records, s.Index, dir))
}
