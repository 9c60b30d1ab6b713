// Package geometry describes how calendar days map onto terminal cells.
package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidDayWidth reports a layout whose day width is zero or negative.
var ErrInvalidDayWidth = errors.New("geometry: day width must be positive")

// Provider resolves the width of one calendar day in the current view.
type Provider interface {
	DayWidth() (float64, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() (float64, error)

// DayWidth implements Provider.
func (f ProviderFunc) DayWidth() (float64, error) { return f() }

// Fixed returns a Provider that always reports w.
func Fixed(w float64) Provider {
	return ProviderFunc(func() (float64, error) {
		if w <= 0 {
			return 0, fmt.Errorf("%w: got %v", ErrInvalidDayWidth, w)
		}
		return w, nil
	})
}

// Layout is the date grid as laid out on screen: Offset columns of gutter
// followed by GridWidth columns split evenly across DaysPerRow days.
type Layout struct {
	Offset     int
	GridWidth  int
	DaysPerRow int
}

// DayWidth implements Provider.
func (l Layout) DayWidth() (float64, error) {
	if l.DaysPerRow <= 0 {
		return 0, fmt.Errorf("%w: %d days per row", ErrInvalidDayWidth, l.DaysPerRow)
	}
	w := float64(l.GridWidth) / float64(l.DaysPerRow)
	if w <= 0 {
		return 0, fmt.Errorf("%w: grid width %d", ErrInvalidDayWidth, l.GridWidth)
	}
	return w, nil
}

// CellWidth is the whole number of columns drawn for each day.
func (l Layout) CellWidth() int {
	if l.DaysPerRow <= 0 {
		return 0
	}
	return l.GridWidth / l.DaysPerRow
}

// DayAt maps screen column x to a day column in [0, DaysPerRow). It reports
// false when x falls outside the grid.
func (l Layout) DayAt(x int) (int, bool) {
	cw := l.CellWidth()
	if cw <= 0 {
		return 0, false
	}
	rel := x - l.Offset
	if rel < 0 || rel >= cw*l.DaysPerRow {
		return 0, false
	}
	return rel / cw, true
}

// ColumnOf is the first screen column of day column col.
func (l Layout) ColumnOf(col int) int {
	return l.Offset + col*l.CellWidth()
}
