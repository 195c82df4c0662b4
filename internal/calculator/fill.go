package calculator

import (
	"fmt"

	"github.com/guregu/null/v6"
	"gonum.org/v1/gonum/interp"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// FillMode selects how absent cells in a combined table are treated.
type FillMode string

const (
	FillNone    FillMode = "none"
	FillForward FillMode = "forward-fill"
	FillLinear  FillMode = "linear"
)

// ParseFillMode maps a request parameter to a FillMode. The empty
// string means keep gaps.
func ParseFillMode(s string) (FillMode, error) {
	switch s {
	case "", string(FillNone):
		return FillNone, nil
	case string(FillForward):
		return FillForward, nil
	case string(FillLinear):
		return FillLinear, nil
	}
	return "", fmt.Errorf("unknown fill mode %q", s)
}

// ApplyFill returns a copy of the table with the policy applied to
// each column independently. FillNone returns the input unchanged.
func ApplyFill(t model.CombinedTable, mode FillMode) model.CombinedTable {
	if mode == FillNone {
		return t
	}
	out := t.Clone()
	for _, country := range out.Countries {
		col := out.Columns[country]
		switch mode {
		case FillForward:
			fillForward(col)
		case FillLinear:
			fillLinear(out.Years, col)
		}
	}
	return out
}

// fillForward propagates the last known value into later gaps.
func fillForward(col []null.Float) {
	last := null.Float{}
	for i := range col {
		if col[i].Valid {
			last = col[i]
		} else if last.Valid {
			col[i] = last
		}
	}
}

// fillLinear interpolates interior gaps between known values on the
// year axis. Leading and trailing gaps stay absent.
func fillLinear(years []int, col []null.Float) {
	xs := make([]float64, 0, len(col))
	ys := make([]float64, 0, len(col))
	for i, v := range col {
		if v.Valid {
			xs = append(xs, float64(years[i]))
			ys = append(ys, v.Float64)
		}
	}
	if len(xs) < 2 {
		return
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return
	}
	first, last := xs[0], xs[len(xs)-1]
	for i := range col {
		y := float64(years[i])
		if !col[i].Valid && y > first && y < last {
			col[i] = null.FloatFrom(pl.Predict(y))
		}
	}
}
