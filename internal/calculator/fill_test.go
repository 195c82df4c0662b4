package calculator

import (
	"testing"

	"github.com/guregu/null/v6"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

func singleColumn(country string, years []int, cells []null.Float) model.CombinedTable {
	return model.CombinedTable{
		Years:     years,
		Countries: []string{country},
		Columns:   map[string][]null.Float{country: cells},
	}
}

func TestParseFillMode(t *testing.T) {
	tests := []struct {
		in      string
		want    FillMode
		wantErr bool
	}{
		{"", FillNone, false},
		{"none", FillNone, false},
		{"forward-fill", FillForward, false},
		{"linear", FillLinear, false},
		{"cubic", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFillMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestApplyFill_Forward(t *testing.T) {
	in := singleColumn("United States",
		[]int{2019, 2020, 2021, 2022},
		[]null.Float{null.FloatFrom(10), {}, {}, null.FloatFrom(20)})

	got := ApplyFill(in, FillForward)
	col := got.Columns["United States"]

	want := []float64{10, 10, 10, 20}
	for i, w := range want {
		if !col[i].Valid || col[i].Float64 != w {
			t.Errorf("year %d: expected %v, got %+v", got.Years[i], w, col[i])
		}
	}
}

func TestApplyFill_ForwardLeavesLeadingGaps(t *testing.T) {
	in := singleColumn("Japan",
		[]int{2019, 2020, 2021},
		[]null.Float{{}, null.FloatFrom(15), {}})

	got := ApplyFill(in, FillForward)
	col := got.Columns["Japan"]
	if col[0].Valid {
		t.Error("2019: leading gap should stay absent")
	}
	if !col[2].Valid || col[2].Float64 != 15 {
		t.Errorf("2021: expected carried 15, got %+v", col[2])
	}
}

func TestApplyFill_Linear(t *testing.T) {
	in := singleColumn("China",
		[]int{2018, 2019, 2020, 2021},
		[]null.Float{{}, null.FloatFrom(10), {}, null.FloatFrom(20)})

	got := ApplyFill(in, FillLinear)
	col := got.Columns["China"]

	if col[0].Valid {
		t.Error("2018: leading gap should stay absent under linear fill")
	}
	if !col[2].Valid || col[2].Float64 != 15.0 {
		t.Errorf("2020: expected interpolated 15.0, got %+v", col[2])
	}
	if !col[1].Valid || col[1].Float64 != 10 {
		t.Errorf("2019: known value should be untouched, got %+v", col[1])
	}
}

func TestApplyFill_LinearNeedsTwoPoints(t *testing.T) {
	in := singleColumn("India",
		[]int{2019, 2020, 2021},
		[]null.Float{{}, null.FloatFrom(12), {}})

	got := ApplyFill(in, FillLinear)
	col := got.Columns["India"]
	if col[0].Valid || col[2].Valid {
		t.Error("single known point must not produce interpolated values")
	}
}

func TestApplyFill_NoneReturnsInput(t *testing.T) {
	in := singleColumn("Canada", []int{2020}, []null.Float{{}})
	got := ApplyFill(in, FillNone)
	if got.Columns["Canada"][0].Valid {
		t.Error("FillNone must not invent values")
	}
}

func TestApplyFill_DoesNotMutateInput(t *testing.T) {
	in := singleColumn("Germany",
		[]int{2019, 2020},
		[]null.Float{null.FloatFrom(10), {}})

	_ = ApplyFill(in, FillForward)
	if in.Columns["Germany"][1].Valid {
		t.Error("ApplyFill must operate on a copy, input was mutated")
	}
}
