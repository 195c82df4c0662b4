package valuation

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/calculator"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// WarnPercent is the level above which the indicator counts as
// historically very high.
const WarnPercent = 200

// Evaluate produces one assessment per country from a combined percent
// table, using each country's latest populated year and the mean of
// its populated history. Countries with no populated cells are
// skipped. Results are sorted by percent descending.
func Evaluate(t model.CombinedTable) []model.Assessment {
	out := make([]model.Assessment, 0, len(t.Countries))
	for _, country := range t.Countries {
		col := t.Columns[country]
		idx := -1
		vals := make([]float64, 0, len(col))
		for i, v := range col {
			if v.Valid {
				idx = i
				vals = append(vals, v.Float64)
			}
		}
		if idx < 0 {
			continue
		}
		percent := col[idx].Float64
		mean := stat.Mean(vals, nil)
		a := model.Assessment{
			Country:   country,
			Year:      t.Years[idx],
			Percent:   calculator.Round2(percent),
			Band:      ClassifyBand(percent),
			Mean:      calculator.Round2(mean),
			DeltaMean: calculator.Round2(percent - mean),
		}
		if percent > WarnPercent {
			a.WarningMsg = fmt.Sprintf("⚠️ above %d%%, historically very high", WarnPercent)
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Percent > out[j].Percent })
	return out
}
