package server

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// writeCombinedCSV renders the combined table as one row per year with
// one column per country. Absent cells stay empty.
func writeCombinedCSV(w io.Writer, t model.CombinedTable) error {
	cw := csv.NewWriter(w)

	header := append([]string{"year"}, t.Countries...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, year := range t.Years {
		row := make([]string, 0, len(t.Countries)+1)
		row = append(row, strconv.Itoa(year))
		for _, country := range t.Countries {
			cell := t.Columns[country][i]
			if cell.Valid {
				row = append(row, strconv.FormatFloat(cell.Float64, 'f', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
