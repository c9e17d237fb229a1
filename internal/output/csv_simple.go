package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/anka/patrimony-planner/internal/domain"
)

// CSVSeriesExporter writes the aligned comparison: one row per axis year and
// an age and patrimony column pair per simulation. Years without a row stay blank.
type CSVSeriesExporter struct{}

func (c CSVSeriesExporter) Name() string { return "csv" }

func (c CSVSeriesExporter) Format(results *domain.ComparisonResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year"}
	for _, s := range results.Simulations {
		label := fmt.Sprintf("%d:%s v%d", s.SimulationID, s.SimulationName, s.Version)
		header = append(header, label+" Age", label+" Patrimony")
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, y := range results.Years {
		row := []string{intToString(y)}
		for _, s := range results.Simulations {
			p := s.Points[i]
			row = append(row, optionalInt(p.Age), FormatOptional(p.PatrimonyEnd))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
