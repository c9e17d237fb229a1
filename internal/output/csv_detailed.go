package output

import (
	"bytes"
	"encoding/csv"

	"github.com/anka/patrimony-planner/internal/domain"
)

// CSVDetailedExporter provides the raw yearly projection rows per simulation.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

var detailedHeader = []string{
	"SimulationID", "Simulation", "Version", "Year", "Age",
	"PatrimonyStart", "Income", "Expenses", "InsurancePremiums", "FinancingInstallments", "NetCashFlow",
	"FinancialAssets", "RealEstateAssets", "Cash", "FinancingBalance", "PatrimonyEnd",
}

func (c CSVDetailedExporter) Format(results *domain.ComparisonResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(detailedHeader); err != nil {
		return nil, err
	}
	for _, s := range results.Simulations {
		for _, p := range s.Projections {
			if err := w.Write(detailedRow(&s, &p)); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func detailedRow(s *domain.SimulationSeries, p *domain.YearProjection) []string {
	return []string{
		int64ToString(s.SimulationID),
		s.SimulationName,
		intToString(s.Version),
		intToString(p.Year),
		intToString(p.Age),
		FormatCurrency(p.PatrimonyStart),
		FormatCurrency(p.Income),
		FormatCurrency(p.Expenses),
		FormatCurrency(p.InsurancePremiums),
		FormatCurrency(p.FinancingInstallments),
		FormatCurrency(p.NetCashFlow),
		FormatCurrency(p.FinancialAssets),
		FormatCurrency(p.RealEstateAssets),
		FormatCurrency(p.Cash),
		FormatCurrency(p.FinancingBalance),
		FormatCurrency(p.PatrimonyEnd),
	}
}
