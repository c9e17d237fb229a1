package output

import (
	"bytes"
	"fmt"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/xuri/excelize/v2"
)

// XLSXFormatter renders a workbook with the aligned comparison and the detailed rows.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

const (
	comparisonSheet = "comparison"
	detailSheet     = "detail"
)

func (x XLSXFormatter) Format(results *domain.ComparisonResult) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", comparisonSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(detailSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(comparisonSheet, "A1", "Year")
	for j, s := range results.Simulations {
		cell, err := excelize.CoordinatesToCellName(j+2, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(comparisonSheet, cell, seriesLabel(&s))
	}
	for i, y := range results.Years {
		row := i + 2
		_ = f.SetCellValue(comparisonSheet, fmt.Sprintf("A%d", row), y)
		for j, s := range results.Simulations {
			v := s.Points[i].PatrimonyEnd
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(comparisonSheet, cell, v.InexactFloat64())
		}
	}

	for j, h := range detailedHeader {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(detailSheet, cell, h)
	}
	row := 2
	for _, s := range results.Simulations {
		for _, p := range s.Projections {
			values := []any{
				s.SimulationID, s.SimulationName, s.Version, p.Year, p.Age,
				p.PatrimonyStart.InexactFloat64(),
				p.Income.InexactFloat64(),
				p.Expenses.InexactFloat64(),
				p.InsurancePremiums.InexactFloat64(),
				p.FinancingInstallments.InexactFloat64(),
				p.NetCashFlow.InexactFloat64(),
				p.FinancialAssets.InexactFloat64(),
				p.RealEstateAssets.InexactFloat64(),
				p.Cash.InexactFloat64(),
				p.FinancingBalance.InexactFloat64(),
				p.PatrimonyEnd.InexactFloat64(),
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(detailSheet, cell, &values); err != nil {
				return nil, err
			}
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
