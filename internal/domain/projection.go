package domain

import (
	"github.com/shopspring/decimal"
)

// YearProjection represents the patrimony movement of a single year
type YearProjection struct {
	Year int `json:"year" yaml:"year"`
	Age  int `json:"age" yaml:"age"`

	PatrimonyStart decimal.Decimal `json:"patrimony_start" yaml:"patrimony_start"`
	PatrimonyEnd   decimal.Decimal `json:"patrimony_end" yaml:"patrimony_end"`

	// End-of-year composition of PatrimonyEnd
	FinancialAssets  decimal.Decimal `json:"financial_assets" yaml:"financial_assets"`
	RealEstateAssets decimal.Decimal `json:"real_estate_assets" yaml:"real_estate_assets"`
	Cash             decimal.Decimal `json:"cash" yaml:"cash"`

	// Cash flow components of the year
	Income                decimal.Decimal `json:"income" yaml:"income"`
	Expenses              decimal.Decimal `json:"expenses" yaml:"expenses"`
	InsurancePremiums     decimal.Decimal `json:"insurance_premiums" yaml:"insurance_premiums"`
	FinancingInstallments decimal.Decimal `json:"financing_installments" yaml:"financing_installments"`
	NetCashFlow           decimal.Decimal `json:"net_cash_flow" yaml:"net_cash_flow"`

	// Outstanding financing principal at the end of the year (informational)
	FinancingBalance decimal.Decimal `json:"financing_balance" yaml:"financing_balance"`
}

// ProjectionResult is the ordered year series of one simulation
type ProjectionResult struct {
	SimulationID       int64            `json:"simulation_id" yaml:"simulation_id"`
	SimulationName     string           `json:"simulation_name" yaml:"simulation_name"`
	Version            int              `json:"version" yaml:"version"`
	IsCurrentSituation bool             `json:"is_current_situation" yaml:"is_current_situation"`
	StartYear          int              `json:"start_year" yaml:"start_year"`
	RealRate           decimal.Decimal  `json:"real_rate" yaml:"real_rate"`
	Projections        []YearProjection `json:"projections" yaml:"projections"`
}

// FinalPatrimony returns the patrimony at the end of the last projected year
func (pr *ProjectionResult) FinalPatrimony() decimal.Decimal {
	if len(pr.Projections) == 0 {
		return decimal.Zero
	}
	return pr.Projections[len(pr.Projections)-1].PatrimonyEnd
}

// Year returns the row for a calendar year, or nil
func (pr *ProjectionResult) Year(year int) *YearProjection {
	for i := range pr.Projections {
		if pr.Projections[i].Year == year {
			return &pr.Projections[i]
		}
	}
	return nil
}

// SeriesPoint is one simulation's value on the shared year axis.
// Age and PatrimonyEnd are nil when the simulation has no row that year.
type SeriesPoint struct {
	Year         int              `json:"year" yaml:"year"`
	Age          *int             `json:"age" yaml:"age"`
	PatrimonyEnd *decimal.Decimal `json:"patrimony_end" yaml:"patrimony_end"`
}

// SimulationSeries pairs a projection with its points on the shared axis
type SimulationSeries struct {
	ProjectionResult `yaml:",inline"`
	Points           []SeriesPoint `json:"points" yaml:"points"`
}

// ComparisonResult holds one series per requested simulation, in request order
type ComparisonResult struct {
	Years       []int              `json:"years" yaml:"years"`
	EndYear     int                `json:"end_year" yaml:"end_year"`
	LifeStatus  LifeStatus         `json:"life_status,omitempty" yaml:"life_status,omitempty"`
	Simulations []SimulationSeries `json:"simulations" yaml:"simulations"`
}

// Series returns the first series of a simulation id, or nil
func (cr *ComparisonResult) Series(simulationID int64) *SimulationSeries {
	for i := range cr.Simulations {
		if cr.Simulations[i].SimulationID == simulationID {
			return &cr.Simulations[i]
		}
	}
	return nil
}

// CurrentSituation returns the series flagged as the baseline, or nil
func (cr *ComparisonResult) CurrentSituation() *SimulationSeries {
	for i := range cr.Simulations {
		if cr.Simulations[i].IsCurrentSituation {
			return &cr.Simulations[i]
		}
	}
	return nil
}

// StartYear returns the first year of the axis, or EndYear+1 when it is empty
func (cr *ComparisonResult) StartYear() int {
	if len(cr.Years) == 0 {
		return cr.EndYear + 1
	}
	return cr.Years[0]
}
