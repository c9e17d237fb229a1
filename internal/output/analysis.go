package output

import (
	"sort"

	"github.com/anka/patrimony-planner/internal/calculation"
	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// RankedSimulation is one simulation ordered by its final patrimony
type RankedSimulation struct {
	SimulationID   int64
	Name           string
	Version        int
	FinalYear      int
	FinalPatrimony decimal.Decimal
	// Delta against the current situation at the same final year; nil without a baseline row
	DeltaToCurrent *decimal.Decimal
	PercentChange  *decimal.Decimal
	// First crossing of the current situation line; nil for the baseline itself or when lines never cross
	Crossover *calculation.CrossoverResult
}

// Recommendation encapsulates the ranking of the compared simulations.
type Recommendation struct {
	Ranking []RankedSimulation
	// Best is the simulation with the highest final patrimony; empty without simulations
	Best             string
	CurrentSituation string
}

// AnalyzeComparison ranks simulations by their final patrimony and compares each
// against the current situation series when one was requested.
func AnalyzeComparison(results *domain.ComparisonResult) Recommendation {
	var rec Recommendation
	if results == nil || len(results.Simulations) == 0 {
		return rec
	}

	baseline := results.CurrentSituation()
	if baseline != nil {
		rec.CurrentSituation = baseline.SimulationName
	}

	for i := range results.Simulations {
		s := &results.Simulations[i]
		r := RankedSimulation{
			SimulationID:   s.SimulationID,
			Name:           s.SimulationName,
			Version:        s.Version,
			FinalPatrimony: s.FinalPatrimony(),
		}
		if n := len(s.Projections); n > 0 {
			r.FinalYear = s.Projections[n-1].Year
		}
		if baseline != nil && r.FinalYear != 0 {
			if row := baseline.Year(r.FinalYear); row != nil {
				delta := r.FinalPatrimony.Sub(row.PatrimonyEnd)
				r.DeltaToCurrent = &delta
				if !row.PatrimonyEnd.IsZero() {
					pct := delta.Div(row.PatrimonyEnd.Abs()).Mul(decimal.NewFromInt(100))
					r.PercentChange = &pct
				}
			}
			if s != baseline {
				r.Crossover = calculation.PatrimonyCrossover(s, baseline)
			}
		}
		rec.Ranking = append(rec.Ranking, r)
	}

	sort.SliceStable(rec.Ranking, func(i, j int) bool {
		return rec.Ranking[i].FinalPatrimony.GreaterThan(rec.Ranking[j].FinalPatrimony)
	})
	rec.Best = rec.Ranking[0].Name
	return rec
}
