package calculation

import (
	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/anka/patrimony-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// CrossoverResult describes where the patrimony lines of two series cross
type CrossoverResult struct {
	// Calendar year during which the crossover happens
	Year int `json:"year"`

	// Fraction (0..1] of Year elapsed at the crossover, assuming linear movement between year ends
	Fraction decimal.Decimal `json:"fraction_of_year"`
	Month    int             `json:"month"`

	// Interpolated patrimony at the crossover (equal for both series)
	Amount decimal.Decimal `json:"amount"`

	// Overtakes is true when a ends above b after the crossover
	Overtakes bool `json:"overtakes"`
}

var crossoverTolerance = decimal.NewFromFloat(0.01)

// PatrimonyCrossover finds the first crossover between the year-end patrimony
// of a and b on their shared axis. Only years both series cover are compared.
// An equal starting point is not a crossover. Returns nil when the lines
// never cross.
func PatrimonyCrossover(a, b *domain.SimulationSeries) *CrossoverResult {
	if a == nil || b == nil {
		return nil
	}
	n := min(len(a.Points), len(b.Points))

	// prevDiff is zero until one series leads
	var prevA, prevDiff decimal.Decimal
	for i := 0; i < n; i++ {
		pa, pb := a.Points[i], b.Points[i]
		if pa.PatrimonyEnd == nil || pb.PatrimonyEnd == nil {
			continue
		}
		currA := *pa.PatrimonyEnd
		diff := currA.Sub(*pb.PatrimonyEnd)
		negligible := diff.Abs().LessThan(crossoverTolerance)

		switch {
		case prevDiff.IsZero():
		case negligible:
			// lines meet at year end; it is a crossover only if they part on the other side
			if next := nextDiff(a, b, i+1, n); next.Sign() == -prevDiff.Sign() {
				return &CrossoverResult{
					Year:      pa.Year,
					Fraction:  decimal.NewFromInt(1),
					Month:     12,
					Amount:    money.Round(currA),
					Overtakes: next.Sign() > 0,
				}
			}
		case diff.Sign() != prevDiff.Sign():
			fraction := prevDiff.Abs().Div(prevDiff.Abs().Add(diff.Abs()))
			month := int(fraction.Mul(decimal.NewFromInt(12)).Ceil().IntPart())
			return &CrossoverResult{
				Year:      pa.Year,
				Fraction:  fraction.Round(4),
				Month:     max(1, min(month, 12)),
				Amount:    money.Round(prevA.Add(currA.Sub(prevA).Mul(fraction))),
				Overtakes: diff.Sign() > 0,
			}
		}

		prevA = currA
		if !negligible {
			prevDiff = diff
		}
	}
	return nil
}

// nextDiff returns the first non-negligible difference from index i on
func nextDiff(a, b *domain.SimulationSeries, i, n int) decimal.Decimal {
	for ; i < n; i++ {
		pa, pb := a.Points[i], b.Points[i]
		if pa.PatrimonyEnd == nil || pb.PatrimonyEnd == nil {
			continue
		}
		if d := pa.PatrimonyEnd.Sub(*pb.PatrimonyEnd); !d.Abs().LessThan(crossoverTolerance) {
			return d
		}
	}
	return decimal.Zero
}
