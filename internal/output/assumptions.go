package output

import (
	"fmt"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the modeling conventions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"All amounts are in real terms (constant purchasing power)",
	"Financial assets and accumulated cash compound once a year at the simulation real rate",
	"Real estate keeps its last recorded value",
	"A record dated inside a year replaces that year's synthetic growth",
	"Financing installments follow a constant-payment schedule, first installment one month after start",
	"Insurance premiums are expenses; payouts are not projected",
}

// GenerateAssumptions prepends the real rate of each compared simulation to the defaults
func GenerateAssumptions(results *domain.ComparisonResult) []string {
	out := make([]string, 0, len(DefaultAssumptions)+len(results.Simulations))
	seen := make(map[int64]bool)
	for _, s := range results.Simulations {
		if seen[s.SimulationID] {
			continue
		}
		seen[s.SimulationID] = true
		out = append(out, fmt.Sprintf("%s v%d: real rate %s annually",
			s.SimulationName, s.Version, FormatPercentage(s.RealRate.Mul(decimalHundred))))
	}
	if results.LifeStatus != "" {
		out = append(out, fmt.Sprintf("Horizon truncated by life status %q", results.LifeStatus))
	}
	return append(out, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
