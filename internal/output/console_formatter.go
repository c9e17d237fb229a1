package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/anka/patrimony-planner/internal/calculation"
	"github.com/anka/patrimony-planner/internal/domain"
	"golang.org/x/text/language"
)

// ConsoleFormatter renders the comparison as aligned text tables
type ConsoleFormatter struct {
	Language language.Tag
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) WithLanguage(tag language.Tag) Formatter {
	c.Language = tag
	return c
}

func (c ConsoleFormatter) Format(results *domain.ComparisonResult) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("nil results")
	}
	ap := newAmountPrinter(c.Language)
	var buf bytes.Buffer
	sep := strings.Repeat("=", 80)

	fmt.Fprintln(&buf, sep)
	fmt.Fprintln(&buf, "PATRIMONY PROJECTION")
	fmt.Fprintln(&buf, sep)
	fmt.Fprintf(&buf, "Horizon: %d-%d", results.StartYear(), results.EndYear)
	if results.LifeStatus != "" {
		fmt.Fprintf(&buf, " (life status: %s)", results.LifeStatus)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf)

	// Shared axis: one column per simulation
	fmt.Fprintf(&buf, "%-6s", "Year")
	for _, s := range results.Simulations {
		fmt.Fprintf(&buf, " %20s", seriesLabel(&s))
	}
	fmt.Fprintln(&buf)
	for i, y := range results.Years {
		fmt.Fprintf(&buf, "%-6d", y)
		for _, s := range results.Simulations {
			fmt.Fprintf(&buf, " %20s", ap.Optional(s.Points[i].PatrimonyEnd))
		}
		fmt.Fprintln(&buf)
	}

	for _, s := range results.Simulations {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, strings.Repeat("-", 80))
		fmt.Fprintf(&buf, "%s (simulation %d)\n", seriesLabel(&s), s.SimulationID)
		fmt.Fprintln(&buf, strings.Repeat("-", 80))
		if len(s.Projections) == 0 {
			fmt.Fprintln(&buf, "No projected years.")
			continue
		}
		fmt.Fprintf(&buf, "%-6s %4s %16s %16s %16s %16s\n", "Year", "Age", "Income", "Expenses", "Net Flow", "Patrimony")
		for _, p := range s.Projections {
			fmt.Fprintf(&buf, "%-6d %4d %16s %16s %16s %16s\n",
				p.Year, p.Age, ap.Amount(p.Income), ap.Amount(p.Expenses), ap.Amount(p.NetCashFlow), ap.Amount(p.PatrimonyEnd))
		}
	}

	rec := AnalyzeComparison(results)
	if len(rec.Ranking) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, sep)
		fmt.Fprintln(&buf, "RANKING BY FINAL PATRIMONY")
		fmt.Fprintln(&buf, sep)
		for i, r := range rec.Ranking {
			fmt.Fprintf(&buf, "%d. %-30s %20s", i+1, fmt.Sprintf("%s v%d", r.Name, r.Version), ap.Amount(r.FinalPatrimony))
			if r.DeltaToCurrent != nil {
				fmt.Fprintf(&buf, "  vs current: %s", ap.Amount(*r.DeltaToCurrent))
			}
			if r.PercentChange != nil {
				fmt.Fprintf(&buf, " (%s)", FormatPercentage(*r.PercentChange))
			}
			fmt.Fprintln(&buf)
			if c := r.Crossover; c != nil {
				fmt.Fprintf(&buf, "   %s the current situation in %02d/%d at %s\n", crossoverVerb(c), c.Month, c.Year, ap.Amount(c.Amount))
			}
		}
	}
	return buf.Bytes(), nil
}

func crossoverVerb(c *calculation.CrossoverResult) string {
	if c.Overtakes {
		return "overtakes"
	}
	return "falls behind"
}

func seriesLabel(s *domain.SimulationSeries) string {
	label := fmt.Sprintf("%s v%d", s.SimulationName, s.Version)
	if s.IsCurrentSituation {
		label += " *"
	}
	return label
}
