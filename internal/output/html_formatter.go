package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// HTMLFormatter produces a static HTML report with the comparison table,
// the ranking, the assumptions and one detail table per simulation.
type HTMLFormatter struct {
	Language language.Tag
}

func (h HTMLFormatter) Name() string { return "html" }

func (h HTMLFormatter) WithLanguage(tag language.Tag) Formatter {
	h.Language = tag
	return h
}

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": FormatPercentage,
	"label": func(s domain.SimulationSeries) string {
		return seriesLabel(&s)
	},
	"deref":     func(d *decimal.Decimal) decimal.Decimal { return *d },
	"crossover": crossoverVerb,
	// replaced per render with a language bound printer
	"amount":   FormatCurrency,
	"optional": FormatOptional,
	"point": func(s domain.SimulationSeries, i int) domain.SeriesPoint {
		return s.Points[i]
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.ComparisonResult) ([]byte, error) {
	ap := newAmountPrinter(h.Language)
	tmpl, err := htmlTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{"amount": ap.Amount, "optional": ap.Optional})

	data := struct {
		*domain.ComparisonResult
		Recommendation Recommendation
		Assumptions    []string
	}{results, AnalyzeComparison(results), GenerateAssumptions(results)}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
