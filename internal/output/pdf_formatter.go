package output

import (
	"bytes"
	"fmt"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
)

// PDFFormatter renders a printable comparison table followed by the ranking.
type PDFFormatter struct {
	Language language.Tag
}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) WithLanguage(tag language.Tag) Formatter {
	p.Language = tag
	return p
}

// usable landscape A4 width in mm with 10mm margins
const pdfTableWidth = 277.0

func (p PDFFormatter) Format(results *domain.ComparisonResult) ([]byte, error) {
	ap := newAmountPrinter(p.Language)
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Patrimony Projection")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Horizon: %d-%d", results.StartYear(), results.EndYear))
	pdf.Ln(5)
	if results.LifeStatus != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Life status: %s", results.LifeStatus))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	yearWidth := 20.0
	colWidth := 45.0
	if n := len(results.Simulations); n > 0 {
		colWidth = min(colWidth, (pdfTableWidth-yearWidth)/float64(n))
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(yearWidth, 6, "Year", "1", 0, "C", false, 0, "")
	for _, s := range results.Simulations {
		pdf.CellFormat(colWidth, 6, tr(seriesLabel(&s)), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for i, y := range results.Years {
		pdf.CellFormat(yearWidth, 6, intToString(y), "1", 0, "C", false, 0, "")
		for _, s := range results.Simulations {
			pdf.CellFormat(colWidth, 6, tr(ap.Optional(s.Points[i].PatrimonyEnd)), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	rec := AnalyzeComparison(results)
	if len(rec.Ranking) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, "Ranking by final patrimony")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		for i, r := range rec.Ranking {
			line := fmt.Sprintf("%d. %s v%d: %s", i+1, r.Name, r.Version, ap.Amount(r.FinalPatrimony))
			if r.DeltaToCurrent != nil {
				line += fmt.Sprintf(" (vs current %s)", ap.Amount(*r.DeltaToCurrent))
			}
			pdf.Cell(0, 6, tr(line))
			pdf.Ln(5)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 8)
	for _, a := range GenerateAssumptions(results) {
		pdf.Cell(0, 5, tr(a))
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
