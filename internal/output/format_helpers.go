package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency formats an amount with 2 decimals and no grouping.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatOptional formats a possibly missing amount; missing amounts render empty
func FormatOptional(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return FormatCurrency(*amount)
}

// amountPrinter renders amounts with the grouping and decimal marks of a language
type amountPrinter struct {
	p *message.Printer
}

func newAmountPrinter(tag language.Tag) amountPrinter {
	if tag == language.Und {
		tag = language.English
	}
	return amountPrinter{p: message.NewPrinter(tag)}
}

// Amount renders an amount rounded to cents
func (ap amountPrinter) Amount(d decimal.Decimal) string {
	return ap.p.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Optional renders a possibly missing amount as "-"
func (ap amountPrinter) Optional(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return ap.Amount(*d)
}

func intToString(i int) string { return strconv.Itoa(i) }

func optionalInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func int64ToString(i int64) string { return strconv.FormatInt(i, 10) }
