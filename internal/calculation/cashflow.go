package calculation

import (
	"iter"
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/anka/patrimony-planner/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Occurrence is one dated cash event of a movement
type Occurrence struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// OccurrencesInYear enumerates the occurrences of a movement inside a calendar
// year. The sequence is lazy and can be ranged over any number of times; it
// never emits an occurrence outside [StartDate, EndDate].
//
//   - ONE_TIME: the start date, when it falls in year
//   - MONTHLY: one per month, on the start day-of-month (clamped to the month length)
//   - ANNUALLY: the start month/day of year
func OccurrencesInYear(m *domain.Movement, year int) iter.Seq[Occurrence] {
	mv := *m
	start := dateutil.DateOnly(mv.StartDate)
	var end *time.Time
	if mv.EndDate != nil {
		e := dateutil.DateOnly(*mv.EndDate)
		end = &e
	}
	amount := mv.SignedValue()

	active := func(d time.Time) bool {
		if d.Before(start) {
			return false
		}
		return end == nil || !d.After(*end)
	}

	return func(yield func(Occurrence) bool) {
		if year < start.Year() || (end != nil && year > end.Year()) {
			return
		}
		switch mv.Frequency {
		case domain.FrequencyOneTime:
			if start.Year() == year && active(start) {
				yield(Occurrence{Date: start, Amount: amount})
			}
		case domain.FrequencyMonthly:
			for month := time.January; month <= time.December; month++ {
				d := dateutil.DateInMonth(year, month, start.Day())
				if !active(d) {
					continue
				}
				if !yield(Occurrence{Date: d, Amount: amount}) {
					return
				}
			}
		case domain.FrequencyAnnually:
			d := dateutil.AnniversaryInYear(start, year)
			if active(d) {
				yield(Occurrence{Date: d, Amount: amount})
			}
		}
	}
}

// CashFlowTotals splits a year's occurrences into inflows and outflows
type CashFlowTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal // negative or zero
}

// Net returns income plus (negative) expenses
func (t CashFlowTotals) Net() decimal.Decimal {
	return t.Income.Add(t.Expenses)
}

// SumOccurrences totals the occurrences dated on or after from
func SumOccurrences(seq iter.Seq[Occurrence], from time.Time) CashFlowTotals {
	totals := CashFlowTotals{Income: decimal.Zero, Expenses: decimal.Zero}
	from = dateutil.DateOnly(from)
	for o := range seq {
		if o.Date.Before(from) {
			continue
		}
		if o.Amount.IsNegative() {
			totals.Expenses = totals.Expenses.Add(o.Amount)
		} else {
			totals.Income = totals.Income.Add(o.Amount)
		}
	}
	return totals
}
