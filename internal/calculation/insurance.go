package calculation

import (
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/anka/patrimony-planner/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// PremiumsInYear returns the total premium debited in a calendar year: the
// monthly premium for every month of year inside [start, start+DurationMonths).
// The insured value is never accrued.
func PremiumsInYear(ins *domain.Insurance, year int) decimal.Decimal {
	return PremiumsBetween(ins, dateutil.BeginningOfYear(year), year)
}

// PremiumsBetween is PremiumsInYear restricted to months on or after from's month
func PremiumsBetween(ins *domain.Insurance, from time.Time, year int) decimal.Decimal {
	months := ActivePremiumMonths(ins, from, year)
	if months == 0 {
		return decimal.Zero
	}
	return ins.Premium.Abs().Mul(decimal.NewFromInt(int64(months)))
}

// ActivePremiumMonths counts the covered months of year from from's month onward
func ActivePremiumMonths(ins *domain.Insurance, from time.Time, year int) int {
	if ins.DurationMonths <= 0 {
		return 0
	}
	first := dateutil.MonthIndex(ins.StartDate)
	last := first + ins.DurationMonths - 1

	lo := year * 12
	hi := lo + 11
	if f := dateutil.MonthIndex(from); f > lo {
		lo = f
	}
	if first > lo {
		lo = first
	}
	if last < hi {
		hi = last
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}
