// Package money holds the compounding and annuity arithmetic shared by the
// projection engine. All amounts are shopspring decimals.
package money

import (
	"github.com/shopspring/decimal"
)

// powPrecision bounds the scale of intermediate growth factors; exact powers of
// a rate over hundreds of periods would otherwise carry thousands of digits.
const powPrecision = 18

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// Round rounds an amount to cents
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MonthlyRate converts an annual nominal rate into its monthly periodic rate
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// GrowthFactor returns (1+rate)^periods
func GrowthFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods == 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(periods))).Round(powPrecision)
}

// Compound grows an amount by rate once per period
func Compound(amount, rate decimal.Decimal, periods int) decimal.Decimal {
	return amount.Mul(GrowthFactor(rate, periods))
}

// AnnuityPayment returns the constant installment that repays principal over n
// periods at the periodic rate: P·i·(1+i)^n / ((1+i)^n − 1), or P/n without interest.
func AnnuityPayment(principal, rate decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	if rate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n)))
	}
	f := GrowthFactor(rate, n)
	return principal.Mul(rate).Mul(f).Div(f.Sub(one))
}

// RemainingBalance returns the outstanding principal of a constant-payment loan
// after k of n payments: P·((1+i)^n − (1+i)^k) / ((1+i)^n − 1), or P·(n−k)/n
// without interest. k is clamped to [0, n].
func RemainingBalance(principal, rate decimal.Decimal, n, k int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	if k < 0 {
		k = 0
	}
	if k >= n {
		return decimal.Zero
	}
	if rate.IsZero() {
		return principal.Mul(decimal.NewFromInt(int64(n - k))).Div(decimal.NewFromInt(int64(n)))
	}
	fn := GrowthFactor(rate, n)
	fk := GrowthFactor(rate, k)
	return principal.Mul(fn.Sub(fk)).Div(fn.Sub(one))
}

// Sum adds a list of amounts
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Min returns the minimum of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
