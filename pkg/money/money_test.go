package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRound(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"-10.005", "-10.01"},
	}
	for _, c := range cases {
		got := Round(dec(c.in)).StringFixed(2)
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestCompound(t *testing.T) {
	got := Compound(decimal.NewFromInt(100000), dec("0.04"), 2)
	if !got.Equal(decimal.NewFromInt(108160)) {
		t.Fatalf("compound got %s want 108160", got)
	}
	if !GrowthFactor(dec("0.04"), 0).Equal(decimal.NewFromInt(1)) {
		t.Fatalf("zero periods should be a unit factor")
	}
}

func TestAnnuityPayment(t *testing.T) {
	// 200k over 360 months at 0.5% per month is the textbook 1199.10
	p := AnnuityPayment(decimal.NewFromInt(200000), dec("0.005"), 360)
	if p.StringFixed(2) != "1199.10" {
		t.Fatalf("payment got %s want 1199.10", p.StringFixed(2))
	}
	if got := AnnuityPayment(decimal.NewFromInt(1200), decimal.Zero, 12); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("zero-rate payment got %s want 100", got)
	}
	if got := AnnuityPayment(decimal.NewFromInt(1200), decimal.Zero, 0); !got.IsZero() {
		t.Fatalf("no installments should pay nothing, got %s", got)
	}
}

func TestRemainingBalance(t *testing.T) {
	principal := decimal.NewFromInt(200000)
	rate := dec("0.005")
	if got := RemainingBalance(principal, rate, 360, 0); !got.Equal(principal) {
		t.Fatalf("balance before any payment got %s want %s", got, principal)
	}
	if got := RemainingBalance(principal, rate, 360, 360); !got.IsZero() {
		t.Fatalf("balance after the last payment got %s want 0", got)
	}
	prev := principal
	for k := 1; k < 360; k += 7 {
		b := RemainingBalance(principal, rate, 360, k)
		if !b.LessThan(prev) {
			t.Fatalf("balance must decrease: k=%d got %s prev %s", k, b, prev)
		}
		prev = b
	}
	if got := RemainingBalance(decimal.NewFromInt(1200), decimal.Zero, 12, 3); !got.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("zero-rate balance got %s want 900", got)
	}
}

func TestMinMaxSum(t *testing.T) {
	a, b := decimal.NewFromInt(1), decimal.NewFromInt(2)
	if !Min(a, b).Equal(a) || !Max(a, b).Equal(b) {
		t.Fatalf("min/max mismatch")
	}
	if !Sum(a, b, b).Equal(decimal.NewFromInt(5)) {
		t.Fatalf("sum mismatch")
	}
	if !MonthlyRate(dec("0.12")).Equal(dec("0.01")) {
		t.Fatalf("monthly rate mismatch")
	}
}
