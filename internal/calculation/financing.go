package calculation

import (
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/anka/patrimony-planner/pkg/dateutil"
	"github.com/anka/patrimony-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// FinancingStatus is the lifecycle position of a financing contract at a date
type FinancingStatus string

const (
	FinancingNotStarted FinancingStatus = "NOT_STARTED"
	FinancingInProgress FinancingStatus = "IN_PROGRESS"
	FinancingSettled    FinancingStatus = "SETTLED"
)

// FinancingContract is a financing with its principal resolved.
// AnnualRate is nominal; installments are monthly at AnnualRate/12.
type FinancingContract struct {
	AssetID      int64
	StartDate    time.Time
	Installments int
	AnnualRate   decimal.Decimal
	Principal    decimal.Decimal
}

// FinancingState is the amortization progress of a contract at a date
type FinancingState struct {
	Status              FinancingStatus `json:"status"`
	ElapsedInstallments int             `json:"elapsed_installments"`
	RemainingBalance    decimal.Decimal `json:"remaining_balance"`
	Payment             decimal.Decimal `json:"payment"`
}

// ResolveContract builds the contract of an asset's financing. Without an
// explicit principal, the principal is the asset value at the financing start
// (or its earliest record when none precedes the start) minus the down payment.
func ResolveContract(asset *domain.Asset) (FinancingContract, error) {
	f := asset.Financing
	if f == nil {
		return FinancingContract{}, domain.ConfigurationError("asset %d has no financing", asset.ID)
	}

	var principal decimal.Decimal
	if f.Principal != nil {
		principal = *f.Principal
	} else {
		price := ValueAt(asset, f.StartDate)
		if price.IsZero() {
			if first, ok := EarliestRecord(asset); ok {
				price = first.Value
			}
		}
		principal = money.Max(price.Sub(f.DownPayment), decimal.Zero)
	}

	c := FinancingContract{
		AssetID:      asset.ID,
		StartDate:    f.StartDate,
		Installments: f.Installments,
		AnnualRate:   f.InterestRate,
		Principal:    principal,
	}
	if err := c.Validate(); err != nil {
		return FinancingContract{}, err
	}
	return c, nil
}

// Validate rejects contracts that cannot be amortized
func (c FinancingContract) Validate() error {
	if c.Installments <= 0 {
		return domain.ConfigurationError("financing of asset %d must have a positive installment count, got %d", c.AssetID, c.Installments)
	}
	if c.Principal.IsNegative() {
		return domain.ConfigurationError("financing of asset %d has a negative principal %s", c.AssetID, c.Principal.StringFixed(2))
	}
	if c.AnnualRate.IsNegative() {
		return domain.ConfigurationError("financing of asset %d has a negative interest rate", c.AssetID)
	}
	if c.StartDate.IsZero() {
		return domain.ConfigurationError("financing of asset %d has no start date", c.AssetID)
	}
	return nil
}

// PeriodicRate returns the monthly rate of the contract
func (c FinancingContract) PeriodicRate() decimal.Decimal {
	return money.MonthlyRate(c.AnnualRate)
}

// Payment returns the constant monthly installment
func (c FinancingContract) Payment() decimal.Decimal {
	return money.AnnuityPayment(c.Principal, c.PeriodicRate(), c.Installments)
}

// ElapsedInstallments returns the whole installment periods between the start
// date and date, clamped to [0, Installments]
func (c FinancingContract) ElapsedInstallments(date time.Time) int {
	k := dateutil.MonthsBetween(c.StartDate, date)
	if k < 0 {
		return 0
	}
	if k > c.Installments {
		return c.Installments
	}
	return k
}

// AmortizationState returns the state of the contract as of date
func AmortizationState(c FinancingContract, date time.Time) (FinancingState, error) {
	if err := c.Validate(); err != nil {
		return FinancingState{}, err
	}

	payment := c.Payment()
	if !dateutil.OnOrBefore(c.StartDate, date) {
		return FinancingState{
			Status:           FinancingNotStarted,
			RemainingBalance: c.Principal,
			Payment:          payment,
		}, nil
	}

	k := c.ElapsedInstallments(date)
	if k >= c.Installments {
		return FinancingState{
			Status:              FinancingSettled,
			ElapsedInstallments: c.Installments,
			RemainingBalance:    decimal.Zero,
			Payment:             payment,
		}, nil
	}

	return FinancingState{
		Status:              FinancingInProgress,
		ElapsedInstallments: k,
		RemainingBalance:    money.RemainingBalance(c.Principal, c.PeriodicRate(), c.Installments, k),
		Payment:             payment,
	}, nil
}

// InstallmentsBetween counts installments dated within [from, to]. Installment k
// falls k months after the start date.
func InstallmentsBetween(c FinancingContract, from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return c.ElapsedInstallments(to) - c.ElapsedInstallments(from.AddDate(0, 0, -1))
}
