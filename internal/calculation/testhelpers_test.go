package calculation

import (
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func datePtr(t time.Time) *time.Time { return &t }

func intPtr(i int) *int { return &i }

func record(t time.Time, value string) domain.AssetRecord {
	return domain.AssetRecord{Date: t, Value: dec(value)}
}

func financialAsset(id int64, records ...domain.AssetRecord) domain.Asset {
	return domain.Asset{ID: id, Name: "Portfolio", Type: domain.AssetFinancial, Records: records}
}

func monthlyIncome(id int64, value string, start time.Time) domain.Movement {
	return domain.Movement{
		ID:        id,
		Name:      "Salary",
		Type:      domain.MovementIncome,
		Category:  domain.CategoryWork,
		Value:     dec(value),
		Frequency: domain.FrequencyMonthly,
		StartDate: start,
	}
}

func newSimulation(id int64, start time.Time, rate string) *domain.Simulation {
	return &domain.Simulation{
		ID:        id,
		ClientID:  1,
		Name:      "Plan",
		Version:   1,
		StartDate: start,
		RealRate:  dec(rate),
	}
}

func testClient() *domain.Client {
	return &domain.Client{
		ID:         1,
		Name:       "Ana",
		BirthDate:  date(1980, time.June, 15),
		Retirement: &domain.LifeEvent{Age: intPtr(65)},
		Mortality:  &domain.LifeEvent{Date: datePtr(date(2060, time.March, 1))},
	}
}
