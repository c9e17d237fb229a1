package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSimulation_UnmarshalYAML(t *testing.T) {
	input := `
id: 3
client_id: 1
name: Buy a house
version: 2
start_date: 2024-01-01
real_rate: 0.04
assets:
  - id: 1
    name: House
    type: real-estate
    records:
      - date: 2024-01-01
        value: 650000
    financing:
      start_date: 2024-02-01
      installments: 360
      interest_rate: 0.09
      down_payment: 130000
movements:
  - id: 1
    name: Salary
    type: income
    category: work
    value: 25000
    frequency: monthly
    start_date: 2024-01-05
    end_date: 2044-12-31
  - id: 2
    name: Bonus
    type: Income
    value: 40000
    frequency: one time
    start_date: 2024-12-20
insurances:
  - id: 1
    name: Term life
    type: life
    start_date: 2024-01-01
    duration_months: 240
    premium: 350
    insured_value: 2000000
`
	var sim Simulation
	require.NoError(t, yaml.Unmarshal([]byte(input), &sim))

	assert.Equal(t, "Buy a house", sim.Name)
	assert.Equal(t, 2, sim.Version)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), sim.StartDate)
	assert.True(t, decimal.RequireFromString("0.04").Equal(sim.RealRate))

	require.Len(t, sim.Assets, 1)
	assert.Equal(t, AssetRealEstate, sim.Assets[0].Type)
	require.NotNil(t, sim.Assets[0].Financing)
	assert.Equal(t, 360, sim.Assets[0].Financing.Installments)
	assert.Nil(t, sim.Assets[0].Financing.Principal)

	require.Len(t, sim.Movements, 2)
	assert.Equal(t, MovementIncome, sim.Movements[0].Type)
	assert.Equal(t, CategoryWork, sim.Movements[0].Category)
	assert.Equal(t, FrequencyMonthly, sim.Movements[0].Frequency)
	require.NotNil(t, sim.Movements[0].EndDate)
	assert.Equal(t, FrequencyOneTime, sim.Movements[1].Frequency)

	require.Len(t, sim.Insurances, 1)
	assert.Equal(t, InsuranceLife, sim.Insurances[0].Type)
}

func TestParseLifeStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected LifeStatus
		wantErr  bool
	}{
		{"", "", false},
		{"active", LifeActive, false},
		{"Retired", LifeRetired, false},
		{" DECEASED ", LifeDeceased, false},
		{"asleep", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLifeStatus(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrConfiguration, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, got)
	}
}

func TestMovement_SignedValue(t *testing.T) {
	m := Movement{Type: MovementExpense, Value: decimal.NewFromInt(-300)}
	assert.True(t, decimal.NewFromInt(-300).Equal(m.SignedValue()))

	m = Movement{Type: MovementIncome, Value: decimal.NewFromInt(-300)}
	assert.True(t, decimal.NewFromInt(300).Equal(m.SignedValue()))
}

func TestSimulation_CloneIsIndependent(t *testing.T) {
	principal := decimal.NewFromInt(1000)
	end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	sim := &Simulation{
		ID:   1,
		Name: "Original",
		Assets: []Asset{{
			ID:        1,
			Records:   []AssetRecord{{Date: end, Value: decimal.NewFromInt(5)}},
			Financing: &Financing{Installments: 12, Principal: &principal},
		}},
		Movements:  []Movement{{ID: 1, EndDate: &end}},
		Insurances: []Insurance{{ID: 1, DurationMonths: 6}},
	}

	c := sim.Clone()
	c.Name = "Copy"
	c.Assets[0].Records[0].Value = decimal.NewFromInt(99)
	c.Assets[0].Financing.Installments = 1
	*c.Assets[0].Financing.Principal = decimal.NewFromInt(1)
	*c.Movements[0].EndDate = end.AddDate(1, 0, 0)
	c.Insurances[0].DurationMonths = 1

	assert.Equal(t, "Original", sim.Name)
	assert.True(t, decimal.NewFromInt(5).Equal(sim.Assets[0].Records[0].Value))
	assert.Equal(t, 12, sim.Assets[0].Financing.Installments)
	assert.True(t, decimal.NewFromInt(1000).Equal(*sim.Assets[0].Financing.Principal))
	assert.Equal(t, end, *sim.Movements[0].EndDate)
	assert.Equal(t, 6, sim.Insurances[0].DurationMonths)
}

func TestPortfolio_FindSimulationSkipsDeleted(t *testing.T) {
	deletedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	p := Portfolio{
		Clients: []Client{{ID: 1, Name: "Ana"}},
		Simulations: []Simulation{
			{ID: 1, ClientID: 1, Name: "Live"},
			{ID: 2, ClientID: 1, Name: "Gone", DeletedAt: &deletedAt},
		},
	}

	require.NotNil(t, p.FindSimulation(1))
	assert.Nil(t, p.FindSimulation(2))
	assert.Nil(t, p.FindSimulation(3))
	require.NotNil(t, p.FindClient(1))
	assert.Nil(t, p.FindClient(2))
}
