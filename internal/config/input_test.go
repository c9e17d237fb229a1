package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPortfolio = `
clients:
  - id: 1
    name: Helena
    birth_date: 1978-04-12
    retirement:
      age: 65
simulations:
  - id: 1
    client_id: 1
    name: Current situation
    version: 1
    start_date: 2024-01-01
    real_rate: 0.04
    is_current_situation: true
    assets:
      - id: 1
        name: Brokerage
        type: financial
        records:
          - date: 2024-01-01
            value: 100000
  - id: 2
    client_id: 1
    name: Beach house
    version: 1
    start_date: 2025-01-01
    real_rate: 0.03
    assets:
      - id: 2
        name: Beach house
        type: real_estate
        records:
          - date: 2025-01-01
            value: 900000
        financing:
          start_date: 2025-03-01
          installments: 240
          interest_rate: 0.09
          down_payment: 300000
    movements:
      - id: 1
        name: Rent
        type: expense
        value: 2500
        frequency: monthly
        start_date: 2025-01-10
`

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validPortfolio), 0o644))

	p, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, p.Clients, 1)
	require.Len(t, p.Simulations, 2)
	assert.Equal(t, 65, *p.Clients[0].Retirement.Age)

	house := p.Simulations[1]
	assert.Equal(t, domain.AssetRealEstate, house.Assets[0].Type)
	assert.Equal(t, int64(2), house.Assets[0].SimulationID)
	assert.Equal(t, int64(2), house.Movements[0].SimulationID)
	assert.True(t, decimal.NewFromInt(300000).Equal(house.Assets[0].Financing.DownPayment))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), house.Assets[0].Financing.StartDate)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	p, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("clients: [\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestParse_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		message string
	}{
		{
			name:    "unknown asset type",
			mutate:  func(s string) string { return strings.Replace(s, "type: financial", "type: crypto", 1) },
			message: "simulations[0].assets[0].type",
		},
		{
			name:    "rate at minus one",
			mutate:  func(s string) string { return strings.Replace(s, "real_rate: 0.04", "real_rate: -1", 1) },
			message: "real_rate",
		},
		{
			name:    "zero version",
			mutate:  func(s string) string { return strings.Replace(s, "version: 1", "version: 0", 1) },
			message: "version",
		},
		{
			name: "second current situation",
			mutate: func(s string) string {
				return strings.Replace(s, "real_rate: 0.03", "real_rate: 0.03\n    is_current_situation: true", 1)
			},
			message: "more than one current situation",
		},
		{
			name: "duplicate version",
			mutate: func(s string) string {
				return strings.Replace(s, "name: Beach house\n    version", "name: Current situation\n    version", 1)
			},
			message: "two versions",
		},
		{
			name:    "zero installments",
			mutate:  func(s string) string { return strings.Replace(s, "installments: 240", "installments: 0", 1) },
			message: "installment",
		},
		{
			name: "both retirement date and age",
			mutate: func(s string) string {
				return strings.Replace(s, "age: 65", "age: 65\n      date: 2040-01-01", 1)
			},
			message: "retirement",
		},
		{
			name: "movement ending before it starts",
			mutate: func(s string) string {
				return strings.Replace(s, "start_date: 2025-01-10", "start_date: 2025-01-10\n        end_date: 2024-01-01", 1)
			},
			message: "end date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.mutate(validPortfolio)))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParse_DeletedCurrentSituationDoesNotCount(t *testing.T) {
	input := strings.Replace(validPortfolio, "real_rate: 0.03", "real_rate: 0.03\n    is_current_situation: true\n    deleted_at: 2025-06-01", 1)

	p, err := NewInputParser().Parse([]byte(input))
	require.NoError(t, err)
	assert.True(t, p.Simulations[1].IsDeleted())
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidatePortfolio(example))
	assert.Len(t, example.Simulations, 2)
	assert.True(t, example.Simulations[0].IsCurrentSituation)
	assert.False(t, example.Simulations[1].IsCurrentSituation)
}

func TestSavePortfolio_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, parser.SavePortfolio(parser.CreateExampleConfiguration(), path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Simulations, 2)
	assert.Equal(t, "Beach house", loaded.Simulations[1].Name)
	require.NotNil(t, loaded.Simulations[1].Assets[2].Financing)
	assert.Equal(t, 240, loaded.Simulations[1].Assets[2].Financing.Installments)
	assert.True(t, decimal.RequireFromString("0.04").Equal(loaded.Simulations[0].RealRate))
}
