package calculation

import (
	"testing"
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValueAt(t *testing.T) {
	asset := financialAsset(1,
		record(date(2024, time.June, 1), "150"),
		record(date(2024, time.January, 1), "100"),
		record(date(2025, time.January, 1), "200"),
	)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"before first record", date(2023, time.December, 31), "0"},
		{"on first record", date(2024, time.January, 1), "100"},
		{"between records", date(2024, time.March, 15), "100"},
		{"unsorted input", date(2024, time.December, 31), "150"},
		{"after last record", date(2030, time.January, 1), "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueAt(&asset, tt.at)
			assert.True(t, dec(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestValueAt_SameDayIgnoresClock(t *testing.T) {
	asset := financialAsset(1, domain.AssetRecord{
		Date:  time.Date(2024, time.March, 1, 18, 30, 0, 0, time.UTC),
		Value: dec("500"),
	})
	assert.True(t, dec("500").Equal(ValueAt(&asset, date(2024, time.March, 1))))
}

func TestValueAt_TiesResolveToLastListed(t *testing.T) {
	asset := financialAsset(1,
		record(date(2024, time.March, 1), "10"),
		record(date(2024, time.March, 1), "20"),
	)
	assert.True(t, dec("20").Equal(ValueAt(&asset, date(2024, time.March, 1))))
}

func TestValueAt_StableBetweenRecords(t *testing.T) {
	asset := financialAsset(1,
		record(date(2024, time.January, 1), "100"),
		record(date(2026, time.January, 1), "300"),
	)
	d1 := date(2024, time.February, 1)
	for d2 := d1; d2.Before(date(2026, time.January, 1)); d2 = d2.AddDate(0, 1, 0) {
		assert.True(t, ValueAt(&asset, d1).Equal(ValueAt(&asset, d2)), "value changed at %s", d2)
	}
}

func TestHasRecordBetween(t *testing.T) {
	asset := financialAsset(1, record(date(2024, time.July, 1), "1"))

	assert.True(t, HasRecordBetween(&asset, date(2024, time.January, 1), date(2024, time.December, 31)))
	assert.False(t, HasRecordBetween(&asset, date(2024, time.July, 1), date(2024, time.December, 31)))
	assert.False(t, HasRecordBetween(&asset, date(2023, time.January, 1), date(2024, time.June, 30)))
}

func TestTotalValueAt(t *testing.T) {
	assets := []domain.Asset{
		financialAsset(1, record(date(2024, time.January, 1), "100")),
		financialAsset(2, record(date(2024, time.January, 1), "50.25")),
		financialAsset(3),
	}
	assert.True(t, dec("150.25").Equal(TotalValueAt(assets, date(2024, time.May, 1))))
}
