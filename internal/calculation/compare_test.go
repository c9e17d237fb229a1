package calculation

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compareInputs() (SimulationInput, SimulationInput) {
	simA := newSimulation(10, date(2024, time.January, 1), "0.04")
	simA.Name = "Current"
	simA.IsCurrentSituation = true
	simA.Assets = []domain.Asset{financialAsset(1, record(date(2024, time.January, 1), "100000"))}

	simB := newSimulation(20, date(2026, time.January, 1), "0.05")
	simB.Name = "Sell the flat"
	simB.Movements = []domain.Movement{monthlyIncome(1, "2000", date(2026, time.January, 1))}

	client := testClient()
	return SimulationInput{Client: client, Simulation: simA}, SimulationInput{Client: client, Simulation: simB}
}

func TestCompare_AlignsLaterStart(t *testing.T) {
	a, b := compareInputs()

	cmp, err := NewProjectionEngine().Compare(context.Background(), []SimulationInput{a, b}, ProjectionOptions{EndYear: 2030})
	require.NoError(t, err)

	assert.Equal(t, []int{2024, 2025, 2026, 2027, 2028, 2029, 2030}, cmp.Years)
	require.Len(t, cmp.Simulations, 2)
	assert.Equal(t, int64(10), cmp.Simulations[0].SimulationID)
	assert.Equal(t, int64(20), cmp.Simulations[1].SimulationID)

	seriesB := cmp.Series(20)
	require.NotNil(t, seriesB)
	require.Len(t, seriesB.Points, len(cmp.Years))
	for _, p := range seriesB.Points[:2] {
		assert.Nil(t, p.PatrimonyEnd, "year %d", p.Year)
		assert.Nil(t, p.Age, "year %d", p.Year)
	}
	require.NotNil(t, seriesB.Points[2].PatrimonyEnd)
	assert.Equal(t, 2026, seriesB.Points[2].Year)
	assertAmount(t, "24000", *seriesB.Points[2].PatrimonyEnd)
	assert.Equal(t, 45, *seriesB.Points[2].Age)

	seriesA := cmp.CurrentSituation()
	require.NotNil(t, seriesA)
	assertAmount(t, "104000", *seriesA.Points[0].PatrimonyEnd)
	assertAmount(t, "108160", *seriesA.Points[1].PatrimonyEnd)
	for _, p := range seriesA.Points {
		assert.NotNil(t, p.PatrimonyEnd)
	}
}

func TestCompare_KeepsRequestOrderAndDuplicates(t *testing.T) {
	a, b := compareInputs()

	cmp, err := NewProjectionEngine().Compare(context.Background(), []SimulationInput{b, a, b}, ProjectionOptions{EndYear: 2028})
	require.NoError(t, err)

	ids := make([]int64, 0, len(cmp.Simulations))
	for _, s := range cmp.Simulations {
		ids = append(ids, s.SimulationID)
	}
	assert.Equal(t, []int64{20, 10, 20}, ids)
	first, err := json.Marshal(cmp.Simulations[0])
	require.NoError(t, err)
	last, err := json.Marshal(cmp.Simulations[2])
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(last))
}

func TestCompare_AllOrNothing(t *testing.T) {
	a, b := compareInputs()
	b.Simulation.Assets = []domain.Asset{financialAsset(5, record(date(2026, time.January, 1), "-1"))}

	cmp, err := NewProjectionEngine().Compare(context.Background(), []SimulationInput{a, b}, ProjectionOptions{EndYear: 2030})
	require.Error(t, err)
	assert.Nil(t, cmp)
	assert.Equal(t, domain.KindInconsistentState, domain.KindOf(err))
	assert.Contains(t, err.Error(), "simulation 20")
}

func TestCompare_EndYearBeforeLaterStartFails(t *testing.T) {
	a, b := compareInputs()

	_, err := NewProjectionEngine().Compare(context.Background(), []SimulationInput{a, b}, ProjectionOptions{EndYear: 2025})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestCompare_WorkerCountDoesNotChangeResult(t *testing.T) {
	a, b := compareInputs()
	inputs := []SimulationInput{a, b, a, b, a}
	opts := ProjectionOptions{EndYear: 2060, LifeStatus: domain.LifeRetired}

	serial := NewProjectionEngine()
	serial.Workers = 1
	parallel := NewProjectionEngine()
	parallel.Workers = 8

	r1, err := serial.Compare(context.Background(), inputs, opts)
	require.NoError(t, err)
	r2, err := parallel.Compare(context.Background(), inputs, opts)
	require.NoError(t, err)

	j1, err := json.Marshal(r1)
	require.NoError(t, err)
	j2, err := json.Marshal(r2)
	require.NoError(t, err)
	assert.Equal(t, string(j1), string(j2))
	assert.Equal(t, domain.LifeRetired, r1.LifeStatus)
}

func TestCompare_Empty(t *testing.T) {
	_, err := NewProjectionEngine().Compare(context.Background(), nil, ProjectionOptions{EndYear: 2030})
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
