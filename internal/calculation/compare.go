package calculation

import (
	"context"
	"fmt"

	"github.com/anka/patrimony-planner/internal/domain"
	"golang.org/x/sync/errgroup"
)

type indexedResult struct {
	index  int
	result *domain.ProjectionResult
}

// Compare projects several simulations concurrently and aligns their series on
// a shared year axis running from the earliest start year to opts.EndYear.
// Series keep the request order, duplicates included. A failure of any
// projection fails the whole comparison.
func (pe *ProjectionEngine) Compare(ctx context.Context, inputs []SimulationInput, opts ProjectionOptions) (*domain.ComparisonResult, error) {
	if len(inputs) == 0 {
		return nil, domain.ConfigurationError("no simulations to compare")
	}
	for i, in := range inputs {
		if in.Simulation == nil {
			return nil, domain.NotFoundError("simulation %d: no simulation supplied", i)
		}
	}

	// Workers read private snapshots so callers may keep mutating their inputs.
	snapshots := make([]SimulationInput, len(inputs))
	for i, in := range inputs {
		snapshots[i] = in.snapshot()
	}

	results := make(chan indexedResult, len(snapshots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pe.workers())

	for i, in := range snapshots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := pe.Project(gctx, in, opts)
			if err != nil {
				return fmt.Errorf("simulation %d: %w", in.Simulation.ID, err)
			}
			results <- indexedResult{index: i, result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		pe.Logger.Errorf("comparison aborted: %v", err)
		return nil, err
	}
	close(results)

	ordered := make([]*domain.ProjectionResult, len(snapshots))
	for r := range results {
		ordered[r.index] = r.result
	}

	cmp := Align(ordered, opts)
	pe.Logger.Infof("compared %d simulations over %d-%d", len(ordered), cmp.StartYear(), opts.EndYear)
	return cmp, nil
}

// Align places projections on a shared year axis running from the earliest
// start year to opts.EndYear. Years a projection does not cover stay empty.
func Align(results []*domain.ProjectionResult, opts ProjectionOptions) *domain.ComparisonResult {
	startYear := opts.EndYear + 1
	for _, res := range results {
		startYear = min(startYear, res.StartYear)
	}

	cmp := &domain.ComparisonResult{
		Years:       yearAxis(startYear, opts.EndYear),
		EndYear:     opts.EndYear,
		LifeStatus:  opts.LifeStatus,
		Simulations: make([]domain.SimulationSeries, len(results)),
	}
	for i, res := range results {
		cmp.Simulations[i] = alignSeries(res, cmp.Years)
	}
	return cmp
}

func yearAxis(from, to int) []int {
	if to < from {
		return []int{}
	}
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}

// alignSeries maps a projection onto the axis, leaving years without a row empty
func alignSeries(res *domain.ProjectionResult, years []int) domain.SimulationSeries {
	series := domain.SimulationSeries{
		ProjectionResult: *res,
		Points:           make([]domain.SeriesPoint, len(years)),
	}
	for i, y := range years {
		series.Points[i].Year = y
		if row := res.Year(y); row != nil {
			age := row.Age
			end := row.PatrimonyEnd
			series.Points[i].Age = &age
			series.Points[i].PatrimonyEnd = &end
		}
	}
	return series
}
