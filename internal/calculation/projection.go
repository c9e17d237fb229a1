package calculation

import (
	"context"
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/anka/patrimony-planner/pkg/dateutil"
	"github.com/anka/patrimony-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// projectionState is the running state folded over the years
type projectionState struct {
	carried  []decimal.Decimal // value per asset, aligned with Simulation.Assets
	cash     decimal.Decimal   // financial residual: cash flows and their growth
	absorbed time.Time         // last day already reflected in carried values
}

func (s *projectionState) total() decimal.Decimal {
	return money.Sum(s.carried...).Add(s.cash)
}

// Project folds a simulation year by year from its start year through the
// horizon and returns the patrimony series. It is deterministic: identical
// inputs give identical output. Any error aborts the whole projection.
func (pe *ProjectionEngine) Project(ctx context.Context, in SimulationInput, opts ProjectionOptions) (*domain.ProjectionResult, error) {
	sim := in.Simulation
	if sim == nil {
		return nil, domain.NotFoundError("no simulation supplied")
	}
	if err := ValidateSimulation(sim); err != nil {
		return nil, err
	}

	startYear := sim.StartDate.Year()
	if opts.EndYear < startYear {
		return nil, domain.ConfigurationError("end year %d is before the start year %d of simulation %d", opts.EndYear, startYear, sim.ID)
	}
	if opts.EndYear-startYear+1 > MaxProjectionYears {
		return nil, domain.ConfigurationError("projection of simulation %d spans more than %d years", sim.ID, MaxProjectionYears)
	}
	endYear, err := HorizonEnd(in.Client, opts.EndYear, opts.LifeStatus)
	if err != nil {
		return nil, err
	}

	contracts := make([]FinancingContract, 0)
	for i := range sim.Assets {
		if sim.Assets[i].Financing == nil {
			continue
		}
		c, err := ResolveContract(&sim.Assets[i])
		if err != nil {
			return nil, err
		}
		if c.StartDate.Year() > opts.EndYear {
			return nil, domain.ConfigurationError("financing of asset %d starts in %d, after the projection horizon %d",
				c.AssetID, c.StartDate.Year(), opts.EndYear)
		}
		contracts = append(contracts, c)
	}

	result := &domain.ProjectionResult{
		SimulationID:       sim.ID,
		SimulationName:     sim.Name,
		Version:            sim.Version,
		IsCurrentSituation: sim.IsCurrentSituation,
		StartYear:          startYear,
		RealRate:           sim.RealRate,
		Projections:        make([]domain.YearProjection, 0, max(endYear-startYear+1, 0)),
	}

	state := &projectionState{
		carried:  make([]decimal.Decimal, len(sim.Assets)),
		cash:     decimal.Zero,
		absorbed: dateutil.DateOnly(sim.StartDate),
	}
	for i := range sim.Assets {
		state.carried[i] = ValueAt(&sim.Assets[i], sim.StartDate)
	}

	growth := decimal.NewFromInt(1).Add(sim.RealRate)
	patrimony := state.total()

	for year := startYear; year <= endYear; year++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		from := dateutil.BeginningOfYear(year)
		if year == startYear {
			from = dateutil.DateOnly(sim.StartDate)
		}
		row, err := pe.stepYear(sim, contracts, state, growth, year, from)
		if err != nil {
			return nil, err
		}
		row.PatrimonyStart = patrimony
		if in.Client != nil {
			row.Age = in.Client.Age(dateutil.AnniversaryInYear(sim.StartDate, year))
		}
		patrimony = row.PatrimonyEnd
		result.Projections = append(result.Projections, row)

		if pe.Debug {
			pe.Logger.Debugf("simulation %d year %d: start=%s net=%s end=%s",
				sim.ID, year, row.PatrimonyStart.StringFixed(2), row.NetCashFlow.StringFixed(2), row.PatrimonyEnd.StringFixed(2))
		}
	}

	pe.Logger.Infof("projected simulation %d (%s v%d) %d-%d: final patrimony %s",
		sim.ID, sim.Name, sim.Version, startYear, endYear, result.FinalPatrimony().StringFixed(2))
	return result, nil
}

// stepYear advances the state by one year and returns the row without its
// start patrimony and age.
func (pe *ProjectionEngine) stepYear(sim *domain.Simulation, contracts []FinancingContract, state *projectionState, growth decimal.Decimal, year int, from time.Time) (domain.YearProjection, error) {
	yearEnd := dateutil.EndOfYear(year)
	row := domain.YearProjection{Year: year}

	// Cash flows of the year, counted from the first unreflected day
	flows := CashFlowTotals{Income: decimal.Zero, Expenses: decimal.Zero}
	for i := range sim.Movements {
		t := SumOccurrences(OccurrencesInYear(&sim.Movements[i], year), from)
		flows.Income = flows.Income.Add(t.Income)
		flows.Expenses = flows.Expenses.Add(t.Expenses)
	}

	premiums := decimal.Zero
	for i := range sim.Insurances {
		premiums = premiums.Add(PremiumsBetween(&sim.Insurances[i], from, year))
	}

	installments := decimal.Zero
	balance := decimal.Zero
	for _, c := range contracts {
		if n := InstallmentsBetween(c, from, yearEnd); n > 0 {
			installments = installments.Add(c.Payment().Mul(decimal.NewFromInt(int64(n))))
		}
		st, err := AmortizationState(c, yearEnd)
		if err != nil {
			return row, err
		}
		balance = balance.Add(st.RemainingBalance)
	}

	net := flows.Net().Sub(premiums).Sub(installments)

	// Cash compounds once, then receives the year's flows
	state.cash = money.Round(state.cash.Mul(growth).Add(net))

	// Assets: a record dated inside the year replaces synthetic growth
	financial, realEstate := decimal.Zero, decimal.Zero
	for i := range sim.Assets {
		a := &sim.Assets[i]
		switch {
		case HasRecordBetween(a, state.absorbed, yearEnd):
			state.carried[i] = ValueAt(a, yearEnd)
		case a.Type == domain.AssetFinancial:
			state.carried[i] = money.Round(state.carried[i].Mul(growth))
		}
		if a.Type == domain.AssetRealEstate {
			realEstate = realEstate.Add(state.carried[i])
		} else {
			financial = financial.Add(state.carried[i])
		}
	}
	state.absorbed = yearEnd

	row.Income = money.Round(flows.Income)
	row.Expenses = money.Round(flows.Expenses.Neg())
	row.InsurancePremiums = money.Round(premiums)
	row.FinancingInstallments = money.Round(installments)
	row.NetCashFlow = money.Round(net)
	row.FinancingBalance = money.Round(balance)
	row.FinancialAssets = financial
	row.RealEstateAssets = realEstate
	row.Cash = state.cash
	row.PatrimonyEnd = state.total()
	return row, nil
}
