package calculation

import (
	"runtime"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxProjectionYears bounds the number of year-steps of a single projection
const MaxProjectionYears = 300

var minRealRate = decimal.NewFromInt(-1)

// ProjectionEngine orchestrates the patrimony projection of simulations
type ProjectionEngine struct {
	Workers int  // Upper bound on simulations projected concurrently by Compare
	Debug   bool // Enable per-year debug output
	Logger  Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Workers: runtime.NumCPU(),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = loggerOrNop(l)
}

// ProjectionOptions bounds a projection in time
type ProjectionOptions struct {
	EndYear    int
	LifeStatus domain.LifeStatus
}

// SimulationInput is a simulation with the client that owns it. The engine
// only reads it.
type SimulationInput struct {
	Client     *domain.Client
	Simulation *domain.Simulation
}

func (in SimulationInput) snapshot() SimulationInput {
	out := SimulationInput{Simulation: in.Simulation.Clone()}
	if in.Client != nil {
		c := *in.Client
		out.Client = &c
	}
	return out
}

func (pe *ProjectionEngine) workers() int {
	if pe.Workers < 1 {
		return 1
	}
	return pe.Workers
}

// ValidateSimulation checks the records of a simulation before it is projected
func ValidateSimulation(sim *domain.Simulation) error {
	if sim.StartDate.IsZero() {
		return domain.ConfigurationError("simulation %d has no start date", sim.ID)
	}
	if sim.RealRate.LessThanOrEqual(minRealRate) {
		return domain.ConfigurationError("simulation %d real rate must be greater than -100%%, got %s", sim.ID, sim.RealRate.String())
	}

	for i := range sim.Assets {
		a := &sim.Assets[i]
		if a.Type != domain.AssetFinancial && a.Type != domain.AssetRealEstate {
			return domain.ConfigurationError("asset %d has unknown type %q", a.ID, a.Type)
		}
		for _, r := range a.Records {
			if r.Value.IsNegative() {
				return domain.InconsistentStateError("asset %d has a negative record value %s on %s",
					a.ID, r.Value.StringFixed(2), r.Date.Format("2006-01-02"))
			}
			if r.Date.IsZero() {
				return domain.InconsistentStateError("asset %d has an undated record", a.ID)
			}
		}
		if a.Financing != nil && a.Financing.DownPayment.IsNegative() {
			return domain.InconsistentStateError("financing of asset %d has a negative down payment", a.ID)
		}
	}

	for i := range sim.Movements {
		m := &sim.Movements[i]
		switch m.Frequency {
		case domain.FrequencyMonthly, domain.FrequencyAnnually, domain.FrequencyOneTime:
		default:
			return domain.ConfigurationError("movement %d has unknown frequency %q", m.ID, m.Frequency)
		}
		if m.Type != domain.MovementIncome && m.Type != domain.MovementExpense {
			return domain.ConfigurationError("movement %d has unknown type %q", m.ID, m.Type)
		}
		if m.EndDate != nil && m.EndDate.Before(m.StartDate) {
			return domain.ConfigurationError("movement %d ends (%s) before it starts (%s)",
				m.ID, m.EndDate.Format("2006-01-02"), m.StartDate.Format("2006-01-02"))
		}
	}

	for i := range sim.Insurances {
		ins := &sim.Insurances[i]
		if ins.DurationMonths <= 0 {
			return domain.ConfigurationError("insurance %d must last at least one month", ins.ID)
		}
		if ins.Premium.IsNegative() {
			return domain.InconsistentStateError("insurance %d has a negative premium", ins.ID)
		}
	}

	return nil
}
