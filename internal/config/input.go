package config

import (
	"fmt"
	"os"
	"time"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of portfolio dataset files
type InputParser struct {
	validate *structValidator
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: newStructValidator()}
}

// LoadFromFile loads a portfolio from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Portfolio, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML portfolio
func (ip *InputParser) Parse(data []byte) (*domain.Portfolio, error) {
	var portfolio domain.Portfolio
	if err := yaml.Unmarshal(data, &portfolio); err != nil {
		return nil, &domain.Error{Kind: domain.KindConfiguration, Message: "failed to parse YAML", Err: err}
	}

	if err := ip.ValidatePortfolio(&portfolio); err != nil {
		return nil, fmt.Errorf("portfolio validation failed: %w", err)
	}

	return &portfolio, nil
}

// ValidatePortfolio checks the dataset structure and the invariants the
// persistence layer guarantees. It also links child records to their
// simulation.
func (ip *InputParser) ValidatePortfolio(p *domain.Portfolio) error {
	if len(p.Clients) == 0 {
		return domain.ConfigurationError("no clients provided")
	}

	if err := ip.validate.Struct(p); err != nil {
		return err
	}

	clientIDs := make(map[int64]bool, len(p.Clients))
	for i := range p.Clients {
		c := &p.Clients[i]
		if clientIDs[c.ID] {
			return domain.ConfigurationError("duplicate client id %d", c.ID)
		}
		clientIDs[c.ID] = true
		if err := ip.validateClient(c); err != nil {
			return fmt.Errorf("client %d validation failed: %w", c.ID, err)
		}
	}

	simIDs := make(map[int64]bool, len(p.Simulations))
	versions := make(map[versionKey]bool, len(p.Simulations))
	current := make(map[int64]int64)
	for i := range p.Simulations {
		sim := &p.Simulations[i]
		if simIDs[sim.ID] {
			return domain.ConfigurationError("duplicate simulation id %d", sim.ID)
		}
		simIDs[sim.ID] = true

		key := versionKey{clientID: sim.ClientID, name: sim.Name, version: sim.Version}
		if versions[key] {
			return domain.ConfigurationError("client %d has two versions %d of simulation %q", sim.ClientID, sim.Version, sim.Name)
		}
		versions[key] = true

		if sim.IsCurrentSituation && !sim.IsDeleted() {
			if other, ok := current[sim.ClientID]; ok {
				return domain.ConfigurationError("client %d has more than one current situation (simulations %d and %d)",
					sim.ClientID, other, sim.ID)
			}
			current[sim.ClientID] = sim.ID
		}

		if err := ip.validateSimulation(sim); err != nil {
			return fmt.Errorf("simulation %d validation failed: %w", sim.ID, err)
		}
	}

	return nil
}

type versionKey struct {
	clientID int64
	name     string
	version  int
}

// validateClient validates the optional life events of a client
func (ip *InputParser) validateClient(c *domain.Client) error {
	if c.Retirement != nil {
		if err := c.Retirement.Validate(); err != nil {
			return domain.ConfigurationError("retirement: %v", err)
		}
	}
	if c.Mortality != nil {
		if err := c.Mortality.Validate(); err != nil {
			return domain.ConfigurationError("mortality: %v", err)
		}
	}
	if c.Retirement != nil && c.Mortality != nil &&
		c.Mortality.Year(c.BirthDate) < c.Retirement.Year(c.BirthDate) {
		return domain.ConfigurationError("mortality year cannot precede retirement year")
	}
	return nil
}

// validateSimulation checks cross-field rules and fills child simulation ids
func (ip *InputParser) validateSimulation(sim *domain.Simulation) error {
	link := func(kind string, id int64, simulationID *int64) error {
		if *simulationID != 0 && *simulationID != sim.ID {
			return domain.ConfigurationError("%s %d belongs to simulation %d", kind, id, *simulationID)
		}
		*simulationID = sim.ID
		return nil
	}

	for i := range sim.Assets {
		a := &sim.Assets[i]
		if err := link("asset", a.ID, &a.SimulationID); err != nil {
			return err
		}
		if a.Financing != nil {
			if a.Type != domain.AssetRealEstate {
				return domain.ConfigurationError("asset %d: only real estate can be financed", a.ID)
			}
			if a.Financing.Installments <= 0 {
				return domain.ConfigurationError("asset %d: financing must have a positive installment count", a.ID)
			}
		}
	}

	for i := range sim.Movements {
		m := &sim.Movements[i]
		if err := link("movement", m.ID, &m.SimulationID); err != nil {
			return err
		}
		if m.EndDate != nil && m.EndDate.Before(m.StartDate) {
			return domain.ConfigurationError("movement %d: end date cannot be before start date", m.ID)
		}
	}

	for i := range sim.Insurances {
		ins := &sim.Insurances[i]
		if err := link("insurance", ins.ID, &ins.SimulationID); err != nil {
			return err
		}
	}

	return nil
}

// SavePortfolio writes a portfolio as YAML
func (ip *InputParser) SavePortfolio(p *domain.Portfolio, filename string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example portfolio
func (ip *InputParser) CreateExampleConfiguration() *domain.Portfolio {
	birthDate, _ := time.Parse("2006-01-02", "1978-04-12")
	start, _ := time.Parse("2006-01-02", "2025-01-01")
	houseStart, _ := time.Parse("2006-01-02", "2027-03-01")
	workEnd, _ := time.Parse("2006-01-02", "2043-04-30")
	retirementAge := 65
	mortalityAge := 90

	current := domain.Simulation{
		ID:                 1,
		ClientID:           1,
		Name:               "Current situation",
		Version:            1,
		StartDate:          start,
		RealRate:           decimal.NewFromFloat(0.04),
		IsCurrentSituation: true,
		Assets: []domain.Asset{
			{
				ID:      1,
				Name:    "Investment portfolio",
				Type:    domain.AssetFinancial,
				Records: []domain.AssetRecord{{Date: start, Value: decimal.NewFromInt(850000)}},
			},
			{
				ID:      2,
				Name:    "Apartment",
				Type:    domain.AssetRealEstate,
				Records: []domain.AssetRecord{{Date: start, Value: decimal.NewFromInt(1200000)}},
			},
		},
		Movements: []domain.Movement{
			{
				ID:        1,
				Name:      "Salary",
				Type:      domain.MovementIncome,
				Category:  domain.CategoryWork,
				Value:     decimal.NewFromInt(22000),
				Frequency: domain.FrequencyMonthly,
				StartDate: start,
				EndDate:   &workEnd,
			},
			{
				ID:        2,
				Name:      "Cost of living",
				Type:      domain.MovementExpense,
				Value:     decimal.NewFromInt(14000),
				Frequency: domain.FrequencyMonthly,
				StartDate: start,
			},
		},
		Insurances: []domain.Insurance{
			{
				ID:             1,
				Name:           "Term life",
				Type:           domain.InsuranceLife,
				StartDate:      start,
				DurationMonths: 240,
				Premium:        decimal.NewFromInt(320),
				InsuredValue:   decimal.NewFromInt(2000000),
			},
		},
	}

	beachHouse := *current.Clone()
	beachHouse.ID = 2
	beachHouse.Name = "Beach house"
	beachHouse.IsCurrentSituation = false
	beachHouse.Assets = append(beachHouse.Assets, domain.Asset{
		ID:      3,
		Name:    "Beach house",
		Type:    domain.AssetRealEstate,
		Records: []domain.AssetRecord{{Date: houseStart, Value: decimal.NewFromInt(900000)}},
		Financing: &domain.Financing{
			StartDate:    houseStart,
			Installments: 240,
			InterestRate: decimal.NewFromFloat(0.09),
			DownPayment:  decimal.NewFromInt(300000),
		},
	})

	return &domain.Portfolio{
		Clients: []domain.Client{
			{
				ID:         1,
				Name:       "Helena Duarte",
				BirthDate:  birthDate,
				Retirement: &domain.LifeEvent{Age: &retirementAge},
				Mortality:  &domain.LifeEvent{Age: &mortalityAge},
			},
		},
		Simulations: []domain.Simulation{current, beachHouse},
	}
}
