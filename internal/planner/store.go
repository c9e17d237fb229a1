package planner

import (
	"context"
	"sort"

	"github.com/anka/patrimony-planner/internal/domain"
)

// SimulationStore is the read side of the persistence layer the planner needs
type SimulationStore interface {
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	GetSimulation(ctx context.Context, id int64) (*domain.Simulation, error)
	ListSimulations(ctx context.Context, clientID int64) ([]domain.Simulation, error)
}

// PortfolioStore serves a loaded portfolio snapshot
type PortfolioStore struct {
	portfolio *domain.Portfolio
}

// NewPortfolioStore creates a store over a portfolio. The portfolio must not
// be modified afterwards.
func NewPortfolioStore(p *domain.Portfolio) *PortfolioStore {
	return &PortfolioStore{portfolio: p}
}

// GetClient returns the client with the given id
func (s *PortfolioStore) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	c := s.portfolio.FindClient(id)
	if c == nil {
		return nil, domain.NotFoundError("client %d not found", id)
	}
	return c, nil
}

// GetSimulation returns a non-deleted simulation
func (s *PortfolioStore) GetSimulation(ctx context.Context, id int64) (*domain.Simulation, error) {
	sim := s.portfolio.FindSimulation(id)
	if sim == nil {
		return nil, domain.NotFoundError("simulation %d not found", id)
	}
	return sim, nil
}

// ListSimulations returns the non-deleted simulations of a client ordered by
// name, then version.
func (s *PortfolioStore) ListSimulations(ctx context.Context, clientID int64) ([]domain.Simulation, error) {
	if s.portfolio.FindClient(clientID) == nil {
		return nil, domain.NotFoundError("client %d not found", clientID)
	}

	var sims []domain.Simulation
	for _, sim := range s.portfolio.Simulations {
		if sim.ClientID == clientID && !sim.IsDeleted() {
			sims = append(sims, sim)
		}
	}
	sort.SliceStable(sims, func(i, j int) bool {
		if sims[i].Name != sims[j].Name {
			return sims[i].Name < sims[j].Name
		}
		return sims[i].Version < sims[j].Version
	})
	return sims, nil
}
