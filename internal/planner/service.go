// Package planner resolves simulation references against stored records and
// hands them to the projection engine.
package planner

import (
	"context"
	"fmt"

	"github.com/anka/patrimony-planner/internal/calculation"
	"github.com/anka/patrimony-planner/internal/domain"
)

// Service answers projection and comparison requests for stored simulations
type Service struct {
	Store  SimulationStore
	Engine *calculation.ProjectionEngine
}

// NewService creates a new Service instance
func NewService(store SimulationStore, engine *calculation.ProjectionEngine) *Service {
	if engine == nil {
		engine = calculation.NewProjectionEngine()
	}
	return &Service{Store: store, Engine: engine}
}

// Project projects one simulation through endYear
func (s *Service) Project(ctx context.Context, simulationID int64, endYear int, status domain.LifeStatus) (*domain.ProjectionResult, error) {
	in, err := s.resolve(ctx, simulationID)
	if err != nil {
		return nil, err
	}
	return s.Engine.Project(ctx, in, calculation.ProjectionOptions{EndYear: endYear, LifeStatus: status})
}

// Compare projects several simulations on a shared year axis. Every id must
// resolve before any projection starts.
func (s *Service) Compare(ctx context.Context, simulationIDs []int64, endYear int, status domain.LifeStatus) (*domain.ComparisonResult, error) {
	if len(simulationIDs) == 0 {
		return nil, domain.ConfigurationError("at least one simulation id is required")
	}

	inputs := make([]calculation.SimulationInput, 0, len(simulationIDs))
	for _, id := range simulationIDs {
		in, err := s.resolve(ctx, id)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return s.Engine.Compare(ctx, inputs, calculation.ProjectionOptions{EndYear: endYear, LifeStatus: status})
}

// LatestVersions returns the highest version of each simulation name of a client
func (s *Service) LatestVersions(ctx context.Context, clientID int64) ([]domain.Simulation, error) {
	sims, err := s.Store.ListSimulations(ctx, clientID)
	if err != nil {
		return nil, err
	}

	// sims are ordered by name then version: keep the last of each name
	latest := make([]domain.Simulation, 0, len(sims))
	for i, sim := range sims {
		if i+1 < len(sims) && sims[i+1].Name == sim.Name {
			continue
		}
		latest = append(latest, sim)
	}
	return latest, nil
}

// CurrentSituation returns the client's baseline simulation
func (s *Service) CurrentSituation(ctx context.Context, clientID int64) (*domain.Simulation, error) {
	sims, err := s.Store.ListSimulations(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for i := range sims {
		if sims[i].IsCurrentSituation {
			return &sims[i], nil
		}
	}
	return nil, domain.NotFoundError("client %d has no current situation", clientID)
}

func (s *Service) resolve(ctx context.Context, simulationID int64) (calculation.SimulationInput, error) {
	sim, err := s.Store.GetSimulation(ctx, simulationID)
	if err != nil {
		return calculation.SimulationInput{}, fmt.Errorf("failed to load simulation: %w", err)
	}
	client, err := s.Store.GetClient(ctx, sim.ClientID)
	if err != nil {
		return calculation.SimulationInput{}, fmt.Errorf("failed to load owner of simulation %d: %w", simulationID, err)
	}
	return calculation.SimulationInput{Client: client, Simulation: sim}, nil
}
