package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/agenthands/meridian/internal/config"
	"github.com/agenthands/meridian/internal/core/graph"
	"github.com/agenthands/meridian/internal/core/model"
	"github.com/agenthands/meridian/internal/core/risk"
	"github.com/agenthands/meridian/internal/core/simulation"
	"github.com/agenthands/meridian/internal/insight"
	"github.com/agenthands/meridian/internal/provider"
)

// ErrGraphNotLoaded is returned when an operation runs before LoadGraph.
var ErrGraphNotLoaded = errors.New("graph not loaded")

// Meridian wires the data provider, simulation engine, risk scoring and
// narration behind one facade. The mutex serializes engine access: HTTP
// handlers run concurrently but the engine holds a single working clone.
type Meridian struct {
	Provider provider.RecordProvider
	Narrator insight.Narrator
	Config   *config.Config

	mu     sync.Mutex
	engine *simulation.Engine
}

func NewMeridian(p provider.RecordProvider, narrator insight.Narrator, cfg *config.Config) *Meridian {
	if narrator == nil {
		narrator = insight.NewRuleNarrator()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Meridian{
		Provider: p,
		Narrator: narrator,
		Config:   cfg,
	}
}

// LoadGraph fetches the snapshot records and builds the baseline. Build is
// all-or-nothing: on failure the previous baseline (if any) stays in place.
func (m *Meridian) LoadGraph(ctx context.Context) error {
	nodes, err := m.Provider.FetchNodes(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch nodes: %w", err)
	}
	edges, err := m.Provider.FetchEdges(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch edges: %w", err)
	}

	baseline, err := graph.Build(nodes, edges)
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}

	m.mu.Lock()
	m.engine = simulation.NewEngine(baseline, m.Config.Simulation.SLAThresholdDays)
	m.mu.Unlock()

	stats := baseline.Stats()
	log.Printf("Loaded supply network: %d nodes, %d edges", stats.Nodes, stats.Edges)
	return nil
}

// Reload rebuilds the baseline from the provider, discarding any live
// simulation and scenario history.
func (m *Meridian) Reload(ctx context.Context) error {
	return m.LoadGraph(ctx)
}

// SimulateDelay runs one delay scenario. When narrate is set the result
// carries a human-readable summary.
func (m *Meridian) SimulateDelay(ctx context.Context, supplierID string, delayDays int, narrate bool) (*model.SimulationResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil {
		return nil, ErrGraphNotLoaded
	}

	result, err := m.engine.SimulateDelay(supplierID, delayDays)
	if err != nil {
		return nil, err
	}

	if narrate {
		text, err := m.Narrator.Narrate(ctx, result)
		if err == nil {
			result.Narrative = text
		}
	}
	return result, nil
}

func (m *Meridian) RegionalSLADrop(region string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil {
		return 0, ErrGraphNotLoaded
	}
	return m.engine.RegionalSLADrop(region), nil
}

func (m *Meridian) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil {
		return ErrGraphNotLoaded
	}
	m.engine.Reset()
	return nil
}

// SupplierRiskScores scores the untouched baseline, not any live clone.
func (m *Meridian) SupplierRiskScores() ([]model.SupplierRisk, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil {
		return nil, ErrGraphNotLoaded
	}
	return risk.SupplierRiskScores(m.engine.Baseline()), nil
}

func (m *Meridian) CriticalPaths() ([]model.CriticalPath, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil {
		return nil, ErrGraphNotLoaded
	}
	return risk.CriticalPaths(m.engine.Baseline()), nil
}

func (m *Meridian) DashboardMetrics() (model.DashboardMetrics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil {
		return model.DashboardMetrics{}, ErrGraphNotLoaded
	}
	return risk.DashboardMetrics(m.engine.Baseline()), nil
}

func (m *Meridian) GraphStats() (model.GraphStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil {
		return model.GraphStats{}, ErrGraphNotLoaded
	}
	return m.engine.Baseline().Stats(), nil
}

func (m *Meridian) History() ([]model.Scenario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil {
		return nil, ErrGraphNotLoaded
	}
	return m.engine.History(), nil
}

func (m *Meridian) CompareScenarios(ids []string) (*model.ScenarioComparison, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil {
		return nil, ErrGraphNotLoaded
	}
	return m.engine.CompareScenarios(ids), nil
}

func (m *Meridian) Status() (model.EngineStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil {
		return model.EngineStatus{}, ErrGraphNotLoaded
	}
	return m.engine.Status(), nil
}
