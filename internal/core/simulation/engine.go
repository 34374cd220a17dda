package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/agenthands/meridian/internal/core/graph"
	"github.com/agenthands/meridian/internal/core/model"
)

// DefaultSLAThresholdDays is the lead time above which a delivery counts as
// delayed for service-level reporting.
const DefaultSLAThresholdDays = 10

// Engine propagates supplier delays through the network. The baseline is
// never mutated: every run works on a fresh private clone, which is retained
// as the engine's current graph until Reset. One live clone per engine.
type Engine struct {
	baseline *graph.Graph
	current  *graph.Graph // nil when idle
	history  []model.Scenario

	slaThreshold int
}

func NewEngine(baseline *graph.Graph, slaThresholdDays int) *Engine {
	if slaThresholdDays <= 0 {
		slaThresholdDays = DefaultSLAThresholdDays
	}
	return &Engine{baseline: baseline, slaThreshold: slaThresholdDays}
}

// impactScore is the quantity-weighted, threshold-banded disruption estimate
// for one path. Bands are strictly greater-than, evaluated top-down.
func impactScore(leadTime, quantity int) float64 {
	q := float64(quantity)
	switch {
	case leadTime > 14:
		return 0.8 * q
	case leadTime > 10:
		return 0.5 * q
	case leadTime > 7:
		return 0.2 * q
	default:
		return 0
	}
}

// SimulateDelay clones the baseline, adds delayDays to every SUPPLIES edge of
// the given supplier on the clone, and computes the impact along each
// Supplier -> Product -> Warehouse path in edge insertion order. The clone
// becomes the engine's current graph; the baseline stays untouched. A second
// call starts from the baseline again, never from the previous clone.
func (e *Engine) SimulateDelay(supplierID string, delayDays int) (*model.SimulationResult, error) {
	if e.baseline.Node(model.NodeSupplier, supplierID) == nil {
		return nil, &NotFoundError{SupplierID: supplierID}
	}
	if delayDays < 0 {
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("delay_days must be non-negative, got %d", delayDays)}
	}

	working := e.baseline.Clone()

	result := &model.SimulationResult{
		SupplierID:    supplierID,
		DelayDays:     delayDays,
		AffectedPaths: []model.PathImpact{},
		Timestamp:     time.Now().UTC(),
	}

	for _, supplies := range working.Successors(supplierID, model.EdgeSupplies) {
		productID := supplies.TargetID
		original := supplies.Edge.LeadTimeDays
		newLeadTime := original + delayDays
		for _, stocked := range working.Successors(productID, model.EdgeStockedAt) {
			supplies.Edge.LeadTimeDays = newLeadTime

			score := impactScore(newLeadTime, supplies.Edge.Quantity)
			result.AffectedPaths = append(result.AffectedPaths, model.PathImpact{
				ProductID:        productID,
				WarehouseID:      stocked.TargetID,
				OriginalLeadTime: original,
				NewLeadTime:      newLeadTime,
				Quantity:         supplies.Edge.Quantity,
				ImpactScore:      score,
			})
			result.TotalImpact += score
		}
	}

	e.current = working
	e.history = append(e.history, model.Scenario{
		ID:         uuid.New().String(),
		Name:       fmt.Sprintf("Delay_%s_%dd", supplierID, delayDays),
		SupplierID: supplierID,
		DelayDays:  delayDays,
		Timestamp:  result.Timestamp,
		Result:     result,
	})

	return result, nil
}

// RegionalSLADrop reports the percentage of SUPPLIES quantity whose lead time
// exceeds the SLA threshold, among suppliers of the given region (all
// suppliers when region is empty). It reads the current graph: the live
// simulation clone if one exists, otherwise the baseline. An empty total is
// 0, not an error.
func (e *Engine) RegionalSLADrop(region string) float64 {
	g := e.currentGraph()

	total, delayed := 0, 0
	for _, edge := range g.Edges() {
		if edge.Type != model.EdgeSupplies {
			continue
		}
		if region != "" {
			supplier := g.Node(model.NodeSupplier, edge.SourceID)
			if supplier == nil || supplier.Supplier.Region != region {
				continue
			}
		}
		total += edge.Quantity
		if edge.LeadTimeDays > e.slaThreshold {
			delayed += edge.Quantity
		}
	}

	if total == 0 {
		return 0
	}
	return round2(100 * float64(delayed) / float64(total))
}

// Reset discards the working clone; subsequent reads hit the baseline.
func (e *Engine) Reset() {
	e.current = nil
}

// SimulationLive reports whether a working clone is retained.
func (e *Engine) SimulationLive() bool {
	return e.current != nil
}

// Baseline returns the untouched baseline snapshot.
func (e *Engine) Baseline() *graph.Graph {
	return e.baseline
}

func (e *Engine) currentGraph() *graph.Graph {
	if e.current != nil {
		return e.current
	}
	return e.baseline
}

// History returns all scenarios run so far, oldest first. Reset does not
// clear history; it only discards the working graph.
func (e *Engine) History() []model.Scenario {
	return e.history
}

// Scenario looks up a run by id.
func (e *Engine) Scenario(id string) *model.Scenario {
	for i := range e.history {
		if e.history[i].ID == id {
			return &e.history[i]
		}
	}
	return nil
}

// CompareScenarios summarizes the given runs side by side and flags the one
// with the highest total impact. Unknown ids are skipped.
func (e *Engine) CompareScenarios(ids []string) *model.ScenarioComparison {
	cmp := &model.ScenarioComparison{}
	best := -1.0
	for _, id := range ids {
		sc := e.Scenario(id)
		if sc == nil {
			continue
		}
		summary := model.ScenarioSummary{
			ID:            sc.ID,
			Name:          sc.Name,
			SupplierID:    sc.SupplierID,
			DelayDays:     sc.DelayDays,
			TotalImpact:   sc.Result.TotalImpact,
			AffectedPaths: len(sc.Result.AffectedPaths),
		}
		for i := range sc.Result.AffectedPaths {
			p := &sc.Result.AffectedPaths[i]
			if summary.WorstPath == nil || p.ImpactScore > summary.WorstPath.ImpactScore {
				summary.WorstPath = p
			}
		}
		cmp.Scenarios = append(cmp.Scenarios, summary)
		if sc.Result.TotalImpact > best {
			best = sc.Result.TotalImpact
			cmp.HighestImpact = sc.ID
		}
	}
	return cmp
}

// Status reports the engine state for monitoring endpoints.
func (e *Engine) Status() model.EngineStatus {
	status := model.EngineStatus{
		BaselineStats:  e.baseline.Stats(),
		SimulationLive: e.current != nil,
		RunCount:       len(e.history),
	}
	if n := len(e.history); n > 0 {
		status.LastScenarioID = e.history[n-1].ID
	}
	return status
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
