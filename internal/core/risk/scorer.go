package risk

import (
	"math"
	"sort"

	"github.com/agenthands/meridian/internal/core/graph"
	"github.com/agenthands/meridian/internal/core/model"
)

// maxCriticalPaths caps the critical-path ranking for display.
const maxCriticalPaths = 10

// SupplierRiskScores ranks every supplier by a blend of unreliability and
// normalized degree centrality, descending. Read-only: works on any snapshot.
func SupplierRiskScores(g *graph.Graph) []model.SupplierRisk {
	nodeCount := g.NodeCount()

	suppliers := g.NodesOfType(model.NodeSupplier)
	scores := make([]model.SupplierRisk, 0, len(suppliers))
	for _, s := range suppliers {
		centrality := 0.0
		if nodeCount > 1 {
			centrality = float64(g.Degree(model.NodeSupplier, s.ID)) / float64(nodeCount-1)
		}
		reliability := s.Supplier.ReliabilityScore
		score := round2(((1-reliability)*0.5 + centrality*0.5) * 100)

		scores = append(scores, model.SupplierRisk{
			SupplierID:   s.ID,
			RiskScore:    score,
			Reliability:  reliability,
			ProductCount: len(g.Successors(s.ID, model.EdgeSupplies)),
			Centrality:   centrality,
		})
	}

	// Stable: equal scores keep supplier insertion order.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].RiskScore > scores[j].RiskScore
	})
	return scores
}

// CriticalPaths enumerates every Supplier -> Product -> Warehouse path
// reachable via SUPPLIES then STOCKED_AT edges and returns the top 10 by
// criticality: volume, unreliability and lead time weighted 0.4/0.4/0.2.
func CriticalPaths(g *graph.Graph) []model.CriticalPath {
	var paths []model.CriticalPath

	for _, s := range g.NodesOfType(model.NodeSupplier) {
		reliability := s.Supplier.ReliabilityScore
		for _, supplies := range g.Successors(s.ID, model.EdgeSupplies) {
			for _, stocked := range g.Successors(supplies.TargetID, model.EdgeStockedAt) {
				criticality := float64(supplies.Edge.Quantity)*0.4 +
					(1-reliability)*1000*0.4 +
					float64(supplies.Edge.LeadTimeDays)*50*0.2

				paths = append(paths, model.CriticalPath{
					SupplierID:          s.ID,
					ProductID:           supplies.TargetID,
					WarehouseID:         stocked.TargetID,
					Quantity:            supplies.Edge.Quantity,
					LeadTimeDays:        supplies.Edge.LeadTimeDays,
					SupplierReliability: reliability,
					CriticalityScore:    criticality,
				})
			}
		}
	}

	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].CriticalityScore > paths[j].CriticalityScore
	})
	if len(paths) > maxCriticalPaths {
		paths = paths[:maxCriticalPaths]
	}
	return paths
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
