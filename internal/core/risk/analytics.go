package risk

import (
	"math"

	"github.com/agenthands/meridian/internal/core/graph"
	"github.com/agenthands/meridian/internal/core/model"
)

// DashboardMetrics bundles the KPIs the dashboard renders: network shape,
// supplier performance aggregates, regional distribution and health scores.
// Read-only over any snapshot.
func DashboardMetrics(g *graph.Graph) model.DashboardMetrics {
	return model.DashboardMetrics{
		Network:             g.Stats(),
		SupplierPerformance: supplierPerformance(g),
		Regional:            regionalStats(g),
		Health:              healthScores(g),
	}
}

func supplierPerformance(g *graph.Graph) model.SupplierPerformance {
	suppliers := g.NodesOfType(model.NodeSupplier)
	perf := model.SupplierPerformance{}
	if len(suppliers) == 0 {
		return perf
	}

	var relSum, leadSum float64
	for _, s := range suppliers {
		relSum += s.Supplier.ReliabilityScore
		leadSum += float64(s.Supplier.AvgLeadTimeDays)
		if s.Supplier.ReliabilityScore >= 0.9 {
			perf.HighReliability++
		}
		if s.Supplier.AvgLeadTimeDays > 14 {
			perf.HighLeadTime++
		}
	}
	n := float64(len(suppliers))
	perf.AverageReliability = relSum / n
	perf.AverageLeadTime = leadSum / n

	var variance float64
	for _, s := range suppliers {
		d := s.Supplier.ReliabilityScore - perf.AverageReliability
		variance += d * d
	}
	perf.ReliabilityStdDev = math.Sqrt(variance / n)
	return perf
}

func regionalStats(g *graph.Graph) map[string]model.RegionStats {
	regions := make(map[string]model.RegionStats)

	for _, s := range g.NodesOfType(model.NodeSupplier) {
		r := regions[s.Supplier.Region]
		r.Suppliers++
		regions[s.Supplier.Region] = r
	}
	for _, w := range g.NodesOfType(model.NodeWarehouse) {
		r := regions[w.Warehouse.Region]
		r.Warehouses++
		r.TotalCapacity += w.Warehouse.CapacityUnits
		regions[w.Warehouse.Region] = r
	}
	for _, c := range g.NodesOfType(model.NodeCustomer) {
		r := regions[c.Customer.Region]
		r.Customers++
		r.TotalDemand += c.Customer.AvgDemandUnits
		regions[c.Customer.Region] = r
	}

	for name, r := range regions {
		if r.TotalCapacity > 0 {
			r.CapacityUtilization = round2(100 * float64(r.TotalDemand) / float64(r.TotalCapacity))
		}
		regions[name] = r
	}
	return regions
}

func healthScores(g *graph.Graph) model.HealthScores {
	perf := supplierPerformance(g)

	// No suppliers: neutral health rather than zero.
	reliability := 50.0
	leadTime := 50.0
	if len(g.NodesOfType(model.NodeSupplier)) > 0 {
		reliability = perf.AverageReliability * 100
		leadTime = math.Max(0, 100-perf.AverageLeadTime/30*100)
	}
	connectivity := g.Stats().Density * 100

	return model.HealthScores{
		Reliability:  round2(reliability),
		LeadTime:     round2(leadTime),
		Connectivity: round2(connectivity),
		Overall:      round2(reliability*0.4 + leadTime*0.4 + connectivity*0.2),
	}
}
