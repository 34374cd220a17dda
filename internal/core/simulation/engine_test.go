package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/meridian/internal/core/graph"
	"github.com/agenthands/meridian/internal/core/model"
)

// Single chain S1 -> P1 -> W1: SUPPLIES lead_time 7, qty 500.
func singleChain(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build(
		[]model.SupplyNode{
			{ID: "S1", Type: model.NodeSupplier, Supplier: &model.SupplierAttrs{Name: "S1", Region: "APAC", ReliabilityScore: 0.9, AvgLeadTimeDays: 7}},
			{ID: "P1", Type: model.NodeProduct, Product: &model.ProductAttrs{Name: "P1"}},
			{ID: "W1", Type: model.NodeWarehouse, Warehouse: &model.WarehouseAttrs{Location: "W1", Region: "APAC"}},
		},
		[]model.SupplyEdge{
			{SourceID: "S1", TargetID: "P1", Type: model.EdgeSupplies, LeadTimeDays: 7, Quantity: 500},
			{SourceID: "P1", TargetID: "W1", Type: model.EdgeStockedAt, Quantity: 450},
		},
	)
	require.NoError(t, err)
	return g
}

func TestSimulateDelay_MidBand(t *testing.T) {
	// 7 + 5 = 12 falls in the >10 band: 0.5 * 500.
	e := NewEngine(singleChain(t), 0)

	result, err := e.SimulateDelay("S1", 5)
	require.NoError(t, err)

	require.Len(t, result.AffectedPaths, 1)
	p := result.AffectedPaths[0]
	assert.Equal(t, "P1", p.ProductID)
	assert.Equal(t, "W1", p.WarehouseID)
	assert.Equal(t, 7, p.OriginalLeadTime)
	assert.Equal(t, 12, p.NewLeadTime)
	assert.Equal(t, 500, p.Quantity)
	assert.Equal(t, 250.0, p.ImpactScore)
	assert.Equal(t, 250.0, result.TotalImpact)
}

func TestSimulateDelay_TopBand(t *testing.T) {
	// 7 + 10 = 17 exceeds 14: 0.8 * 500.
	e := NewEngine(singleChain(t), 0)

	result, err := e.SimulateDelay("S1", 10)
	require.NoError(t, err)

	require.Len(t, result.AffectedPaths, 1)
	assert.Equal(t, 17, result.AffectedPaths[0].NewLeadTime)
	assert.Equal(t, 400.0, result.AffectedPaths[0].ImpactScore)
	assert.Equal(t, 400.0, result.TotalImpact)
}

func TestSimulateDelay_ZeroDelay(t *testing.T) {
	// lead time 7 is not strictly above any band: impact stays 0.
	e := NewEngine(singleChain(t), 0)

	result, err := e.SimulateDelay("S1", 0)
	require.NoError(t, err)

	require.Len(t, result.AffectedPaths, 1)
	assert.Equal(t, result.AffectedPaths[0].OriginalLeadTime, result.AffectedPaths[0].NewLeadTime)
	assert.Equal(t, 0.0, result.TotalImpact)
}

func TestSimulateDelay_BandBoundaries(t *testing.T) {
	// Thresholds are strictly greater-than.
	cases := []struct {
		leadTime int
		want     float64
	}{
		{7, 0},
		{8, 20},  // 0.2 * 100
		{10, 20},
		{11, 50}, // 0.5 * 100
		{14, 50},
		{15, 80}, // 0.8 * 100
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, impactScore(tc.leadTime, 100), "lead time %d", tc.leadTime)
	}
}

func TestSimulateDelay_UnknownSupplier(t *testing.T) {
	e := NewEngine(singleChain(t), 0)

	_, err := e.SimulateDelay("S_MISSING", 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSimulateDelay_NegativeDelay(t *testing.T) {
	e := NewEngine(singleChain(t), 0)

	_, err := e.SimulateDelay("S1", -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSimulateDelay_BaselineUntouched(t *testing.T) {
	g := singleChain(t)
	e := NewEngine(g, 0)

	_, err := e.SimulateDelay("S1", 10)
	require.NoError(t, err)

	assert.Equal(t, 7, g.Successors("S1", model.EdgeSupplies)[0].Edge.LeadTimeDays)
	assert.Equal(t, 17, e.currentGraph().Successors("S1", model.EdgeSupplies)[0].Edge.LeadTimeDays)
}

func TestSimulateDelay_ResetIdempotent(t *testing.T) {
	e := NewEngine(singleChain(t), 0)

	first, err := e.SimulateDelay("S1", 5)
	require.NoError(t, err)
	e.Reset()
	second, err := e.SimulateDelay("S1", 5)
	require.NoError(t, err)

	assert.Equal(t, first.AffectedPaths, second.AffectedPaths)
	assert.Equal(t, first.TotalImpact, second.TotalImpact)
}

func TestSimulateDelay_NoCumulativeMutation(t *testing.T) {
	// A second run without reset starts from the baseline, not the previous
	// clone.
	e := NewEngine(singleChain(t), 0)

	_, err := e.SimulateDelay("S1", 10)
	require.NoError(t, err)
	result, err := e.SimulateDelay("S1", 5)
	require.NoError(t, err)

	assert.Equal(t, 7, result.AffectedPaths[0].OriginalLeadTime)
	assert.Equal(t, 12, result.AffectedPaths[0].NewLeadTime)
}

func TestSimulateDelay_QuantityBounded(t *testing.T) {
	// With one warehouse per product, affected quantity never exceeds the
	// supplier's total SUPPLIES quantity.
	g, err := graph.Build(
		[]model.SupplyNode{
			{ID: "S1", Type: model.NodeSupplier, Supplier: &model.SupplierAttrs{Name: "S1", Region: "APAC", ReliabilityScore: 0.9}},
			{ID: "P1", Type: model.NodeProduct, Product: &model.ProductAttrs{Name: "P1"}},
			{ID: "P2", Type: model.NodeProduct, Product: &model.ProductAttrs{Name: "P2"}},
			{ID: "W1", Type: model.NodeWarehouse, Warehouse: &model.WarehouseAttrs{Location: "W1", Region: "APAC"}},
		},
		[]model.SupplyEdge{
			{SourceID: "S1", TargetID: "P1", Type: model.EdgeSupplies, LeadTimeDays: 7, Quantity: 500},
			{SourceID: "S1", TargetID: "P2", Type: model.EdgeSupplies, LeadTimeDays: 9, Quantity: 300},
			{SourceID: "P1", TargetID: "W1", Type: model.EdgeStockedAt, Quantity: 450},
			{SourceID: "P2", TargetID: "W1", Type: model.EdgeStockedAt, Quantity: 300},
		},
	)
	require.NoError(t, err)
	e := NewEngine(g, 0)

	result, err := e.SimulateDelay("S1", 3)
	require.NoError(t, err)

	affected := 0
	for _, p := range result.AffectedPaths {
		affected += p.Quantity
	}
	assert.LessOrEqual(t, affected, 800)
}

func TestRegionalSLADrop(t *testing.T) {
	// Two APAC suppliers: delayed edge lead_time 12 qty 300, on-time edge
	// lead_time 5 qty 700 -> 100*300/1000 = 30.0.
	g, err := graph.Build(
		[]model.SupplyNode{
			{ID: "S1", Type: model.NodeSupplier, Supplier: &model.SupplierAttrs{Name: "S1", Region: "APAC", ReliabilityScore: 0.9}},
			{ID: "S2", Type: model.NodeSupplier, Supplier: &model.SupplierAttrs{Name: "S2", Region: "APAC", ReliabilityScore: 0.8}},
			{ID: "S3", Type: model.NodeSupplier, Supplier: &model.SupplierAttrs{Name: "S3", Region: "EMEA", ReliabilityScore: 0.7}},
			{ID: "P1", Type: model.NodeProduct, Product: &model.ProductAttrs{Name: "P1"}},
			{ID: "P2", Type: model.NodeProduct, Product: &model.ProductAttrs{Name: "P2"}},
		},
		[]model.SupplyEdge{
			{SourceID: "S1", TargetID: "P1", Type: model.EdgeSupplies, LeadTimeDays: 12, Quantity: 300},
			{SourceID: "S2", TargetID: "P2", Type: model.EdgeSupplies, LeadTimeDays: 5, Quantity: 700},
			{SourceID: "S3", TargetID: "P1", Type: model.EdgeSupplies, LeadTimeDays: 20, Quantity: 100},
		},
	)
	require.NoError(t, err)
	e := NewEngine(g, 0)

	assert.Equal(t, 30.0, e.RegionalSLADrop("APAC"))

	// All suppliers: 300+100 delayed out of 1100.
	assert.Equal(t, 36.36, e.RegionalSLADrop(""))

	// Unknown region has no SUPPLIES quantity: defined as 0, not an error.
	assert.Equal(t, 0.0, e.RegionalSLADrop("MOON"))
}

func TestRegionalSLADrop_TracksCurrentGraph(t *testing.T) {
	e := NewEngine(singleChain(t), 0)

	// Baseline: lead time 7 is within SLA.
	assert.Equal(t, 0.0, e.RegionalSLADrop("APAC"))

	// After a delay pushing it past the threshold, the live clone is read.
	_, err := e.SimulateDelay("S1", 5)
	require.NoError(t, err)
	assert.Equal(t, 100.0, e.RegionalSLADrop("APAC"))

	// Reset restores the baseline view.
	e.Reset()
	assert.Equal(t, 0.0, e.RegionalSLADrop("APAC"))
}

func TestRegionalSLADrop_Range(t *testing.T) {
	e := NewEngine(singleChain(t), 0)
	for _, region := range []string{"", "APAC", "EMEA"} {
		drop := e.RegionalSLADrop(region)
		assert.GreaterOrEqual(t, drop, 0.0)
		assert.LessOrEqual(t, drop, 100.0)
	}
}

func TestHistoryAndCompare(t *testing.T) {
	e := NewEngine(singleChain(t), 0)

	r1, err := e.SimulateDelay("S1", 5)
	require.NoError(t, err)
	r2, err := e.SimulateDelay("S1", 10)
	require.NoError(t, err)

	history := e.History()
	require.Len(t, history, 2)
	assert.Equal(t, "Delay_S1_5d", history[0].Name)
	assert.Equal(t, "Delay_S1_10d", history[1].Name)
	assert.Equal(t, r1, history[0].Result)
	assert.Equal(t, r2, history[1].Result)

	cmp := e.CompareScenarios([]string{history[0].ID, history[1].ID, "bogus"})
	require.Len(t, cmp.Scenarios, 2)
	assert.Equal(t, history[1].ID, cmp.HighestImpact)
	require.NotNil(t, cmp.Scenarios[0].WorstPath)
	assert.Equal(t, 250.0, cmp.Scenarios[0].WorstPath.ImpactScore)
}

func TestStatus(t *testing.T) {
	e := NewEngine(singleChain(t), 0)

	status := e.Status()
	assert.False(t, status.SimulationLive)
	assert.Equal(t, 0, status.RunCount)
	assert.Equal(t, 3, status.BaselineStats.Nodes)

	_, err := e.SimulateDelay("S1", 5)
	require.NoError(t, err)

	status = e.Status()
	assert.True(t, status.SimulationLive)
	assert.Equal(t, 1, status.RunCount)
	assert.NotEmpty(t, status.LastScenarioID)

	e.Reset()
	status = e.Status()
	assert.False(t, status.SimulationLive)
	assert.Equal(t, 1, status.RunCount) // history survives reset
}

func TestSimulateDelay_ProductWithoutWarehouse(t *testing.T) {
	// A product never stocked anywhere contributes no paths.
	g, err := graph.Build(
		[]model.SupplyNode{
			{ID: "S1", Type: model.NodeSupplier, Supplier: &model.SupplierAttrs{Name: "S1", Region: "APAC", ReliabilityScore: 0.9}},
			{ID: "P1", Type: model.NodeProduct, Product: &model.ProductAttrs{Name: "P1"}},
		},
		[]model.SupplyEdge{
			{SourceID: "S1", TargetID: "P1", Type: model.EdgeSupplies, LeadTimeDays: 7, Quantity: 500},
		},
	)
	require.NoError(t, err)
	e := NewEngine(g, 0)

	result, err := e.SimulateDelay("S1", 20)
	require.NoError(t, err)
	assert.Empty(t, result.AffectedPaths)
	assert.Equal(t, 0.0, result.TotalImpact)
}
