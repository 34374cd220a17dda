package model

import "time"

// PathImpact records the effect of a supplier delay on one
// Supplier -> Product -> Warehouse path.
type PathImpact struct {
	ProductID        string  `json:"product_id"`
	WarehouseID      string  `json:"warehouse_id"`
	OriginalLeadTime int     `json:"original_lead_time"`
	NewLeadTime      int     `json:"new_lead_time"`
	Quantity         int     `json:"quantity"`
	ImpactScore      float64 `json:"impact_score"`
}

// SimulationResult is the outcome of a single delay simulation. AffectedPaths
// preserves edge insertion order so identical inputs produce identical output.
type SimulationResult struct {
	SupplierID    string       `json:"supplier_id"`
	DelayDays     int          `json:"delay_days"`
	AffectedPaths []PathImpact `json:"affected_paths"`
	TotalImpact   float64      `json:"total_impact"`
	Timestamp     time.Time    `json:"timestamp"`
	Narrative     string       `json:"narrative,omitempty"`
}

// Scenario wraps a simulation run with bookkeeping for history and comparison.
type Scenario struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	SupplierID string            `json:"supplier_id"`
	DelayDays  int               `json:"delay_days"`
	Timestamp  time.Time         `json:"timestamp"`
	Result     *SimulationResult `json:"result"`
}

// ScenarioSummary is the comparable digest of one scenario.
type ScenarioSummary struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	SupplierID    string      `json:"supplier_id"`
	DelayDays     int         `json:"delay_days"`
	TotalImpact   float64     `json:"total_impact"`
	AffectedPaths int         `json:"affected_paths"`
	WorstPath     *PathImpact `json:"worst_path,omitempty"`
}

// ScenarioComparison ranks a set of scenarios by total impact.
type ScenarioComparison struct {
	Scenarios     []ScenarioSummary `json:"scenarios"`
	HighestImpact string            `json:"highest_impact_scenario_id"`
}

// EngineStatus describes the simulation engine's current state.
type EngineStatus struct {
	BaselineStats  GraphStats `json:"baseline_stats"`
	SimulationLive bool       `json:"simulation_live"`
	RunCount       int        `json:"run_count"`
	LastScenarioID string     `json:"last_scenario_id,omitempty"`
}
