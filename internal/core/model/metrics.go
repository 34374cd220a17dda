package model

// SupplierRisk is one row of the supplier risk ranking.
type SupplierRisk struct {
	SupplierID   string  `json:"supplier_id"`
	RiskScore    float64 `json:"risk_score"`
	Reliability  float64 `json:"reliability"`
	ProductCount int     `json:"product_count"`
	Centrality   float64 `json:"centrality"`
}

// CriticalPath is one Supplier -> Product -> Warehouse triple ranked by
// systemic risk.
type CriticalPath struct {
	SupplierID          string  `json:"supplier_id"`
	ProductID           string  `json:"product_id"`
	WarehouseID         string  `json:"warehouse_id"`
	Quantity            int     `json:"quantity"`
	LeadTimeDays        int     `json:"lead_time_days"`
	SupplierReliability float64 `json:"supplier_reliability"`
	CriticalityScore    float64 `json:"criticality_score"`
}

// GraphStats summarizes a graph snapshot.
type GraphStats struct {
	Suppliers  int     `json:"suppliers"`
	Products   int     `json:"products"`
	Warehouses int     `json:"warehouses"`
	Customers  int     `json:"customers"`
	Nodes      int     `json:"nodes"`
	Edges      int     `json:"edges"`
	Density    float64 `json:"density"`
}

// SupplierPerformance aggregates supplier attributes across the network.
type SupplierPerformance struct {
	AverageReliability float64 `json:"average_reliability"`
	ReliabilityStdDev  float64 `json:"reliability_std_dev"`
	AverageLeadTime    float64 `json:"average_lead_time"`
	HighReliability    int     `json:"suppliers_above_90_reliability"`
	HighLeadTime       int     `json:"suppliers_high_lead_time"`
}

// RegionStats aggregates nodes of one region.
type RegionStats struct {
	Suppliers           int     `json:"suppliers"`
	Warehouses          int     `json:"warehouses"`
	Customers           int     `json:"customers"`
	TotalCapacity       int     `json:"total_capacity"`
	TotalDemand         int     `json:"total_demand"`
	CapacityUtilization float64 `json:"capacity_utilization"`
}

// HealthScores are 0-100 health indicators for the network.
type HealthScores struct {
	Reliability  float64 `json:"reliability_health"`
	LeadTime     float64 `json:"lead_time_health"`
	Connectivity float64 `json:"connectivity_health"`
	Overall      float64 `json:"overall_health_score"`
}

// DashboardMetrics is the full KPI bundle served to the dashboard.
type DashboardMetrics struct {
	Network             GraphStats             `json:"network"`
	SupplierPerformance SupplierPerformance    `json:"supplier_performance"`
	Regional            map[string]RegionStats `json:"regional"`
	Health              HealthScores           `json:"health"`
}
