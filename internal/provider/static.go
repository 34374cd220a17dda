package provider

import (
	"context"

	"github.com/agenthands/meridian/internal/core/model"
)

// StaticProvider serves fixed record slices. Backs unit tests and the pilot
// dataset used by cmd/seed.
type StaticProvider struct {
	Nodes []model.SupplyNode
	Edges []model.SupplyEdge
}

func NewStaticProvider(nodes []model.SupplyNode, edges []model.SupplyEdge) *StaticProvider {
	return &StaticProvider{Nodes: nodes, Edges: edges}
}

func (p *StaticProvider) FetchNodes(ctx context.Context) ([]model.SupplyNode, error) {
	return p.Nodes, nil
}

func (p *StaticProvider) FetchEdges(ctx context.Context) ([]model.SupplyEdge, error) {
	return p.Edges, nil
}

// PilotNetwork is a small multi-region network: four suppliers across three
// regions, lead times spanning all impact bands, one warehouse per region.
func PilotNetwork() *StaticProvider {
	nodes := []model.SupplyNode{
		{ID: "S1", Type: model.NodeSupplier, Supplier: &model.SupplierAttrs{Name: "Shenzhen Components", Region: "APAC", ReliabilityScore: 0.92, AvgLeadTimeDays: 7}},
		{ID: "S2", Type: model.NodeSupplier, Supplier: &model.SupplierAttrs{Name: "Osaka Precision", Region: "APAC", ReliabilityScore: 0.88, AvgLeadTimeDays: 12}},
		{ID: "S3", Type: model.NodeSupplier, Supplier: &model.SupplierAttrs{Name: "Rhine Logistics", Region: "EMEA", ReliabilityScore: 0.75, AvgLeadTimeDays: 9}},
		{ID: "S4", Type: model.NodeSupplier, Supplier: &model.SupplierAttrs{Name: "Monterrey Industrial", Region: "AMER", ReliabilityScore: 0.81, AvgLeadTimeDays: 5}},

		{ID: "P1", Type: model.NodeProduct, Product: &model.ProductAttrs{Name: "Controller Board", Category: "electronics", SafetyStock: 200, DemandForecast: 1200}},
		{ID: "P2", Type: model.NodeProduct, Product: &model.ProductAttrs{Name: "Drive Assembly", Category: "mechanical", SafetyStock: 150, DemandForecast: 800}},
		{ID: "P3", Type: model.NodeProduct, Product: &model.ProductAttrs{Name: "Sensor Pack", Category: "electronics", SafetyStock: 400, DemandForecast: 2500}},

		{ID: "W1", Type: model.NodeWarehouse, Warehouse: &model.WarehouseAttrs{Location: "Singapore", Region: "APAC", CapacityUnits: 5000}},
		{ID: "W2", Type: model.NodeWarehouse, Warehouse: &model.WarehouseAttrs{Location: "Rotterdam", Region: "EMEA", CapacityUnits: 8000}},
		{ID: "W3", Type: model.NodeWarehouse, Warehouse: &model.WarehouseAttrs{Location: "Memphis", Region: "AMER", CapacityUnits: 6000}},

		{ID: "C1", Type: model.NodeCustomer, Customer: &model.CustomerAttrs{Name: "Pacific Retail Group", Region: "APAC", AvgDemandUnits: 900}},
		{ID: "C2", Type: model.NodeCustomer, Customer: &model.CustomerAttrs{Name: "Nordhandel", Region: "EMEA", AvgDemandUnits: 650}},
		{ID: "C3", Type: model.NodeCustomer, Customer: &model.CustomerAttrs{Name: "Gulf Coast Distribution", Region: "AMER", AvgDemandUnits: 1100}},
	}

	edges := []model.SupplyEdge{
		{SourceID: "S1", TargetID: "P1", Type: model.EdgeSupplies, LeadTimeDays: 7, Quantity: 500},
		{SourceID: "S1", TargetID: "P3", Type: model.EdgeSupplies, LeadTimeDays: 5, Quantity: 700},
		{SourceID: "S2", TargetID: "P1", Type: model.EdgeSupplies, LeadTimeDays: 12, Quantity: 300},
		{SourceID: "S2", TargetID: "P2", Type: model.EdgeSupplies, LeadTimeDays: 15, Quantity: 250},
		{SourceID: "S3", TargetID: "P2", Type: model.EdgeSupplies, LeadTimeDays: 9, Quantity: 400},
		{SourceID: "S4", TargetID: "P3", Type: model.EdgeSupplies, LeadTimeDays: 4, Quantity: 600},

		{SourceID: "P1", TargetID: "W1", Type: model.EdgeStockedAt, Quantity: 450},
		{SourceID: "P1", TargetID: "W2", Type: model.EdgeStockedAt, Quantity: 350},
		{SourceID: "P2", TargetID: "W2", Type: model.EdgeStockedAt, Quantity: 500},
		{SourceID: "P3", TargetID: "W1", Type: model.EdgeStockedAt, Quantity: 800},
		{SourceID: "P3", TargetID: "W3", Type: model.EdgeStockedAt, Quantity: 500},

		{SourceID: "W1", TargetID: "C1", Type: model.EdgeDeliversTo, Quantity: 900},
		{SourceID: "W2", TargetID: "C2", Type: model.EdgeDeliversTo, Quantity: 650},
		{SourceID: "W3", TargetID: "C3", Type: model.EdgeDeliversTo, Quantity: 1100},
	}

	return NewStaticProvider(nodes, edges)
}
