package provider

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/meridian/internal/core/model"
	"github.com/agenthands/meridian/internal/driver"
)

// Neo4jProvider reads the supply network snapshot from a bolt-protocol graph
// store via the fetch queries in the driver package.
type Neo4jProvider struct {
	Driver driver.GraphDriver
}

func NewNeo4jProvider(d driver.GraphDriver) *Neo4jProvider {
	return &Neo4jProvider{Driver: d}
}

func (p *Neo4jProvider) FetchNodes(ctx context.Context) ([]model.SupplyNode, error) {
	var nodes []model.SupplyNode

	result, err := p.Driver.ExecuteQuery(ctx, driver.FetchSuppliersQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suppliers: %w", err)
	}
	for _, rec := range result.Records {
		nodes = append(nodes, model.SupplyNode{
			ID:   stringValue(rec, "id"),
			Type: model.NodeSupplier,
			Supplier: &model.SupplierAttrs{
				Name:             stringValue(rec, "name"),
				Region:           stringValue(rec, "region"),
				ReliabilityScore: floatValue(rec, "reliability_score"),
				AvgLeadTimeDays:  intValue(rec, "avg_lead_time_days"),
			},
		})
	}

	result, err = p.Driver.ExecuteQuery(ctx, driver.FetchProductsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	for _, rec := range result.Records {
		nodes = append(nodes, model.SupplyNode{
			ID:   stringValue(rec, "id"),
			Type: model.NodeProduct,
			Product: &model.ProductAttrs{
				Name:           stringValue(rec, "name"),
				Category:       stringValue(rec, "category"),
				SafetyStock:    intValue(rec, "safety_stock"),
				DemandForecast: intValue(rec, "demand_forecast"),
			},
		})
	}

	result, err = p.Driver.ExecuteQuery(ctx, driver.FetchWarehousesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch warehouses: %w", err)
	}
	for _, rec := range result.Records {
		nodes = append(nodes, model.SupplyNode{
			ID:   stringValue(rec, "id"),
			Type: model.NodeWarehouse,
			Warehouse: &model.WarehouseAttrs{
				Location:      stringValue(rec, "location"),
				Region:        stringValue(rec, "region"),
				CapacityUnits: intValue(rec, "capacity_units"),
			},
		})
	}

	result, err = p.Driver.ExecuteQuery(ctx, driver.FetchCustomersQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	for _, rec := range result.Records {
		nodes = append(nodes, model.SupplyNode{
			ID:   stringValue(rec, "id"),
			Type: model.NodeCustomer,
			Customer: &model.CustomerAttrs{
				Name:           stringValue(rec, "name"),
				Region:         stringValue(rec, "region"),
				AvgDemandUnits: intValue(rec, "avg_demand_units"),
			},
		})
	}

	return nodes, nil
}

func (p *Neo4jProvider) FetchEdges(ctx context.Context) ([]model.SupplyEdge, error) {
	var edges []model.SupplyEdge

	result, err := p.Driver.ExecuteQuery(ctx, driver.FetchSuppliesEdgesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch SUPPLIES edges: %w", err)
	}
	for _, rec := range result.Records {
		edges = append(edges, model.SupplyEdge{
			SourceID:     stringValue(rec, "source_id"),
			TargetID:     stringValue(rec, "target_id"),
			Type:         model.EdgeSupplies,
			LeadTimeDays: intValue(rec, "lead_time_days"),
			Quantity:     intValue(rec, "quantity"),
		})
	}

	result, err = p.Driver.ExecuteQuery(ctx, driver.FetchStockedAtEdgesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch STOCKED_AT edges: %w", err)
	}
	for _, rec := range result.Records {
		edges = append(edges, model.SupplyEdge{
			SourceID: stringValue(rec, "source_id"),
			TargetID: stringValue(rec, "target_id"),
			Type:     model.EdgeStockedAt,
			Quantity: intValue(rec, "quantity"),
		})
	}

	result, err = p.Driver.ExecuteQuery(ctx, driver.FetchDeliversToEdgesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch DELIVERS_TO edges: %w", err)
	}
	for _, rec := range result.Records {
		edges = append(edges, model.SupplyEdge{
			SourceID: stringValue(rec, "source_id"),
			TargetID: stringValue(rec, "target_id"),
			Type:     model.EdgeDeliversTo,
			Quantity: intValue(rec, "quantity"),
		})
	}

	return edges, nil
}

func stringValue(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func intValue(rec *neo4j.Record, key string) int {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func floatValue(rec *neo4j.Record, key string) float64 {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	return 0
}
