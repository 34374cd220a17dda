package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/agenthands/meridian/internal/config"
	"github.com/agenthands/meridian/internal/core/model"
	"github.com/agenthands/meridian/internal/driver"
	"github.com/agenthands/meridian/internal/provider"
)

// Seeds the pilot supply network into the graph database and builds indices.
func main() {
	clear := flag.Bool("clear", false, "delete the existing supply network before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg := config.Default()
	cfg.ApplyEnv()

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		log.Fatalf("Failed to connect to graph database: %v", err)
	}
	ctx := context.Background()
	defer d.Close(ctx)

	if *clear {
		if _, err := d.ExecuteQuery(ctx, driver.ClearNetworkQuery, nil); err != nil {
			log.Fatalf("Failed to clear network: %v", err)
		}
		log.Println("Cleared existing supply network")
	}

	pilot := provider.PilotNetwork()

	for _, n := range pilot.Nodes {
		if err := saveNode(ctx, d, n); err != nil {
			log.Fatalf("Failed to save %s %s: %v", n.Type, n.ID, err)
		}
	}
	log.Printf("Seeded %d nodes", len(pilot.Nodes))

	for _, e := range pilot.Edges {
		if err := saveEdge(ctx, d, e); err != nil {
			log.Fatalf("Failed to save edge %s -[%s]-> %s: %v", e.SourceID, e.Type, e.TargetID, err)
		}
	}
	log.Printf("Seeded %d edges", len(pilot.Edges))

	if err := d.BuildIndices(ctx); err != nil {
		log.Fatalf("Failed to build indices: %v", err)
	}
	log.Println("Done")
}

func saveNode(ctx context.Context, d driver.GraphDriver, n model.SupplyNode) error {
	var query string
	var params map[string]interface{}

	switch n.Type {
	case model.NodeSupplier:
		query = driver.SaveSupplierQuery
		params = map[string]interface{}{
			"id":                 n.ID,
			"name":               n.Supplier.Name,
			"region":             n.Supplier.Region,
			"reliability_score":  n.Supplier.ReliabilityScore,
			"avg_lead_time_days": n.Supplier.AvgLeadTimeDays,
		}
	case model.NodeProduct:
		query = driver.SaveProductQuery
		params = map[string]interface{}{
			"id":              n.ID,
			"name":            n.Product.Name,
			"category":        n.Product.Category,
			"safety_stock":    n.Product.SafetyStock,
			"demand_forecast": n.Product.DemandForecast,
		}
	case model.NodeWarehouse:
		query = driver.SaveWarehouseQuery
		params = map[string]interface{}{
			"id":             n.ID,
			"location":       n.Warehouse.Location,
			"region":         n.Warehouse.Region,
			"capacity_units": n.Warehouse.CapacityUnits,
		}
	case model.NodeCustomer:
		query = driver.SaveCustomerQuery
		params = map[string]interface{}{
			"id":               n.ID,
			"name":             n.Customer.Name,
			"region":           n.Customer.Region,
			"avg_demand_units": n.Customer.AvgDemandUnits,
		}
	}

	_, err := d.ExecuteQuery(ctx, query, params)
	return err
}

func saveEdge(ctx context.Context, d driver.GraphDriver, e model.SupplyEdge) error {
	var query string
	params := map[string]interface{}{
		"source_id": e.SourceID,
		"target_id": e.TargetID,
		"quantity":  e.Quantity,
	}

	switch e.Type {
	case model.EdgeSupplies:
		query = driver.SaveSuppliesEdgeQuery
		params["lead_time_days"] = e.LeadTimeDays
	case model.EdgeStockedAt:
		query = driver.SaveStockedAtEdgeQuery
	case model.EdgeDeliversTo:
		query = driver.SaveDeliversToEdgeQuery
	}

	_, err := d.ExecuteQuery(ctx, query, params)
	return err
}
