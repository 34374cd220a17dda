package driver

// Fetch queries return the full snapshot the graph is built from. ORDER BY id
// keeps record order deterministic across reloads, which in turn keeps
// traversal and affected-path ordering deterministic.
const (
	FetchSuppliersQuery = `
		MATCH (s:Supplier)
		RETURN s.id AS id, s.name AS name, s.region AS region,
			s.reliability_score AS reliability_score,
			s.avg_lead_time_days AS avg_lead_time_days
		ORDER BY s.id
	`

	FetchProductsQuery = `
		MATCH (p:Product)
		RETURN p.id AS id, p.name AS name, p.category AS category,
			p.safety_stock AS safety_stock,
			p.demand_forecast AS demand_forecast
		ORDER BY p.id
	`

	FetchWarehousesQuery = `
		MATCH (w:Warehouse)
		RETURN w.id AS id, w.location AS location, w.region AS region,
			w.capacity_units AS capacity_units
		ORDER BY w.id
	`

	FetchCustomersQuery = `
		MATCH (c:Customer)
		RETURN c.id AS id, c.name AS name, c.region AS region,
			c.avg_demand_units AS avg_demand_units
		ORDER BY c.id
	`

	FetchSuppliesEdgesQuery = `
		MATCH (s:Supplier)-[r:SUPPLIES]->(p:Product)
		RETURN s.id AS source_id, p.id AS target_id,
			r.lead_time_days AS lead_time_days, r.quantity AS quantity
		ORDER BY s.id, p.id
	`

	FetchStockedAtEdgesQuery = `
		MATCH (p:Product)-[r:STOCKED_AT]->(w:Warehouse)
		RETURN p.id AS source_id, w.id AS target_id, r.quantity AS quantity
		ORDER BY p.id, w.id
	`

	FetchDeliversToEdgesQuery = `
		MATCH (w:Warehouse)-[r:DELIVERS_TO]->(c:Customer)
		RETURN w.id AS source_id, c.id AS target_id, r.quantity AS quantity
		ORDER BY w.id, c.id
	`
)

// Seed queries used by cmd/seed to write the pilot dataset.
const (
	SaveSupplierQuery = `
		MERGE (s:Supplier {id: $id})
		SET s.name = $name,
			s.region = $region,
			s.reliability_score = $reliability_score,
			s.avg_lead_time_days = $avg_lead_time_days
		RETURN s.id AS id
	`

	SaveProductQuery = `
		MERGE (p:Product {id: $id})
		SET p.name = $name,
			p.category = $category,
			p.safety_stock = $safety_stock,
			p.demand_forecast = $demand_forecast
		RETURN p.id AS id
	`

	SaveWarehouseQuery = `
		MERGE (w:Warehouse {id: $id})
		SET w.location = $location,
			w.region = $region,
			w.capacity_units = $capacity_units
		RETURN w.id AS id
	`

	SaveCustomerQuery = `
		MERGE (c:Customer {id: $id})
		SET c.name = $name,
			c.region = $region,
			c.avg_demand_units = $avg_demand_units
		RETURN c.id AS id
	`

	SaveSuppliesEdgeQuery = `
		MATCH (s:Supplier {id: $source_id})
		MATCH (p:Product {id: $target_id})
		MERGE (s)-[r:SUPPLIES]->(p)
		SET r.lead_time_days = $lead_time_days,
			r.quantity = $quantity
		RETURN s.id AS id
	`

	SaveStockedAtEdgeQuery = `
		MATCH (p:Product {id: $source_id})
		MATCH (w:Warehouse {id: $target_id})
		MERGE (p)-[r:STOCKED_AT]->(w)
		SET r.quantity = $quantity
		RETURN p.id AS id
	`

	SaveDeliversToEdgeQuery = `
		MATCH (w:Warehouse {id: $source_id})
		MATCH (c:Customer {id: $target_id})
		MERGE (w)-[r:DELIVERS_TO]->(c)
		SET r.quantity = $quantity
		RETURN w.id AS id
	`

	ClearNetworkQuery = `
		MATCH (n)
		WHERE n:Supplier OR n:Product OR n:Warehouse OR n:Customer
		DETACH DELETE n
	`
)
