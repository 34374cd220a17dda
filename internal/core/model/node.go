package model

// NodeType identifies which tier of the supply network a node belongs to.
type NodeType string

const (
	NodeSupplier  NodeType = "supplier"
	NodeProduct   NodeType = "product"
	NodeWarehouse NodeType = "warehouse"
	NodeCustomer  NodeType = "customer"
)

// SupplyNode is a tagged variant: exactly one attribute struct, matching Type,
// is set. Ids are unique within their type scope.
type SupplyNode struct {
	ID   string   `json:"id"`
	Type NodeType `json:"type"`

	Supplier  *SupplierAttrs  `json:"supplier,omitempty"`
	Product   *ProductAttrs   `json:"product,omitempty"`
	Warehouse *WarehouseAttrs `json:"warehouse,omitempty"`
	Customer  *CustomerAttrs  `json:"customer,omitempty"`
}

type SupplierAttrs struct {
	Name             string  `json:"name"`
	Region           string  `json:"region"`
	ReliabilityScore float64 `json:"reliability_score"` // in [0,1]
	AvgLeadTimeDays  int     `json:"avg_lead_time_days"`
}

type ProductAttrs struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	SafetyStock    int    `json:"safety_stock"`
	DemandForecast int    `json:"demand_forecast"`
}

type WarehouseAttrs struct {
	Location      string `json:"location"`
	Region        string `json:"region"`
	CapacityUnits int    `json:"capacity_units"`
}

type CustomerAttrs struct {
	Name           string `json:"name"`
	Region         string `json:"region"`
	AvgDemandUnits int    `json:"avg_demand_units"`
}

// HasAttrs reports whether the attribute variant matching Type is present.
func (n *SupplyNode) HasAttrs() bool {
	switch n.Type {
	case NodeSupplier:
		return n.Supplier != nil
	case NodeProduct:
		return n.Product != nil
	case NodeWarehouse:
		return n.Warehouse != nil
	case NodeCustomer:
		return n.Customer != nil
	}
	return false
}

// Clone returns a deep copy, duplicating the attribute variant.
func (n *SupplyNode) Clone() *SupplyNode {
	cp := *n
	if n.Supplier != nil {
		a := *n.Supplier
		cp.Supplier = &a
	}
	if n.Product != nil {
		a := *n.Product
		cp.Product = &a
	}
	if n.Warehouse != nil {
		a := *n.Warehouse
		cp.Warehouse = &a
	}
	if n.Customer != nil {
		a := *n.Customer
		cp.Customer = &a
	}
	return &cp
}
