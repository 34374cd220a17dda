package model

// EdgeType identifies the relationship between two adjacent tiers.
type EdgeType string

const (
	EdgeSupplies   EdgeType = "SUPPLIES"    // Supplier -> Product
	EdgeStockedAt  EdgeType = "STOCKED_AT"  // Product -> Warehouse
	EdgeDeliversTo EdgeType = "DELIVERS_TO" // Warehouse -> Customer
)

// SupplyEdge is a directed relationship between two nodes of adjacent tiers.
// LeadTimeDays is only meaningful on SUPPLIES edges.
type SupplyEdge struct {
	SourceID     string   `json:"source_id"`
	TargetID     string   `json:"target_id"`
	Type         EdgeType `json:"type"`
	LeadTimeDays int      `json:"lead_time_days,omitempty"`
	Quantity     int      `json:"quantity"`
}

// Endpoints returns the node types an edge of this type must connect.
// Unknown edge types return empty node types.
func (t EdgeType) Endpoints() (source, target NodeType) {
	switch t {
	case EdgeSupplies:
		return NodeSupplier, NodeProduct
	case EdgeStockedAt:
		return NodeProduct, NodeWarehouse
	case EdgeDeliversTo:
		return NodeWarehouse, NodeCustomer
	}
	return "", ""
}

func (e *SupplyEdge) Clone() *SupplyEdge {
	cp := *e
	return &cp
}
