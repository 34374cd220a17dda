package graph

import (
	"fmt"

	"github.com/agenthands/meridian/internal/core/model"
)

type nodeRef struct {
	Type model.NodeType
	ID   string
}

// Graph is an immutable-by-convention snapshot of the supply network. Build
// validates it all-or-nothing; simulation code mutates private Clones only.
type Graph struct {
	nodes map[nodeRef]*model.SupplyNode
	order map[model.NodeType][]string // ids in insertion order

	edges []*model.SupplyEdge
	out   map[model.EdgeType]map[string][]*model.SupplyEdge
	deg   map[nodeRef]int
}

// Successor is one outgoing hop: the target node id plus a pointer to the
// edge inside this graph's own storage, so clone holders can mutate it.
type Successor struct {
	TargetID string
	Edge     *model.SupplyEdge
}

// Build validates nodes and edges and assembles a snapshot. Every edge
// endpoint must exist and its node-type pair must match the tier layering
// (SUPPLIES Supplier->Product, STOCKED_AT Product->Warehouse, DELIVERS_TO
// Warehouse->Customer). Any violation aborts the build with no partial graph.
func Build(nodes []model.SupplyNode, edges []model.SupplyEdge) (*Graph, error) {
	g := &Graph{
		nodes: make(map[nodeRef]*model.SupplyNode, len(nodes)),
		order: make(map[model.NodeType][]string),
		out:   make(map[model.EdgeType]map[string][]*model.SupplyEdge),
		deg:   make(map[nodeRef]int),
	}

	for i := range nodes {
		n := nodes[i]
		if !n.HasAttrs() {
			return nil, &SchemaError{Msg: fmt.Sprintf("node %q: missing or mismatched attributes for type %q", n.ID, n.Type)}
		}
		ref := nodeRef{Type: n.Type, ID: n.ID}
		if _, exists := g.nodes[ref]; exists {
			return nil, &SchemaError{Msg: fmt.Sprintf("duplicate %s id %q", n.Type, n.ID)}
		}
		g.nodes[ref] = n.Clone()
		g.order[n.Type] = append(g.order[n.Type], n.ID)
	}

	for i := range edges {
		e := edges[i]
		srcType, dstType := e.Type.Endpoints()
		if srcType == "" {
			return nil, &SchemaError{Msg: fmt.Sprintf("unknown edge type %q", e.Type)}
		}
		if err := g.checkEndpoint(e.Type, srcType, e.SourceID); err != nil {
			return nil, err
		}
		if err := g.checkEndpoint(e.Type, dstType, e.TargetID); err != nil {
			return nil, err
		}
		g.addEdge(e.Clone())
	}

	return g, nil
}

// checkEndpoint distinguishes a dangling reference from a tier violation: an
// id present under a different node type is a schema error, an id present
// nowhere is a reference error.
func (g *Graph) checkEndpoint(edgeType model.EdgeType, want model.NodeType, id string) error {
	if _, ok := g.nodes[nodeRef{Type: want, ID: id}]; ok {
		return nil
	}
	for _, t := range []model.NodeType{model.NodeSupplier, model.NodeProduct, model.NodeWarehouse, model.NodeCustomer} {
		if t == want {
			continue
		}
		if _, ok := g.nodes[nodeRef{Type: t, ID: id}]; ok {
			return &SchemaError{Msg: fmt.Sprintf("%s edge endpoint %q is a %s, want %s", edgeType, id, t, want)}
		}
	}
	return &ReferenceError{NodeType: string(want), NodeID: id}
}

func (g *Graph) addEdge(e *model.SupplyEdge) {
	g.edges = append(g.edges, e)
	if g.out[e.Type] == nil {
		g.out[e.Type] = make(map[string][]*model.SupplyEdge)
	}
	g.out[e.Type][e.SourceID] = append(g.out[e.Type][e.SourceID], e)

	srcType, dstType := e.Type.Endpoints()
	g.deg[nodeRef{Type: srcType, ID: e.SourceID}]++
	g.deg[nodeRef{Type: dstType, ID: e.TargetID}]++
}

// Successors returns the outgoing hops of the given edge type, in the
// insertion order of the underlying edge records. Nil if none.
func (g *Graph) Successors(nodeID string, edgeType model.EdgeType) []Successor {
	edges := g.out[edgeType][nodeID]
	if len(edges) == 0 {
		return nil
	}
	succ := make([]Successor, len(edges))
	for i, e := range edges {
		succ[i] = Successor{TargetID: e.TargetID, Edge: e}
	}
	return succ
}

// Node returns the node of the given type and id, or nil.
func (g *Graph) Node(t model.NodeType, id string) *model.SupplyNode {
	return g.nodes[nodeRef{Type: t, ID: id}]
}

// NodesOfType returns nodes of one type in insertion order.
func (g *Graph) NodesOfType(t model.NodeType) []*model.SupplyNode {
	ids := g.order[t]
	out := make([]*model.SupplyNode, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodes[nodeRef{Type: t, ID: id}])
	}
	return out
}

// Edges returns all edges in insertion order. Callers must not mutate unless
// they own the graph (i.e. it is a private clone).
func (g *Graph) Edges() []*model.SupplyEdge {
	return g.edges
}

// Degree counts incident edges in either direction.
func (g *Graph) Degree(t model.NodeType, id string) int {
	return g.deg[nodeRef{Type: t, ID: id}]
}

func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) EdgeCount() int { return len(g.edges) }

// Clone deep-copies nodes and edges so simulation runs never touch the
// baseline.
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		nodes: make(map[nodeRef]*model.SupplyNode, len(g.nodes)),
		order: make(map[model.NodeType][]string, len(g.order)),
		out:   make(map[model.EdgeType]map[string][]*model.SupplyEdge),
		deg:   make(map[nodeRef]int, len(g.deg)),
	}
	for ref, n := range g.nodes {
		cp.nodes[ref] = n.Clone()
	}
	for t, ids := range g.order {
		cp.order[t] = append([]string(nil), ids...)
	}
	for _, e := range g.edges {
		cp.addEdge(e.Clone())
	}
	return cp
}

// Stats summarizes the snapshot. Density is edges over the possible directed
// edges between distinct nodes.
func (g *Graph) Stats() model.GraphStats {
	n := g.NodeCount()
	density := 0.0
	if n > 1 {
		density = float64(g.EdgeCount()) / float64(n*(n-1))
	}
	return model.GraphStats{
		Suppliers:  len(g.order[model.NodeSupplier]),
		Products:   len(g.order[model.NodeProduct]),
		Warehouses: len(g.order[model.NodeWarehouse]),
		Customers:  len(g.order[model.NodeCustomer]),
		Nodes:      n,
		Edges:      g.EdgeCount(),
		Density:    density,
	}
}
