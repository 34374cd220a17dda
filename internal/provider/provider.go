package provider

import (
	"context"

	"github.com/agenthands/meridian/internal/core/model"
)

// RecordProvider supplies the validated entity and relationship records a
// graph snapshot is built from. Implementations own all I/O; the core never
// touches the wire.
type RecordProvider interface {
	FetchNodes(ctx context.Context) ([]model.SupplyNode, error)
	FetchEdges(ctx context.Context) ([]model.SupplyEdge, error)
}
