package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic checking via errors.Is(). Build-time
// failures are fatal: no partial graph is ever returned.
var (
	// ErrSchema indicates an edge connecting an invalid node-type pair, or a
	// node whose attribute variant does not match its declared type.
	ErrSchema = errors.New("schema error")

	// ErrReference indicates an edge endpoint referencing a nonexistent node.
	ErrReference = errors.New("reference error")
)

// SchemaError reports an invalid type pair or malformed node during build.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	if e.Msg == "" {
		return ErrSchema.Error()
	}
	return fmt.Sprintf("%s: %s", ErrSchema.Error(), e.Msg)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// ReferenceError reports a dangling edge endpoint during build.
type ReferenceError struct {
	NodeType string
	NodeID   string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: edge references unknown %s %q", ErrReference.Error(), e.NodeType, e.NodeID)
}

func (e *ReferenceError) Unwrap() error { return ErrReference }
