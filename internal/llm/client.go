package llm

import (
	"context"
)

// Client is a provider-agnostic chat completion client. Narration is the only
// generation workload here, so a single method suffices.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
