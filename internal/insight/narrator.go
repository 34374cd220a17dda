package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/meridian/internal/core/model"
)

// Narrator turns a simulation result into a short human-readable summary for
// the dashboard.
type Narrator interface {
	Narrate(ctx context.Context, result *model.SimulationResult) (string, error)
}

// RuleNarrator produces a deterministic template summary with
// threshold-driven recommendations. Always succeeds.
type RuleNarrator struct{}

func NewRuleNarrator() *RuleNarrator {
	return &RuleNarrator{}
}

func (n *RuleNarrator) Narrate(_ context.Context, result *model.SimulationResult) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Supplier %s delayed by %d days affects %d supply paths with a total impact of %.1f.",
		result.SupplierID, result.DelayDays, len(result.AffectedPaths), result.TotalImpact)

	severe := 0
	for _, p := range result.AffectedPaths {
		if p.NewLeadTime > 14 {
			severe++
		}
	}

	switch {
	case len(result.AffectedPaths) == 0:
		b.WriteString(" No downstream products depend on this supplier.")
	case result.TotalImpact == 0:
		b.WriteString(" All paths stay within the 7-day band; the network absorbs this delay.")
	case severe > 0:
		fmt.Fprintf(&b, " %d paths cross the 14-day band; consider qualifying alternate suppliers for the affected products.", severe)
	default:
		b.WriteString(" Impact is moderate; expediting the highest-quantity paths would recover most of the service level.")
	}

	return b.String(), nil
}
