package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/agenthands/meridian/internal/core/model"
	"github.com/agenthands/meridian/internal/llm"
)

const narratePrompt = `You are a supply chain analyst. Summarize the following
delay simulation result in 2-3 sentences for an operations dashboard: name the
supplier, the delay, how many paths are affected, and one concrete
recommendation. Respond with plain text only.

%s`

// LLMNarrator asks a chat model for the summary and falls back to the rule
// narrator when generation fails, so narration never blocks a result.
type LLMNarrator struct {
	Client   llm.Client
	fallback *RuleNarrator
}

func NewLLMNarrator(client llm.Client) *LLMNarrator {
	return &LLMNarrator{Client: client, fallback: NewRuleNarrator()}
}

func (n *LLMNarrator) Narrate(ctx context.Context, result *model.SimulationResult) (string, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return n.fallback.Narrate(ctx, result)
	}

	text, err := n.Client.Generate(ctx, fmt.Sprintf(narratePrompt, payload))
	if err != nil {
		log.Printf("LLM narration failed, falling back to rules: %v", err)
		return n.fallback.Narrate(ctx, result)
	}
	return text, nil
}
