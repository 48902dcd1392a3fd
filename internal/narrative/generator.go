package narrative

import (
	"context"

	"github.com/jonathan/summary-agent/internal/llm"
	"github.com/jonathan/summary-agent/internal/types"
)

// Generator produces an executive summary for a person record using an LLM client
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator backed by client
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate renders the record's prompt and returns the model's narrative.
// Transport, auth, and empty-response failures are returned as *GenerationError.
func (g *Generator) Generate(ctx context.Context, record types.PersonRecord) (string, error) {
	prompt := BuildRecordPrompt(record)

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", &GenerationError{
			Name:    record.DisplayName(),
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	text = llm.CleanNarrative(text)
	if text == "" {
		return "", &GenerationError{
			Name:    record.DisplayName(),
			Message: "LLM returned an empty summary",
		}
	}

	return text, nil
}
