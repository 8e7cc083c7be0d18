package aigen

import "context"

// GeneratedScenario is the provider-neutral shape of one AI generated
// training scenario, before it is persisted.
type GeneratedScenario struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Difficulty     string                 `json:"difficulty"`
	Snapshot       map[string]interface{} `json:"context_snapshot"`
	Recommendation string                 `json:"recommendation"`
	Reasoning      string                 `json:"reasoning"`
	Tags           []string               `json:"tags"`
}

// Provider generates scenarios and embeds scenario documents.
type Provider interface {
	// Name returns the provider code, e.g. "gemini" or "ollama".
	Name() string

	// GenerateScenarios asks the model for count synthetic review scenarios.
	GenerateScenarios(ctx context.Context, count int) ([]GeneratedScenario, error)

	// Embed converts a scenario document into a vector for similarity search.
	Embed(text string) ([]float32, error)
}
