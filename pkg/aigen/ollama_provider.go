package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
)

// OllamaProvider runs generation and embeddings against a local Ollama
// instance, for development without a Gemini key.
type OllamaProvider struct {
	BaseURL        string
	Model          string
	EmbeddingModel string
}

func NewOllamaProvider(baseURL, model, embeddingModel string) Provider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	if embeddingModel == "" {
		embeddingModel = "nomic-embed-text"
	}
	return &OllamaProvider{
		BaseURL:        baseURL,
		Model:          model,
		EmbeddingModel: embeddingModel,
	}
}

func (p *OllamaProvider) Name() string {
	return "ollama"
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

type ollamaEmbeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbeddingResponse struct {
	Embedding []float64 `json:"embedding"`
}

func (p *OllamaProvider) GenerateScenarios(ctx context.Context, count int) ([]GeneratedScenario, error) {
	reqBody := ollamaGenerateRequest{
		Model:  p.Model,
		Prompt: fmt.Sprintf(scenarioPrompt, count),
		Stream: false,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/generate", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama generate error: %s", string(bodyBytes))
	}

	var genRes ollamaGenerateResponse
	if err := json.Unmarshal(bodyBytes, &genRes); err != nil {
		return nil, err
	}

	var scenarios []GeneratedScenario
	if err := json.Unmarshal([]byte(stripFences(genRes.Response)), &scenarios); err != nil {
		return nil, fmt.Errorf("failed to parse generated scenarios: %w", err)
	}

	return scenarios, nil
}

func (p *OllamaProvider) Embed(text string) ([]float32, error) {
	reqBody := ollamaEmbeddingRequest{
		Model:  p.EmbeddingModel,
		Prompt: text,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/embeddings", p.BaseURL)
	resp, err := http.Post(endpoint, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama embedding error: %s", string(bodyBytes))
	}

	var ollamaResp ollamaEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &ollamaResp); err != nil {
		return nil, err
	}

	values := make([]float32, len(ollamaResp.Embedding))
	for i, v := range ollamaResp.Embedding {
		values[i] = float32(v)
	}

	// Cosine distance in pgvector expects unit length vectors. Gemini
	// returns normalized values already, Ollama models do not.
	return normalizeVector(values), nil
}

func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
