package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type GeminiProvider struct {
	ApiKey         string
	Model          string
	EmbeddingModel string
}

func NewGeminiProvider(apiKey, model, embeddingModel string) Provider {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if embeddingModel == "" {
		embeddingModel = "text-embedding-004"
	}
	return &GeminiProvider{
		ApiKey:         apiKey,
		Model:          model,
		EmbeddingModel: embeddingModel,
	}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerateRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiEmbedRequest struct {
	Model   string        `json:"model"`
	Content geminiContent `json:"content"`
}

type geminiEmbedResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

const scenarioPrompt = `You are generating synthetic training scenarios for a climbing coaching platform.
Produce a JSON array of %d scenarios. Each element must have these fields:
  "title": short scenario name,
  "description": 2-3 sentences describing the athlete's situation,
  "difficulty": one of "common", "edge_case", "extreme",
  "context_snapshot": object with numeric keys energy, motivation, sleep_quality (1-10 scales), sleep_hours, stress, soreness (1-10), days_since_last_session, days_since_rest_day, planned_duration_minutes,
  "recommendation": one of "project", "limit_bouldering", "volume", "technique", "training", "light_session", "rest_day", "active_recovery",
  "reasoning": one sentence explaining the recommendation,
  "tags": array of short strings.
Return ONLY the JSON array, no markdown fences.`

func (p *GeminiProvider) GenerateScenarios(ctx context.Context, count int) ([]GeneratedScenario, error) {
	reqBody := geminiGenerateRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: fmt.Sprintf(scenarioPrompt, count)}}},
		},
	}
	reqJson, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent",
		p.Model,
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(reqJson))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from gemini response, code %d, body %s", res.StatusCode, string(resByte))
	}

	var genRes geminiGenerateResponse
	if err := json.Unmarshal(resByte, &genRes); err != nil {
		return nil, err
	}
	if len(genRes.Candidates) == 0 || len(genRes.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	raw := stripFences(genRes.Candidates[0].Content.Parts[0].Text)

	var scenarios []GeneratedScenario
	if err := json.Unmarshal([]byte(raw), &scenarios); err != nil {
		return nil, fmt.Errorf("failed to parse generated scenarios: %w", err)
	}

	return scenarios, nil
}

func (p *GeminiProvider) Embed(text string) ([]float32, error) {
	reqBody := geminiEmbedRequest{
		Model:   p.EmbeddingModel,
		Content: geminiContent{Parts: []geminiPart{{Text: text}}},
	}
	reqJson, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:embedContent",
		p.EmbeddingModel,
	)

	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(reqJson))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from gemini response, code %d, body %s", res.StatusCode, string(resByte))
	}

	var embRes geminiEmbedResponse
	if err := json.Unmarshal(resByte, &embRes); err != nil {
		return nil, err
	}

	return embRes.Embedding.Values, nil
}

// stripFences removes markdown code fences that models sometimes wrap
// around JSON output despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
