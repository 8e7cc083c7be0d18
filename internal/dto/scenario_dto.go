package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateScenarioRequest struct {
	Description        string                 `json:"description" validate:"required"`
	DifficultyLevel    string                 `json:"difficulty_level" validate:"required,oneof=common edge_case extreme"`
	Tags               []string               `json:"tags"`
	BaselineSnapshot   map[string]interface{} `json:"baseline_snapshot"`
	PreSessionSnapshot map[string]interface{} `json:"pre_session_snapshot" validate:"required"`
}

type CreateScenarioResponse struct {
	Id uuid.UUID `json:"id"`
}

type ScenarioResponse struct {
	Id                 uuid.UUID              `json:"id"`
	Status             string                 `json:"status"`
	DifficultyLevel    string                 `json:"difficulty_level"`
	Description        string                 `json:"description"`
	Tags               []string               `json:"tags"`
	BaselineSnapshot   map[string]interface{} `json:"baseline_snapshot"`
	PreSessionSnapshot map[string]interface{} `json:"pre_session_snapshot"`
	AiRecommendation   *string                `json:"ai_recommendation,omitempty"`
	AiReasoning        *string                `json:"ai_reasoning,omitempty"`
	ResponseCount      int64                  `json:"response_count"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          *time.Time             `json:"updated_at"`
}

type ListScenariosResponse struct {
	Scenarios []*ScenarioResponse `json:"scenarios"`
	Total     int64               `json:"total"`
}

type ResolveScenarioRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=consensus_reached disputed needs_discussion archived"`
}

type SimilarScenarioResponse struct {
	Id              uuid.UUID `json:"id"`
	Description     string    `json:"description"`
	DifficultyLevel string    `json:"difficulty_level"`
	Status          string    `json:"status"`
}

type GenerateScenariosRequest struct {
	Count int `json:"count" validate:"required,min=1,max=20"`
}

type GenerateScenariosResponse struct {
	Created int         `json:"created"`
	Ids     []uuid.UUID `json:"ids"`
}

type AiStatusResponse struct {
	Configured bool   `json:"configured"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	MaskedKey  string `json:"masked_key,omitempty"`
}

// PublishEmbedScenarioMessage is the in-process queue payload asking the
// consumer to (re)embed one scenario.
type PublishEmbedScenarioMessage struct {
	ScenarioId uuid.UUID `json:"scenario_id"`
}
