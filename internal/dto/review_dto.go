package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Draft state ---

type TreatmentState struct {
	Value      string `json:"value"`
	Importance string `json:"importance"`
}

type CounterfactualState struct {
	Variable               string  `json:"variable"`
	ActualValue            string  `json:"actual_value"`
	HypotheticalValue      string  `json:"hypothetical_value"`
	NewPredictedQuality    float64 `json:"new_predicted_quality"`
	ExpectedOutcomeChange  string  `json:"expected_outcome_change"`
	WouldChangeSessionType bool    `json:"would_change_session_type"`
}

type KeyDriverState struct {
	Rank      int    `json:"rank"`
	Variable  string `json:"variable"`
	Direction string `json:"direction"`
}

type InteractionState struct {
	FactorA        string `json:"factor_a"`
	FactorB        string `json:"factor_b"`
	Description    string `json:"description"`
	CombinedImpact string `json:"combined_impact"`
}

type ActivityState struct {
	Id              uuid.UUID `json:"id"`
	Type            string    `json:"type"`
	DurationMinutes int       `json:"duration_minutes"`
	Intensity       string    `json:"intensity"`
	Notes           string    `json:"notes,omitempty"`
}

type CompletionState struct {
	Sections         [8]bool `json:"sections"`
	RequiredComplete bool    `json:"required_complete"`
}

// DraftStateResponse mirrors the full panel state after any mutation, so
// the client can re-render without tracking partial diffs.
type DraftStateResponse struct {
	ScenarioId uuid.UUID `json:"scenario_id"`
	ExpertId   uuid.UUID `json:"expert_id"`
	StartedAt  time.Time `json:"started_at"`

	PredictedQualityOptimal  float64 `json:"predicted_quality_optimal"`
	PredictedQualityBaseline float64 `json:"predicted_quality_baseline"`
	PredictionConfidence     string  `json:"prediction_confidence"`

	RecommendedSessionType string `json:"recommended_session_type"`
	SessionTypeConfidence  string `json:"session_type_confidence"`

	Treatments map[string]TreatmentState `json:"treatments"`

	Counterfactuals []CounterfactualState `json:"counterfactuals"`

	KeyDrivers [3]KeyDriverState `json:"key_drivers"`

	InteractionEffects []InteractionState `json:"interaction_effects"`

	IncludeSessionStructure bool            `json:"include_session_structure"`
	Activities              []ActivityState `json:"activities"`
	TotalDurationMinutes    int             `json:"total_duration_minutes"`
	ActivityCount           int             `json:"activity_count"`

	Reasoning string `json:"reasoning"`

	Completion CompletionState `json:"completion"`
}

type OpenReviewResponse struct {
	Scenario ScenarioResponse   `json:"scenario"`
	Draft    DraftStateResponse `json:"draft"`

	// Closed catalogs the panel renders from, so the client never
	// hardcodes them.
	SessionTypes []string `json:"session_types"`
	Variables    []string `json:"variables"`
}

// --- Draft mutation ---

// UpdateDraftRequest is a partial patch: nil fields are left untouched.
// Slice fields replace the whole section when present.
type UpdateDraftRequest struct {
	PredictedQualityOptimal  *float64 `json:"predicted_quality_optimal"`
	PredictedQualityBaseline *float64 `json:"predicted_quality_baseline"`
	PredictionConfidence     *string  `json:"prediction_confidence" validate:"omitempty,oneof=high medium low"`

	RecommendedSessionType *string `json:"recommended_session_type"`
	SessionTypeConfidence  *string `json:"session_type_confidence" validate:"omitempty,oneof=high medium low"`

	Treatments map[string]TreatmentState `json:"treatments"`

	Counterfactuals *[]CounterfactualPatch `json:"counterfactuals"`

	KeyDrivers []KeyDriverState `json:"key_drivers"`

	InteractionEffects *[]InteractionState `json:"interaction_effects"`

	IncludeSessionStructure *bool `json:"include_session_structure"`

	Reasoning *string `json:"reasoning"`
}

// CounterfactualPatch omits the actual value: the server re-reads it from
// the scenario snapshot on every update.
type CounterfactualPatch struct {
	Variable               string  `json:"variable" validate:"required"`
	HypotheticalValue      string  `json:"hypothetical_value"`
	NewPredictedQuality    float64 `json:"new_predicted_quality"`
	WouldChangeSessionType bool    `json:"would_change_session_type"`
}

// --- Planner ---

type AddActivityRequest struct {
	Type string `json:"type" validate:"required"`
}

type MoveActivityRequest struct {
	Id        uuid.UUID
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type UpdateActivityRequest struct {
	Id              uuid.UUID
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1"`
	Intensity       string `json:"intensity" validate:"required,oneof=very_light light moderate hard max"`
	Notes           string `json:"notes"`
}

type ApplyTemplateRequest struct {
	Template string `json:"template" validate:"required"`
}

// --- Save / submit ---

type SaveDraftResponse struct {
	Saved      bool `json:"saved"`
	IsComplete bool `json:"is_complete"`
}

type SubmitResponse struct {
	Saved         bool   `json:"saved"`
	StatusUpdated bool   `json:"status_updated"`
	Warning       string `json:"warning,omitempty"`
}
