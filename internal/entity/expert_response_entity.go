package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpertResponse is one expert's structured judgment for one scenario.
// Unique per (scenario, expert) pair; a later save overwrites the earlier
// draft for the same pair.
type ExpertResponse struct {
	Id         uuid.UUID
	ScenarioId uuid.UUID
	ExpertId   uuid.UUID

	// Section 1: outcome predictions, [1,10] step 0.5.
	PredictedQualityOptimal  float64
	PredictedQualityBaseline float64
	PredictionConfidence     string

	// Section 2: session-type recommendation.
	RecommendedSessionType string
	SessionTypeConfidence  string

	// Section 3: treatment policy, keyed by treatment name.
	TreatmentRecommendations map[string]TreatmentRecommendation

	// Section 4: counterfactual judgments, stored independently (no dedup).
	Counterfactuals []Counterfactual

	// Section 5: ranked causal drivers, non-empty slots only.
	KeyDrivers []KeyDriver

	// Section 6: optional interaction effects.
	InteractionEffects []InteractionEffect

	// Section 7: optional structured session plan.
	SessionStructure *SessionStructure

	// Section 8: free-text reasoning.
	Reasoning string

	ResponseDurationSeconds *int
	IsComplete              bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}

type TreatmentRecommendation struct {
	Value      string `json:"value"`
	Importance string `json:"importance"`
}

type Counterfactual struct {
	Variable               string  `json:"variable"`
	ActualValue            string  `json:"actual_value"`
	HypotheticalValue      string  `json:"hypothetical_value"`
	NewPredictedQuality    float64 `json:"new_predicted_quality"`
	ExpectedOutcomeChange  string  `json:"expected_outcome_change"`
	WouldChangeSessionType bool    `json:"would_change_session_type"`
}

type KeyDriver struct {
	Rank      int    `json:"rank"`
	Variable  string `json:"variable"`
	Direction string `json:"direction"`
	Magnitude string `json:"magnitude"`
	Reasoning string `json:"reasoning"`
}

type InteractionEffect struct {
	Factors        []string `json:"factors"`
	Description    string   `json:"description"`
	CombinedImpact string   `json:"combined_impact"`
}

// SessionStructure keeps the ordered activities list as the source of truth.
// The three duration buckets are a derived projection kept for the legacy
// consumer of the coarse aggregate.
type SessionStructure struct {
	Activities              []SessionActivity `json:"activities"`
	WarmupMinutes           int               `json:"warmup_minutes"`
	MainMinutes             int               `json:"main_minutes"`
	CooldownMinutes         int               `json:"cooldown_minutes"`
	SpecificRecommendations []string          `json:"specific_recommendations"`
}

type SessionActivity struct {
	Id              uuid.UUID `json:"id"`
	Type            string    `json:"type"`
	DurationMinutes int       `json:"duration_minutes"`
	Intensity       string    `json:"intensity"`
	Notes           string    `json:"notes,omitempty"`
}
