package review

import (
	"time"

	"climb-coach-be/internal/entity"

	"github.com/google/uuid"
)

// Draft holds the mutable, in-progress judgment state for exactly one
// (scenario, expert) pair. All mutation happens in memory; nothing is
// persisted until the draft is assembled and saved or submitted.
type Draft struct {
	ScenarioId uuid.UUID
	ExpertId   uuid.UUID

	// Captured when the review panel opens, for duration computation.
	StartedAt time.Time

	// Section 1
	PredictedQualityOptimal  float64
	PredictedQualityBaseline float64
	PredictionConfidence     string

	// Section 2
	RecommendedSessionType string
	SessionTypeConfidence  string

	// Section 3
	Treatments map[string]entity.TreatmentRecommendation

	// Section 4
	Counterfactuals []CounterfactualEntry

	// Section 5: three fixed slots, ranks 1..3, pre-created empty.
	KeyDrivers [3]KeyDriverSlot

	// Section 6
	InteractionEffects []InteractionEntry

	// Section 7
	IncludeSessionStructure bool
	Activities              []entity.SessionActivity

	// Section 8
	Reasoning string
}

// CounterfactualEntry is a single "what if" judgment mid-edit. The derived
// outcome-change string is computed at assembly, not stored here.
type CounterfactualEntry struct {
	Variable               string  `json:"variable"`
	ActualValue            string  `json:"actual_value"`
	HypotheticalValue      string  `json:"hypothetical_value"`
	NewPredictedQuality    float64 `json:"new_predicted_quality"`
	WouldChangeSessionType bool    `json:"would_change_session_type"`
}

type KeyDriverSlot struct {
	Rank      int    `json:"rank"`
	Variable  string `json:"variable"`
	Direction string `json:"direction"`
}

type InteractionEntry struct {
	FactorA        string `json:"factor_a"`
	FactorB        string `json:"factor_b"`
	Description    string `json:"description"`
	CombinedImpact string `json:"combined_impact"`
}

// defaultTreatments returns the fixed sane defaults for section 3.
func defaultTreatments() map[string]entity.TreatmentRecommendation {
	return map[string]entity.TreatmentRecommendation{
		TreatmentCaffeine:         {Value: "none", Importance: ImportanceNeutral},
		TreatmentWarmupDuration:   {Value: "15", Importance: ImportanceNeutral},
		TreatmentSessionIntensity: {Value: "moderate", Importance: ImportanceNeutral},
		TreatmentTiming:           {Value: "afternoon", Importance: ImportanceNeutral},
	}
}

// NewDraft builds the draft for a (scenario, expert) pair. When a prior
// response exists every field is seeded from it; otherwise documented
// defaults apply. The start timestamp is captured here.
func NewDraft(scenarioId, expertId uuid.UUID, prior *entity.ExpertResponse, now time.Time) *Draft {
	d := &Draft{
		ScenarioId:               scenarioId,
		ExpertId:                 expertId,
		StartedAt:                now,
		PredictedQualityOptimal:  QualityDefault,
		PredictedQualityBaseline: QualityDefault,
		PredictionConfidence:     ConfidenceMedium,
		SessionTypeConfidence:    ConfidenceMedium,
		Treatments:               defaultTreatments(),
		Counterfactuals:          []CounterfactualEntry{},
		InteractionEffects:       []InteractionEntry{},
		Activities:               []entity.SessionActivity{},
	}
	for i := range d.KeyDrivers {
		d.KeyDrivers[i] = KeyDriverSlot{Rank: i + 1}
	}
	if prior != nil {
		d.seedFrom(prior)
	}
	return d
}

func (d *Draft) seedFrom(prior *entity.ExpertResponse) {
	d.PredictedQualityOptimal = prior.PredictedQualityOptimal
	d.PredictedQualityBaseline = prior.PredictedQualityBaseline
	if prior.PredictionConfidence != "" {
		d.PredictionConfidence = prior.PredictionConfidence
	}
	d.RecommendedSessionType = prior.RecommendedSessionType
	if prior.SessionTypeConfidence != "" {
		d.SessionTypeConfidence = prior.SessionTypeConfidence
	}
	for key, tr := range prior.TreatmentRecommendations {
		d.Treatments[key] = tr
	}
	for _, cf := range prior.Counterfactuals {
		d.Counterfactuals = append(d.Counterfactuals, CounterfactualEntry{
			Variable:               cf.Variable,
			ActualValue:            cf.ActualValue,
			HypotheticalValue:      cf.HypotheticalValue,
			NewPredictedQuality:    cf.NewPredictedQuality,
			WouldChangeSessionType: cf.WouldChangeSessionType,
		})
	}
	// Persisted drivers carry their slot rank; empty slots were filtered out
	// at assembly, so place each one back by rank.
	for _, kd := range prior.KeyDrivers {
		if kd.Rank >= 1 && kd.Rank <= len(d.KeyDrivers) {
			d.KeyDrivers[kd.Rank-1].Variable = kd.Variable
			d.KeyDrivers[kd.Rank-1].Direction = kd.Direction
		}
	}
	for _, ie := range prior.InteractionEffects {
		entry := InteractionEntry{
			Description:    ie.Description,
			CombinedImpact: ie.CombinedImpact,
		}
		if len(ie.Factors) > 0 {
			entry.FactorA = ie.Factors[0]
		}
		if len(ie.Factors) > 1 {
			entry.FactorB = ie.Factors[1]
		}
		d.InteractionEffects = append(d.InteractionEffects, entry)
	}
	if prior.SessionStructure != nil {
		d.IncludeSessionStructure = true
		d.Activities = append(d.Activities, prior.SessionStructure.Activities...)
	}
	d.Reasoning = prior.Reasoning
}
