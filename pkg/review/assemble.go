package review

import (
	"time"

	"climb-coach-be/internal/entity"
)

// Assemble normalizes a draft into the persistence payload. The caller
// decides draft-vs-final via isComplete; assembly is identical for both.
func Assemble(d *Draft, isComplete bool, now time.Time) *entity.ExpertResponse {
	res := &entity.ExpertResponse{
		ScenarioId:               d.ScenarioId,
		ExpertId:                 d.ExpertId,
		PredictedQualityOptimal:  d.PredictedQualityOptimal,
		PredictedQualityBaseline: d.PredictedQualityBaseline,
		PredictionConfidence:     d.PredictionConfidence,
		RecommendedSessionType:   d.RecommendedSessionType,
		SessionTypeConfidence:    d.SessionTypeConfidence,
		TreatmentRecommendations: make(map[string]entity.TreatmentRecommendation, len(d.Treatments)),
		Counterfactuals:          make([]entity.Counterfactual, 0, len(d.Counterfactuals)),
		KeyDrivers:               make([]entity.KeyDriver, 0, len(d.KeyDrivers)),
		InteractionEffects:       make([]entity.InteractionEffect, 0, len(d.InteractionEffects)),
		Reasoning:                d.Reasoning,
		IsComplete:               isComplete,
	}

	for key, tr := range d.Treatments {
		res.TreatmentRecommendations[key] = tr
	}

	// The derived delta is against the section-1 optimal prediction, not the
	// baseline one.
	for _, cf := range d.Counterfactuals {
		res.Counterfactuals = append(res.Counterfactuals, entity.Counterfactual{
			Variable:               cf.Variable,
			ActualValue:            cf.ActualValue,
			HypotheticalValue:      cf.HypotheticalValue,
			NewPredictedQuality:    cf.NewPredictedQuality,
			ExpectedOutcomeChange:  FormatOutcomeChange(cf.NewPredictedQuality, d.PredictedQualityOptimal),
			WouldChangeSessionType: cf.WouldChangeSessionType,
		})
	}

	// Only populated slots are emitted, in slot order. Magnitude and
	// per-driver reasoning are not collected by the form yet, so they take
	// fixed placeholders.
	for _, slot := range d.KeyDrivers {
		if slot.Variable == "" {
			continue
		}
		res.KeyDrivers = append(res.KeyDrivers, entity.KeyDriver{
			Rank:      slot.Rank,
			Variable:  slot.Variable,
			Direction: slot.Direction,
			Magnitude: "medium",
			Reasoning: "",
		})
	}

	for _, ie := range d.InteractionEffects {
		res.InteractionEffects = append(res.InteractionEffects, entity.InteractionEffect{
			Factors:        []string{ie.FactorA, ie.FactorB},
			Description:    ie.Description,
			CombinedImpact: ie.CombinedImpact,
		})
	}

	if d.IncludeSessionStructure {
		res.SessionStructure = assembleStructure(d)
	}

	if !d.StartedAt.IsZero() {
		seconds := int(now.Sub(d.StartedAt) / time.Second)
		res.ResponseDurationSeconds = &seconds
	}

	return res
}

// assembleStructure emits the authored activities list (source of truth)
// plus the coarse three-bucket aggregate the legacy consumer reads:
// warm-up, main, cooldown (cooldown + stretching).
func assembleStructure(d *Draft) *entity.SessionStructure {
	s := &entity.SessionStructure{
		Activities:              make([]entity.SessionActivity, len(d.Activities)),
		SpecificRecommendations: []string{},
	}
	copy(s.Activities, d.Activities)

	for _, a := range d.Activities {
		switch a.Type {
		case ActivityWarmUp:
			s.WarmupMinutes += a.DurationMinutes
		case ActivityCooldown, ActivityStretching:
			s.CooldownMinutes += a.DurationMinutes
		default:
			s.MainMinutes += a.DurationMinutes
		}
	}
	return s
}
