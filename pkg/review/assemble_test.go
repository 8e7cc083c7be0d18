package review

import (
	"testing"
	"time"

	"climb-coach-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_CounterfactualDelta(t *testing.T) {
	d := newTestDraft()
	d.PredictedQualityOptimal = 6.0
	d.PredictedQualityBaseline = 4.0 // must not influence the delta
	d.Counterfactuals = []CounterfactualEntry{
		{Variable: "sleep_hours", NewPredictedQuality: 4.5},
		{Variable: "sleep_hours", NewPredictedQuality: 6.0},
	}

	res := Assemble(d, false, time.Now())
	require.Len(t, res.Counterfactuals, 2)
	assert.Equal(t, "-1.5", res.Counterfactuals[0].ExpectedOutcomeChange)
	assert.Equal(t, "+0.0", res.Counterfactuals[1].ExpectedOutcomeChange)
}

func TestAssemble_KeyDriversSkipEmptySlots(t *testing.T) {
	d := newTestDraft()
	d.KeyDrivers[0] = KeyDriverSlot{Rank: 1, Variable: "sleep_quality", Direction: DirectionPositive}
	d.KeyDrivers[1] = KeyDriverSlot{Rank: 2} // empty
	d.KeyDrivers[2] = KeyDriverSlot{Rank: 3, Variable: "motivation", Direction: DirectionNegative}

	res := Assemble(d, false, time.Now())
	require.Len(t, res.KeyDrivers, 2)
	// Slot order preserved: sleep_quality before motivation.
	assert.Equal(t, "sleep_quality", res.KeyDrivers[0].Variable)
	assert.Equal(t, 1, res.KeyDrivers[0].Rank)
	assert.Equal(t, "motivation", res.KeyDrivers[1].Variable)
	assert.Equal(t, 3, res.KeyDrivers[1].Rank)
	for _, kd := range res.KeyDrivers {
		assert.Equal(t, "medium", kd.Magnitude)
		assert.Empty(t, kd.Reasoning)
	}
}

func TestAssemble_InteractionEffects(t *testing.T) {
	d := newTestDraft()
	d.InteractionEffects = []InteractionEntry{
		{FactorA: "sleep_quality", FactorB: "stress", Description: "bad sleep amplifies stress"},
	}

	res := Assemble(d, false, time.Now())
	require.Len(t, res.InteractionEffects, 1)
	assert.Equal(t, []string{"sleep_quality", "stress"}, res.InteractionEffects[0].Factors)
	// The "recommendation with" field is not surfaced by the minimal form, so
	// combined impact defaults to empty, never omitted.
	assert.Equal(t, "", res.InteractionEffects[0].CombinedImpact)
}

func TestAssemble_SessionStructure(t *testing.T) {
	d := newTestDraft()
	res := Assemble(d, false, time.Now())
	assert.Nil(t, res.SessionStructure, "structure omitted unless the toggle is enabled")

	d.IncludeSessionStructure = true
	warm := d.AddActivity(ActivityWarmUp)
	d.UpdateActivity(warm, 20, IntensityLight, "")
	d.AddActivity(ActivityLimitBouldering) // 30 main
	d.AddActivity(ActivityCore)            // 30 main
	d.AddActivity(ActivityStretching)      // 10 cooldown
	d.AddActivity(ActivityCooldown)        // 10 cooldown

	res = Assemble(d, false, time.Now())
	require.NotNil(t, res.SessionStructure)
	assert.Equal(t, 20, res.SessionStructure.WarmupMinutes)
	assert.Equal(t, 60, res.SessionStructure.MainMinutes)
	assert.Equal(t, 20, res.SessionStructure.CooldownMinutes)
	assert.NotNil(t, res.SessionStructure.SpecificRecommendations)
	assert.Empty(t, res.SessionStructure.SpecificRecommendations)
	require.Len(t, res.SessionStructure.Activities, 5)
	assert.Equal(t, ActivityWarmUp, res.SessionStructure.Activities[0].Type)
}

func TestAssemble_Duration(t *testing.T) {
	started := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	d := NewDraft(uuid.New(), uuid.New(), nil, started)

	res := Assemble(d, true, started.Add(95*time.Second+900*time.Millisecond))
	require.NotNil(t, res.ResponseDurationSeconds)
	assert.Equal(t, 95, *res.ResponseDurationSeconds, "duration floored to whole seconds")

	// No start time captured: duration omitted.
	d.StartedAt = time.Time{}
	res = Assemble(d, true, time.Now())
	assert.Nil(t, res.ResponseDurationSeconds)
}

func TestAssemble_IsCompleteFlag(t *testing.T) {
	d := newTestDraft()
	assert.False(t, Assemble(d, false, time.Now()).IsComplete)
	assert.True(t, Assemble(d, true, time.Now()).IsComplete)
}

func TestNewDraft_Defaults(t *testing.T) {
	d := newTestDraft()
	assert.Equal(t, 5.0, d.PredictedQualityOptimal)
	assert.Equal(t, 5.0, d.PredictedQualityBaseline)
	assert.Equal(t, ConfidenceMedium, d.PredictionConfidence)
	assert.Equal(t, ConfidenceMedium, d.SessionTypeConfidence)
	assert.Empty(t, d.RecommendedSessionType)
	require.Len(t, d.Treatments, 4)
	for _, tr := range d.Treatments {
		assert.Equal(t, ImportanceNeutral, tr.Importance)
	}
	for i, slot := range d.KeyDrivers {
		assert.Equal(t, i+1, slot.Rank)
		assert.Empty(t, slot.Variable)
	}
	assert.False(t, d.StartedAt.IsZero())
}

func TestNewDraft_SeedsFromPriorResponse(t *testing.T) {
	scenarioId, expertId := uuid.New(), uuid.New()
	dur := 120
	prior := &entity.ExpertResponse{
		ScenarioId:               scenarioId,
		ExpertId:                 expertId,
		PredictedQualityOptimal:  8.5,
		PredictedQualityBaseline: 6.0,
		PredictionConfidence:     ConfidenceHigh,
		RecommendedSessionType:   SessionTypeRestDay,
		SessionTypeConfidence:    ConfidenceLow,
		TreatmentRecommendations: map[string]entity.TreatmentRecommendation{
			TreatmentCaffeine: {Value: "none", Importance: ImportanceAvoid},
		},
		Counterfactuals: []entity.Counterfactual{
			{Variable: "soreness", ActualValue: "8", HypotheticalValue: "2", NewPredictedQuality: 7.5, ExpectedOutcomeChange: "-1.0"},
		},
		KeyDrivers: []entity.KeyDriver{
			{Rank: 1, Variable: "soreness", Direction: DirectionNegative, Magnitude: "medium"},
			{Rank: 3, Variable: "sleep_hours", Direction: DirectionPositive, Magnitude: "medium"},
		},
		SessionStructure: &entity.SessionStructure{
			Activities: []entity.SessionActivity{
				{Id: uuid.New(), Type: ActivityStretching, DurationMinutes: 20, Intensity: IntensityVeryLight},
			},
		},
		Reasoning:               "severe soreness dominates everything else here",
		ResponseDurationSeconds: &dur,
	}

	d := NewDraft(scenarioId, expertId, prior, time.Now())
	assert.Equal(t, 8.5, d.PredictedQualityOptimal)
	assert.Equal(t, ConfidenceHigh, d.PredictionConfidence)
	assert.Equal(t, SessionTypeRestDay, d.RecommendedSessionType)
	assert.Equal(t, ImportanceAvoid, d.Treatments[TreatmentCaffeine].Importance)
	// Untouched treatments keep their defaults.
	assert.Equal(t, ImportanceNeutral, d.Treatments[TreatmentTiming].Importance)
	require.Len(t, d.Counterfactuals, 1)
	assert.Equal(t, "soreness", d.Counterfactuals[0].Variable)
	// Drivers land back in their original slots; slot 2 stays empty.
	assert.Equal(t, "soreness", d.KeyDrivers[0].Variable)
	assert.Empty(t, d.KeyDrivers[1].Variable)
	assert.Equal(t, "sleep_hours", d.KeyDrivers[2].Variable)
	assert.True(t, d.IncludeSessionStructure)
	require.Len(t, d.Activities, 1)

	m := ComputeCompletion(d)
	assert.True(t, m.RequiredComplete, "a seeded complete response must satisfy the gate")
}
