package review

import (
	"testing"
	"time"

	"climb-coach-be/internal/entity"

	"github.com/google/uuid"
)

func newTestDraft() *Draft {
	return NewDraft(uuid.New(), uuid.New(), nil, time.Now())
}

func TestComputeCompletion_FreshDraft(t *testing.T) {
	d := newTestDraft()
	m := ComputeCompletion(d)

	if m.Section(1) || m.Section(2) || m.Section(3) || m.Section(4) || m.Section(5) || m.Section(8) {
		t.Error("no content section should be complete on a fresh draft")
	}
	if m.RequiredComplete {
		t.Error("fresh draft must not be required-complete")
	}
}

func TestComputeCompletion_OptionalSectionsAlwaysComplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
	}{
		{"fresh", func(d *Draft) {}},
		{"with interactions", func(d *Draft) {
			d.InteractionEffects = append(d.InteractionEffects, InteractionEntry{FactorA: "sleep_quality", FactorB: "stress"})
		}},
		{"structure enabled empty", func(d *Draft) { d.IncludeSessionStructure = true }},
		{"structure with activities", func(d *Draft) {
			d.IncludeSessionStructure = true
			d.AddActivity(ActivityWarmUp)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDraft()
			tt.mutate(d)
			m := ComputeCompletion(d)
			if !m.Section(6) || !m.Section(7) {
				t.Errorf("sections 6 and 7 must always be complete, got %v / %v", m.Section(6), m.Section(7))
			}
		})
	}
}

func TestComputeCompletion_SectionRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		section int
		want    bool
	}{
		{"optimal slider moved", func(d *Draft) { d.PredictedQualityOptimal = 7.5 }, 1, true},
		{"baseline slider moved", func(d *Draft) { d.PredictedQualityBaseline = 4 }, 1, true},
		{"both sliders at default", func(d *Draft) {}, 1, false},
		{"session type chosen", func(d *Draft) { d.RecommendedSessionType = SessionTypeVolume }, 2, true},
		{"treatment off neutral", func(d *Draft) {
			d.Treatments[TreatmentCaffeine] = entity.TreatmentRecommendation{Value: "100mg", Importance: ImportanceHelpful}
		}, 3, true},
		{"treatment value changed but neutral", func(d *Draft) {
			d.Treatments[TreatmentCaffeine] = entity.TreatmentRecommendation{Value: "200mg", Importance: ImportanceNeutral}
		}, 3, false},
		{"one counterfactual", func(d *Draft) {
			d.Counterfactuals = append(d.Counterfactuals, CounterfactualEntry{Variable: "sleep_hours"})
		}, 4, true},
		{"driver in slot 3 only", func(d *Draft) { d.KeyDrivers[2].Variable = "motivation" }, 5, true},
		{"reasoning exactly 10 chars", func(d *Draft) { d.Reasoning = "ten chars." }, 8, false},
		{"reasoning 11 chars", func(d *Draft) { d.Reasoning = "eleven char" }, 8, true},
		{"reasoning padded whitespace", func(d *Draft) { d.Reasoning = "   short    " }, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDraft()
			tt.mutate(d)
			m := ComputeCompletion(d)
			if got := m.Section(tt.section); got != tt.want {
				t.Errorf("section %d = %v, want %v", tt.section, got, tt.want)
			}
		})
	}
}

// Required-complete depends on sections 1, 2, 5 and 8 only.
func TestComputeCompletion_RequiredGate(t *testing.T) {
	required := func(d *Draft) {
		d.PredictedQualityOptimal = 8
		d.RecommendedSessionType = SessionTypeProject
		d.KeyDrivers[0].Variable = "energy"
		d.Reasoning = "well rested and motivated, push hard today"
	}

	d := newTestDraft()
	required(d)
	m := ComputeCompletion(d)
	if !m.RequiredComplete {
		t.Fatal("sections 1+2+5+8 filled must satisfy the required gate")
	}
	if m.Section(3) || m.Section(4) {
		t.Fatal("sections 3 and 4 should still be incomplete")
	}

	// Filling 3/4/6/7 with required sections missing must not flip the gate.
	d = newTestDraft()
	d.Treatments[TreatmentTiming] = entity.TreatmentRecommendation{Value: "morning", Importance: ImportanceCritical}
	d.Counterfactuals = append(d.Counterfactuals, CounterfactualEntry{Variable: "stress"})
	d.IncludeSessionStructure = true
	d.AddActivity(ActivityClimbing)
	if ComputeCompletion(d).RequiredComplete {
		t.Fatal("optional and guidance sections must not satisfy the required gate")
	}

	// Dropping any one required section breaks the gate.
	breakers := []func(*Draft){
		func(d *Draft) { d.PredictedQualityOptimal = QualityDefault; d.PredictedQualityBaseline = QualityDefault },
		func(d *Draft) { d.RecommendedSessionType = "" },
		func(d *Draft) { d.KeyDrivers = [3]KeyDriverSlot{{Rank: 1}, {Rank: 2}, {Rank: 3}} },
		func(d *Draft) { d.Reasoning = "too short" },
	}
	for i, breaker := range breakers {
		d := newTestDraft()
		required(d)
		breaker(d)
		if ComputeCompletion(d).RequiredComplete {
			t.Errorf("breaker %d: gate should fail with a required section missing", i)
		}
	}
}
