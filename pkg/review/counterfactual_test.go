package review

import (
	"encoding/json"
	"testing"
)

func TestFormatOutcomeChange(t *testing.T) {
	tests := []struct {
		name    string
		newQ    float64
		optimal float64
		want    string
	}{
		{"negative delta", 4.5, 6.0, "-1.5"},
		{"zero delta carries plus", 6.0, 6.0, "+0.0"},
		{"positive delta", 8.0, 6.0, "+2.0"},
		{"half step", 6.5, 6.0, "+0.5"},
		{"float noise rounds clean", 7.7 - 0.2, 7.0, "+0.5"},
		{"large negative", 1.0, 10.0, "-9.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatOutcomeChange(tt.newQ, tt.optimal); got != tt.want {
				t.Errorf("FormatOutcomeChange(%v, %v) = %q, want %q", tt.newQ, tt.optimal, got, tt.want)
			}
		})
	}
}

func TestActualValue(t *testing.T) {
	snapshot := map[string]interface{}{
		"sleep_hours":   7.5,
		"energy":        float64(8),
		"soreness":      3,
		"stress":        json.Number("4"),
		"primary_goal":  "send project",
		"outdoor":       true,
		"sleep_quality": nil,
	}

	tests := []struct {
		variable string
		want     string
		wantOk   bool
	}{
		{"sleep_hours", "7.5", true},
		{"energy", "8", true},
		{"soreness", "3", true},
		{"stress", "4", true},
		{"primary_goal", "", false}, // non-numeric left alone
		{"outdoor", "", false},
		{"sleep_quality", "", false},
		{"missing_key", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.variable, func(t *testing.T) {
			got, ok := ActualValue(snapshot, tt.variable)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("ActualValue(%q) = (%q, %v), want (%q, %v)", tt.variable, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

// Contradictory counterfactuals for the same variable are stored
// independently; nothing merges or deduplicates them.
func TestCounterfactuals_NoDedup(t *testing.T) {
	d := newTestDraft()
	d.Counterfactuals = append(d.Counterfactuals,
		CounterfactualEntry{Variable: "sleep_hours", HypotheticalValue: "9", NewPredictedQuality: 8},
		CounterfactualEntry{Variable: "sleep_hours", HypotheticalValue: "9", NewPredictedQuality: 3},
	)
	res := Assemble(d, false, d.StartedAt)
	if len(res.Counterfactuals) != 2 {
		t.Fatalf("expected 2 counterfactuals, got %d", len(res.Counterfactuals))
	}
}
