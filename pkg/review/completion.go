package review

import "strings"

// CompletionMap reports per-section completeness (1..8) plus the aggregate
// required gate. Sections 6 and 7 are optional and always complete; sections
// 3 and 4 have indicators for guidance only and never block submission.
type CompletionMap struct {
	Sections [8]bool `json:"sections"`

	// RequiredComplete = §1 ∧ §2 ∧ §5 ∧ §8.
	RequiredComplete bool `json:"required_complete"`
}

// Section returns the completion flag for a 1-based section number.
func (m CompletionMap) Section(n int) bool {
	return m.Sections[n-1]
}

// ComputeCompletion is a pure mapping from a draft to its completion state.
// It is called explicitly after every mutation; there is no reactive
// recomputation anywhere else.
func ComputeCompletion(d *Draft) CompletionMap {
	var m CompletionMap

	// §1: complete once either outcome slider left its default.
	m.Sections[0] = d.PredictedQualityOptimal != QualityDefault ||
		d.PredictedQualityBaseline != QualityDefault

	// §2: a session type has been chosen.
	m.Sections[1] = d.RecommendedSessionType != ""

	// §3: at least one treatment importance moved off neutral.
	for _, tr := range d.Treatments {
		if tr.Importance != ImportanceNeutral {
			m.Sections[2] = true
			break
		}
	}

	// §4: at least one counterfactual entry exists.
	m.Sections[3] = len(d.Counterfactuals) > 0

	// §5: at least one key-driver slot holds a variable.
	for _, slot := range d.KeyDrivers {
		if slot.Variable != "" {
			m.Sections[4] = true
			break
		}
	}

	// §6 and §7 are optional and never block submission.
	m.Sections[5] = true
	m.Sections[6] = true

	// §8: trimmed reasoning longer than 10 characters.
	m.Sections[7] = len(strings.TrimSpace(d.Reasoning)) > 10

	m.RequiredComplete = m.Sections[0] && m.Sections[1] && m.Sections[4] && m.Sections[7]
	return m
}
