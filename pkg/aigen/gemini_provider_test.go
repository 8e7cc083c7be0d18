package aigen

import (
	"strings"
	"testing"

	"climb-coach-be/pkg/review"

	"github.com/stretchr/testify/assert"
)

func TestScenarioPrompt_RecommendationVocabulary(t *testing.T) {
	// Generated recommendations are shown beside the expert's session-type
	// choice, so the prompt must ask for values from the same closed enum.
	for _, st := range review.SessionTypes {
		assert.Contains(t, scenarioPrompt, `"`+st+`"`, "session type %q missing from generation prompt", st)
	}
	assert.NotContains(t, scenarioPrompt, `"projecting"`)
	assert.NotContains(t, scenarioPrompt, `"strength"`)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[]", "[]"},
		{"```json\n[{\"title\":\"x\"}]\n```", "[{\"title\":\"x\"}]"},
		{"```\n[]\n```", "[]"},
		{"  [1, 2]  ", "[1, 2]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripFences(tt.in), "input %q", tt.in)
	}
	assert.False(t, strings.HasPrefix(stripFences("```json\n[]"), "`"))
}
