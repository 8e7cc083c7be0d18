package events

import (
	"time"

	"github.com/google/uuid"
)

// Event codes emitted by the review workflow.
const (
	TypeReviewSubmitted       = "REVIEW_SUBMITTED"
	TypeScenarioStatusChanged = "SCENARIO_STATUS_CHANGED"
)

// NewReviewSubmitted is emitted after an expert response is persisted.
func NewReviewSubmitted(scenarioId, expertId uuid.UUID, isComplete bool) BaseEvent {
	return BaseEvent{
		Type: TypeReviewSubmitted,
		Data: map[string]interface{}{
			"scenario_id": scenarioId.String(),
			"expert_id":   expertId.String(),
			"entity_type": "scenario",
			"entity_id":   scenarioId.String(),
			"is_complete": isComplete,
		},
		OccurredAt: time.Now(),
	}
}

// NewScenarioStatusChanged is emitted whenever a scenario moves between
// workflow states, including the automatic pending to in_review step.
func NewScenarioStatusChanged(scenarioId uuid.UUID, oldStatus, newStatus string) BaseEvent {
	return BaseEvent{
		Type: TypeScenarioStatusChanged,
		Data: map[string]interface{}{
			"scenario_id": scenarioId.String(),
			"entity_type": "scenario",
			"entity_id":   scenarioId.String(),
			"old_status":  oldStatus,
			"new_status":  newStatus,
		},
		OccurredAt: time.Now(),
	}
}
