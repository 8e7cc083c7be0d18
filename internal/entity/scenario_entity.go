package entity

import (
	"time"

	"github.com/google/uuid"
)

// Scenario is a synthetic climber situation presented for expert judgment.
// Both snapshots are opaque key->value maps with no enforced schema version;
// consumers must treat missing keys as "unknown", not zero.
type Scenario struct {
	Id                 uuid.UUID
	Status             string
	DifficultyLevel    string
	Description        string
	Tags               []string
	BaselineSnapshot   map[string]interface{}
	PreSessionSnapshot map[string]interface{}
	AiRecommendation   *string
	AiReasoning        *string
	CreatedBy          uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	DeletedAt          *time.Time
	IsDeleted          bool
}
