package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExpertResponse rows are unique per (scenario, expert); saves upsert on that
// natural key, they never append.
type ExpertResponse struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ScenarioId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_responses_scenario_expert"`
	ExpertId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_responses_scenario_expert"`

	PredictedQualityOptimal  float64 `gorm:"type:numeric(3,1);not null;default:5"`
	PredictedQualityBaseline float64 `gorm:"type:numeric(3,1);not null;default:5"`
	PredictionConfidence     string  `gorm:"type:varchar(8);not null;default:'medium'"`

	RecommendedSessionType string `gorm:"type:varchar(32)"`
	SessionTypeConfidence  string `gorm:"type:varchar(8);not null;default:'medium'"`

	TreatmentRecommendations datatypes.JSON `gorm:"type:jsonb"`
	Counterfactuals          datatypes.JSON `gorm:"type:jsonb"`
	KeyDrivers               datatypes.JSON `gorm:"type:jsonb"`
	InteractionEffects       datatypes.JSON `gorm:"type:jsonb"`
	SessionStructure         datatypes.JSON `gorm:"type:jsonb"`

	Reasoning string `gorm:"type:text"`

	ResponseDurationSeconds *int `gorm:""`
	IsComplete              bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ExpertResponse) TableName() string {
	return "expert_responses"
}
