package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByScenarioID struct {
	ScenarioID uuid.UUID
}

func (s ByScenarioID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scenario_id = ?", s.ScenarioID)
}

type ByExpertID struct {
	ExpertID uuid.UUID
}

func (s ByExpertID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expert_id = ?", s.ExpertID)
}

// CompletedOnly selects final submissions, excluding saved drafts.
type CompletedOnly struct{}

func (s CompletedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_complete = true")
}
