package mapper

import (
	"encoding/json"
	"time"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ScenarioMapper struct{}

func NewScenarioMapper() *ScenarioMapper {
	return &ScenarioMapper{}
}

func (m *ScenarioMapper) ToEntity(s *model.Scenario) *entity.Scenario {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	var tags []string
	if len(s.Tags) > 0 {
		_ = json.Unmarshal(s.Tags, &tags)
	}

	// Snapshots stay opaque maps; a corrupt column degrades to an empty map
	// (missing keys mean "unknown" downstream), never an error.
	baseline := map[string]interface{}{}
	if len(s.BaselineSnapshot) > 0 {
		_ = json.Unmarshal(s.BaselineSnapshot, &baseline)
	}
	preSession := map[string]interface{}{}
	if len(s.PreSessionSnapshot) > 0 {
		_ = json.Unmarshal(s.PreSessionSnapshot, &preSession)
	}

	return &entity.Scenario{
		Id:                 s.Id,
		Status:             s.Status,
		DifficultyLevel:    s.DifficultyLevel,
		Description:        s.Description,
		Tags:               tags,
		BaselineSnapshot:   baseline,
		PreSessionSnapshot: preSession,
		AiRecommendation:   s.AiRecommendation,
		AiReasoning:        s.AiReasoning,
		CreatedBy:          s.CreatedBy,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          updatedAt,
		DeletedAt:          deletedAt,
		IsDeleted:          s.DeletedAt.Valid,
	}
}

func (m *ScenarioMapper) ToModel(s *entity.Scenario) *model.Scenario {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	tags, _ := json.Marshal(s.Tags)
	baseline, _ := json.Marshal(s.BaselineSnapshot)
	preSession, _ := json.Marshal(s.PreSessionSnapshot)

	return &model.Scenario{
		Id:                 s.Id,
		Status:             s.Status,
		DifficultyLevel:    s.DifficultyLevel,
		Description:        s.Description,
		Tags:               datatypes.JSON(tags),
		BaselineSnapshot:   datatypes.JSON(baseline),
		PreSessionSnapshot: datatypes.JSON(preSession),
		AiRecommendation:   s.AiRecommendation,
		AiReasoning:        s.AiReasoning,
		CreatedBy:          s.CreatedBy,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          updatedAt,
		DeletedAt:          deletedAt,
	}
}

func (m *ScenarioMapper) ToEntities(scenarios []*model.Scenario) []*entity.Scenario {
	entities := make([]*entity.Scenario, len(scenarios))
	for i, s := range scenarios {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
