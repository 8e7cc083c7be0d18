package mapper

import (
	"time"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/model"

	"gorm.io/gorm"
)

type TrainingSessionMapper struct{}

func NewTrainingSessionMapper() *TrainingSessionMapper {
	return &TrainingSessionMapper{}
}

func (m *TrainingSessionMapper) ToEntity(s *model.TrainingSession) *entity.TrainingSession {
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

	return &entity.TrainingSession{
		Id:              s.Id,
		UserId:          s.UserId,
		Date:            s.Date,
		SessionType:     s.SessionType,
		DurationMinutes: s.DurationMinutes,
		Quality:         s.Quality,
		Grade:           s.Grade,
		Discipline:      s.Discipline,
		Location:        s.Location,
		Outdoor:         s.Outdoor,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
		IsDeleted:       s.DeletedAt.Valid,
	}
}

func (m *TrainingSessionMapper) ToModel(s *entity.TrainingSession) *model.TrainingSession {
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

	return &model.TrainingSession{
		Id:              s.Id,
		UserId:          s.UserId,
		Date:            s.Date,
		SessionType:     s.SessionType,
		DurationMinutes: s.DurationMinutes,
		Quality:         s.Quality,
		Grade:           s.Grade,
		Discipline:      s.Discipline,
		Location:        s.Location,
		Outdoor:         s.Outdoor,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
	}
}

func (m *TrainingSessionMapper) ToEntities(sessions []*model.TrainingSession) []*entity.TrainingSession {
	entities := make([]*entity.TrainingSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
