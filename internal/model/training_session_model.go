package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrainingSession struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Date            time.Time      `gorm:"not null;index"`
	SessionType     string         `gorm:"type:varchar(32);not null"`
	DurationMinutes int            `gorm:"not null;default:0"`
	Quality         *float64       `gorm:"type:numeric(3,1)"`
	Grade           string         `gorm:"type:varchar(8)"`
	Discipline      string         `gorm:"type:varchar(16)"`
	Location        string         `gorm:"type:varchar(255)"`
	Outdoor         bool           `gorm:"not null;default:false"`
	Notes           string         `gorm:"type:text"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (TrainingSession) TableName() string {
	return "training_sessions"
}
