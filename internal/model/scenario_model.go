package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Scenario struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Status             string         `gorm:"type:varchar(32);not null;default:'pending';index"`
	DifficultyLevel    string         `gorm:"type:varchar(16);not null;default:'common'"`
	Description        string         `gorm:"type:text"`
	Tags               datatypes.JSON `gorm:"type:jsonb"`
	BaselineSnapshot   datatypes.JSON `gorm:"type:jsonb"`
	PreSessionSnapshot datatypes.JSON `gorm:"type:jsonb"`
	AiRecommendation   *string        `gorm:"type:varchar(64)"`
	AiReasoning        *string        `gorm:"type:text"`
	CreatedBy          uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (Scenario) TableName() string {
	return "scenarios"
}
