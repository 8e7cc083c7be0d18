package entity

import (
	"time"

	"github.com/google/uuid"
)

type TrainingSession struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Date            time.Time
	SessionType     string
	DurationMinutes int
	Quality         *float64
	Grade           string
	Discipline      string
	Location        string
	Outdoor         bool
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}
