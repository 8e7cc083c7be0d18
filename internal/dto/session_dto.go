package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Date            time.Time `json:"date" validate:"required"`
	SessionType     string    `json:"session_type" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"min=0"`
	Quality         *float64  `json:"quality" validate:"omitempty,min=1,max=10"`
	Grade           string    `json:"grade"`
	Discipline      string    `json:"discipline" validate:"omitempty,oneof=bouldering sport trad"`
	Location        string    `json:"location"`
	Outdoor         bool      `json:"outdoor"`
	Notes           string    `json:"notes"`
}

type UpdateSessionRequest struct {
	Id              uuid.UUID
	SessionType     string   `json:"session_type" validate:"required"`
	DurationMinutes int      `json:"duration_minutes" validate:"min=0"`
	Quality         *float64 `json:"quality" validate:"omitempty,min=1,max=10"`
	Grade           string   `json:"grade"`
	Discipline      string   `json:"discipline" validate:"omitempty,oneof=bouldering sport trad"`
	Location        string   `json:"location"`
	Outdoor         bool     `json:"outdoor"`
	Notes           string   `json:"notes"`
}

type SessionResponse struct {
	Id              uuid.UUID  `json:"id"`
	Date            time.Time  `json:"date"`
	SessionType     string     `json:"session_type"`
	DurationMinutes int        `json:"duration_minutes"`
	Quality         *float64   `json:"quality"`
	Grade           string     `json:"grade"`
	Discipline      string     `json:"discipline"`
	Location        string     `json:"location"`
	Outdoor         bool       `json:"outdoor"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

type QuickStartRequest struct {
	SessionType string `json:"session_type" validate:"required"`
}

type WeeklyStatsResponse struct {
	WeekStart    time.Time `json:"week_start"`
	SessionCount int       `json:"session_count"`
	TotalMinutes int       `json:"total_minutes"`
	AvgQuality   *float64  `json:"avg_quality,omitempty"`
}

type HighestGradeResponse struct {
	Grade      string `json:"grade"`
	Discipline string `json:"discipline"`
}
