package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TypeCode  string
	Title     string
	Message   string
	Metadata  map[string]interface{}
	IsRead    bool
	CreatedAt time.Time
}
