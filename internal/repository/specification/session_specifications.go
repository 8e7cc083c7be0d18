package specification

import (
	"time"

	"gorm.io/gorm"
)

// ByDateRange filters training sessions by date, inclusive on both ends.
type ByDateRange struct {
	From time.Time
	To   time.Time
}

func (s ByDateRange) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ? AND date <= ?", s.From, s.To)
}

type ByDiscipline struct {
	Discipline string
}

func (s ByDiscipline) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("discipline = ?", s.Discipline)
}
