package specification

import "gorm.io/gorm"

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ExcludeArchived struct{}

func (s ExcludeArchived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status <> 'archived'")
}

type ByDifficulty struct {
	DifficultyLevel string
}

func (s ByDifficulty) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("difficulty_level = ?", s.DifficultyLevel)
}
