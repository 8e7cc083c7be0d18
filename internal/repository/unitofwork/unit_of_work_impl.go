package unitofwork

import (
	"context"
	"fmt"

	"climb-coach-be/internal/repository/contract"
	"climb-coach-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ScenarioRepository() contract.ScenarioRepository {
	return implementation.NewScenarioRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ExpertResponseRepository() contract.ExpertResponseRepository {
	return implementation.NewExpertResponseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ScenarioEmbeddingRepository() contract.ScenarioEmbeddingRepository {
	return implementation.NewScenarioEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TrainingSessionRepository() contract.TrainingSessionRepository {
	return implementation.NewTrainingSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NotificationRepository() contract.NotificationRepository {
	return implementation.NewNotificationRepository(u.getDB())
}
