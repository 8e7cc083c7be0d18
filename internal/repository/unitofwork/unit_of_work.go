package unitofwork

import (
	"context"

	"climb-coach-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ScenarioRepository() contract.ScenarioRepository
	ExpertResponseRepository() contract.ExpertResponseRepository
	ScenarioEmbeddingRepository() contract.ScenarioEmbeddingRepository
	TrainingSessionRepository() contract.TrainingSessionRepository
	NotificationRepository() contract.NotificationRepository
}
