package contract

import (
	"context"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TrainingSessionRepository interface {
	Create(ctx context.Context, session *entity.TrainingSession) error
	Update(ctx context.Context, session *entity.TrainingSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
