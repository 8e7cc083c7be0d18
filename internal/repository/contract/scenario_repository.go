package contract

import (
	"context"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ScenarioRepository interface {
	Create(ctx context.Context, scenario *entity.Scenario) error
	Update(ctx context.Context, scenario *entity.Scenario) error
	// UpdateStatus changes only the status column; used for the
	// pending -> in_review transition and coach resolutions.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scenario, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scenario, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
