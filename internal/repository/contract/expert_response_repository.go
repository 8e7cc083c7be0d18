package contract

import (
	"context"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/repository/specification"
)

type ExpertResponseRepository interface {
	// Upsert writes the response keyed by (scenario_id, expert_id): the
	// second save for a pair overwrites the first, it never duplicates.
	Upsert(ctx context.Context, response *entity.ExpertResponse) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExpertResponse, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExpertResponse, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
