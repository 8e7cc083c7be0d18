package contract

import (
	"context"

	"climb-coach-be/internal/entity"

	"github.com/google/uuid"
)

type ScenarioEmbeddingRepository interface {
	// Upsert replaces the embedding for a scenario (one vector per scenario).
	Upsert(ctx context.Context, embedding *entity.ScenarioEmbedding) error
	DeleteByScenarioId(ctx context.Context, scenarioId uuid.UUID) error
	FindByScenarioId(ctx context.Context, scenarioId uuid.UUID) (*entity.ScenarioEmbedding, error)
	// SearchSimilar returns the nearest scenarios by cosine distance,
	// excluding the given scenario itself.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, excludeScenarioId uuid.UUID) ([]*entity.ScenarioEmbedding, error)
}
