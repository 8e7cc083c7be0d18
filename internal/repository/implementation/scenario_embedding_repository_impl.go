package implementation

import (
	"context"
	"errors"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/mapper"
	"climb-coach-be/internal/model"
	"climb-coach-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScenarioEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScenarioEmbeddingMapper
}

func NewScenarioEmbeddingRepository(db *gorm.DB) contract.ScenarioEmbeddingRepository {
	return &ScenarioEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewScenarioEmbeddingMapper(),
	}
}

func (r *ScenarioEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.ScenarioEmbedding) error {
	m := r.mapper.ToModel(embedding)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scenario_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "embedding_value"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScenarioEmbeddingRepositoryImpl) DeleteByScenarioId(ctx context.Context, scenarioId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("scenario_id = ?", scenarioId).
		Delete(&model.ScenarioEmbedding{}).Error
}

func (r *ScenarioEmbeddingRepositoryImpl) FindByScenarioId(ctx context.Context, scenarioId uuid.UUID) (*entity.ScenarioEmbedding, error) {
	var m model.ScenarioEmbedding
	err := r.db.WithContext(ctx).
		Where("scenario_id = ?", scenarioId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ScenarioEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, excludeScenarioId uuid.UUID) ([]*entity.ScenarioEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}
	var models []*model.ScenarioEmbedding

	// pgvector cosine distance, joined against scenarios to skip
	// soft-deleted ones.
	err := r.db.WithContext(ctx).
		Joins("JOIN scenarios ON scenarios.id = scenario_embeddings.scenario_id").
		Where("scenarios.deleted_at IS NULL").
		Where("scenario_embeddings.scenario_id <> ?", excludeScenarioId).
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.ScenarioEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
