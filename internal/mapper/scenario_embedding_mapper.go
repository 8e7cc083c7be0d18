package mapper

import (
	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ScenarioEmbeddingMapper struct{}

func NewScenarioEmbeddingMapper() *ScenarioEmbeddingMapper {
	return &ScenarioEmbeddingMapper{}
}

func (m *ScenarioEmbeddingMapper) ToEntity(e *model.ScenarioEmbedding) *entity.ScenarioEmbedding {
	if e == nil {
		return nil
	}
	return &entity.ScenarioEmbedding{
		Id:             e.Id,
		ScenarioId:     e.ScenarioId,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ScenarioEmbeddingMapper) ToModel(e *entity.ScenarioEmbedding) *model.ScenarioEmbedding {
	if e == nil {
		return nil
	}
	return &model.ScenarioEmbedding{
		Id:             e.Id,
		ScenarioId:     e.ScenarioId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
	}
}
