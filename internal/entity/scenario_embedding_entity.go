package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScenarioEmbedding stores the vector for a scenario description, used by
// the similar-scenario lookup on the review panel.
type ScenarioEmbedding struct {
	Id             uuid.UUID
	ScenarioId     uuid.UUID
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
}
