package mapper

import (
	"encoding/json"
	"time"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/model"

	"gorm.io/datatypes"
)

type ExpertResponseMapper struct{}

func NewExpertResponseMapper() *ExpertResponseMapper {
	return &ExpertResponseMapper{}
}

func (m *ExpertResponseMapper) ToEntity(r *model.ExpertResponse) *entity.ExpertResponse {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	e := &entity.ExpertResponse{
		Id:                       r.Id,
		ScenarioId:               r.ScenarioId,
		ExpertId:                 r.ExpertId,
		PredictedQualityOptimal:  r.PredictedQualityOptimal,
		PredictedQualityBaseline: r.PredictedQualityBaseline,
		PredictionConfidence:     r.PredictionConfidence,
		RecommendedSessionType:   r.RecommendedSessionType,
		SessionTypeConfidence:    r.SessionTypeConfidence,
		TreatmentRecommendations: map[string]entity.TreatmentRecommendation{},
		Reasoning:                r.Reasoning,
		ResponseDurationSeconds:  r.ResponseDurationSeconds,
		IsComplete:               r.IsComplete,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                updatedAt,
	}

	if len(r.TreatmentRecommendations) > 0 {
		_ = json.Unmarshal(r.TreatmentRecommendations, &e.TreatmentRecommendations)
	}
	if len(r.Counterfactuals) > 0 {
		_ = json.Unmarshal(r.Counterfactuals, &e.Counterfactuals)
	}
	if len(r.KeyDrivers) > 0 {
		_ = json.Unmarshal(r.KeyDrivers, &e.KeyDrivers)
	}
	if len(r.InteractionEffects) > 0 {
		_ = json.Unmarshal(r.InteractionEffects, &e.InteractionEffects)
	}
	if len(r.SessionStructure) > 0 {
		var s entity.SessionStructure
		if err := json.Unmarshal(r.SessionStructure, &s); err == nil {
			e.SessionStructure = &s
		}
	}

	return e
}

func (m *ExpertResponseMapper) ToModel(e *entity.ExpertResponse) *model.ExpertResponse {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	treatments, _ := json.Marshal(e.TreatmentRecommendations)
	counterfactuals, _ := json.Marshal(e.Counterfactuals)
	keyDrivers, _ := json.Marshal(e.KeyDrivers)
	interactions, _ := json.Marshal(e.InteractionEffects)

	r := &model.ExpertResponse{
		Id:                       e.Id,
		ScenarioId:               e.ScenarioId,
		ExpertId:                 e.ExpertId,
		PredictedQualityOptimal:  e.PredictedQualityOptimal,
		PredictedQualityBaseline: e.PredictedQualityBaseline,
		PredictionConfidence:     e.PredictionConfidence,
		RecommendedSessionType:   e.RecommendedSessionType,
		SessionTypeConfidence:    e.SessionTypeConfidence,
		TreatmentRecommendations: datatypes.JSON(treatments),
		Counterfactuals:          datatypes.JSON(counterfactuals),
		KeyDrivers:               datatypes.JSON(keyDrivers),
		InteractionEffects:       datatypes.JSON(interactions),
		Reasoning:                e.Reasoning,
		ResponseDurationSeconds:  e.ResponseDurationSeconds,
		IsComplete:               e.IsComplete,
		CreatedAt:                e.CreatedAt,
		UpdatedAt:                updatedAt,
	}

	if e.SessionStructure != nil {
		structure, _ := json.Marshal(e.SessionStructure)
		r.SessionStructure = datatypes.JSON(structure)
	}

	return r
}

func (m *ExpertResponseMapper) ToEntities(responses []*model.ExpertResponse) []*entity.ExpertResponse {
	entities := make([]*entity.ExpertResponse, len(responses))
	for i, r := range responses {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
