package implementation

import (
	"context"
	"errors"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/mapper"
	"climb-coach-be/internal/model"
	"climb-coach-be/internal/repository/contract"
	"climb-coach-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExpertResponseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ExpertResponseMapper
}

func NewExpertResponseRepository(db *gorm.DB) contract.ExpertResponseRepository {
	return &ExpertResponseRepositoryImpl{
		db:     db,
		mapper: mapper.NewExpertResponseMapper(),
	}
}

func (r *ExpertResponseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExpertResponseRepositoryImpl) Upsert(ctx context.Context, response *entity.ExpertResponse) error {
	m := r.mapper.ToModel(response)

	// Last write wins on the (scenario_id, expert_id) natural key. Id and
	// created_at of the original row are preserved.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "scenario_id"}, {Name: "expert_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"predicted_quality_optimal",
			"predicted_quality_baseline",
			"prediction_confidence",
			"recommended_session_type",
			"session_type_confidence",
			"treatment_recommendations",
			"counterfactuals",
			"key_drivers",
			"interaction_effects",
			"session_structure",
			"reasoning",
			"response_duration_seconds",
			"is_complete",
			"updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*response = *r.mapper.ToEntity(m)
	return nil
}

func (r *ExpertResponseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExpertResponse, error) {
	var m model.ExpertResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ExpertResponseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExpertResponse, error) {
	var models []*model.ExpertResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ExpertResponseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ExpertResponse{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
