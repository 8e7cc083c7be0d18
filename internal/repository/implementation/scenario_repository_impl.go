package implementation

import (
	"context"
	"errors"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/mapper"
	"climb-coach-be/internal/model"
	"climb-coach-be/internal/repository/contract"
	"climb-coach-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScenarioRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScenarioMapper
}

func NewScenarioRepository(db *gorm.DB) contract.ScenarioRepository {
	return &ScenarioRepositoryImpl{
		db:     db,
		mapper: mapper.NewScenarioMapper(),
	}
}

func (r *ScenarioRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ScenarioRepositoryImpl) Create(ctx context.Context, scenario *entity.Scenario) error {
	m := r.mapper.ToModel(scenario)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*scenario = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScenarioRepositoryImpl) Update(ctx context.Context, scenario *entity.Scenario) error {
	m := r.mapper.ToModel(scenario)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*scenario = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScenarioRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Scenario{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ScenarioRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Scenario{}, id).Error
}

func (r *ScenarioRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scenario, error) {
	var m model.Scenario
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ScenarioRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scenario, error) {
	var models []*model.Scenario
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ScenarioRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Scenario{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
