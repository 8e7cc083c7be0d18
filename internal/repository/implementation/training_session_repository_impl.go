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

type TrainingSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TrainingSessionMapper
}

func NewTrainingSessionRepository(db *gorm.DB) contract.TrainingSessionRepository {
	return &TrainingSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTrainingSessionMapper(),
	}
}

func (r *TrainingSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TrainingSessionRepositoryImpl) Create(ctx context.Context, session *entity.TrainingSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *TrainingSessionRepositoryImpl) Update(ctx context.Context, session *entity.TrainingSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *TrainingSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TrainingSession{}, id).Error
}

func (r *TrainingSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingSession, error) {
	var m model.TrainingSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TrainingSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingSession, error) {
	var models []*model.TrainingSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TrainingSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TrainingSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
