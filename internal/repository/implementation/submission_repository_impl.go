package implementation

import (
	"context"
	"errors"

	"insights-console-be/internal/entity"
	"insights-console-be/internal/mapper"
	"insights-console-be/internal/model"
	"insights-console-be/internal/repository/contract"
	"insights-console-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubmissionMapper
}

func NewSubmissionRepository(db *gorm.DB) contract.SubmissionRepository {
	return &SubmissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubmissionMapper(),
	}
}

func (r *SubmissionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubmissionRepositoryImpl) Create(ctx context.Context, s *entity.Submission) error {
	m := r.mapper.ToModel(s)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*s = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubmissionRepositoryImpl) Update(ctx context.Context, s *entity.Submission) error {
	m := r.mapper.ToModel(s)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*s = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubmissionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error) {
	var m model.Submission
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubmissionRepositoryImpl) FindByWizard(ctx context.Context, wizardID string) ([]*entity.Submission, error) {
	return r.findAll(ctx,
		specification.ByWizardID{WizardID: wizardID},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (r *SubmissionRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.Submission, error) {
	return r.findAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)
}

func (r *SubmissionRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Submission, error) {
	var models []*model.Submission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
