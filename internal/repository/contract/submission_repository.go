package contract

import (
	"context"

	"insights-console-be/internal/entity"

	"github.com/google/uuid"
)

type SubmissionRepository interface {
	Create(ctx context.Context, s *entity.Submission) error
	Update(ctx context.Context, s *entity.Submission) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error)
	FindByWizard(ctx context.Context, wizardID string) ([]*entity.Submission, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.Submission, error)
}
