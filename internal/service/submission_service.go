package service

import (
	"context"
	"errors"

	"insights-console-be/internal/dto"
	"insights-console-be/internal/entity"
	"insights-console-be/internal/repository/contract"

	"github.com/google/uuid"
)

const (
	DefaultSubmissionLimit = 20
	MaxSubmissionLimit     = 100
)

var ErrSubmissionNotFound = errors.New("submission not found")

// ISubmissionService reads the ledger of wizard submissions.
type ISubmissionService interface {
	Recent(ctx context.Context, limit int) ([]*dto.SubmissionResponse, error)
	Get(ctx context.Context, id string) (*dto.SubmissionResponse, error)
	ForWizard(ctx context.Context, wizardID string) ([]*dto.SubmissionResponse, error)
}

type submissionService struct {
	repo contract.SubmissionRepository
}

func NewSubmissionService(repo contract.SubmissionRepository) ISubmissionService {
	return &submissionService{repo: repo}
}

// Recent clamps limit to [1, MaxSubmissionLimit]; zero or less means the default.
func (s *submissionService) Recent(ctx context.Context, limit int) ([]*dto.SubmissionResponse, error) {
	switch {
	case limit <= 0:
		limit = DefaultSubmissionLimit
	case limit > MaxSubmissionLimit:
		limit = MaxSubmissionLimit
	}

	subs, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toSubmissionResponses(subs), nil
}

func (s *submissionService) Get(ctx context.Context, id string) (*dto.SubmissionResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrSubmissionNotFound
	}

	sub, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}
	return toSubmissionResponse(sub), nil
}

// ForWizard lists a wizard's attempts newest first. An unknown wizard has none.
func (s *submissionService) ForWizard(ctx context.Context, wizardID string) ([]*dto.SubmissionResponse, error) {
	subs, err := s.repo.FindByWizard(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	return toSubmissionResponses(subs), nil
}

func toSubmissionResponses(subs []*entity.Submission) []*dto.SubmissionResponse {
	out := make([]*dto.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, toSubmissionResponse(sub))
	}
	return out
}

func toSubmissionResponse(sub *entity.Submission) *dto.SubmissionResponse {
	return &dto.SubmissionResponse{
		Id:        sub.Id.String(),
		WizardId:  sub.WizardId,
		Selection: sub.Selection,
		Config:    sub.Config,
		FilePaths: sub.FilePaths,
		Status:    string(sub.Status),
		SessionId: sub.SessionId,
		Error:     sub.Error,
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	}
}
