package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"insights-console-be/internal/entity"

	"github.com/google/uuid"
)

// SubmissionRepository is the ledger used when no database is configured.
type SubmissionRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]entity.Submission
}

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{items: make(map[uuid.UUID]entity.Submission)}
}

func (r *SubmissionRepository) Create(_ context.Context, s *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Id == uuid.Nil {
		s.Id = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.items[s.Id] = *s
	return nil
}

func (r *SubmissionRepository) Update(_ context.Context, s *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	s.UpdatedAt = &now
	r.items[s.Id] = *s
	return nil
}

func (r *SubmissionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SubmissionRepository) FindByWizard(_ context.Context, wizardID string) ([]*entity.Submission, error) {
	return r.collect(func(s entity.Submission) bool { return s.WizardId == wizardID }, 0), nil
}

func (r *SubmissionRepository) FindRecent(_ context.Context, limit int) ([]*entity.Submission, error) {
	return r.collect(func(entity.Submission) bool { return true }, limit), nil
}

// collect returns matches newest first.
func (r *SubmissionRepository) collect(keep func(entity.Submission) bool, limit int) []*entity.Submission {
	r.mu.RLock()
	out := make([]*entity.Submission, 0, len(r.items))
	for _, s := range r.items {
		if keep(s) {
			s := s
			out = append(out, &s)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
