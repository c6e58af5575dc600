package memory

import (
	"context"
	"time"

	"insights-console-be/pkg/wizard"

	"github.com/patrickmn/go-cache"
)

// WizardRepository keeps snapshots rather than live pointers so callers
// never share mutable state through the cache.
type WizardRepository struct {
	cache *cache.Cache
}

func NewWizardRepository(ttl time.Duration) *WizardRepository {
	return &WizardRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *WizardRepository) Save(_ context.Context, w *wizard.Wizard) error {
	r.cache.Set(w.ID(), w.Snapshot(), cache.DefaultExpiration)
	return nil
}

func (r *WizardRepository) Find(_ context.Context, id string) (*wizard.Wizard, error) {
	x, found := r.cache.Get(id)
	if !found {
		return nil, nil
	}
	return wizard.FromSnapshot(x.(wizard.Snapshot))
}

func (r *WizardRepository) Delete(_ context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}
