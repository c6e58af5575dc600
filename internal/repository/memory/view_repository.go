package memory

import (
	"time"

	"insights-console-be/internal/view"

	"github.com/patrickmn/go-cache"
)

// ViewRepository keeps dashboard view state per session id. Views idle for
// longer than the TTL are dropped and rebuilt on the next mount.
type ViewRepository struct {
	cache *cache.Cache
}

func NewViewRepository(ttl time.Duration) *ViewRepository {
	return &ViewRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *ViewRepository) Chat(sessionID string) *view.Chat {
	key := "chat:" + sessionID
	if x, found := r.cache.Get(key); found {
		r.cache.SetDefault(key, x)
		return x.(*view.Chat)
	}
	c := view.NewChat()
	// Add fails if another request created the view first.
	if err := r.cache.Add(key, c, cache.DefaultExpiration); err != nil {
		if x, found := r.cache.Get(key); found {
			return x.(*view.Chat)
		}
		r.cache.SetDefault(key, c)
	}
	return c
}

func (r *ViewRepository) Insights(sessionID string) *view.Insights {
	key := "insights:" + sessionID
	if x, found := r.cache.Get(key); found {
		r.cache.SetDefault(key, x)
		return x.(*view.Insights)
	}
	v := view.NewInsights()
	if err := r.cache.Add(key, v, cache.DefaultExpiration); err != nil {
		if x, found := r.cache.Get(key); found {
			return x.(*view.Insights)
		}
		r.cache.SetDefault(key, v)
	}
	return v
}

func (r *ViewRepository) Forget(sessionID string) {
	r.cache.Delete("chat:" + sessionID)
	r.cache.Delete("insights:" + sessionID)
}
