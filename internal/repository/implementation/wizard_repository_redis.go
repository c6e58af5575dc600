package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"insights-console-be/internal/repository/contract"
	"insights-console-be/pkg/wizard"

	"github.com/redis/go-redis/v9"
)

const wizardKeyPrefix = "wizard:"

type WizardRepositoryRedis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewWizardRepositoryRedis(rdb *redis.Client, ttl time.Duration) contract.WizardRepository {
	return &WizardRepositoryRedis{rdb: rdb, ttl: ttl}
}

func (r *WizardRepositoryRedis) Save(ctx context.Context, w *wizard.Wizard) error {
	payload, err := json.Marshal(w.Snapshot())
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, wizardKeyPrefix+w.ID(), payload, r.ttl).Err()
}

func (r *WizardRepositoryRedis) Find(ctx context.Context, id string) (*wizard.Wizard, error) {
	payload, err := r.rdb.Get(ctx, wizardKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap wizard.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	return wizard.FromSnapshot(snap)
}

func (r *WizardRepositoryRedis) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, wizardKeyPrefix+id).Err()
}
