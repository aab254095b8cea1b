package checkins

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mindful/internal/client/models"
	"github.com/dmitrijs2005/mindful/internal/common"
	"github.com/dmitrijs2005/mindful/internal/kv"
)

// ErrCorrupt means the stored array could not be decoded.
var ErrCorrupt = errors.New("check-in data is corrupt")

type KVRepository struct {
	store kv.Store
	key   string
}

func NewKVRepository(store kv.Store, prefix string) *KVRepository {
	return &KVRepository{store: store, key: prefix + common.DataKey}
}

func (r *KVRepository) Key() string {
	return r.key
}

func (r *KVRepository) All(ctx context.Context) ([]models.CheckIn, error) {
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins: %w: %w", common.ErrorInternal, err)
	}
	return decode(data)
}

func (r *KVRepository) Append(ctx context.Context, c models.CheckIn) error {
	err := r.store.Update(ctx, r.key, func(current []byte) ([]byte, error) {
		list, err := decode(current)
		if err != nil {
			return nil, err
		}
		return json.Marshal(append(list, c))
	})
	if err != nil {
		return fmt.Errorf("failed to append check-in: %w", err)
	}
	return nil
}

func (r *KVRepository) SeedIfEmpty(ctx context.Context, scope SeedScope, userID string, samples []models.CheckIn) (bool, error) {
	if len(samples) == 0 {
		return false, nil
	}

	seeded := false
	err := r.store.Update(ctx, r.key, func(current []byte) ([]byte, error) {
		seeded = false
		list, err := decode(current)
		if err != nil {
			return nil, err
		}
		if !isEmpty(list, scope, userID) {
			return nil, kv.ErrNoChange
		}
		seeded = true
		return json.Marshal(append(list, samples...))
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed check-ins: %w", err)
	}
	return seeded, nil
}

func isEmpty(list []models.CheckIn, scope SeedScope, userID string) bool {
	if scope != ScopeUser {
		return len(list) == 0
	}
	for _, c := range list {
		if c.UserID == userID {
			return false
		}
	}
	return true
}

// decode treats an absent value as an empty array.
func decode(data []byte) ([]models.CheckIn, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var list []models.CheckIn
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return list, nil
}
