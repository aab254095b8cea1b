package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mindful/internal/client/models"
	"github.com/dmitrijs2005/mindful/internal/common"
	"github.com/dmitrijs2005/mindful/internal/kv"
)

type KVRepository struct {
	store kv.Store
	key   string
}

func NewKVRepository(store kv.Store, prefix string) *KVRepository {
	return &KVRepository{store: store, key: prefix + common.SessionKey}
}

func (r *KVRepository) Key() string {
	return r.key
}

func (r *KVRepository) Load(ctx context.Context) (*models.User, error) {
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w: %w", common.ErrorInternal, err)
	}

	var user *models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if user != nil && user.UID == "" {
		return nil, fmt.Errorf("failed to decode session: %w: missing uid", common.ErrorValidation)
	}
	return user, nil
}

func (r *KVRepository) Save(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("%w: nil user", common.ErrorValidation)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("failed to save session: %w: %w", common.ErrorInternal, err)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear session: %w: %w", common.ErrorInternal, err)
	}
	return nil
}
