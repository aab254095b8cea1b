package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/mindful/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the Store contract shared by every backend.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		s := newStore(t)
		v, err := s.Get(ctx, "mindful_user")
		require.ErrorIs(t, err, common.ErrorNotFound)
		assert.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "mindful_user", []byte(`{"uid":"u1"}`)))
		v, err := s.Get(ctx, "mindful_user")
		require.NoError(t, err)
		assert.Equal(t, `{"uid":"u1"}`, string(v))
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("old")))
		require.NoError(t, s.Set(ctx, "k", []byte("new")))
		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "new", string(v))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("v")))
		require.NoError(t, s.Delete(ctx, "k"))
		_, err := s.Get(ctx, "k")
		require.ErrorIs(t, err, common.ErrorNotFound)
		require.NoError(t, s.Delete(ctx, "k"))
	})

	t.Run("update sees nil for absent key", func(t *testing.T) {
		s := newStore(t)
		var seen []byte
		called := false
		require.NoError(t, s.Update(ctx, "mindful_data", func(cur []byte) ([]byte, error) {
			called = true
			seen = cur
			return []byte("[1]"), nil
		}))
		require.True(t, called)
		assert.Nil(t, seen)

		v, err := s.Get(ctx, "mindful_data")
		require.NoError(t, err)
		assert.Equal(t, "[1]", string(v))
	})

	t.Run("update modifies existing value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "mindful_data", []byte("[1]")))
		require.NoError(t, s.Update(ctx, "mindful_data", func(cur []byte) ([]byte, error) {
			return append(cur[:len(cur)-1:len(cur)-1], []byte(",2]")...), nil
		}))
		v, err := s.Get(ctx, "mindful_data")
		require.NoError(t, err)
		assert.Equal(t, "[1,2]", string(v))
	})

	t.Run("update with ErrNoChange keeps value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("keep")))
		require.NoError(t, s.Update(ctx, "k", func(cur []byte) ([]byte, error) {
			return nil, ErrNoChange
		}))
		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "keep", string(v))
	})

	t.Run("update error is returned and nothing written", func(t *testing.T) {
		s := newStore(t)
		boom := errors.New("boom")
		err := s.Update(ctx, "k", func(cur []byte) ([]byte, error) {
			return []byte("never"), boom
		})
		require.ErrorIs(t, err, boom)
		_, err = s.Get(ctx, "k")
		require.ErrorIs(t, err, common.ErrorNotFound)
	})
}
