package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/mindful/internal/common"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := OpenRedis(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) Store {
		s, _ := newRedisStore(t)
		return s
	})
}

func TestRedisStore_StoresPlainStrings(t *testing.T) {
	s, mr := newRedisStore(t)

	require.NoError(t, s.Set(context.Background(), "mindful_user", []byte(`{"uid":"u1"}`)))

	got, err := mr.Get("mindful_user")
	require.NoError(t, err)
	assert.Equal(t, `{"uid":"u1"}`, got)
}

func TestRedisStore_Update_RetriesOnConcurrentWrite(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("mindful_data", "[1]"))

	attempts := 0
	err := s.Update(ctx, "mindful_data", func(cur []byte) ([]byte, error) {
		attempts++
		if attempts == 1 {
			// a second writer sneaks in between WATCH and EXEC
			other := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			defer other.Close()
			require.NoError(t, other.Set(ctx, "mindful_data", "[1,9]", 0).Err())
		}
		return append(cur[:len(cur)-1:len(cur)-1], []byte(",2]")...), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	got, err := mr.Get("mindful_data")
	require.NoError(t, err)
	assert.Equal(t, "[1,9,2]", got)
}

func TestOpenRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := OpenRedis(context.Background(), addr, "", 0)
	require.Error(t, err)
}

func TestRedisStore_GetMissing(t *testing.T) {
	s, _ := newRedisStore(t)
	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
