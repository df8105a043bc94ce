package storage

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisKV(t *testing.T, prefix string) (*RedisKV, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	kv := NewRedisKV(client, prefix)
	t.Cleanup(func() { _ = kv.Close() })
	return kv, mr
}

func TestMemoryKV_GetSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := NewMemoryKV()

	_, err := kv.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	value := []byte("hello")
	require.NoError(t, kv.Set(ctx, "k", value))
	value[0] = 'j'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got), "stored value must be copied")
}

func TestRedisKV_GetSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv, mr := newRedisKV(t, "kboard:")

	_, err := kv.Get(ctx, StorageKey)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, kv.Set(ctx, StorageKey, []byte(`{"version":1}`)))

	raw, err := mr.Get("kboard:" + StorageKey)
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, raw)

	got, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(got))
}

func TestDialRedis(t *testing.T) {
	t.Parallel()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	kv, err := DialRedis(context.Background(), mr.Addr(), 0, "")
	require.NoError(t, err)
	require.NoError(t, kv.Close())
}

func TestStore_LoadMissingAndRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv, _ := newRedisKV(t, "")
	store := NewStore(kv)

	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	in := sampleState()
	require.NoError(t, store.Save(ctx, in))

	out, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestStore_LoadCorrupt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, StorageKey, []byte("{")))

	_, _, err := NewStore(kv).Load(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)
}
