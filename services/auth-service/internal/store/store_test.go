package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/store"
)

func newTestStore(t *testing.T) (store.EphemeralStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return store.NewRedisStore(client), mr
}

func TestSetGetRoundTrip(t *testing.T) {
	kv, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), time.Minute))

	data, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)
}

func TestGetMissingKey(t *testing.T) {
	kv, _ := newTestStore(t)

	_, err := kv.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestGetExpiredKey(t *testing.T) {
	kv, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), time.Minute))
	mr.FastForward(time.Minute + time.Second)

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestSetOverwritesValueAndTTL(t *testing.T) {
	kv, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("old"), time.Second))
	require.NoError(t, kv.Set(ctx, "k", []byte("new"), time.Hour))

	data, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)

	ttl, err := kv.TTL(ctx, "k")
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Minute)
}

func TestGetDelRemovesKey(t *testing.T) {
	kv, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), time.Minute))

	data, err := kv.GetDel(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)

	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestGetDelSingleWinner(t *testing.T) {
	kv, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v"), time.Minute))

	const callers = 16

	var wg sync.WaitGroup
	wins := make(chan struct{}, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := kv.GetDel(ctx, "k"); err == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1)
}
