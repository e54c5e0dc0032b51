package redis

import (
	"context"
	"testing"
	"time"

	"nft-lifecycle-engine/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	key := domain.BurnSelectionKey("0xabc", []string{"onchain_1", "onchain_2", "onchain_3"})
	value := []byte(`{"burn_tx_id":"abc","burn_type":"onchain"}`)

	// Get before set => nil
	result, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)

	err = cache.Set(ctx, key, value, 24*time.Hour)
	require.NoError(t, err)

	result, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, result)
}

func TestIdempotencyCache_SelectionOrderIrrelevant(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	err := cache.Set(ctx, domain.BurnSelectionKey("0xabc", []string{"b", "a", "c"}), []byte("result"), time.Hour)
	require.NoError(t, err)

	result, err := cache.Get(ctx, domain.BurnSelectionKey("0xABC", []string{"c", "b", "a"}))
	require.NoError(t, err)
	assert.Equal(t, []byte("result"), result)
}

func TestIdempotencyCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	err := cache.Set(ctx, "key", []byte("v"), 1*time.Second)
	require.NoError(t, err)

	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}
