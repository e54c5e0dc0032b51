package redis

import (
	"context"
	"fmt"
	"time"

	"nft-lifecycle-engine/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ApprovalCache implements ports.ApprovalCache using Redis. The
// blanket-approval flag is cache-only: a cold cache is re-derived
// from chain, never guessed.
type ApprovalCache struct {
	client *goredis.Client
	prefix string
}

// NewApprovalCache creates a new Redis-backed approval cache.
func NewApprovalCache(client *goredis.Client) *ApprovalCache {
	return &ApprovalCache{
		client: client,
		prefix: "approval:",
	}
}

// Get returns (approved, found, error). A missing key is a miss, not false.
func (c *ApprovalCache) Get(ctx context.Context, wallet string) (bool, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+domain.NormalizeWallet(wallet)).Result()
	if err != nil {
		if err == goredis.Nil {
			return false, false, nil
		}
		return false, false, fmt.Errorf("redis approval get: %w", err)
	}
	return val == "1", true, nil
}

// Set stores the approval flag with TTL.
func (c *ApprovalCache) Set(ctx context.Context, wallet string, approved bool, ttl time.Duration) error {
	val := "0"
	if approved {
		val = "1"
	}
	err := c.client.Set(ctx, c.prefix+domain.NormalizeWallet(wallet), val, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis approval set: %w", err)
	}
	return nil
}
