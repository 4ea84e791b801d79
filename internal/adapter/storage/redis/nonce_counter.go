package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const nonceKey = "escrow:nonce"

// NonceCounter implements ports.NonceCounter using Redis INCR. The counter
// survives engine restarts and is shared by all instances pointing at the
// same Redis, so nonces never repeat. Gaps are fine; reuse is not.
type NonceCounter struct {
	client *goredis.Client
}

// NewNonceCounter creates a new Redis-backed nonce counter.
func NewNonceCounter(client *goredis.Client) *NonceCounter {
	return &NonceCounter{client: client}
}

// Next returns the next nonce. INCR is atomic, so concurrent callers always
// observe distinct, strictly increasing values.
func (c *NonceCounter) Next(ctx context.Context) (uint64, error) {
	n, err := c.client.Incr(ctx, nonceKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis nonce incr: %w", err)
	}
	return uint64(n), nil
}
