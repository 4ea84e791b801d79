package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"escrow-settlement-engine/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// PriceCache implements ports.PriceOracle over quotes published into Redis
// hashes by an external feeder. One hash per feed reference holds the scaled
// price, its decimals and the publish timestamp; staleness is judged by the
// valuation service, not here.
type PriceCache struct {
	client *goredis.Client
	prefix string
}

// NewPriceCache creates a Redis-backed price oracle.
func NewPriceCache(client *goredis.Client) *PriceCache {
	return &PriceCache{
		client: client,
		prefix: "price:",
	}
}

// Quote returns the latest published quote for a feed reference. Returns
// ports.ErrNoQuote when the feed has never been published.
func (c *PriceCache) Quote(ctx context.Context, ref string) (*ports.PriceQuote, error) {
	fields, err := c.client.HGetAll(ctx, c.prefix+ref).Result()
	if err != nil {
		return nil, fmt.Errorf("redis price lookup: %w", err)
	}
	if len(fields) == 0 {
		return nil, ports.ErrNoQuote
	}

	price, err := strconv.ParseInt(fields["price"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse price for feed %q: %w", ref, err)
	}
	decimals, err := strconv.ParseInt(fields["decimals"], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("parse decimals for feed %q: %w", ref, err)
	}
	updatedAt, err := strconv.ParseInt(fields["updated_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at for feed %q: %w", ref, err)
	}

	return &ports.PriceQuote{
		Price:     price,
		Decimals:  int32(decimals),
		UpdatedAt: time.Unix(updatedAt, 0).UTC(),
	}, nil
}

// Publish writes a quote for a feed reference. Used by the admin surface and
// tests; production deployments usually run a separate feeder process.
func (c *PriceCache) Publish(ctx context.Context, ref string, quote *ports.PriceQuote) error {
	err := c.client.HSet(ctx, c.prefix+ref,
		"price", strconv.FormatInt(quote.Price, 10),
		"decimals", strconv.FormatInt(int64(quote.Decimals), 10),
		"updated_at", strconv.FormatInt(quote.UpdatedAt.Unix(), 10),
	).Err()
	if err != nil {
		return fmt.Errorf("redis price publish: %w", err)
	}
	return nil
}
