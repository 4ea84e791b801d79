package postgres

import (
	"context"
	"errors"
	"fmt"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaywallRepo implements ports.PaywallRepository.
type PaywallRepo struct {
	pool Pool
}

// NewPaywallRepo creates a new PaywallRepo.
func NewPaywallRepo(pool Pool) *PaywallRepo {
	return &PaywallRepo{pool: pool}
}

// SetPrice upserts the minimum USD price for a merchant's item.
func (r *PaywallRepo) SetPrice(ctx context.Context, p *domain.PaywallPrice) error {
	query := `INSERT INTO paywall_prices (merchant_id, item_id, price_usd, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (merchant_id, item_id) DO UPDATE SET
			price_usd = EXCLUDED.price_usd,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.pool.Exec(ctx, query, p.MerchantID, p.ItemID, p.PriceUSD, p.UpdatedAt); err != nil {
		return fmt.Errorf("upsert paywall price: %w", err)
	}
	return nil
}

// GetPrice returns the configured floor, or 0 when the item has none.
func (r *PaywallRepo) GetPrice(ctx context.Context, merchant uuid.UUID, itemID string) (int64, error) {
	query := `SELECT price_usd FROM paywall_prices WHERE merchant_id = $1 AND item_id = $2`

	var price int64
	err := r.pool.QueryRow(ctx, query, merchant, itemID).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get paywall price: %w", err)
	}
	return price, nil
}
