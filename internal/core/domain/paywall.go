package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaywallPrice is a merchant-declared minimum USD value for an item.
// Items without a price default to 0 (no floor).
type PaywallPrice struct {
	MerchantID uuid.UUID `json:"merchant_id"`
	ItemID     string    `json:"item_id"`
	PriceUSD   int64     `json:"price_usd"` // scaled by the engine's USD decimals
	UpdatedAt  time.Time `json:"updated_at"`
}
