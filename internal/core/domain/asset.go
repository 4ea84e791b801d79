package domain

import "time"

// AssetID identifies a payment asset (e.g. "ETH", "USDC").
type AssetID string

// PaymentAsset is a registry entry for a supported asset. An asset absent
// from the registry is unsupported and must be rejected by every engine
// entry point.
type PaymentAsset struct {
	ID             AssetID       `json:"id"`
	OracleRef      string        `json:"oracle_ref"` // key under which the price feed publishes quotes
	Decimals       int32         `json:"decimals"`
	StaleThreshold time.Duration `json:"stale_threshold"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
