package domain

import (
	"time"

	"github.com/google/uuid"
)

// MerchantStatus represents the state of a merchant account.
type MerchantStatus string

const (
	MerchantStatusActive    MerchantStatus = "ACTIVE"
	MerchantStatusSuspended MerchantStatus = "SUSPENDED"
)

// Merchant represents a registered merchant entitled to receive payments.
// The merchant's ID doubles as the owner of its default custody account.
type Merchant struct {
	ID           uuid.UUID      `json:"id"`
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"` // Never expose
	MerchantName string         `json:"merchant_name"`
	Status       MerchantStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// IsActive returns true if the merchant account is active.
func (m *Merchant) IsActive() bool {
	return m.Status == MerchantStatusActive
}

// MerchantConfig holds a merchant's payout preferences. Both fields are
// optional: a nil PayoutAccount falls back to the merchant's own identity,
// a nil PayoutAsset falls back to the protocol default.
type MerchantConfig struct {
	MerchantID    uuid.UUID  `json:"merchant_id"`
	PayoutAccount *uuid.UUID `json:"payout_account,omitempty"`
	PayoutAsset   *AssetID   `json:"payout_asset,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ResolvePayoutAccount returns the account the merchant is paid into.
func (c *MerchantConfig) ResolvePayoutAccount(merchant uuid.UUID) uuid.UUID {
	if c != nil && c.PayoutAccount != nil {
		return *c.PayoutAccount
	}
	return merchant
}

// ResolvePayoutAsset returns the asset the merchant is paid in.
func (c *MerchantConfig) ResolvePayoutAsset(def AssetID) AssetID {
	if c != nil && c.PayoutAsset != nil {
		return *c.PayoutAsset
	}
	return def
}
