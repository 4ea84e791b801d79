// Package dto defines the HTTP request shapes and their validation rules.
// Engine results (PaymentResult, AuthorizationResult, SettlementResult) are
// wire-shaped domain types and are returned as-is; only requests and the
// small auth/config responses need dedicated DTOs.
package dto

import "encoding/json"

// --- Auth ---

// RegisterRequest for POST /api/v1/auth/register.
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password     string `json:"password" binding:"required,min=8,max=128"`
	MerchantName string `json:"merchant_name" binding:"required,min=1,max=100"`
}

// RegisterResponse returns the newly created merchant identity.
type RegisterResponse struct {
	MerchantID   string `json:"merchant_id"`
	Username     string `json:"username"`
	MerchantName string `json:"merchant_name"`
}

// LoginRequest for POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns a JWT token.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// --- Payer API ---

// SendRequest for POST /api/v1/payments/send.
type SendRequest struct {
	Asset      string `json:"asset" binding:"required,safe_id"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	Payer      string `json:"payer" binding:"required,uuid"`
	OnBehalfOf string `json:"on_behalf_of" binding:"omitempty,uuid"`
	Merchant   string `json:"merchant" binding:"required,uuid"`
	ItemID     string `json:"item_id" binding:"omitempty,max=128"`
	Memo       string `json:"memo" binding:"omitempty,max=256"`
}

// CallbackSpec describes the call performed after the payment commits its
// funds movement. Payload is forwarded verbatim to the target.
type CallbackSpec struct {
	Target   string          `json:"target" binding:"required,safe_url"`
	Selector string          `json:"selector" binding:"required,max=128"`
	Payload  json.RawMessage `json:"payload"`
}

// SendWithCallbackRequest for POST /api/v1/payments/send-with-callback.
// No item_id: it is derived from the callback target and selector.
type SendWithCallbackRequest struct {
	Asset      string       `json:"asset" binding:"required,safe_id"`
	Amount     int64        `json:"amount" binding:"required,gt=0"`
	Payer      string       `json:"payer" binding:"required,uuid"`
	OnBehalfOf string       `json:"on_behalf_of" binding:"omitempty,uuid"`
	Merchant   string       `json:"merchant" binding:"required,uuid"`
	Memo       string       `json:"memo" binding:"omitempty,max=256"`
	Callback   CallbackSpec `json:"callback" binding:"required"`
}

// AuthorizeRequest for POST /api/v1/payments/authorize.
type AuthorizeRequest struct {
	Asset      string `json:"asset" binding:"required,safe_id"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	Payer      string `json:"payer" binding:"required,uuid"`
	OnBehalfOf string `json:"on_behalf_of" binding:"omitempty,uuid"`
	Merchant   string `json:"merchant" binding:"required,uuid"`
	ItemID     string `json:"item_id" binding:"omitempty,max=128"`
	Memo       string `json:"memo" binding:"omitempty,max=256"`
}

// AuthorizeWithCallbackRequest for POST /api/v1/payments/authorize-with-callback.
type AuthorizeWithCallbackRequest struct {
	Asset      string       `json:"asset" binding:"required,safe_id"`
	Amount     int64        `json:"amount" binding:"required,gt=0"`
	Payer      string       `json:"payer" binding:"required,uuid"`
	OnBehalfOf string       `json:"on_behalf_of" binding:"omitempty,uuid"`
	Merchant   string       `json:"merchant" binding:"required,uuid"`
	Memo       string       `json:"memo" binding:"omitempty,max=256"`
	Callback   CallbackSpec `json:"callback" binding:"required"`
}

// --- Merchant API ---

// SettleRequest for POST /api/v1/settlements. The caller restates the
// authorized transaction; the engine recomputes the identity and rejects any
// mismatch, so a tampered field can never settle someone else's escrow.
type SettleRequest struct {
	Asset             string `json:"asset" binding:"required,safe_id"`
	Amount            int64  `json:"amount" binding:"required,gt=0"`
	Payer             string `json:"payer" binding:"required,uuid"`
	Identity          string `json:"identity" binding:"required,len=64,hexadecimal"`
	MaxUSDValuePayout int64  `json:"max_usd_value_payout" binding:"required,gt=0"`
}

// PaywallPriceRequest for PUT /api/v1/paywall/:item_id.
type PaywallPriceRequest struct {
	PriceUSD int64 `json:"price_usd" binding:"gte=0"`
}

// PaywallPriceResponse echoes the stored floor.
type PaywallPriceResponse struct {
	MerchantID string `json:"merchant_id"`
	ItemID     string `json:"item_id"`
	PriceUSD   int64  `json:"price_usd"`
}

// MerchantConfigRequest for PUT /api/v1/merchants/me/config. Omitted fields
// clear the corresponding preference back to its default.
type MerchantConfigRequest struct {
	PayoutAccount *string `json:"payout_account" binding:"omitempty,uuid"`
	PayoutAsset   *string `json:"payout_asset" binding:"omitempty,safe_id"`
}

// --- Admin API ---

// AssetRequest for PUT /api/v1/assets/:asset.
type AssetRequest struct {
	OracleRef             string `json:"oracle_ref" binding:"required,safe_id"`
	Decimals              int32  `json:"decimals" binding:"gte=0,lte=30"`
	StaleThresholdSeconds int64  `json:"stale_threshold_seconds" binding:"required,gt=0"`
}
