package ports

import (
	"context"
	"time"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/google/uuid"
)

// Valuator converts between asset amounts and USD values using the registry
// and the price oracle. Deterministic, no side effects; both directions round
// down so no party is ever credited more value than was escrowed.
type Valuator interface {
	ToUSD(ctx context.Context, asset domain.AssetID, amount int64) (int64, error)
	FromUSD(ctx context.Context, asset domain.AssetID, usdValue int64) (int64, error)
}

// FeeSplitter computes the (fee, remainder) split for an amount. Pure.
type FeeSplitter interface {
	Split(asset domain.AssetID, amount int64) (fee, remainder int64, err error)
}

// PaywallGuard enforces merchant-declared per-item minimum USD prices.
type PaywallGuard interface {
	Enforce(ctx context.Context, merchant uuid.UUID, itemID string, usdValue int64) error
}

// --- Engine (Business Logic) ---

// PaymentEngine is the escrow-and-settlement core: direct payments,
// two-phase authorize/settle, and the callback variants of both.
type PaymentEngine interface {
	Send(ctx context.Context, req SendRequest) (*domain.PaymentResult, error)
	SendWithCallback(ctx context.Context, req SendWithCallbackRequest) (*domain.PaymentResult, error)
	Authorize(ctx context.Context, req AuthorizeRequest) (*domain.AuthorizationResult, error)
	AuthorizeWithCallback(ctx context.Context, req AuthorizeWithCallbackRequest) (*domain.AuthorizationResult, error)
	Settle(ctx context.Context, req SettleRequest) (*domain.SettlementResult, error)
	ListPending(ctx context.Context, merchant uuid.UUID) ([]domain.EscrowEntry, error)
}

// SendRequest holds validated input for a direct payment.
type SendRequest struct {
	Asset      domain.AssetID
	Amount     int64
	Payer      uuid.UUID
	OnBehalfOf uuid.UUID // metadata only; Payer funds the payment
	Merchant   uuid.UUID
	ItemID     string
	Memo       string
}

// CallbackSpec describes the untrusted call to perform after payment.
type CallbackSpec struct {
	Target   string
	Selector string
	Payload  []byte
}

// SendWithCallbackRequest is a direct payment followed by a callback; payment
// and callback commit or roll back as one unit. ItemID is derived from the
// callback target and selector.
type SendWithCallbackRequest struct {
	Asset      domain.AssetID
	Amount     int64
	Payer      uuid.UUID
	OnBehalfOf uuid.UUID
	Merchant   uuid.UUID
	Memo       string
	Callback   CallbackSpec
}

// AuthorizeRequest holds validated input for an authorization.
type AuthorizeRequest struct {
	Asset      domain.AssetID
	Amount     int64
	Payer      uuid.UUID
	OnBehalfOf uuid.UUID
	Merchant   uuid.UUID
	ItemID     string
	Memo       string
}

// AuthorizeWithCallbackRequest mirrors SendWithCallbackRequest for the
// authorize flow.
type AuthorizeWithCallbackRequest struct {
	Asset      domain.AssetID
	Amount     int64
	Payer      uuid.UUID
	OnBehalfOf uuid.UUID
	Merchant   uuid.UUID
	Memo       string
	Callback   CallbackSpec
}

// SettleRequest holds validated input for settling a pending authorization.
// Caller must be the merchant of the entry.
type SettleRequest struct {
	Asset             domain.AssetID
	Amount            int64 // the escrowed amount, as authorized
	Payer             uuid.UUID
	Merchant          uuid.UUID // taken from the authenticated caller
	Identity          domain.TransactionIdentity
	MaxUSDValuePayout int64 // cap on the captured value; the rest refunds to the payer
}

// --- Registry & configuration services ---

// RegistryService manages the supported-asset registry (admin only).
type RegistryService interface {
	SetPaymentAsset(ctx context.Context, asset *domain.PaymentAsset) error
	GetPaymentAsset(ctx context.Context, id domain.AssetID) (*domain.PaymentAsset, error)
	RemovePaymentAsset(ctx context.Context, id domain.AssetID) error
	ListPaymentAssets(ctx context.Context) ([]domain.PaymentAsset, error)
}

// MerchantService manages merchant-owned configuration: payout preferences
// and paywall prices. Mutation is restricted to the merchant itself.
type MerchantService interface {
	SetConfig(ctx context.Context, cfg *domain.MerchantConfig) error
	GetConfig(ctx context.Context, merchant uuid.UUID) (*domain.MerchantConfig, error)
	SetPaywallPrice(ctx context.Context, merchant uuid.UUID, itemID string, priceUSD int64) error
	GetPaywallPrice(ctx context.Context, merchant uuid.UUID, itemID string) (int64, error)
}

// --- Authentication ---

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(merchantID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	MerchantID uuid.UUID
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// AuthService defines merchant onboarding and login.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Merchant, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for merchant registration.
type RegisterRequest struct {
	Username     string
	Password     string
	MerchantName string
}
