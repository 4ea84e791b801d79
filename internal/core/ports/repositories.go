package ports

import (
	"context"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AssetRegistry defines persistence for supported payment assets.
// Mutation is admin-only; the engine consumes it read-only.
type AssetRegistry interface {
	Put(ctx context.Context, asset *domain.PaymentAsset) error
	Get(ctx context.Context, id domain.AssetID) (*domain.PaymentAsset, error)
	Remove(ctx context.Context, id domain.AssetID) error
	List(ctx context.Context) ([]domain.PaymentAsset, error)
}

// AccountRepository moves value between custody accounts. Every balance the
// engine can touch lives in one table keyed by (owner, asset): payer external
// balances, the escrow account, the treasury and merchant payout accounts.
// Methods taking pgx.Tx lock rows FOR UPDATE and must run inside the
// operation's transaction.
type AccountRepository interface {
	Balance(ctx context.Context, owner uuid.UUID, asset domain.AssetID) (int64, error)
	// Transfer debits amount from one owner and credits another, returning
	// the amount actually received by the destination (observed balance
	// delta). Fails if the source balance is insufficient.
	Transfer(ctx context.Context, tx pgx.Tx, from, to uuid.UUID, asset domain.AssetID, amount int64) (int64, error)
	// Debit removes amount from an owner without a matching credit; used when
	// value leaves custody through the asset exchange.
	Debit(ctx context.Context, tx pgx.Tx, owner uuid.UUID, asset domain.AssetID, amount int64) error
	// Credit adds amount to an owner; used when converted value arrives from
	// the asset exchange. Creates the account row if absent.
	Credit(ctx context.Context, tx pgx.Tx, owner uuid.UUID, asset domain.AssetID, amount int64) error
}

// EscrowRepository is the arena backing the escrow ledger: explicit insert on
// authorize, explicit remove on settle. A row's presence means Pending.
type EscrowRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.EscrowEntry) error
	// GetForUpdate locks the entry so a concurrent settle serializes behind
	// it. Returns nil if the identity is not pending.
	GetForUpdate(ctx context.Context, tx pgx.Tx, id domain.TransactionIdentity) (*domain.EscrowEntry, error)
	Remove(ctx context.Context, tx pgx.Tx, id domain.TransactionIdentity) error
	ListByMerchant(ctx context.Context, merchant uuid.UUID) ([]domain.EscrowEntry, error)
}

// PaywallRepository stores per-item minimum USD prices.
type PaywallRepository interface {
	SetPrice(ctx context.Context, price *domain.PaywallPrice) error
	// GetPrice returns 0 when no floor is configured.
	GetPrice(ctx context.Context, merchant uuid.UUID, itemID string) (int64, error)
}

// MerchantRepository defines persistence for merchants and their payout
// configuration.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *domain.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	GetByUsername(ctx context.Context, username string) (*domain.Merchant, error)
	SetConfig(ctx context.Context, cfg *domain.MerchantConfig) error
	// GetConfig returns nil when the merchant has never set a config; callers
	// fall back to defaults.
	GetConfig(ctx context.Context, merchant uuid.UUID) (*domain.MerchantConfig, error)
}

// NonceCounter hands out the strictly increasing, never reused nonces that
// make transaction identities replay-safe. The counter is global to the
// engine instance.
type NonceCounter interface {
	Next(ctx context.Context) (uint64, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
