package postgres

import (
	"context"
	"errors"
	"fmt"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EscrowRepo implements ports.EscrowRepository. The table is the escrow
// ledger itself: a row exists exactly while an authorization is pending.
type EscrowRepo struct {
	pool Pool
}

// NewEscrowRepo creates a new EscrowRepo.
func NewEscrowRepo(pool Pool) *EscrowRepo {
	return &EscrowRepo{pool: pool}
}

// Create inserts a pending escrow entry. The identity is the primary key, so
// a replayed authorization fails on the unique constraint.
func (r *EscrowRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.EscrowEntry) error {
	query := `INSERT INTO escrow_entries (identity, asset, amount, payer, merchant, nonce, item_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		e.Identity[:], e.Asset, e.Amount, e.Payer, e.Merchant,
		int64(e.Nonce), e.ItemID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert escrow entry: %w", err)
	}
	return nil
}

// GetForUpdate fetches a pending entry with pessimistic locking so concurrent
// settles of the same identity serialize. Returns nil if not pending.
func (r *EscrowRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id domain.TransactionIdentity) (*domain.EscrowEntry, error) {
	query := `SELECT identity, asset, amount, payer, merchant, nonce, item_id, created_at
		FROM escrow_entries WHERE identity = $1 FOR UPDATE`

	e := &domain.EscrowEntry{}
	var identity []byte
	var nonce int64
	err := tx.QueryRow(ctx, query, id[:]).Scan(
		&identity, &e.Asset, &e.Amount, &e.Payer, &e.Merchant,
		&nonce, &e.ItemID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get escrow entry for update: %w", err)
	}
	copy(e.Identity[:], identity)
	e.Nonce = uint64(nonce)
	return e, nil
}

// Remove deletes the entry, ending its Pending state.
func (r *EscrowRepo) Remove(ctx context.Context, tx pgx.Tx, id domain.TransactionIdentity) error {
	query := `DELETE FROM escrow_entries WHERE identity = $1`
	if _, err := tx.Exec(ctx, query, id[:]); err != nil {
		return fmt.Errorf("delete escrow entry: %w", err)
	}
	return nil
}

// ListByMerchant returns a merchant's pending entries, oldest first.
func (r *EscrowRepo) ListByMerchant(ctx context.Context, merchant uuid.UUID) ([]domain.EscrowEntry, error) {
	query := `SELECT identity, asset, amount, payer, merchant, nonce, item_id, created_at
		FROM escrow_entries WHERE merchant = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, merchant)
	if err != nil {
		return nil, fmt.Errorf("list escrow entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.EscrowEntry
	for rows.Next() {
		var e domain.EscrowEntry
		var identity []byte
		var nonce int64
		if err := rows.Scan(
			&identity, &e.Asset, &e.Amount, &e.Payer, &e.Merchant,
			&nonce, &e.ItemID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan escrow entry: %w", err)
		}
		copy(e.Identity[:], identity)
		e.Nonce = uint64(nonce)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate escrow entries: %w", err)
	}
	return entries, nil
}
