package postgres

import (
	"context"
	"errors"
	"fmt"

	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository over a single accounts table
// keyed by (owner, asset). Rows are created lazily on first credit.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Balance returns the current balance without locking. Absent rows read as 0.
func (r *AccountRepo) Balance(ctx context.Context, owner uuid.UUID, asset domain.AssetID) (int64, error) {
	query := `SELECT balance FROM accounts WHERE owner = $1 AND asset = $2`

	var balance int64
	err := r.pool.QueryRow(ctx, query, owner, asset).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// Transfer moves amount between two owners and returns the destination's
// observed balance delta. The source row is locked FOR UPDATE; a missing or
// underfunded source fails with InsufficientFunds.
func (r *AccountRepo) Transfer(ctx context.Context, tx pgx.Tx, from, to uuid.UUID, asset domain.AssetID, amount int64) (int64, error) {
	if amount < 0 {
		return 0, apperror.ErrArithmeticOverflow()
	}
	if amount == 0 {
		return 0, nil
	}

	if err := r.debitLocked(ctx, tx, from, asset, amount); err != nil {
		return 0, err
	}

	before, err := r.creditLocked(ctx, tx, to, asset, amount)
	if err != nil {
		return 0, err
	}

	var after int64
	query := `SELECT balance FROM accounts WHERE owner = $1 AND asset = $2`
	if err := tx.QueryRow(ctx, query, to, asset).Scan(&after); err != nil {
		return 0, fmt.Errorf("read destination balance: %w", err)
	}
	return after - before, nil
}

// Debit removes amount from an owner without a matching credit.
func (r *AccountRepo) Debit(ctx context.Context, tx pgx.Tx, owner uuid.UUID, asset domain.AssetID, amount int64) error {
	if amount < 0 {
		return apperror.ErrArithmeticOverflow()
	}
	if amount == 0 {
		return nil
	}
	return r.debitLocked(ctx, tx, owner, asset, amount)
}

// Credit adds amount to an owner, creating the account row if absent.
func (r *AccountRepo) Credit(ctx context.Context, tx pgx.Tx, owner uuid.UUID, asset domain.AssetID, amount int64) error {
	if amount < 0 {
		return apperror.ErrArithmeticOverflow()
	}
	if amount == 0 {
		return nil
	}
	_, err := r.creditLocked(ctx, tx, owner, asset, amount)
	return err
}

func (r *AccountRepo) debitLocked(ctx context.Context, tx pgx.Tx, owner uuid.UUID, asset domain.AssetID, amount int64) error {
	query := `SELECT balance FROM accounts WHERE owner = $1 AND asset = $2 FOR UPDATE`

	var balance int64
	err := tx.QueryRow(ctx, query, owner, asset).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.ErrInsufficientFunds()
		}
		return fmt.Errorf("lock source account: %w", err)
	}
	if balance < amount {
		return apperror.ErrInsufficientFunds()
	}

	update := `UPDATE accounts SET balance = balance - $1, updated_at = NOW() WHERE owner = $2 AND asset = $3`
	if _, err := tx.Exec(ctx, update, amount, owner, asset); err != nil {
		return fmt.Errorf("debit account: %w", err)
	}
	return nil
}

// creditLocked upserts the destination row and returns its balance before the
// credit, so callers can observe the actual delta.
func (r *AccountRepo) creditLocked(ctx context.Context, tx pgx.Tx, owner uuid.UUID, asset domain.AssetID, amount int64) (int64, error) {
	insert := `INSERT INTO accounts (owner, asset, balance, created_at, updated_at)
		VALUES ($1, $2, 0, NOW(), NOW()) ON CONFLICT (owner, asset) DO NOTHING`
	if _, err := tx.Exec(ctx, insert, owner, asset); err != nil {
		return 0, fmt.Errorf("ensure destination account: %w", err)
	}

	var before int64
	query := `SELECT balance FROM accounts WHERE owner = $1 AND asset = $2 FOR UPDATE`
	if err := tx.QueryRow(ctx, query, owner, asset).Scan(&before); err != nil {
		return 0, fmt.Errorf("lock destination account: %w", err)
	}

	update := `UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE owner = $2 AND asset = $3`
	if _, err := tx.Exec(ctx, update, amount, owner, asset); err != nil {
		return 0, fmt.Errorf("credit account: %w", err)
	}
	return before, nil
}
