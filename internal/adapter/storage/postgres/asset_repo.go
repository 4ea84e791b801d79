package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AssetRepo implements ports.AssetRegistry.
type AssetRepo struct {
	pool Pool
}

// NewAssetRepo creates a new AssetRepo.
func NewAssetRepo(pool Pool) *AssetRepo {
	return &AssetRepo{pool: pool}
}

// Put upserts an asset configuration.
func (r *AssetRepo) Put(ctx context.Context, a *domain.PaymentAsset) error {
	query := `INSERT INTO payment_assets (id, oracle_ref, decimals, stale_threshold_seconds, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			oracle_ref = EXCLUDED.oracle_ref,
			decimals = EXCLUDED.decimals,
			stale_threshold_seconds = EXCLUDED.stale_threshold_seconds,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.OracleRef, a.Decimals, int64(a.StaleThreshold/time.Second),
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert asset: %w", err)
	}
	return nil
}

// Get fetches an asset by id. Returns nil if not registered.
func (r *AssetRepo) Get(ctx context.Context, id domain.AssetID) (*domain.PaymentAsset, error) {
	query := `SELECT id, oracle_ref, decimals, stale_threshold_seconds, created_at, updated_at
		FROM payment_assets WHERE id = $1`

	a := &domain.PaymentAsset{}
	var staleSeconds int64
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.OracleRef, &a.Decimals, &staleSeconds, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	a.StaleThreshold = time.Duration(staleSeconds) * time.Second
	return a, nil
}

// Remove deletes an asset from the registry.
func (r *AssetRepo) Remove(ctx context.Context, id domain.AssetID) error {
	query := `DELETE FROM payment_assets WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}

// List returns all registered assets.
func (r *AssetRepo) List(ctx context.Context) ([]domain.PaymentAsset, error) {
	query := `SELECT id, oracle_ref, decimals, stale_threshold_seconds, created_at, updated_at
		FROM payment_assets ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.PaymentAsset
	for rows.Next() {
		var a domain.PaymentAsset
		var staleSeconds int64
		if err := rows.Scan(&a.ID, &a.OracleRef, &a.Decimals, &staleSeconds, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		a.StaleThreshold = time.Duration(staleSeconds) * time.Second
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets: %w", err)
	}
	return assets, nil
}
