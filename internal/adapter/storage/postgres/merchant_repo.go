package postgres

import (
	"context"
	"errors"
	"fmt"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// Create inserts a new merchant into the database.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	query := `INSERT INTO merchants (id, username, password_hash, merchant_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Username, m.PasswordHash, m.MerchantName, m.Status,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID fetches a merchant by its UUID.
func (r *MerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	query := `SELECT id, username, password_hash, merchant_name, status, created_at, updated_at
		FROM merchants WHERE id = $1`

	m := &domain.Merchant{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Username, &m.PasswordHash, &m.MerchantName, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// GetByUsername fetches a merchant by username.
func (r *MerchantRepo) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	query := `SELECT id, username, password_hash, merchant_name, status, created_at, updated_at
		FROM merchants WHERE username = $1`

	m := &domain.Merchant{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&m.ID, &m.Username, &m.PasswordHash, &m.MerchantName, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by username: %w", err)
	}
	return m, nil
}

// SetConfig upserts a merchant's payout configuration.
func (r *MerchantRepo) SetConfig(ctx context.Context, cfg *domain.MerchantConfig) error {
	query := `INSERT INTO merchant_configs (merchant_id, payout_account, payout_asset, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (merchant_id) DO UPDATE SET
			payout_account = EXCLUDED.payout_account,
			payout_asset = EXCLUDED.payout_asset,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.pool.Exec(ctx, query, cfg.MerchantID, cfg.PayoutAccount, cfg.PayoutAsset, cfg.UpdatedAt); err != nil {
		return fmt.Errorf("upsert merchant config: %w", err)
	}
	return nil
}

// GetConfig fetches a merchant's payout configuration. Returns nil when the
// merchant never configured one.
func (r *MerchantRepo) GetConfig(ctx context.Context, merchant uuid.UUID) (*domain.MerchantConfig, error) {
	query := `SELECT merchant_id, payout_account, payout_asset, updated_at
		FROM merchant_configs WHERE merchant_id = $1`

	cfg := &domain.MerchantConfig{}
	err := r.pool.QueryRow(ctx, query, merchant).Scan(
		&cfg.MerchantID, &cfg.PayoutAccount, &cfg.PayoutAsset, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant config: %w", err)
	}
	return cfg, nil
}
