package postgres

import (
	"context"
	"testing"
	"time"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMerchant() *domain.Merchant {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Merchant{
		ID:           uuid.New(),
		Username:     "shop",
		PasswordHash: "$argon2id$hash",
		MerchantName: "The Shop",
		Status:       domain.MerchantStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func merchantColumns() []string {
	return []string{"id", "username", "password_hash", "merchant_name", "status", "created_at", "updated_at"}
}

func merchantRow(m *domain.Merchant) *pgxmock.Rows {
	return pgxmock.NewRows(merchantColumns()).AddRow(
		m.ID, m.Username, m.PasswordHash, m.MerchantName, m.Status,
		m.CreatedAt, m.UpdatedAt,
	)
}

func TestMerchantRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectExec("INSERT INTO merchants").
		WithArgs(m.ID, m.Username, m.PasswordHash, m.MerchantName, m.Status,
			m.CreatedAt, m.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), m)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE username").
		WithArgs(m.Username).
		WillReturnRows(merchantRow(m))

	result, err := repo.GetByUsername(context.Background(), m.Username)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, m.ID, result.ID)
	assert.Equal(t, m.PasswordHash, result.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(merchantColumns()))

	result, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_SetConfig(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	merchantID := uuid.New()
	payoutAccount := uuid.New()
	payoutAsset := domain.AssetID("USDC")
	cfg := &domain.MerchantConfig{
		MerchantID:    merchantID,
		PayoutAccount: &payoutAccount,
		PayoutAsset:   &payoutAsset,
		UpdatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO merchant_configs").
		WithArgs(cfg.MerchantID, cfg.PayoutAccount, cfg.PayoutAsset, cfg.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.SetConfig(context.Background(), cfg)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetConfig_NotConfigured(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM merchant_configs WHERE merchant_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"merchant_id", "payout_account", "payout_asset", "updated_at"}))

	cfg, err := repo.GetConfig(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, cfg)
	assert.NoError(t, mock.ExpectationsWereMet())
}
