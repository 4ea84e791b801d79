package service

import (
	"context"
	"testing"

	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/internal/core/ports/mocks"
	"escrow-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

type engineTestDeps struct {
	svc        *PaymentEngineImpl
	registry   *mocks.MockAssetRegistry
	accounts   *mocks.MockAccountRepository
	escrowRepo *mocks.MockEscrowRepository
	merchants  *mocks.MockMerchantRepository
	paywall    *mocks.MockPaywallGuard
	valuator   *mocks.MockValuator
	fees       *mocks.MockFeeSplitter
	exchange   *mocks.MockAssetExchange
	callbacks  *mocks.MockCallbackExecutor
	nonces     *mocks.MockNonceCounter
	transactor *mocks.MockDBTransactor
	params     EngineParams
	ctrl       *gomock.Controller
}

func setupEngine(t *testing.T) *engineTestDeps {
	ctrl := gomock.NewController(t)
	d := &engineTestDeps{
		registry:   mocks.NewMockAssetRegistry(ctrl),
		accounts:   mocks.NewMockAccountRepository(ctrl),
		escrowRepo: mocks.NewMockEscrowRepository(ctrl),
		merchants:  mocks.NewMockMerchantRepository(ctrl),
		paywall:    mocks.NewMockPaywallGuard(ctrl),
		valuator:   mocks.NewMockValuator(ctrl),
		fees:       mocks.NewMockFeeSplitter(ctrl),
		exchange:   mocks.NewMockAssetExchange(ctrl),
		callbacks:  mocks.NewMockCallbackExecutor(ctrl),
		nonces:     mocks.NewMockNonceCounter(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		params: EngineParams{
			NetworkID:          "engine-test",
			TreasuryAccount:    uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			EscrowAccount:      uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			DefaultPayoutAsset: "USDC",
		},
		ctrl: ctrl,
	}
	d.svc = NewPaymentEngine(EngineDeps{
		Registry:     d.registry,
		Accounts:     d.accounts,
		EscrowRepo:   d.escrowRepo,
		MerchantRepo: d.merchants,
		Paywall:      d.paywall,
		Valuator:     d.valuator,
		Fees:         d.fees,
		Exchange:     d.exchange,
		Callbacks:    d.callbacks,
		Nonces:       d.nonces,
		Transactor:   d.transactor,
	}, d.params, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func usdcAsset() *domain.PaymentAsset {
	return &domain.PaymentAsset{ID: "USDC", OracleRef: "usdc-usd", Decimals: 6}
}

// ==================== Send Tests ====================

func TestPaymentEngine_Send_Success(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	merchant := uuid.New()
	tx := &mockTx{}

	req := ports.SendRequest{
		Asset:    "USDC",
		Amount:   1000,
		Payer:    payer,
		Merchant: merchant,
		ItemID:   "article-42",
	}

	d.registry.EXPECT().Get(ctx, domain.AssetID("USDC")).Return(usdcAsset(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, payer, d.params.EscrowAccount, domain.AssetID("USDC"), int64(1000)).Return(int64(1000), nil)
	d.fees.EXPECT().Split(domain.AssetID("USDC"), int64(1000)).Return(int64(10), int64(990), nil)
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, d.params.TreasuryAccount, domain.AssetID("USDC"), int64(10)).Return(int64(10), nil)
	d.valuator.EXPECT().ToUSD(ctx, domain.AssetID("USDC"), int64(990)).Return(int64(99000), nil)
	d.paywall.EXPECT().Enforce(ctx, merchant, "article-42", int64(99000)).Return(nil)
	d.merchants.EXPECT().GetConfig(ctx, merchant).Return(nil, nil)
	// Payout asset equals the source asset, so no conversion happens.
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, merchant, domain.AssetID("USDC"), int64(990)).Return(int64(990), nil)

	res, err := d.svc.Send(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), res.ReceivedAmount)
	assert.Equal(t, int64(10), res.FeeAmount)
	assert.Equal(t, int64(99000), res.USDValue)
	assert.Equal(t, domain.AssetID("USDC"), res.PayoutAsset)
	assert.Equal(t, int64(990), res.PayoutAmount)
	assert.Equal(t, merchant, res.Merchant)
}

func TestPaymentEngine_Send_ConvertsPayout(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	merchant := uuid.New()
	tx := &mockTx{}

	req := ports.SendRequest{Asset: "ETH", Amount: 5000, Payer: payer, Merchant: merchant}

	ethAsset := &domain.PaymentAsset{ID: "ETH", OracleRef: "eth-usd", Decimals: 18}
	d.registry.EXPECT().Get(ctx, domain.AssetID("ETH")).Return(ethAsset, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, payer, d.params.EscrowAccount, domain.AssetID("ETH"), int64(5000)).Return(int64(5000), nil)
	d.fees.EXPECT().Split(domain.AssetID("ETH"), int64(5000)).Return(int64(0), int64(5000), nil)
	d.valuator.EXPECT().ToUSD(ctx, domain.AssetID("ETH"), int64(5000)).Return(int64(12345), nil)
	d.paywall.EXPECT().Enforce(ctx, merchant, "", int64(12345)).Return(nil)
	d.merchants.EXPECT().GetConfig(ctx, merchant).Return(nil, nil)
	// Payout asset defaults to USDC, so value routes through the exchange.
	d.accounts.EXPECT().Debit(ctx, tx, d.params.EscrowAccount, domain.AssetID("ETH"), int64(5000)).Return(nil)
	d.exchange.EXPECT().Convert(ctx, domain.AssetID("ETH"), domain.AssetID("USDC"), int64(5000), nil).Return(int64(4980), nil)
	d.accounts.EXPECT().Credit(ctx, tx, merchant, domain.AssetID("USDC"), int64(4980)).Return(nil)

	res, err := d.svc.Send(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.AssetID("USDC"), res.PayoutAsset)
	assert.Equal(t, int64(4980), res.PayoutAmount)
	assert.Equal(t, int64(0), res.FeeAmount)
}

func TestPaymentEngine_Send_UnsupportedAsset(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.registry.EXPECT().Get(ctx, domain.AssetID("DOGE")).Return(nil, nil)

	_, err := d.svc.Send(ctx, ports.SendRequest{Asset: "DOGE", Amount: 1})
	assertAppError(t, err, "AST_001")
}

func TestPaymentEngine_Send_PaywallRejection(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	merchant := uuid.New()
	tx := &mockTx{}

	d.registry.EXPECT().Get(ctx, domain.AssetID("USDC")).Return(usdcAsset(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, payer, d.params.EscrowAccount, domain.AssetID("USDC"), int64(100)).Return(int64(100), nil)
	d.fees.EXPECT().Split(domain.AssetID("USDC"), int64(100)).Return(int64(1), int64(99), nil)
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, d.params.TreasuryAccount, domain.AssetID("USDC"), int64(1)).Return(int64(1), nil)
	d.valuator.EXPECT().ToUSD(ctx, domain.AssetID("USDC"), int64(99)).Return(int64(9900), nil)
	d.paywall.EXPECT().Enforce(ctx, merchant, "book-1", int64(9900)).Return(apperror.ErrInsufficientPayment())

	_, err := d.svc.Send(ctx, ports.SendRequest{
		Asset: "USDC", Amount: 100, Payer: payer, Merchant: merchant, ItemID: "book-1",
	})
	assertAppError(t, err, "PAY_001")
}

func TestPaymentEngine_SendWithCallback_MerchantMismatch(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchant := uuid.New()

	d.callbacks.EXPECT().ResolveMerchant(ctx, "https://shop.example").Return(uuid.New(), nil)

	_, err := d.svc.SendWithCallback(ctx, ports.SendWithCallbackRequest{
		Asset: "USDC", Amount: 100, Payer: uuid.New(), Merchant: merchant,
		Callback: ports.CallbackSpec{Target: "https://shop.example", Selector: "deliver"},
	})
	assertAppError(t, err, "PAY_003")
}

func TestPaymentEngine_SendWithCallback_FailureRollsBack(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	merchant := uuid.New()
	tx := &mockTx{}
	itemID := domain.CallbackItemID("https://shop.example", "deliver")

	d.callbacks.EXPECT().ResolveMerchant(ctx, "https://shop.example").Return(merchant, nil)
	d.registry.EXPECT().Get(ctx, domain.AssetID("USDC")).Return(usdcAsset(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, payer, d.params.EscrowAccount, domain.AssetID("USDC"), int64(1000)).Return(int64(1000), nil)
	d.fees.EXPECT().Split(domain.AssetID("USDC"), int64(1000)).Return(int64(10), int64(990), nil)
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, d.params.TreasuryAccount, domain.AssetID("USDC"), int64(10)).Return(int64(10), nil)
	d.valuator.EXPECT().ToUSD(ctx, domain.AssetID("USDC"), int64(990)).Return(int64(99000), nil)
	d.paywall.EXPECT().Enforce(ctx, merchant, itemID, int64(99000)).Return(nil)
	d.merchants.EXPECT().GetConfig(ctx, merchant).Return(nil, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, merchant, domain.AssetID("USDC"), int64(990)).Return(int64(990), nil)
	d.callbacks.EXPECT().Execute(ctx, "https://shop.example", "deliver", gomock.Any()).
		Return(nil, apperror.ErrCallFailed(assert.AnError))

	// No Commit is ever expected: the failed callback aborts the operation.
	_, err := d.svc.SendWithCallback(ctx, ports.SendWithCallbackRequest{
		Asset: "USDC", Amount: 1000, Payer: payer, Merchant: merchant,
		Callback: ports.CallbackSpec{Target: "https://shop.example", Selector: "deliver"},
	})
	assertAppError(t, err, "CB_002")
}

func TestPaymentEngine_ReentrantCallbackRejected(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	merchant := uuid.New()
	tx := &mockTx{}
	itemID := domain.CallbackItemID("https://shop.example", "reenter")

	d.callbacks.EXPECT().ResolveMerchant(ctx, "https://shop.example").Return(merchant, nil)
	d.registry.EXPECT().Get(ctx, domain.AssetID("USDC")).Return(usdcAsset(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, payer, d.params.EscrowAccount, domain.AssetID("USDC"), int64(100)).Return(int64(100), nil)
	d.fees.EXPECT().Split(domain.AssetID("USDC"), int64(100)).Return(int64(0), int64(100), nil)
	d.valuator.EXPECT().ToUSD(ctx, domain.AssetID("USDC"), int64(100)).Return(int64(10000), nil)
	d.paywall.EXPECT().Enforce(ctx, merchant, itemID, int64(10000)).Return(nil)
	d.merchants.EXPECT().GetConfig(ctx, merchant).Return(nil, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, merchant, domain.AssetID("USDC"), int64(100)).Return(int64(100), nil)
	// The callback target tries to call back into the engine.
	d.callbacks.EXPECT().Execute(ctx, "https://shop.example", "reenter", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ []byte) ([]byte, error) {
			_, nested := d.svc.Send(ctx, ports.SendRequest{Asset: "USDC", Amount: 1, Payer: payer, Merchant: merchant})
			assertAppError(t, nested, "ESC_002")
			return nil, nested
		})

	_, err := d.svc.SendWithCallback(ctx, ports.SendWithCallbackRequest{
		Asset: "USDC", Amount: 100, Payer: payer, Merchant: merchant,
		Callback: ports.CallbackSpec{Target: "https://shop.example", Selector: "reenter"},
	})
	assertAppError(t, err, "ESC_002")
}

// ==================== Authorize Tests ====================

func TestPaymentEngine_Authorize_Success(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	merchant := uuid.New()
	tx := &mockTx{}

	d.registry.EXPECT().Get(ctx, domain.AssetID("USDC")).Return(usdcAsset(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, payer, d.params.EscrowAccount, domain.AssetID("USDC"), int64(500)).Return(int64(500), nil)
	d.valuator.EXPECT().ToUSD(ctx, domain.AssetID("USDC"), int64(500)).Return(int64(50000), nil)
	d.paywall.EXPECT().Enforce(ctx, merchant, "vod-7", int64(50000)).Return(nil)
	d.nonces.EXPECT().Next(ctx).Return(uint64(7), nil)

	var created *domain.EscrowEntry
	d.escrowRepo.EXPECT().Create(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, entry *domain.EscrowEntry) error {
			created = entry
			return nil
		})

	res, err := d.svc.Authorize(ctx, ports.AuthorizeRequest{
		Asset: "USDC", Amount: 500, Payer: payer, Merchant: merchant, ItemID: "vod-7",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	wantIdentity := domain.ComputeIdentity(domain.Transaction{
		Asset: "USDC", Amount: 500, Payer: payer, Merchant: merchant,
	}, 7, "engine-test")
	assert.Equal(t, wantIdentity, res.Identity)
	assert.Equal(t, wantIdentity, created.Identity)
	assert.Equal(t, uint64(7), res.Nonce)
	assert.Equal(t, int64(500), created.Amount)
	assert.Equal(t, merchant, created.Merchant)
}

func TestPaymentEngine_Authorize_ZeroAmountReceived(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	tx := &mockTx{}

	d.registry.EXPECT().Get(ctx, domain.AssetID("USDC")).Return(usdcAsset(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, payer, d.params.EscrowAccount, domain.AssetID("USDC"), int64(0)).Return(int64(0), nil)

	_, err := d.svc.Authorize(ctx, ports.AuthorizeRequest{Asset: "USDC", Amount: 0, Payer: payer})
	assertAppError(t, err, "PAY_002")
}

// ==================== Settle Tests ====================

func settledEntry(payer, merchant uuid.UUID) *domain.EscrowEntry {
	return &domain.EscrowEntry{
		Identity: domain.ComputeIdentity(domain.Transaction{
			Asset: "USDC", Amount: 1000, Payer: payer, Merchant: merchant,
		}, 3, "engine-test"),
		Asset:    "USDC",
		Amount:   1000,
		Payer:    payer,
		Merchant: merchant,
		Nonce:    3,
	}
}

func TestPaymentEngine_Settle_FullCapture(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	merchant := uuid.New()
	tx := &mockTx{}
	entry := settledEntry(payer, merchant)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.escrowRepo.EXPECT().GetForUpdate(ctx, tx, entry.Identity).Return(entry, nil)
	d.escrowRepo.EXPECT().Remove(ctx, tx, entry.Identity).Return(nil)
	d.valuator.EXPECT().ToUSD(ctx, domain.AssetID("USDC"), int64(1000)).Return(int64(100000), nil)
	d.valuator.EXPECT().FromUSD(ctx, domain.AssetID("USDC"), int64(100000)).Return(int64(1000), nil)
	d.fees.EXPECT().Split(domain.AssetID("USDC"), int64(1000)).Return(int64(10), int64(990), nil)
	d.merchants.EXPECT().GetConfig(ctx, merchant).Return(nil, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, merchant, domain.AssetID("USDC"), int64(990)).Return(int64(990), nil)
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, d.params.TreasuryAccount, domain.AssetID("USDC"), int64(10)).Return(int64(10), nil)

	res, err := d.svc.Settle(ctx, ports.SettleRequest{
		Asset: "USDC", Amount: 1000, Payer: payer, Merchant: merchant,
		Identity: entry.Identity, MaxUSDValuePayout: 500000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), res.EscrowedAmount)
	assert.Equal(t, int64(990), res.PayoutAmount)
	assert.Equal(t, int64(10), res.FeeAmount)
	assert.Equal(t, int64(0), res.RefundAmount)
	// Conservation: payout + fee + refund == escrowed amount.
	assert.Equal(t, res.EscrowedAmount, res.PayoutPreFee+res.RefundAmount)
}

func TestPaymentEngine_Settle_PartialCaptureRefundsRest(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	merchant := uuid.New()
	tx := &mockTx{}
	entry := settledEntry(payer, merchant)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.escrowRepo.EXPECT().GetForUpdate(ctx, tx, entry.Identity).Return(entry, nil)
	d.escrowRepo.EXPECT().Remove(ctx, tx, entry.Identity).Return(nil)
	d.valuator.EXPECT().ToUSD(ctx, domain.AssetID("USDC"), int64(1000)).Return(int64(100000), nil)
	// Capture capped at 40% of escrowed value.
	d.valuator.EXPECT().FromUSD(ctx, domain.AssetID("USDC"), int64(40000)).Return(int64(400), nil)
	d.fees.EXPECT().Split(domain.AssetID("USDC"), int64(400)).Return(int64(4), int64(396), nil)
	d.merchants.EXPECT().GetConfig(ctx, merchant).Return(nil, nil)
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, merchant, domain.AssetID("USDC"), int64(396)).Return(int64(396), nil)
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, payer, domain.AssetID("USDC"), int64(600)).Return(int64(600), nil)
	d.accounts.EXPECT().Transfer(ctx, tx, d.params.EscrowAccount, d.params.TreasuryAccount, domain.AssetID("USDC"), int64(4)).Return(int64(4), nil)

	res, err := d.svc.Settle(ctx, ports.SettleRequest{
		Asset: "USDC", Amount: 1000, Payer: payer, Merchant: merchant,
		Identity: entry.Identity, MaxUSDValuePayout: 40000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(600), res.RefundAmount)
	assert.Equal(t, int64(396), res.PayoutAmount)
	assert.Equal(t, int64(4), res.FeeAmount)
}

func TestPaymentEngine_Settle_UnknownIdentity(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	identity := domain.ComputeIdentity(domain.Transaction{Asset: "USDC", Amount: 1}, 99, "engine-test")

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.escrowRepo.EXPECT().GetForUpdate(ctx, tx, identity).Return(nil, nil)

	_, err := d.svc.Settle(ctx, ports.SettleRequest{Asset: "USDC", Amount: 1, Identity: identity})
	assertAppError(t, err, "ESC_001")
}

func TestPaymentEngine_Settle_WrongMerchant(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	merchant := uuid.New()
	tx := &mockTx{}
	entry := settledEntry(payer, merchant)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.escrowRepo.EXPECT().GetForUpdate(ctx, tx, entry.Identity).Return(entry, nil)

	_, err := d.svc.Settle(ctx, ports.SettleRequest{
		Asset: "USDC", Amount: 1000, Payer: payer, Merchant: uuid.New(),
		Identity: entry.Identity, MaxUSDValuePayout: 100000,
	})
	assertAppError(t, err, "AUTH_005")
}

func TestPaymentEngine_Settle_TamperedAmount(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := uuid.New()
	merchant := uuid.New()
	tx := &mockTx{}
	entry := settledEntry(payer, merchant)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.escrowRepo.EXPECT().GetForUpdate(ctx, tx, entry.Identity).Return(entry, nil)

	// Amount differs from the authorized terms, so the recomputed identity
	// cannot match the stored one.
	_, err := d.svc.Settle(ctx, ports.SettleRequest{
		Asset: "USDC", Amount: 2000, Payer: payer, Merchant: merchant,
		Identity: entry.Identity, MaxUSDValuePayout: 100000,
	})
	assertAppError(t, err, "ESC_001")
}

func TestPaymentEngine_ListPending(t *testing.T) {
	d := setupEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchant := uuid.New()
	entries := []domain.EscrowEntry{{Asset: "USDC", Amount: 10, Merchant: merchant}}

	d.escrowRepo.EXPECT().ListByMerchant(ctx, merchant).Return(entries, nil)

	got, err := d.svc.ListPending(ctx, merchant)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
