package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"escrow-settlement-engine/internal/adapter/callback"
	httpHandler "escrow-settlement-engine/internal/adapter/http/handler"
	redisStorage "escrow-settlement-engine/internal/adapter/storage/redis"
	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/internal/metrics"
	"escrow-settlement-engine/internal/service"
	"escrow-settlement-engine/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminKey = "itest-admin-key"
	testNetwork  = "itest-net"
)

var (
	treasuryAccount = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	escrowAccount   = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)

// testApp builds a full application stack: real HTTP layer, middleware,
// services and engine, with in-memory repos, miniredis for nonces and prices,
// and a fake exchange. Rollback semantics come from snapshotTransactor.
type testApp struct {
	server     *httptest.Server
	redis      *miniredis.Miniredis
	rdb        *goredis.Client
	accounts   *inMemoryAccountRepo
	registry   *inMemoryAssetRegistry
	exchange   *fakeExchange
	priceCache *redisStorage.PriceCache
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	merchantRepo := newInMemoryMerchantRepo()
	accountRepo := newInMemoryAccountRepo()
	escrowRepo := newInMemoryEscrowRepo()
	assetRegistry := newInMemoryAssetRegistry()
	paywallRepo := newInMemoryPaywallRepo()
	transactor := newSnapshotTransactor(accountRepo, escrowRepo)

	nonceCounter := redisStorage.NewNonceCounter(rdb)
	priceCache := redisStorage.NewPriceCache(rdb)

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("itest-jwt-secret-32-bytes-long!!", 24*time.Hour, "itest")

	exch := newFakeExchange()
	log := logger.New("error", false)

	authSvc := service.NewAuthService(merchantRepo, hashSvc, tokenSvc)
	merchantSvc := service.NewMerchantService(merchantRepo, paywallRepo)
	registrySvc := service.NewRegistryService(assetRegistry)
	valuator := service.NewValuationService(assetRegistry, priceCache, 8)
	feeSplitter := service.NewProtocolFeeSplitter(30, 10000, "")
	paywallGuard := service.NewPaywallGuard(paywallRepo)

	engine := service.NewPaymentEngine(service.EngineDeps{
		Registry:     assetRegistry,
		Accounts:     accountRepo,
		EscrowRepo:   escrowRepo,
		MerchantRepo: merchantRepo,
		Paywall:      paywallGuard,
		Valuator:     valuator,
		Fees:         feeSplitter,
		Exchange:     exch,
		Callbacks:    callback.NewExecutor(http.DefaultClient, 1<<20, log),
		Nonces:       nonceCounter,
		Transactor:   transactor,
		Metrics:      metrics.New(),
	}, service.EngineParams{
		NetworkID:          testNetwork,
		TreasuryAccount:    treasuryAccount,
		EscrowAccount:      escrowAccount,
		DefaultPayoutAsset: "USDC",
	}, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		Engine:         engine,
		MerchantSvc:    merchantSvc,
		RegistrySvc:    registrySvc,
		TokenSvc:       tokenSvc,
		AdminAPIKey:    testAdminKey,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:     server,
		redis:      mr,
		rdb:        rdb,
		accounts:   accountRepo,
		registry:   assetRegistry,
		exchange:   exch,
		priceCache: priceCache,
	}
}

// do issues a JSON request and decodes the envelope.
func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func data(t *testing.T, envelope map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "no data in envelope: %v", envelope)
	return d
}

// registerMerchant registers and logs in a merchant, returning its ID and JWT.
func (a *testApp) registerMerchant(t *testing.T, username string) (uuid.UUID, string) {
	t.Helper()

	status, resp := a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username":      username,
		"password":      "password-123",
		"merchant_name": username + " shop",
	})
	require.Equal(t, http.StatusCreated, status, "register failed: %v", resp)
	merchantID := uuid.MustParse(data(t, resp)["merchant_id"].(string))

	status, resp = a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"username": username,
		"password": "password-123",
	})
	require.Equal(t, http.StatusOK, status)
	return merchantID, data(t, resp)["token"].(string)
}

// registerAsset registers an asset through the admin API and publishes a
// fresh oracle quote for it.
func (a *testApp) registerAsset(t *testing.T, id domain.AssetID, oracleRef string, decimals int32, priceUSD int64, priceDecimals int32) {
	t.Helper()

	raw, err := json.Marshal(map[string]interface{}{
		"oracle_ref":              oracleRef,
		"decimals":                decimals,
		"stale_threshold_seconds": 3600,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, a.server.URL+"/api/v1/assets/"+string(id), bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Key", testAdminKey)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, a.priceCache.Publish(context.Background(), oracleRef, &ports.PriceQuote{
		Price:     priceUSD,
		Decimals:  priceDecimals,
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}))
}

func (a *testApp) balance(t *testing.T, owner uuid.UUID, asset domain.AssetID) int64 {
	t.Helper()
	b, err := a.accounts.Balance(context.Background(), owner, asset)
	require.NoError(t, err)
	return b
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIntegration_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	merchantID, token := app.registerMerchant(t, "alice")
	assert.NotEqual(t, uuid.Nil, merchantID)
	assert.NotEmpty(t, token)

	// Duplicate username is rejected.
	status, resp := app.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username":      "alice",
		"password":      "password-123",
		"merchant_name": "other shop",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "AUTH_002", resp["error_code"])
}

func TestIntegration_AssetRegistryRequiresAdminKey(t *testing.T) {
	app := newTestApp(t)

	raw := []byte(`{"oracle_ref":"eth-usd","decimals":18,"stale_threshold_seconds":900}`)
	req, err := http.NewRequest(http.MethodPut, app.server.URL+"/api/v1/assets/ETH", bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// With the key it succeeds, and the read side is public.
	app.registerAsset(t, "ETH", "eth-usd", 18, 250000, 2)

	status, envelope := app.do(t, http.MethodGet, "/api/v1/assets/ETH", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "eth-usd", data(t, envelope)["oracle_ref"])
}

func TestIntegration_SendPayment(t *testing.T) {
	app := newTestApp(t)

	merchantID, _ := app.registerMerchant(t, "seller")
	app.registerAsset(t, "USDC", "usdc-usd", 6, 100, 2) // $1.00 per USDC

	payer := uuid.New()
	app.accounts.setBalance(payer, "USDC", 5_000_000) // 5 USDC

	status, envelope := app.do(t, http.MethodPost, "/api/v1/payments/send", "", map[string]interface{}{
		"asset":    "USDC",
		"amount":   1_000_000, // 1 USDC
		"payer":    payer.String(),
		"merchant": merchantID.String(),
		"item_id":  "article-1",
	})
	require.Equal(t, http.StatusCreated, status, "send failed: %v", envelope)

	d := data(t, envelope)
	assert.Equal(t, float64(1_000_000), d["received_amount"])
	assert.Equal(t, float64(3_000), d["fee_amount"]) // 0.3%
	assert.Equal(t, float64(997_000), d["payout_amount"])
	assert.Equal(t, float64(99_700_000), d["usd_value"]) // $0.997 at 8 decimals

	assert.Equal(t, int64(4_000_000), app.balance(t, payer, "USDC"))
	assert.Equal(t, int64(997_000), app.balance(t, merchantID, "USDC"))
	assert.Equal(t, int64(3_000), app.balance(t, treasuryAccount, "USDC"))
}

func TestIntegration_SendRejectedByPaywallLeavesBalancesUnchanged(t *testing.T) {
	app := newTestApp(t)

	merchantID, token := app.registerMerchant(t, "paywalled")
	app.registerAsset(t, "USDC", "usdc-usd", 6, 100, 2)

	// Floor of $2.00 on the item.
	status, _ := app.do(t, http.MethodPut, "/api/v1/paywall/premium-article", token, map[string]interface{}{
		"price_usd": 200_000_000,
	})
	require.Equal(t, http.StatusOK, status)

	payer := uuid.New()
	app.accounts.setBalance(payer, "USDC", 5_000_000)

	// $0.997 after fees is below the $2 floor.
	status, envelope := app.do(t, http.MethodPost, "/api/v1/payments/send", "", map[string]interface{}{
		"asset":    "USDC",
		"amount":   1_000_000,
		"payer":    payer.String(),
		"merchant": merchantID.String(),
		"item_id":  "premium-article",
	})
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "PAY_001", envelope["error_code"])

	// The rejected payment moved nothing.
	assert.Equal(t, int64(5_000_000), app.balance(t, payer, "USDC"))
	assert.Equal(t, int64(0), app.balance(t, merchantID, "USDC"))
	assert.Equal(t, int64(0), app.balance(t, treasuryAccount, "USDC"))
}

func TestIntegration_AuthorizeAndSettle(t *testing.T) {
	app := newTestApp(t)

	merchantID, token := app.registerMerchant(t, "escrowshop")
	app.registerAsset(t, "USDC", "usdc-usd", 6, 100, 2)

	payer := uuid.New()
	app.accounts.setBalance(payer, "USDC", 10_000_000)

	// Authorize: funds move payer -> escrow, identity is minted.
	status, envelope := app.do(t, http.MethodPost, "/api/v1/payments/authorize", "", map[string]interface{}{
		"asset":    "USDC",
		"amount":   2_000_000, // 2 USDC
		"payer":    payer.String(),
		"merchant": merchantID.String(),
	})
	require.Equal(t, http.StatusCreated, status, "authorize failed: %v", envelope)
	identity := data(t, envelope)["identity"].(string)
	require.Len(t, identity, 64)

	assert.Equal(t, int64(8_000_000), app.balance(t, payer, "USDC"))
	assert.Equal(t, int64(2_000_000), app.balance(t, escrowAccount, "USDC"))

	// The merchant sees its pending authorization.
	status, envelope = app.do(t, http.MethodGet, "/api/v1/settlements/pending", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), data(t, envelope)["count"])

	// Settle the full amount.
	status, envelope = app.do(t, http.MethodPost, "/api/v1/settlements", token, map[string]interface{}{
		"asset":                "USDC",
		"amount":               2_000_000,
		"payer":                payer.String(),
		"identity":             identity,
		"max_usd_value_payout": 1_000_000_000, // $10 cap, above the $2 escrowed
	})
	require.Equal(t, http.StatusOK, status, "settle failed: %v", envelope)

	d := data(t, envelope)
	assert.Equal(t, float64(2_000_000), d["escrowed_amount"])
	assert.Equal(t, float64(0), d["refund_amount"])
	assert.Equal(t, float64(6_000), d["fee_amount"])
	assert.Equal(t, float64(1_994_000), d["payout_amount"])

	assert.Equal(t, int64(0), app.balance(t, escrowAccount, "USDC"))
	assert.Equal(t, int64(1_994_000), app.balance(t, merchantID, "USDC"))
	assert.Equal(t, int64(6_000), app.balance(t, treasuryAccount, "USDC"))
	assert.Equal(t, int64(8_000_000), app.balance(t, payer, "USDC"))

	// Settling the same identity again must fail: the entry is gone.
	status, envelope = app.do(t, http.MethodPost, "/api/v1/settlements", token, map[string]interface{}{
		"asset":                "USDC",
		"amount":               2_000_000,
		"payer":                payer.String(),
		"identity":             identity,
		"max_usd_value_payout": 1_000_000_000,
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ESC_001", envelope["error_code"])
}

func TestIntegration_PartialSettlementRefundsPayer(t *testing.T) {
	app := newTestApp(t)

	merchantID, token := app.registerMerchant(t, "partial")
	app.registerAsset(t, "USDC", "usdc-usd", 6, 100, 2)

	payer := uuid.New()
	app.accounts.setBalance(payer, "USDC", 10_000_000)

	status, envelope := app.do(t, http.MethodPost, "/api/v1/payments/authorize", "", map[string]interface{}{
		"asset":    "USDC",
		"amount":   2_000_000,
		"payer":    payer.String(),
		"merchant": merchantID.String(),
	})
	require.Equal(t, http.StatusCreated, status)
	identity := data(t, envelope)["identity"].(string)

	// Cap the capture at $1 of the $2 escrowed; the rest refunds.
	status, envelope = app.do(t, http.MethodPost, "/api/v1/settlements", token, map[string]interface{}{
		"asset":                "USDC",
		"amount":               2_000_000,
		"payer":                payer.String(),
		"identity":             identity,
		"max_usd_value_payout": 100_000_000, // $1
	})
	require.Equal(t, http.StatusOK, status, "settle failed: %v", envelope)

	d := data(t, envelope)
	payoutPreFee := int64(d["payout_pre_fee"].(float64))
	refund := int64(d["refund_amount"].(float64))
	fee := int64(d["fee_amount"].(float64))
	payout := int64(d["payout_amount"].(float64))

	// Conservation: everything escrowed is either paid out, taken as fee, or refunded.
	assert.Equal(t, int64(2_000_000), payoutPreFee+refund)
	assert.Equal(t, payoutPreFee, payout+fee)
	assert.Equal(t, int64(1_000_000), payoutPreFee) // $1 at 6 decimals

	assert.Equal(t, int64(8_000_000)+refund, app.balance(t, payer, "USDC"))
	assert.Equal(t, payout, app.balance(t, merchantID, "USDC"))
	assert.Equal(t, fee, app.balance(t, treasuryAccount, "USDC"))
	assert.Equal(t, int64(0), app.balance(t, escrowAccount, "USDC"))
}

func TestIntegration_IdenticalAuthorizationsGetDistinctIdentities(t *testing.T) {
	app := newTestApp(t)

	merchantID, _ := app.registerMerchant(t, "replay")
	app.registerAsset(t, "USDC", "usdc-usd", 6, 100, 2)

	payer := uuid.New()
	app.accounts.setBalance(payer, "USDC", 10_000_000)

	body := map[string]interface{}{
		"asset":    "USDC",
		"amount":   1_000_000,
		"payer":    payer.String(),
		"merchant": merchantID.String(),
	}

	status, first := app.do(t, http.MethodPost, "/api/v1/payments/authorize", "", body)
	require.Equal(t, http.StatusCreated, status)
	status, second := app.do(t, http.MethodPost, "/api/v1/payments/authorize", "", body)
	require.Equal(t, http.StatusCreated, status)

	// Same content, different nonces, so different identities.
	assert.NotEqual(t, data(t, first)["identity"], data(t, second)["identity"])
	assert.Less(t, data(t, first)["nonce"].(float64), data(t, second)["nonce"].(float64))
}

func TestIntegration_PayoutConversion(t *testing.T) {
	app := newTestApp(t)

	merchantID, token := app.registerMerchant(t, "converter")
	app.registerAsset(t, "USDC", "usdc-usd", 6, 100, 2)
	app.registerAsset(t, "EUR", "eur-usd", 6, 110, 2)
	app.exchange.setRate("USDC", "EUR", 0.9)

	// Merchant prefers payout in EUR.
	status, _ := app.do(t, http.MethodPut, "/api/v1/merchants/me/config", token, map[string]interface{}{
		"payout_asset": "EUR",
	})
	require.Equal(t, http.StatusOK, status)

	payer := uuid.New()
	app.accounts.setBalance(payer, "USDC", 5_000_000)

	status, envelope := app.do(t, http.MethodPost, "/api/v1/payments/send", "", map[string]interface{}{
		"asset":    "USDC",
		"amount":   1_000_000,
		"payer":    payer.String(),
		"merchant": merchantID.String(),
	})
	require.Equal(t, http.StatusCreated, status, "send failed: %v", envelope)

	d := data(t, envelope)
	assert.Equal(t, "EUR", d["payout_asset"])
	// 997000 USDC units converted at 0.9 with the venue's 1% haircut.
	expected := int64(float64(997_000) * 0.9 * 0.99)
	assert.Equal(t, float64(expected), d["payout_amount"])

	assert.Equal(t, int64(0), app.balance(t, merchantID, "USDC"))
	assert.Equal(t, expected, app.balance(t, merchantID, "EUR"))
}

func TestIntegration_UnsupportedAssetRejected(t *testing.T) {
	app := newTestApp(t)

	merchantID, _ := app.registerMerchant(t, "nocoin")
	payer := uuid.New()

	status, envelope := app.do(t, http.MethodPost, "/api/v1/payments/send", "", map[string]interface{}{
		"asset":    "DOGE",
		"amount":   100,
		"payer":    payer.String(),
		"merchant": merchantID.String(),
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "AST_001", envelope["error_code"])
}

func TestIntegration_StaleQuoteRejected(t *testing.T) {
	app := newTestApp(t)

	merchantID, _ := app.registerMerchant(t, "stale")
	app.registerAsset(t, "USDC", "usdc-usd", 6, 100, 2)

	// Republish the quote far in the past, beyond the 1h threshold.
	require.NoError(t, app.priceCache.Publish(context.Background(), "usdc-usd", &ports.PriceQuote{
		Price:     100,
		Decimals:  2,
		UpdatedAt: time.Now().Add(-2 * time.Hour),
	}))

	payer := uuid.New()
	app.accounts.setBalance(payer, "USDC", 5_000_000)

	status, envelope := app.do(t, http.MethodPost, "/api/v1/payments/send", "", map[string]interface{}{
		"asset":    "USDC",
		"amount":   1_000_000,
		"payer":    payer.String(),
		"merchant": merchantID.String(),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "AST_002", envelope["error_code"])

	// Nothing moved.
	assert.Equal(t, int64(5_000_000), app.balance(t, payer, "USDC"))
}
