package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIdentity_Deterministic(t *testing.T) {
	tx := Transaction{
		Asset:    "USDC",
		Amount:   1_000_000,
		Payer:    uuid.New(),
		Merchant: uuid.New(),
	}

	a := ComputeIdentity(tx, 7, "net-1")
	b := ComputeIdentity(tx, 7, "net-1")
	assert.Equal(t, a, b)
}

func TestComputeIdentity_NonceChangesIdentity(t *testing.T) {
	tx := Transaction{Asset: "ETH", Amount: 42, Payer: uuid.New(), Merchant: uuid.New()}

	a := ComputeIdentity(tx, 1, "net-1")
	b := ComputeIdentity(tx, 2, "net-1")
	assert.NotEqual(t, a, b, "identical transactions must get distinct identities per nonce")
}

func TestComputeIdentity_NetworkChangesIdentity(t *testing.T) {
	tx := Transaction{Asset: "ETH", Amount: 42, Payer: uuid.New(), Merchant: uuid.New()}

	a := ComputeIdentity(tx, 1, "net-1")
	b := ComputeIdentity(tx, 1, "net-2")
	assert.NotEqual(t, a, b, "cross-network replay must be impossible")
}

func TestComputeIdentity_FieldsChangeIdentity(t *testing.T) {
	payer := uuid.New()
	merchant := uuid.New()
	base := Transaction{Asset: "ETH", Amount: 42, Payer: payer, Merchant: merchant}
	baseID := ComputeIdentity(base, 1, "net-1")

	variants := []Transaction{
		{Asset: "ETC", Amount: 42, Payer: payer, Merchant: merchant},
		{Asset: "ETH", Amount: 43, Payer: payer, Merchant: merchant},
		{Asset: "ETH", Amount: 42, Payer: uuid.New(), Merchant: merchant},
		{Asset: "ETH", Amount: 42, Payer: payer, Merchant: uuid.New()},
	}
	for _, v := range variants {
		assert.NotEqual(t, baseID, ComputeIdentity(v, 1, "net-1"))
	}
}

func TestTransactionIdentity_HexRoundTrip(t *testing.T) {
	tx := Transaction{Asset: "DAI", Amount: 5, Payer: uuid.New(), Merchant: uuid.New()}
	id := ComputeIdentity(tx, 99, "net-1")

	parsed, err := ParseIdentity(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseIdentity_Invalid(t *testing.T) {
	_, err := ParseIdentity("not-hex")
	assert.Error(t, err)

	_, err = ParseIdentity("abcd") // wrong length
	assert.Error(t, err)
}

func TestTransactionIdentity_JSON(t *testing.T) {
	tx := Transaction{Asset: "DAI", Amount: 5, Payer: uuid.New(), Merchant: uuid.New()}
	id := ComputeIdentity(tx, 1, "net-1")

	b, err := json.Marshal(id)
	require.NoError(t, err)
	assert.JSONEq(t, `"`+id.String()+`"`, string(b))

	var back TransactionIdentity
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, id, back)
}

func TestCallbackItemID(t *testing.T) {
	a := CallbackItemID("https://cb.example.com/hooks", "onPaid")
	b := CallbackItemID("https://cb.example.com/hooks", "onPaid")
	c := CallbackItemID("https://cb.example.com/hooks", "onRefund")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestMerchantConfig_Resolution(t *testing.T) {
	merchant := uuid.New()
	payout := uuid.New()
	asset := AssetID("USDC")

	var nilCfg *MerchantConfig
	assert.Equal(t, merchant, nilCfg.ResolvePayoutAccount(merchant))
	assert.Equal(t, AssetID("ETH"), nilCfg.ResolvePayoutAsset("ETH"))

	cfg := &MerchantConfig{MerchantID: merchant, PayoutAccount: &payout, PayoutAsset: &asset}
	assert.Equal(t, payout, cfg.ResolvePayoutAccount(merchant))
	assert.Equal(t, asset, cfg.ResolvePayoutAsset("ETH"))
}
