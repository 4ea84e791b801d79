package service

import (
	"testing"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeSplitter_Split(t *testing.T) {
	s := NewProtocolFeeSplitter(30, 10000, "NATIVE") // 0.3%

	cases := []struct {
		name      string
		asset     string
		amount    int64
		wantFee   int64
		wantRest  int64
	}{
		{"round amount", "USDC", 10000, 30, 9970},
		{"floors the fee", "USDC", 9999, 29, 9970}, // 9999*30/10000 = 29.997
		{"tiny amount rounds to zero fee", "USDC", 100, 0, 100},
		{"zero amount", "USDC", 0, 0, 0},
		{"exempt asset pays no fee", "NATIVE", 10000, 0, 10000},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fee, rest, err := s.Split(domain.AssetID(c.asset), c.amount)
			require.NoError(t, err)
			assert.Equal(t, c.wantFee, fee)
			assert.Equal(t, c.wantRest, rest)
			assert.Equal(t, c.amount, fee+rest, "split must conserve the amount")
		})
	}
}

func TestFeeSplitter_NegativeAmount(t *testing.T) {
	s := NewProtocolFeeSplitter(30, 10000, "")
	_, _, err := s.Split("USDC", -1)
	assertAppError(t, err, "PAY_004")
}

func TestFeeSplitter_NoExemptAssetConfigured(t *testing.T) {
	s := NewProtocolFeeSplitter(100, 10000, "") // 1%, nothing exempt

	fee, rest, err := s.Split("", 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(50), fee)
	assert.Equal(t, int64(4950), rest)
}

func TestFeeSplitter_MaxInt64DoesNotOverflow(t *testing.T) {
	s := NewProtocolFeeSplitter(30, 10000, "")

	fee, rest, err := s.Split("USDC", 1<<62)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<62), fee+rest)
	assert.Positive(t, fee)
}
