package service

import (
	"math/big"

	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/pkg/apperror"
)

// ProtocolFeeSplitter implements ports.FeeSplitter with a fixed rational fee
// rate and a single fee-exempt native asset.
type ProtocolFeeSplitter struct {
	numerator   int64
	denominator int64
	exemptAsset domain.AssetID
}

// NewProtocolFeeSplitter creates a fee splitter. Rate bounds are validated by
// config loading; numerator/denominator express e.g. 30/10000 for 0.3%.
func NewProtocolFeeSplitter(numerator, denominator int64, exemptAsset domain.AssetID) *ProtocolFeeSplitter {
	return &ProtocolFeeSplitter{
		numerator:   numerator,
		denominator: denominator,
		exemptAsset: exemptAsset,
	}
}

// Split computes (fee, remainder) for amount. fee = floor(amount * num / den),
// zero for the exempt asset. The multiplication happens in big.Int so it can
// never overflow before the narrowing check.
func (s *ProtocolFeeSplitter) Split(asset domain.AssetID, amount int64) (int64, int64, error) {
	if amount < 0 {
		return 0, 0, apperror.ErrArithmeticOverflow()
	}
	if s.exemptAsset != "" && asset == s.exemptAsset {
		return 0, amount, nil
	}

	fee := new(big.Int).Mul(big.NewInt(amount), big.NewInt(s.numerator))
	fee.Quo(fee, big.NewInt(s.denominator))
	if !fee.IsInt64() {
		return 0, 0, apperror.ErrArithmeticOverflow()
	}

	f := fee.Int64()
	return f, amount - f, nil
}
