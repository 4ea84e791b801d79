package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/pkg/apperror"
)

// ValuationService implements ports.Valuator on top of the asset registry and
// the price oracle. All conversions floor so the engine never credits more
// value than it holds.
type ValuationService struct {
	registry    ports.AssetRegistry
	oracle      ports.PriceOracle
	usdDecimals int32
	now         func() time.Time
}

// NewValuationService creates a ValuationService. usdDecimals is the scale of
// USD values across the engine (10^usdDecimals units per dollar).
func NewValuationService(registry ports.AssetRegistry, oracle ports.PriceOracle, usdDecimals int32) *ValuationService {
	return &ValuationService{
		registry:    registry,
		oracle:      oracle,
		usdDecimals: usdDecimals,
		now:         time.Now,
	}
}

// WithClock overrides the staleness clock for deterministic tests.
func (s *ValuationService) WithClock(now func() time.Time) *ValuationService {
	s.now = now
	return s
}

// ToUSD converts amount of asset into a USD value:
// usd = floor(amount * price * 10^usdDecimals / 10^(assetDecimals+priceDecimals)).
func (s *ValuationService) ToUSD(ctx context.Context, asset domain.AssetID, amount int64) (int64, error) {
	cfg, quote, err := s.freshQuote(ctx, asset)
	if err != nil {
		return 0, err
	}

	v := new(big.Int).Mul(big.NewInt(amount), big.NewInt(quote.Price))
	v.Mul(v, pow10(s.usdDecimals))
	v.Quo(v, pow10(cfg.Decimals+quote.Decimals))
	if !v.IsInt64() {
		return 0, apperror.ErrArithmeticOverflow()
	}
	return v.Int64(), nil
}

// FromUSD converts a USD value back into an asset amount, flooring:
// amount = floor(usd * 10^(assetDecimals+priceDecimals) / (price * 10^usdDecimals)).
func (s *ValuationService) FromUSD(ctx context.Context, asset domain.AssetID, usdValue int64) (int64, error) {
	cfg, quote, err := s.freshQuote(ctx, asset)
	if err != nil {
		return 0, err
	}
	if quote.Price <= 0 {
		return 0, apperror.ErrStalePrice(string(asset))
	}

	v := new(big.Int).Mul(big.NewInt(usdValue), pow10(cfg.Decimals+quote.Decimals))
	div := new(big.Int).Mul(big.NewInt(quote.Price), pow10(s.usdDecimals))
	v.Quo(v, div)
	if !v.IsInt64() {
		return 0, apperror.ErrArithmeticOverflow()
	}
	return v.Int64(), nil
}

// freshQuote resolves the asset config and a non-stale oracle quote.
func (s *ValuationService) freshQuote(ctx context.Context, asset domain.AssetID) (*domain.PaymentAsset, *ports.PriceQuote, error) {
	cfg, err := s.registry.Get(ctx, asset)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("registry lookup: %w", err))
	}
	if cfg == nil {
		return nil, nil, apperror.ErrUnsupportedAsset(string(asset))
	}

	quote, err := s.oracle.Quote(ctx, cfg.OracleRef)
	if err != nil {
		if errors.Is(err, ports.ErrNoQuote) {
			return nil, nil, apperror.ErrStalePrice(string(asset))
		}
		return nil, nil, apperror.InternalError(fmt.Errorf("oracle quote: %w", err))
	}
	if s.now().Sub(quote.UpdatedAt) > cfg.StaleThreshold {
		return nil, nil, apperror.ErrStalePrice(string(asset))
	}
	return cfg, quote, nil
}

func pow10(exp int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}
