package service

import (
	"context"
	"fmt"
	"time"

	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
)

type merchantService struct {
	merchantRepo ports.MerchantRepository
	paywallRepo  ports.PaywallRepository
}

// NewMerchantService creates the merchant configuration service.
func NewMerchantService(
	merchantRepo ports.MerchantRepository,
	paywallRepo ports.PaywallRepository,
) ports.MerchantService {
	return &merchantService{
		merchantRepo: merchantRepo,
		paywallRepo:  paywallRepo,
	}
}

func (s *merchantService) SetConfig(ctx context.Context, cfg *domain.MerchantConfig) error {
	merchant, err := s.merchantRepo.GetByID(ctx, cfg.MerchantID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find merchant: %w", err))
	}
	if merchant == nil {
		return apperror.NotFound("merchant")
	}

	cfg.UpdatedAt = time.Now().UTC()
	if err := s.merchantRepo.SetConfig(ctx, cfg); err != nil {
		return apperror.InternalError(fmt.Errorf("set merchant config: %w", err))
	}
	return nil
}

func (s *merchantService) GetConfig(ctx context.Context, merchant uuid.UUID) (*domain.MerchantConfig, error) {
	cfg, err := s.merchantRepo.GetConfig(ctx, merchant)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get merchant config: %w", err))
	}
	if cfg == nil {
		// No explicit config: report the fallbacks that payments will use.
		cfg = &domain.MerchantConfig{MerchantID: merchant}
	}
	return cfg, nil
}

func (s *merchantService) SetPaywallPrice(ctx context.Context, merchant uuid.UUID, itemID string, priceUSD int64) error {
	if priceUSD < 0 {
		return apperror.Validation("paywall price must not be negative")
	}
	price := &domain.PaywallPrice{
		MerchantID: merchant,
		ItemID:     itemID,
		PriceUSD:   priceUSD,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.paywallRepo.SetPrice(ctx, price); err != nil {
		return apperror.InternalError(fmt.Errorf("set paywall price: %w", err))
	}
	return nil
}

func (s *merchantService) GetPaywallPrice(ctx context.Context, merchant uuid.UUID, itemID string) (int64, error) {
	price, err := s.paywallRepo.GetPrice(ctx, merchant, itemID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get paywall price: %w", err))
	}
	return price, nil
}
