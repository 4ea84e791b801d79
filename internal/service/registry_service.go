package service

import (
	"context"
	"fmt"
	"time"

	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/pkg/apperror"
)

type registryService struct {
	registry ports.AssetRegistry
}

// NewRegistryService creates the admin-facing asset registry service.
func NewRegistryService(registry ports.AssetRegistry) ports.RegistryService {
	return &registryService{registry: registry}
}

func (s *registryService) SetPaymentAsset(ctx context.Context, asset *domain.PaymentAsset) error {
	if asset.ID == "" {
		return apperror.Validation("asset id must not be empty")
	}
	if asset.OracleRef == "" {
		return apperror.Validation("oracle ref must not be empty")
	}
	if asset.Decimals < 0 {
		return apperror.Validation("decimals must not be negative")
	}
	if asset.StaleThreshold <= 0 {
		return apperror.Validation("stale threshold must be positive")
	}

	asset.UpdatedAt = time.Now().UTC()
	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = asset.UpdatedAt
	}
	if err := s.registry.Put(ctx, asset); err != nil {
		return apperror.InternalError(fmt.Errorf("put asset: %w", err))
	}
	return nil
}

func (s *registryService) GetPaymentAsset(ctx context.Context, id domain.AssetID) (*domain.PaymentAsset, error) {
	asset, err := s.registry.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrUnsupportedAsset(string(id))
	}
	return asset, nil
}

func (s *registryService) RemovePaymentAsset(ctx context.Context, id domain.AssetID) error {
	if err := s.registry.Remove(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("remove asset: %w", err))
	}
	return nil
}

func (s *registryService) ListPaymentAssets(ctx context.Context) ([]domain.PaymentAsset, error) {
	assets, err := s.registry.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list assets: %w", err))
	}
	return assets, nil
}
