package service

import (
	"context"
	"fmt"

	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
)

// PaywallGuardService implements ports.PaywallGuard over the paywall
// repository. Items without a configured price default to 0 (no floor).
type PaywallGuardService struct {
	paywallRepo ports.PaywallRepository
}

// NewPaywallGuard creates a PaywallGuardService.
func NewPaywallGuard(paywallRepo ports.PaywallRepository) *PaywallGuardService {
	return &PaywallGuardService{paywallRepo: paywallRepo}
}

// Enforce fails with InsufficientPayment when usdValue is below the
// merchant's declared minimum price for the item. No side effects.
func (s *PaywallGuardService) Enforce(ctx context.Context, merchant uuid.UUID, itemID string, usdValue int64) error {
	floor, err := s.paywallRepo.GetPrice(ctx, merchant, itemID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("paywall lookup: %w", err))
	}
	if usdValue < floor {
		return apperror.ErrInsufficientPayment()
	}
	return nil
}
