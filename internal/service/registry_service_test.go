package service

import (
	"context"
	"testing"
	"time"

	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistryService_SetPaymentAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockAssetRegistry(ctrl)
	svc := NewRegistryService(registry)

	registry.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, asset *domain.PaymentAsset) error {
			assert.False(t, asset.CreatedAt.IsZero())
			assert.False(t, asset.UpdatedAt.IsZero())
			return nil
		})

	err := svc.SetPaymentAsset(context.Background(), &domain.PaymentAsset{
		ID:             "ETH",
		OracleRef:      "eth-usd",
		Decimals:       18,
		StaleThreshold: 15 * time.Minute,
	})
	require.NoError(t, err)
}

func TestRegistryService_SetPaymentAsset_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewRegistryService(mocks.NewMockAssetRegistry(ctrl))

	cases := []struct {
		name  string
		asset domain.PaymentAsset
	}{
		{"empty id", domain.PaymentAsset{OracleRef: "x", StaleThreshold: time.Minute}},
		{"empty oracle ref", domain.PaymentAsset{ID: "ETH", StaleThreshold: time.Minute}},
		{"negative decimals", domain.PaymentAsset{ID: "ETH", OracleRef: "x", Decimals: -1, StaleThreshold: time.Minute}},
		{"zero threshold", domain.PaymentAsset{ID: "ETH", OracleRef: "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.SetPaymentAsset(context.Background(), &tc.asset)
			assertAppError(t, err, "SYS_002")
		})
	}
}

func TestRegistryService_GetPaymentAsset_NotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockAssetRegistry(ctrl)
	svc := NewRegistryService(registry)

	registry.EXPECT().Get(gomock.Any(), domain.AssetID("DOGE")).Return(nil, nil)

	_, err := svc.GetPaymentAsset(context.Background(), "DOGE")
	assertAppError(t, err, "AST_001")
}
