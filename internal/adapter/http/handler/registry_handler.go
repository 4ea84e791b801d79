package handler

import (
	"time"

	"escrow-settlement-engine/internal/adapter/http/dto"
	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/pkg/apperror"
	"escrow-settlement-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistryHandler handles the supported-asset registry endpoints.
type RegistryHandler struct {
	registrySvc ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registrySvc ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{registrySvc: registrySvc}
}

// PutAsset handles PUT /api/v1/assets/:asset (admin).
func (h *RegistryHandler) PutAsset(c *gin.Context) {
	var req dto.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	asset := &domain.PaymentAsset{
		ID:             domain.AssetID(c.Param("asset")),
		OracleRef:      req.OracleRef,
		Decimals:       req.Decimals,
		StaleThreshold: time.Duration(req.StaleThresholdSeconds) * time.Second,
	}
	if err := h.registrySvc.SetPaymentAsset(c.Request.Context(), asset); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, asset)
}

// GetAsset handles GET /api/v1/assets/:asset (public).
func (h *RegistryHandler) GetAsset(c *gin.Context) {
	asset, err := h.registrySvc.GetPaymentAsset(c.Request.Context(), domain.AssetID(c.Param("asset")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, asset)
}

// RemoveAsset handles DELETE /api/v1/assets/:asset (admin).
func (h *RegistryHandler) RemoveAsset(c *gin.Context) {
	if err := h.registrySvc.RemovePaymentAsset(c.Request.Context(), domain.AssetID(c.Param("asset"))); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"removed": c.Param("asset")})
}

// ListAssets handles GET /api/v1/assets (public).
func (h *RegistryHandler) ListAssets(c *gin.Context) {
	assets, err := h.registrySvc.ListPaymentAssets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"assets": assets, "count": len(assets)})
}
