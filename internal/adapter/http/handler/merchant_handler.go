package handler

import (
	"escrow-settlement-engine/internal/adapter/http/dto"
	"escrow-settlement-engine/internal/adapter/http/middleware"
	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/pkg/apperror"
	"escrow-settlement-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MerchantHandler handles merchant configuration and paywall endpoints.
type MerchantHandler struct {
	merchantSvc ports.MerchantService
}

// NewMerchantHandler creates a new MerchantHandler.
func NewMerchantHandler(merchantSvc ports.MerchantService) *MerchantHandler {
	return &MerchantHandler{merchantSvc: merchantSvc}
}

// SetConfig handles PUT /api/v1/merchants/me/config.
func (h *MerchantHandler) SetConfig(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.MerchantConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cfg := &domain.MerchantConfig{MerchantID: merchantID.(uuid.UUID)}
	if req.PayoutAccount != nil {
		account, err := uuid.Parse(*req.PayoutAccount)
		if err != nil {
			response.Error(c, apperror.Validation("payout_account must be a UUID"))
			return
		}
		cfg.PayoutAccount = &account
	}
	if req.PayoutAsset != nil {
		asset := domain.AssetID(*req.PayoutAsset)
		cfg.PayoutAsset = &asset
	}

	if err := h.merchantSvc.SetConfig(c.Request.Context(), cfg); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cfg)
}

// GetConfig handles GET /api/v1/merchants/:id/config. Public: payers need to
// know where a merchant gets paid before they can reason about a payment.
func (h *MerchantHandler) GetConfig(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("merchant id must be a UUID"))
		return
	}

	cfg, err := h.merchantSvc.GetConfig(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cfg)
}

// SetPaywallPrice handles PUT /api/v1/paywall/:item_id.
func (h *MerchantHandler) SetPaywallPrice(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	itemID := c.Param("item_id")

	var req dto.PaywallPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.merchantSvc.SetPaywallPrice(c.Request.Context(), merchantID.(uuid.UUID), itemID, req.PriceUSD); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PaywallPriceResponse{
		MerchantID: merchantID.(uuid.UUID).String(),
		ItemID:     itemID,
		PriceUSD:   req.PriceUSD,
	})
}

// GetPaywallPrice handles GET /api/v1/paywall/:item_id?merchant=<uuid>.
// Public: payers check the floor before paying.
func (h *MerchantHandler) GetPaywallPrice(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Query("merchant"))
	if err != nil {
		response.Error(c, apperror.Validation("merchant query parameter must be a UUID"))
		return
	}

	itemID := c.Param("item_id")

	price, err := h.merchantSvc.GetPaywallPrice(c.Request.Context(), merchantID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PaywallPriceResponse{
		MerchantID: merchantID.String(),
		ItemID:     itemID,
		PriceUSD:   price,
	})
}
