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

// SettlementHandler handles the merchant-facing escrow endpoints.
type SettlementHandler struct {
	engine ports.PaymentEngine
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(engine ports.PaymentEngine) *SettlementHandler {
	return &SettlementHandler{engine: engine}
}

// Settle handles POST /api/v1/settlements. The merchant identity is taken
// from the JWT, never from the request body.
func (h *SettlementHandler) Settle(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payer, err := uuid.Parse(req.Payer)
	if err != nil {
		response.Error(c, apperror.Validation("payer must be a UUID"))
		return
	}
	identity, err := domain.ParseIdentity(req.Identity)
	if err != nil {
		response.Error(c, apperror.Validation("identity must be a 32-byte hex string"))
		return
	}

	result, err := h.engine.Settle(c.Request.Context(), ports.SettleRequest{
		Asset:             domain.AssetID(req.Asset),
		Amount:            req.Amount,
		Payer:             payer,
		Merchant:          merchantID.(uuid.UUID),
		Identity:          identity,
		MaxUSDValuePayout: req.MaxUSDValuePayout,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// ListPending handles GET /api/v1/settlements/pending, returning the
// caller's own pending authorizations, oldest first.
func (h *SettlementHandler) ListPending(c *gin.Context) {
	merchantID, ok := c.Get(middleware.CtxMerchantID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	entries, err := h.engine.ListPending(c.Request.Context(), merchantID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"pending": entries, "count": len(entries)})
}
