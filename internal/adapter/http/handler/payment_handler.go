package handler

import (
	"escrow-settlement-engine/internal/adapter/http/dto"
	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/pkg/apperror"
	"escrow-settlement-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles the payer-facing payment endpoints.
type PaymentHandler struct {
	engine ports.PaymentEngine
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(engine ports.PaymentEngine) *PaymentHandler {
	return &PaymentHandler{engine: engine}
}

// Send handles POST /api/v1/payments/send.
func (h *PaymentHandler) Send(c *gin.Context) {
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payer, merchant, onBehalfOf, err := parseParties(req.Payer, req.Merchant, req.OnBehalfOf)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.engine.Send(c.Request.Context(), ports.SendRequest{
		Asset:      domain.AssetID(req.Asset),
		Amount:     req.Amount,
		Payer:      payer,
		OnBehalfOf: onBehalfOf,
		Merchant:   merchant,
		ItemID:     req.ItemID,
		Memo:       req.Memo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// SendWithCallback handles POST /api/v1/payments/send-with-callback.
func (h *PaymentHandler) SendWithCallback(c *gin.Context) {
	var req dto.SendWithCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payer, merchant, onBehalfOf, err := parseParties(req.Payer, req.Merchant, req.OnBehalfOf)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.engine.SendWithCallback(c.Request.Context(), ports.SendWithCallbackRequest{
		Asset:      domain.AssetID(req.Asset),
		Amount:     req.Amount,
		Payer:      payer,
		OnBehalfOf: onBehalfOf,
		Merchant:   merchant,
		Memo:       req.Memo,
		Callback: ports.CallbackSpec{
			Target:   req.Callback.Target,
			Selector: req.Callback.Selector,
			Payload:  req.Callback.Payload,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Authorize handles POST /api/v1/payments/authorize.
func (h *PaymentHandler) Authorize(c *gin.Context) {
	var req dto.AuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payer, merchant, onBehalfOf, err := parseParties(req.Payer, req.Merchant, req.OnBehalfOf)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.engine.Authorize(c.Request.Context(), ports.AuthorizeRequest{
		Asset:      domain.AssetID(req.Asset),
		Amount:     req.Amount,
		Payer:      payer,
		OnBehalfOf: onBehalfOf,
		Merchant:   merchant,
		ItemID:     req.ItemID,
		Memo:       req.Memo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// AuthorizeWithCallback handles POST /api/v1/payments/authorize-with-callback.
func (h *PaymentHandler) AuthorizeWithCallback(c *gin.Context) {
	var req dto.AuthorizeWithCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payer, merchant, onBehalfOf, err := parseParties(req.Payer, req.Merchant, req.OnBehalfOf)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.engine.AuthorizeWithCallback(c.Request.Context(), ports.AuthorizeWithCallbackRequest{
		Asset:      domain.AssetID(req.Asset),
		Amount:     req.Amount,
		Payer:      payer,
		OnBehalfOf: onBehalfOf,
		Merchant:   merchant,
		Memo:       req.Memo,
		Callback: ports.CallbackSpec{
			Target:   req.Callback.Target,
			Selector: req.Callback.Selector,
			Payload:  req.Callback.Payload,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// parseParties parses the payer, merchant and optional on-behalf-of UUIDs.
// An empty onBehalfOf defaults to the payer, so the result always names a
// principal.
func parseParties(payerStr, merchantStr, onBehalfOfStr string) (payer, merchant, onBehalfOf uuid.UUID, err error) {
	if payer, err = uuid.Parse(payerStr); err != nil {
		return payer, merchant, onBehalfOf, apperror.Validation("payer must be a UUID")
	}
	if merchant, err = uuid.Parse(merchantStr); err != nil {
		return payer, merchant, onBehalfOf, apperror.Validation("merchant must be a UUID")
	}
	onBehalfOf = payer
	if onBehalfOfStr != "" {
		if onBehalfOf, err = uuid.Parse(onBehalfOfStr); err != nil {
			return payer, merchant, onBehalfOf, apperror.Validation("on_behalf_of must be a UUID")
		}
	}
	return payer, merchant, onBehalfOf, nil
}
