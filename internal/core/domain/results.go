package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentResult is the observable outcome of a completed direct payment.
// It carries every amount needed to reconstruct the custody invariant:
// ReceivedAmount == FeeAmount + the pre-conversion remainder that produced
// PayoutAmount.
type PaymentResult struct {
	Asset          AssetID   `json:"asset"`
	ReceivedAmount int64     `json:"received_amount"`
	FeeAmount      int64     `json:"fee_amount"`
	USDValue       int64     `json:"usd_value"` // of the post-fee remainder
	PayoutAsset    AssetID   `json:"payout_asset"`
	PayoutAmount   int64     `json:"payout_amount"` // in the payout asset, post-conversion
	Payer          uuid.UUID `json:"payer"`
	Merchant       uuid.UUID `json:"merchant"`
	ItemID         string    `json:"item_id"`
	Memo           string    `json:"memo,omitempty"`
	CompletedAt    time.Time `json:"completed_at"`
}

// AuthorizationResult is the observable outcome of a completed authorization.
type AuthorizationResult struct {
	Identity    TransactionIdentity `json:"identity"`
	Transaction Transaction         `json:"transaction"`
	Nonce       uint64              `json:"nonce"`
	USDValue    int64               `json:"usd_value"`
	OnBehalfOf  uuid.UUID           `json:"on_behalf_of"`
	ItemID      string              `json:"item_id"`
	Memo        string              `json:"memo,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// SettlementResult is the observable outcome of a completed settlement.
// Invariants: PayoutPreFee + RefundAmount == EscrowedAmount and
// PayoutAmount + FeeAmount == PayoutPreFee, both in the escrowed asset.
type SettlementResult struct {
	Identity       TransactionIdentity `json:"identity"`
	Asset          AssetID             `json:"asset"`
	EscrowedAmount int64               `json:"escrowed_amount"`
	PayoutPreFee   int64               `json:"payout_pre_fee"`
	PayoutAmount   int64               `json:"payout_amount"`
	FeeAmount      int64               `json:"fee_amount"`
	RefundAmount   int64               `json:"refund_amount"`
	PayoutAsset    AssetID             `json:"payout_asset"`
	PayoutReceived int64               `json:"payout_received"` // in the payout asset, post-conversion
	Payer          uuid.UUID           `json:"payer"`
	Merchant       uuid.UUID           `json:"merchant"`
	SettledAt      time.Time           `json:"settled_at"`
}
