package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/internal/core/ports"
	"escrow-settlement-engine/internal/metrics"
	"escrow-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// EngineParams holds the fixed parameters of one engine deployment.
type EngineParams struct {
	NetworkID          string
	TreasuryAccount    uuid.UUID
	EscrowAccount      uuid.UUID
	DefaultPayoutAsset domain.AssetID
}

// EngineDeps bundles the collaborators of the payment engine.
type EngineDeps struct {
	Registry     ports.AssetRegistry
	Accounts     ports.AccountRepository
	EscrowRepo   ports.EscrowRepository
	MerchantRepo ports.MerchantRepository
	Paywall      ports.PaywallGuard
	Valuator     ports.Valuator
	Fees         ports.FeeSplitter
	Exchange     ports.AssetExchange
	Callbacks    ports.CallbackExecutor
	Nonces       ports.NonceCounter
	Transactor   ports.DBTransactor
	Metrics      *metrics.Registry
}

// PaymentEngineImpl implements ports.PaymentEngine. Every entry point runs as
// one database transaction guarded against reentrancy: custody mutations are
// written before any callback executes, and a callback failure rolls the
// whole operation back.
type PaymentEngineImpl struct {
	deps   EngineDeps
	params EngineParams
	guard  *ReentrancyGuard
	log    zerolog.Logger
}

// NewPaymentEngine creates a PaymentEngineImpl.
func NewPaymentEngine(deps EngineDeps, params EngineParams, log zerolog.Logger) *PaymentEngineImpl {
	return &PaymentEngineImpl{
		deps:   deps,
		params: params,
		guard:  NewReentrancyGuard(),
		log:    log,
	}
}

// Send implements the direct payment flow.
func (s *PaymentEngineImpl) Send(ctx context.Context, req ports.SendRequest) (*domain.PaymentResult, error) {
	if err := s.guard.Enter(); err != nil {
		return nil, err
	}
	defer s.guard.Exit()

	res, err := s.send(ctx, req, nil)
	s.deps.Metrics.Operation("send", outcome(err))
	return res, err
}

// SendWithCallback is Send followed by an untrusted callback; the payment and
// the callback commit or roll back as one unit. The paywall item is derived
// from the callback target and selector so pricing scopes per entry point.
func (s *PaymentEngineImpl) SendWithCallback(ctx context.Context, req ports.SendWithCallbackRequest) (*domain.PaymentResult, error) {
	if err := s.guard.Enter(); err != nil {
		return nil, err
	}
	defer s.guard.Exit()

	res, err := s.sendWithCallback(ctx, req)
	s.deps.Metrics.Operation("send_with_callback", outcome(err))
	return res, err
}

func (s *PaymentEngineImpl) sendWithCallback(ctx context.Context, req ports.SendWithCallbackRequest) (*domain.PaymentResult, error) {
	if err := s.validateCallbackMerchant(ctx, req.Callback.Target, req.Merchant); err != nil {
		return nil, err
	}

	return s.send(ctx, ports.SendRequest{
		Asset:      req.Asset,
		Amount:     req.Amount,
		Payer:      req.Payer,
		OnBehalfOf: req.OnBehalfOf,
		Merchant:   req.Merchant,
		ItemID:     domain.CallbackItemID(req.Callback.Target, req.Callback.Selector),
		Memo:       req.Memo,
	}, &req.Callback)
}

func (s *PaymentEngineImpl) send(ctx context.Context, req ports.SendRequest, cb *ports.CallbackSpec) (*domain.PaymentResult, error) {
	if err := s.requireSupported(ctx, req.Asset); err != nil {
		return nil, err
	}

	tx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// Pull funds into custody. All downstream math uses the observed amount,
	// never the requested one.
	received, err := s.deps.Accounts.Transfer(ctx, tx, req.Payer, s.params.EscrowAccount, req.Asset, req.Amount)
	if err != nil {
		return nil, coerce(err, "pull payer funds")
	}

	fee, remainder, err := s.deps.Fees.Split(req.Asset, received)
	if err != nil {
		return nil, err
	}
	if fee > 0 {
		if _, err := s.deps.Accounts.Transfer(ctx, tx, s.params.EscrowAccount, s.params.TreasuryAccount, req.Asset, fee); err != nil {
			return nil, coerce(err, "transfer protocol fee")
		}
	}

	usdValue, err := s.deps.Valuator.ToUSD(ctx, req.Asset, remainder)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Paywall.Enforce(ctx, req.Merchant, req.ItemID, usdValue); err != nil {
		return nil, err
	}

	payoutAsset, payoutAmount, err := s.payout(ctx, tx, req.Asset, remainder, req.Merchant)
	if err != nil {
		return nil, err
	}

	if cb != nil {
		if err := s.executeCallback(ctx, cb); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	result := &domain.PaymentResult{
		Asset:          req.Asset,
		ReceivedAmount: received,
		FeeAmount:      fee,
		USDValue:       usdValue,
		PayoutAsset:    payoutAsset,
		PayoutAmount:   payoutAmount,
		Payer:          req.Payer,
		Merchant:       req.Merchant,
		ItemID:         req.ItemID,
		Memo:           req.Memo,
		CompletedAt:    time.Now().UTC(),
	}

	s.log.Info().
		Str("asset", string(req.Asset)).
		Int64("received", received).
		Int64("fee", fee).
		Int64("usd_value", usdValue).
		Str("merchant", req.Merchant.String()).
		Str("payer", req.Payer.String()).
		Msg("payment completed")

	return result, nil
}

// Authorize implements the first half of the two-phase escrow.
func (s *PaymentEngineImpl) Authorize(ctx context.Context, req ports.AuthorizeRequest) (*domain.AuthorizationResult, error) {
	if err := s.guard.Enter(); err != nil {
		return nil, err
	}
	defer s.guard.Exit()

	res, err := s.authorize(ctx, req, nil)
	s.deps.Metrics.Operation("authorize", outcome(err))
	return res, err
}

// AuthorizeWithCallback mirrors SendWithCallback for the authorize flow. A
// callback failure rolls the authorization back, so custody is never left
// Pending for an operation the caller saw fail.
func (s *PaymentEngineImpl) AuthorizeWithCallback(ctx context.Context, req ports.AuthorizeWithCallbackRequest) (*domain.AuthorizationResult, error) {
	if err := s.guard.Enter(); err != nil {
		return nil, err
	}
	defer s.guard.Exit()

	res, err := s.authorizeWithCallback(ctx, req)
	s.deps.Metrics.Operation("authorize_with_callback", outcome(err))
	return res, err
}

func (s *PaymentEngineImpl) authorizeWithCallback(ctx context.Context, req ports.AuthorizeWithCallbackRequest) (*domain.AuthorizationResult, error) {
	if err := s.validateCallbackMerchant(ctx, req.Callback.Target, req.Merchant); err != nil {
		return nil, err
	}

	return s.authorize(ctx, ports.AuthorizeRequest{
		Asset:      req.Asset,
		Amount:     req.Amount,
		Payer:      req.Payer,
		OnBehalfOf: req.OnBehalfOf,
		Merchant:   req.Merchant,
		ItemID:     domain.CallbackItemID(req.Callback.Target, req.Callback.Selector),
		Memo:       req.Memo,
	}, &req.Callback)
}

func (s *PaymentEngineImpl) authorize(ctx context.Context, req ports.AuthorizeRequest, cb *ports.CallbackSpec) (*domain.AuthorizationResult, error) {
	if err := s.requireSupported(ctx, req.Asset); err != nil {
		return nil, err
	}

	tx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	received, err := s.deps.Accounts.Transfer(ctx, tx, req.Payer, s.params.EscrowAccount, req.Asset, req.Amount)
	if err != nil {
		return nil, coerce(err, "pull payer funds")
	}
	if received == 0 {
		return nil, apperror.ErrZeroAmountReceived()
	}

	usdValue, err := s.deps.Valuator.ToUSD(ctx, req.Asset, received)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Paywall.Enforce(ctx, req.Merchant, req.ItemID, usdValue); err != nil {
		return nil, err
	}

	// The counter advances even when the surrounding transaction rolls back:
	// nonces may gap but can never repeat.
	nonce, err := s.deps.Nonces.Next(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("advance nonce: %w", err))
	}

	trans := domain.Transaction{
		Asset:    req.Asset,
		Amount:   received,
		Payer:    req.Payer,
		Merchant: req.Merchant,
	}
	identity := domain.ComputeIdentity(trans, nonce, s.params.NetworkID)

	now := time.Now().UTC()
	entry := &domain.EscrowEntry{
		Identity:  identity,
		Asset:     req.Asset,
		Amount:    received,
		Payer:     req.Payer,
		Merchant:  req.Merchant,
		Nonce:     nonce,
		ItemID:    req.ItemID,
		CreatedAt: now,
	}
	if err := s.deps.EscrowRepo.Create(ctx, tx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create escrow entry: %w", err))
	}

	if cb != nil {
		if err := s.executeCallback(ctx, cb); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.deps.Metrics.EscrowDelta(string(req.Asset), received)

	s.log.Info().
		Str("identity", identity.String()).
		Uint64("nonce", nonce).
		Str("asset", string(req.Asset)).
		Int64("amount", received).
		Str("merchant", req.Merchant.String()).
		Str("payer", req.Payer.String()).
		Msg("authorization created")

	return &domain.AuthorizationResult{
		Identity:    identity,
		Transaction: trans,
		Nonce:       nonce,
		USDValue:    usdValue,
		OnBehalfOf:  req.OnBehalfOf,
		ItemID:      req.ItemID,
		Memo:        req.Memo,
		CreatedAt:   now,
	}, nil
}

// Settle releases a pending authorization as payout, refund and fee. The
// ledger entry is removed before any transfer is written (commit-then-act
// within the transaction), so a second settle of the same identity always
// fails with TransactionNotAuthorized.
func (s *PaymentEngineImpl) Settle(ctx context.Context, req ports.SettleRequest) (*domain.SettlementResult, error) {
	if err := s.guard.Enter(); err != nil {
		return nil, err
	}
	defer s.guard.Exit()

	res, err := s.settle(ctx, req)
	s.deps.Metrics.Operation("settle", outcome(err))
	return res, err
}

func (s *PaymentEngineImpl) settle(ctx context.Context, req ports.SettleRequest) (*domain.SettlementResult, error) {
	tx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	entry, err := s.deps.EscrowRepo.GetForUpdate(ctx, tx, req.Identity)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load escrow entry: %w", err))
	}
	if entry == nil {
		return nil, apperror.ErrTransactionNotAuthorized()
	}
	if entry.Merchant != req.Merchant {
		return nil, apperror.ErrNotMerchant()
	}

	// Recompute the identity from the caller-supplied fields under the stored
	// nonce; any mismatch means the caller does not hold the authorized terms.
	recomputed := domain.ComputeIdentity(domain.Transaction{
		Asset:    req.Asset,
		Amount:   req.Amount,
		Payer:    req.Payer,
		Merchant: req.Merchant,
	}, entry.Nonce, s.params.NetworkID)
	if recomputed != req.Identity {
		return nil, apperror.ErrTransactionNotAuthorized()
	}

	// Retire the entry before moving any funds.
	if err := s.deps.EscrowRepo.Remove(ctx, tx, req.Identity); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("retire escrow entry: %w", err))
	}

	sourceUSD, err := s.deps.Valuator.ToUSD(ctx, req.Asset, req.Amount)
	if err != nil {
		return nil, err
	}
	payoutUSD := req.MaxUSDValuePayout
	if payoutUSD > sourceUSD {
		payoutUSD = sourceUSD
	}
	if payoutUSD < 0 {
		payoutUSD = 0
	}

	payoutPreFee, err := s.deps.Valuator.FromUSD(ctx, req.Asset, payoutUSD)
	if err != nil {
		return nil, err
	}
	if payoutPreFee > req.Amount {
		payoutPreFee = req.Amount
	}

	fee, payoutAmount, err := s.deps.Fees.Split(req.Asset, payoutPreFee)
	if err != nil {
		return nil, err
	}
	refund := req.Amount - payoutPreFee

	payoutAsset, payoutReceived, err := s.payout(ctx, tx, req.Asset, payoutAmount, req.Merchant)
	if err != nil {
		return nil, err
	}
	if refund > 0 {
		if _, err := s.deps.Accounts.Transfer(ctx, tx, s.params.EscrowAccount, req.Payer, req.Asset, refund); err != nil {
			return nil, coerce(err, "refund payer")
		}
	}
	if fee > 0 {
		if _, err := s.deps.Accounts.Transfer(ctx, tx, s.params.EscrowAccount, s.params.TreasuryAccount, req.Asset, fee); err != nil {
			return nil, coerce(err, "transfer protocol fee")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.deps.Metrics.EscrowDelta(string(req.Asset), -req.Amount)

	s.log.Info().
		Str("identity", req.Identity.String()).
		Int64("escrowed", req.Amount).
		Int64("payout_pre_fee", payoutPreFee).
		Int64("refund", refund).
		Int64("fee", fee).
		Str("merchant", req.Merchant.String()).
		Msg("settlement completed")

	return &domain.SettlementResult{
		Identity:       req.Identity,
		Asset:          req.Asset,
		EscrowedAmount: req.Amount,
		PayoutPreFee:   payoutPreFee,
		PayoutAmount:   payoutAmount,
		FeeAmount:      fee,
		RefundAmount:   refund,
		PayoutAsset:    payoutAsset,
		PayoutReceived: payoutReceived,
		Payer:          req.Payer,
		Merchant:       req.Merchant,
		SettledAt:      time.Now().UTC(),
	}, nil
}

// ListPending returns a merchant's pending authorizations.
func (s *PaymentEngineImpl) ListPending(ctx context.Context, merchant uuid.UUID) ([]domain.EscrowEntry, error) {
	entries, err := s.deps.EscrowRepo.ListByMerchant(ctx, merchant)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list pending escrows: %w", err))
	}
	return entries, nil
}

// requireSupported rejects assets absent from the registry.
func (s *PaymentEngineImpl) requireSupported(ctx context.Context, asset domain.AssetID) error {
	cfg, err := s.deps.Registry.Get(ctx, asset)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("registry lookup: %w", err))
	}
	if cfg == nil {
		return apperror.ErrUnsupportedAsset(string(asset))
	}
	return nil
}

// validateCallbackMerchant checks the target's self-reported merchant
// identity before any funds move.
func (s *PaymentEngineImpl) validateCallbackMerchant(ctx context.Context, target string, merchant uuid.UUID) error {
	reported, err := s.deps.Callbacks.ResolveMerchant(ctx, target)
	if err != nil {
		return coerce(err, "resolve callback merchant")
	}
	if reported != merchant {
		return apperror.ErrInvalidMerchant()
	}
	return nil
}

// executeCallback runs the untrusted call while the operation's transaction
// is still open; any failure aborts the whole operation.
func (s *PaymentEngineImpl) executeCallback(ctx context.Context, cb *ports.CallbackSpec) error {
	if _, err := s.deps.Callbacks.Execute(ctx, cb.Target, cb.Selector, cb.Payload); err != nil {
		s.deps.Metrics.CallbackFailure()
		s.log.Warn().Err(err).Str("target", cb.Target).Msg("callback failed, rolling back operation")
		return coerce(err, "execute callback")
	}
	return nil
}

// payout converts amount of asset into the merchant's payout asset and
// credits its payout account, returning (payoutAsset, amountReceived). When
// the source asset already is the payout asset the exchange is skipped and
// the transfer stays internal.
func (s *PaymentEngineImpl) payout(ctx context.Context, tx pgx.Tx, asset domain.AssetID, amount int64, merchant uuid.UUID) (domain.AssetID, int64, error) {
	cfg, err := s.deps.MerchantRepo.GetConfig(ctx, merchant)
	if err != nil {
		return "", 0, apperror.InternalError(fmt.Errorf("load merchant config: %w", err))
	}
	payoutAsset := cfg.ResolvePayoutAsset(s.params.DefaultPayoutAsset)
	payoutAccount := cfg.ResolvePayoutAccount(merchant)

	if amount == 0 {
		return payoutAsset, 0, nil
	}

	if payoutAsset == asset {
		received, err := s.deps.Accounts.Transfer(ctx, tx, s.params.EscrowAccount, payoutAccount, asset, amount)
		if err != nil {
			return "", 0, coerce(err, "transfer payout")
		}
		return payoutAsset, received, nil
	}

	if err := s.deps.Accounts.Debit(ctx, tx, s.params.EscrowAccount, asset, amount); err != nil {
		return "", 0, coerce(err, "debit escrow for conversion")
	}
	received, err := s.deps.Exchange.Convert(ctx, asset, payoutAsset, amount, nil)
	if err != nil {
		return "", 0, coerce(err, "convert payout")
	}
	if err := s.deps.Accounts.Credit(ctx, tx, payoutAccount, payoutAsset, received); err != nil {
		return "", 0, coerce(err, "credit payout")
	}
	return payoutAsset, received, nil
}

// coerce passes AppErrors through untouched and wraps anything else as an
// internal error.
func coerce(err error, op string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
