package ports

import (
	"context"
	"errors"
	"time"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/google/uuid"
)

// ErrNoQuote is returned by a PriceOracle when no quote has ever been
// published for a feed reference.
var ErrNoQuote = errors.New("no quote published for feed")

// PriceQuote is one oracle observation.
type PriceQuote struct {
	Price     int64 // scaled by 10^Decimals, USD per whole unit of the asset
	Decimals  int32
	UpdatedAt time.Time
}

// PriceOracle returns the latest quote for a feed reference. The engine
// consumes quotes read-only and enforces staleness itself.
type PriceOracle interface {
	Quote(ctx context.Context, ref string) (*PriceQuote, error)
}

// AssetExchange converts value between assets along a routing path. The
// conversion is treated as opaque, possibly value-lossy and atomic; the
// returned amount is what was actually received in the target asset.
type AssetExchange interface {
	Convert(ctx context.Context, from, to domain.AssetID, amount int64, path []domain.AssetID) (int64, error)
}

// CallbackExecutor is the isolated boundary for invoking untrusted callback
// targets after payment or authorization. It holds no funds and has no access
// to the ledger or account balances.
type CallbackExecutor interface {
	// ResolveMerchant asks the target for its self-reported merchant identity.
	ResolveMerchant(ctx context.Context, target string) (uuid.UUID, error)
	// Execute performs the call and returns the raw response body. Fails with
	// InvalidTarget if the target is not executable, CallFailed otherwise.
	Execute(ctx context.Context, target, selector string, payload []byte) ([]byte, error)
}
