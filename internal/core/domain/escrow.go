package domain

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// Transaction is the logical description of one escrowed transfer.
// Immutable once constructed; used only to derive a transaction identity.
type Transaction struct {
	Asset    AssetID   `json:"asset"`
	Amount   int64     `json:"amount"` // smallest unit, actually received
	Payer    uuid.UUID `json:"payer"`
	Merchant uuid.UUID `json:"merchant"`
}

// TransactionIdentity is a collision-resistant hash binding a transaction's
// content, a strictly increasing nonce and a network identifier. It keys
// escrow entries and makes authorizations replay-safe across deployments.
type TransactionIdentity [32]byte

// ComputeIdentity derives the identity for a transaction under a given nonce
// and network identifier. The encoding is fixed-width for every numeric field
// so no two distinct inputs can collide on byte layout.
func ComputeIdentity(tx Transaction, nonce uint64, networkID string) TransactionIdentity {
	h := sha3.NewLegacyKeccak256()

	var buf [8]byte
	h.Write([]byte(tx.Asset))
	h.Write([]byte{0})
	binary.BigEndian.PutUint64(buf[:], uint64(tx.Amount))
	h.Write(buf[:])
	h.Write(tx.Payer[:])
	h.Write(tx.Merchant[:])
	binary.BigEndian.PutUint64(buf[:], nonce)
	h.Write(buf[:])
	h.Write([]byte(networkID))

	var id TransactionIdentity
	h.Sum(id[:0])
	return id
}

// CallbackItemID derives a paywall item identifier from a callback target and
// selector, so pricing can be scoped per callback entry point.
func CallbackItemID(target, selector string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(target))
	h.Write([]byte{0})
	h.Write([]byte(selector))
	return hex.EncodeToString(h.Sum(nil))
}

// String returns the hex form used on the wire and in logs.
func (id TransactionIdentity) String() string {
	return hex.EncodeToString(id[:])
}

// ParseIdentity decodes a hex transaction identity.
func ParseIdentity(s string) (TransactionIdentity, error) {
	var id TransactionIdentity
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("decoding identity: %w", err)
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("identity must be %d bytes, got %d", len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

// MarshalText implements encoding.TextMarshaler for JSON round-trips.
func (id TransactionIdentity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *TransactionIdentity) UnmarshalText(b []byte) error {
	parsed, err := ParseIdentity(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// EscrowEntry is a pending authorization held in the ledger. Presence in the
// ledger means Pending; a successful settlement removes the entry, so no
// identity can settle twice.
type EscrowEntry struct {
	Identity  TransactionIdentity `json:"identity"`
	Asset     AssetID             `json:"asset"`
	Amount    int64               `json:"amount"`
	Payer     uuid.UUID           `json:"payer"`
	Merchant  uuid.UUID           `json:"merchant"`
	Nonce     uint64              `json:"nonce"`
	ItemID    string              `json:"item_id"`
	CreatedAt time.Time           `json:"created_at"`
}
