package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"escrow-settlement-engine/internal/core/domain"
	"escrow-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Merchant Repo ---

type inMemoryMerchantRepo struct {
	mu        sync.RWMutex
	merchants map[uuid.UUID]*domain.Merchant
	configs   map[uuid.UUID]*domain.MerchantConfig
}

func newInMemoryMerchantRepo() *inMemoryMerchantRepo {
	return &inMemoryMerchantRepo{
		merchants: make(map[uuid.UUID]*domain.Merchant),
		configs:   make(map[uuid.UUID]*domain.MerchantConfig),
	}
}

func (r *inMemoryMerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.merchants {
		if existing.Username == m.Username {
			return fmt.Errorf("username already exists")
		}
	}
	r.merchants[m.ID] = m
	return nil
}

func (r *inMemoryMerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.merchants[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (r *inMemoryMerchantRepo) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.merchants {
		if m.Username == username {
			return m, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMerchantRepo) SetConfig(ctx context.Context, cfg *domain.MerchantConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[cfg.MerchantID] = cfg
	return nil
}

func (r *inMemoryMerchantRepo) GetConfig(ctx context.Context, merchant uuid.UUID) (*domain.MerchantConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[merchant]
	if !ok {
		return nil, nil
	}
	return cfg, nil
}

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	balances map[string]int64 // "owner|asset" -> balance
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{balances: make(map[string]int64)}
}

func accountKey(owner uuid.UUID, asset domain.AssetID) string {
	return owner.String() + "|" + string(asset)
}

// setBalance seeds a balance directly; test setup only.
func (r *inMemoryAccountRepo) setBalance(owner uuid.UUID, asset domain.AssetID, amount int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[accountKey(owner, asset)] = amount
}

func (r *inMemoryAccountRepo) Balance(ctx context.Context, owner uuid.UUID, asset domain.AssetID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[accountKey(owner, asset)], nil
}

func (r *inMemoryAccountRepo) Transfer(ctx context.Context, tx pgx.Tx, from, to uuid.UUID, asset domain.AssetID, amount int64) (int64, error) {
	if amount < 0 {
		return 0, apperror.ErrArithmeticOverflow()
	}
	if amount == 0 {
		return 0, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fromKey := accountKey(from, asset)
	if r.balances[fromKey] < amount {
		return 0, apperror.ErrInsufficientFunds()
	}
	r.balances[fromKey] -= amount
	r.balances[accountKey(to, asset)] += amount
	return amount, nil
}

func (r *inMemoryAccountRepo) Debit(ctx context.Context, tx pgx.Tx, owner uuid.UUID, asset domain.AssetID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := accountKey(owner, asset)
	if r.balances[key] < amount {
		return apperror.ErrInsufficientFunds()
	}
	r.balances[key] -= amount
	return nil
}

func (r *inMemoryAccountRepo) Credit(ctx context.Context, tx pgx.Tx, owner uuid.UUID, asset domain.AssetID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[accountKey(owner, asset)] += amount
	return nil
}

func (r *inMemoryAccountRepo) snapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := make(map[string]int64, len(r.balances))
	for k, v := range r.balances {
		snap[k] = v
	}
	return snap
}

func (r *inMemoryAccountRepo) restore(snap map[string]int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances = snap
}

// --- In-Memory Escrow Repo ---

type inMemoryEscrowRepo struct {
	mu      sync.RWMutex
	entries map[domain.TransactionIdentity]*domain.EscrowEntry
}

func newInMemoryEscrowRepo() *inMemoryEscrowRepo {
	return &inMemoryEscrowRepo{entries: make(map[domain.TransactionIdentity]*domain.EscrowEntry)}
}

func (r *inMemoryEscrowRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.EscrowEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[entry.Identity]; exists {
		return fmt.Errorf("identity already pending")
	}
	cp := *entry
	r.entries[entry.Identity] = &cp
	return nil
}

func (r *inMemoryEscrowRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id domain.TransactionIdentity) (*domain.EscrowEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *entry
	return &cp, nil
}

func (r *inMemoryEscrowRepo) Remove(ctx context.Context, tx pgx.Tx, id domain.TransactionIdentity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

func (r *inMemoryEscrowRepo) ListByMerchant(ctx context.Context, merchant uuid.UUID) ([]domain.EscrowEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.EscrowEntry
	for _, e := range r.entries {
		if e.Merchant == merchant {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryEscrowRepo) snapshot() map[domain.TransactionIdentity]*domain.EscrowEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := make(map[domain.TransactionIdentity]*domain.EscrowEntry, len(r.entries))
	for k, v := range r.entries {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

func (r *inMemoryEscrowRepo) restore(snap map[domain.TransactionIdentity]*domain.EscrowEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = snap
}

// --- In-Memory Asset Registry ---

type inMemoryAssetRegistry struct {
	mu     sync.RWMutex
	assets map[domain.AssetID]*domain.PaymentAsset
}

func newInMemoryAssetRegistry() *inMemoryAssetRegistry {
	return &inMemoryAssetRegistry{assets: make(map[domain.AssetID]*domain.PaymentAsset)}
}

func (r *inMemoryAssetRegistry) Put(ctx context.Context, asset *domain.PaymentAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *asset
	r.assets[asset.ID] = &cp
	return nil
}

func (r *inMemoryAssetRegistry) Get(ctx context.Context, id domain.AssetID) (*domain.PaymentAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	asset, ok := r.assets[id]
	if !ok {
		return nil, nil
	}
	cp := *asset
	return &cp, nil
}

func (r *inMemoryAssetRegistry) Remove(ctx context.Context, id domain.AssetID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.assets, id)
	return nil
}

func (r *inMemoryAssetRegistry) List(ctx context.Context) ([]domain.PaymentAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PaymentAsset, 0, len(r.assets))
	for _, a := range r.assets {
		out = append(out, *a)
	}
	return out, nil
}

// --- In-Memory Paywall Repo ---

type inMemoryPaywallRepo struct {
	mu     sync.RWMutex
	prices map[string]int64 // "merchant|item" -> price
}

func newInMemoryPaywallRepo() *inMemoryPaywallRepo {
	return &inMemoryPaywallRepo{prices: make(map[string]int64)}
}

func (r *inMemoryPaywallRepo) SetPrice(ctx context.Context, price *domain.PaywallPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prices[price.MerchantID.String()+"|"+price.ItemID] = price.PriceUSD
	return nil
}

func (r *inMemoryPaywallRepo) GetPrice(ctx context.Context, merchant uuid.UUID, itemID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prices[merchant.String()+"|"+itemID], nil
}

// --- Snapshot Transactor ---

// snapshotTransactor gives the in-memory repos real rollback semantics: Begin
// snapshots account balances and escrow entries, Rollback before Commit
// restores them. This is what lets the end-to-end tests observe that a failed
// callback undoes the funds movement of its operation.
type snapshotTransactor struct {
	mu       sync.Mutex
	accounts *inMemoryAccountRepo
	escrow   *inMemoryEscrowRepo
}

func newSnapshotTransactor(accounts *inMemoryAccountRepo, escrow *inMemoryEscrowRepo) *snapshotTransactor {
	return &snapshotTransactor{accounts: accounts, escrow: escrow}
}

func (t *snapshotTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock() // serialize transactions; released on Commit or Rollback
	return &snapshotTx{
		transactor:   t,
		accountsSnap: t.accounts.snapshot(),
		escrowSnap:   t.escrow.snapshot(),
	}, nil
}

// snapshotTx implements pgx.Tx over the snapshot transactor. Only Commit and
// Rollback carry behavior; the repos ignore the tx handle itself.
type snapshotTx struct {
	transactor   *snapshotTransactor
	accountsSnap map[string]int64
	escrowSnap   map[domain.TransactionIdentity]*domain.EscrowEntry
	done         bool
}

func (t *snapshotTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.transactor.mu.Unlock()
	return nil
}

func (t *snapshotTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.transactor.accounts.restore(t.accountsSnap)
	t.transactor.escrow.restore(t.escrowSnap)
	t.transactor.mu.Unlock()
	return nil
}

func (t *snapshotTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *snapshotTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *snapshotTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *snapshotTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *snapshotTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *snapshotTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *snapshotTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *snapshotTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *snapshotTx) Conn() *pgx.Conn { return nil }

// --- Fake Asset Exchange ---

// fakeExchange converts at a fixed integer rate table with a 1% haircut, so
// conversions are visibly lossy the way a real venue is.
type fakeExchange struct {
	mu    sync.RWMutex
	rates map[string]float64 // "FROM>TO" -> rate
}

func newFakeExchange() *fakeExchange {
	return &fakeExchange{rates: make(map[string]float64)}
}

func (e *fakeExchange) setRate(from, to domain.AssetID, rate float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rates[string(from)+">"+string(to)] = rate
}

func (e *fakeExchange) Convert(ctx context.Context, from, to domain.AssetID, amount int64, path []domain.AssetID) (int64, error) {
	if from == to {
		return amount, nil
	}
	e.mu.RLock()
	rate, ok := e.rates[string(from)+">"+string(to)]
	e.mu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("no route from %s to %s", from, to)
	}
	return int64(float64(amount) * rate * 0.99), nil
}
