package service

import (
	"sync/atomic"

	"escrow-settlement-engine/pkg/apperror"
)

// ReentrancyGuard serializes the engine's protected entry points. A nested
// call from inside an outer call (e.g. a callback target calling back into
// the engine) is rejected instead of queued, so callbacks can never observe
// or mutate half-committed custody state.
type ReentrancyGuard struct {
	busy atomic.Bool
}

// NewReentrancyGuard creates a guard in the released state.
func NewReentrancyGuard() *ReentrancyGuard {
	return &ReentrancyGuard{}
}

// Enter acquires the guard, failing with ReentrantCall if it is held.
func (g *ReentrancyGuard) Enter() error {
	if !g.busy.CompareAndSwap(false, true) {
		return apperror.ErrReentrantCall()
	}
	return nil
}

// Exit releases the guard.
func (g *ReentrancyGuard) Exit() {
	g.busy.Store(false)
}
