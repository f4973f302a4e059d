// Package cart implements the cart ledger: an ordered list of line items
// gated by the identity collaborator and mirrored to storage while a
// session is active.
package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"shopfront/domain"
)

// Ledger owns the line-item list. Every mutation re-reads the identity
// predicate; unauthenticated mutations never touch the lines.
type Ledger struct {
	mu       sync.RWMutex
	identity domain.Identity
	storage  domain.Storage
	items    []domain.CartLine
}

// New constructs a Ledger. If a session is already active the persisted
// cart is replayed with quantities set directly; a corrupt snapshot is
// discarded.
func New(ctx context.Context, identity domain.Identity, storage domain.Storage) *Ledger {
	l := &Ledger{identity: identity, storage: storage}
	if !identity.IsAuthenticated() {
		return l
	}
	raw, ok, err := storage.Get(ctx, domain.KeyCart)
	if err != nil || !ok {
		return l
	}
	var saved domain.Cart
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		slog.Warn("discarding corrupt saved cart", "error", err)
		_ = storage.Delete(ctx, domain.KeyCart)
		return l
	}
	for _, line := range saved.Items {
		if line.Quantity <= 0 {
			continue
		}
		l.items = append(l.items, line)
	}
	return l
}

// Add appends the product as a new line, or bumps the quantity of an
// existing one. When no session is active the product is parked as the
// pending item instead and requiresLogin is true.
func (l *Ledger) Add(ctx context.Context, p domain.Product) (requiresLogin bool) {
	if !l.identity.IsAuthenticated() {
		if b, err := json.Marshal(p); err == nil {
			if err := l.storage.Set(ctx, domain.KeyPendingItem, string(b)); err != nil {
				slog.Warn("park pending item failed", "error", err)
			}
		}
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.addLocked(p)
	l.persistLocked(ctx)
	return false
}

// addLocked applies the increment-or-append rule. Callers hold l.mu.
func (l *Ledger) addLocked(p domain.Product) {
	for i := range l.items {
		if l.items[i].Product.ID == p.ID {
			l.items[i].Quantity++
			return
		}
	}
	l.items = append(l.items, domain.CartLine{Product: p, Quantity: 1})
}

// Remove drops the line for the given product id. Unauthenticated calls
// and unknown ids are silent no-ops.
func (l *Ledger) Remove(ctx context.Context, productID int) {
	if !l.identity.IsAuthenticated() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].Product.ID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.persistLocked(ctx)
			return
		}
	}
}

// UpdateQuantity sets the quantity for the given product id; zero or
// negative removes the line. Unauthenticated calls and unknown ids are
// silent no-ops.
func (l *Ledger) UpdateQuantity(ctx context.Context, productID, quantity int) {
	if !l.identity.IsAuthenticated() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			l.items = append(l.items[:i], l.items[i+1:]...)
		} else {
			l.items[i].Quantity = quantity
		}
		l.persistLocked(ctx)
		return
	}
}

// Clear empties the ledger and deletes its persisted copy. There is no
// authentication gate: checkout completion and logout must always be able
// to clear state.
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	if err := l.storage.Delete(ctx, domain.KeyCart); err != nil {
		slog.Warn("remove saved cart failed", "error", err)
	}
}

// AddPendingItem commits a previously parked product once a session is
// active. It is idempotent: without a pending item or a session it returns
// false and changes nothing.
func (l *Ledger) AddPendingItem(ctx context.Context) (domain.Product, bool) {
	if !l.identity.IsAuthenticated() {
		return domain.Product{}, false
	}
	raw, ok, err := l.storage.Get(ctx, domain.KeyPendingItem)
	if err != nil || !ok {
		return domain.Product{}, false
	}
	var p domain.Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		slog.Warn("discarding corrupt pending item", "error", err)
		_ = l.storage.Delete(ctx, domain.KeyPendingItem)
		return domain.Product{}, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.addLocked(p)
	l.persistLocked(ctx)
	_ = l.storage.Delete(ctx, domain.KeyPendingItem)
	return p, true
}

// Lines returns a copy of the line list in insertion order.
func (l *Ledger) Lines() []domain.CartLine {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.CartLine(nil), l.items...)
}

// Total is the sum of price multiplied by quantity over all lines.
func (l *Ledger) Total() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return domain.Cart{Items: l.items}.Total()
}

// Count is the sum of quantities over all lines.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return domain.Cart{Items: l.items}.Count()
}

// persistLocked mirrors the full ledger to storage while a session is
// active. Callers hold l.mu.
func (l *Ledger) persistLocked(ctx context.Context) {
	if !l.identity.IsAuthenticated() {
		return
	}
	b, err := json.Marshal(domain.Cart{Items: l.items})
	if err != nil {
		return
	}
	if err := l.storage.Set(ctx, domain.KeyCart, string(b)); err != nil {
		slog.Warn("persist cart failed", "error", err)
	}
}
