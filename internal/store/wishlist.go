package store

import (
	"sync"

	"storefront/internal/catalog"
)

// Wishlist is a deduplicated set of saved product snapshots, one entry per
// product id, in insertion order. There is no quantity concept.
type Wishlist struct {
	mu      sync.RWMutex
	entries []catalog.Product
}

func NewWishlist() *Wishlist {
	return &Wishlist{}
}

// Add inserts the product snapshot unless its id is already present.
// Idempotent.
func (w *Wishlist) Add(p catalog.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, e := range w.entries {
		if e.ID == p.ID {
			return
		}
	}
	w.entries = append(w.entries, p)
}

// Remove deletes the entry if present; absent ids are a no-op.
func (w *Wishlist) Remove(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, e := range w.entries {
		if e.ID == id {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			return
		}
	}
}

// Contains reports whether a product id is saved. Used by presentation to
// toggle the affordance state.
func (w *Wishlist) Contains(id int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, e := range w.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Entries returns a copy of the saved products in insertion order.
func (w *Wishlist) Entries() []catalog.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()

	entries := make([]catalog.Product, len(w.entries))
	copy(entries, w.entries)
	return entries
}
