// Package wishlist implements the saved-products store. Products are
// deduplicated by ID and carry no quantity. Unlike the cart and compare
// stores the wishlist is deliberately memory-only, preserving the source
// system's behavior of resetting on reload.
package wishlist

import (
	"sync"

	"github.com/storekit/storefront/pkg/products"
)

// ChangeHook is called with a snapshot of the products after every
// effective mutation.
type ChangeHook func(items []products.Product)

// Store holds wishlisted products in insertion order.
// It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	items []products.Product
	hooks []ChangeHook
}

// New creates an empty wishlist store.
func New() *Store {
	return &Store{}
}

// Add saves the product unless one with the same ID is already present.
// Adding is idempotent.
func (w *Store) Add(p products.Product) {
	w.mu.Lock()
	if w.indexLocked(p.ID) >= 0 {
		w.mu.Unlock()
		return
	}
	w.items = append(w.items, p)
	snapshot := w.snapshotLocked()
	w.mu.Unlock()

	w.notify(snapshot)
}

// Remove deletes the product with productID, if present.
func (w *Store) Remove(productID int) {
	w.mu.Lock()
	i := w.indexLocked(productID)
	if i < 0 {
		w.mu.Unlock()
		return
	}
	w.items = append(w.items[:i], w.items[i+1:]...)
	snapshot := w.snapshotLocked()
	w.mu.Unlock()

	w.notify(snapshot)
}

// Contains reports whether a product with productID is wishlisted.
func (w *Store) Contains(productID int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.indexLocked(productID) >= 0
}

// Products returns a copy of the wishlisted products in insertion order.
func (w *Store) Products() []products.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snapshotLocked()
}

// Len returns the number of wishlisted products.
func (w *Store) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

// Clear empties the wishlist.
func (w *Store) Clear() {
	w.mu.Lock()
	changed := len(w.items) > 0
	w.items = nil
	w.mu.Unlock()

	if changed {
		w.notify([]products.Product{})
	}
}

// OnChange registers a hook called after every effective mutation.
func (w *Store) OnChange(fn ChangeHook) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hooks = append(w.hooks, fn)
}

func (w *Store) indexLocked(productID int) int {
	for i, p := range w.items {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

func (w *Store) snapshotLocked() []products.Product {
	out := make([]products.Product, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Store) notify(snapshot []products.Product) {
	w.mu.RLock()
	hooks := make([]ChangeHook, len(w.hooks))
	copy(hooks, w.hooks)
	w.mu.RUnlock()

	for _, fn := range hooks {
		fn(snapshot)
	}
}
