// Package cart implements the shopping cart store. Entries wrap a product
// with a quantity bounded by [1, stock]; mutations that would violate the
// bounds are silently rejected, leaving the cart unchanged. When constructed
// with storage, every effective mutation snapshots the entry list so the
// cart survives a process restart.
package cart

import (
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/storekit/storefront/pkg/constants"
	"github.com/storekit/storefront/pkg/logging"
	"github.com/storekit/storefront/pkg/products"
	"github.com/storekit/storefront/pkg/storage"
)

// Entry is one cart line: a product plus the selected quantity.
// Quantity is always in [1, Stock-at-mutation-time].
type Entry struct {
	products.Product `yaml:",inline"`
	Quantity         int `json:"quantity" yaml:"quantity"`
}

// ChangeHook is called with a snapshot of the entries after every effective
// mutation.
type ChangeHook func(entries []Entry)

// Store holds the cart entries, one per product ID, in insertion order.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	store   storage.Store
	hooks   []ChangeHook
}

// Option configures a Store.
type Option func(*Store)

// WithStorage enables durable persistence. The store hydrates from the
// existing snapshot at construction and writes back after every mutation.
func WithStorage(s storage.Store) Option {
	return func(c *Store) {
		c.store = s
	}
}

// New creates a cart store with the given options.
func New(opts ...Option) *Store {
	c := &Store{}
	for _, opt := range opts {
		opt(c)
	}
	c.hydrate()
	return c
}

// Add puts one unit of the product in the cart. An existing entry is
// incremented unless it is already at the stock ceiling; a new entry starts
// at quantity 1. Zero-stock products still insert — gating the action on
// stock is the caller's job.
func (c *Store) Add(p products.Product) {
	c.mu.Lock()
	changed := false
	if i := c.indexLocked(p.ID); i >= 0 {
		if c.entries[i].Quantity < p.Stock {
			c.entries[i].Quantity++
			changed = true
		}
	} else {
		c.entries = append(c.entries, Entry{Product: p, Quantity: 1})
		changed = true
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.afterChange(snapshot)
	}
}

// Remove deletes the entry for productID, if present.
func (c *Store) Remove(productID int) {
	c.mu.Lock()
	changed := false
	if i := c.indexLocked(productID); i >= 0 {
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		changed = true
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.afterChange(snapshot)
	}
}

// UpdateQuantity sets the entry's quantity to exactly quantity. The update
// is rejected, leaving the cart unchanged, when no entry exists, when
// quantity exceeds the entry's stock, or when quantity is below 1.
func (c *Store) UpdateQuantity(productID, quantity int) {
	c.mu.Lock()
	changed := false
	if i := c.indexLocked(productID); i >= 0 {
		if quantity >= 1 && quantity <= c.entries[i].Stock {
			c.entries[i].Quantity = quantity
			changed = true
		} else {
			logging.Debug().
				Int("product_id", productID).
				Int("quantity", quantity).
				Int("stock", c.entries[i].Stock).
				Msg("rejected cart quantity update")
		}
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.afterChange(snapshot)
	}
}

// Clear empties the cart.
func (c *Store) Clear() {
	c.mu.Lock()
	changed := len(c.entries) > 0
	c.entries = nil
	c.mu.Unlock()

	if changed {
		c.afterChange([]Entry{})
	}
}

// Entries returns a copy of the cart entries in insertion order.
func (c *Store) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Len returns the number of distinct entries.
func (c *Store) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TotalItems returns the sum of quantities across entries, computed fresh
// from current state on every call.
func (c *Store) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, e := range c.entries {
		total += e.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity across entries,
// computed fresh from current state on every call.
func (c *Store) TotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0.0
	for _, e := range c.entries {
		total += e.Price * float64(e.Quantity)
	}
	return total
}

// OnChange registers a hook called after every effective mutation.
func (c *Store) OnChange(fn ChangeHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, fn)
}

// indexLocked returns the position of the entry for productID, or -1.
func (c *Store) indexLocked(productID int) int {
	for i, e := range c.entries {
		if e.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Store) snapshotLocked() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// afterChange persists and notifies with a snapshot taken under the lock.
// Hooks run outside the lock so they may call back into the store.
func (c *Store) afterChange(snapshot []Entry) {
	c.persist(snapshot)

	c.mu.RLock()
	hooks := make([]ChangeHook, len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.RUnlock()

	for _, fn := range hooks {
		fn(snapshot)
	}
}

// hydrate restores entries from the durable snapshot, best-effort.
func (c *Store) hydrate() {
	if c.store == nil {
		return
	}
	data, ok, err := c.store.Load(constants.CartStorageKey)
	if err != nil {
		logging.Warn().Err(err).Msg("loading cart snapshot")
		return
	}
	if !ok {
		return
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		logging.Warn().Err(err).Msg("decoding cart snapshot")
		return
	}
	c.entries = entries
}

// persist writes the snapshot to durable storage, best-effort. Failures are
// logged and swallowed; the in-memory state is already updated.
func (c *Store) persist(snapshot []Entry) {
	if c.store == nil {
		return
	}
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		logging.Warn().Err(err).Msg("encoding cart snapshot")
		return
	}
	if err := c.store.Save(constants.CartStorageKey, data); err != nil {
		logging.Warn().Err(err).Msg("persisting cart snapshot")
	}
}
