// Package compare implements the side-by-side comparison store: an ordered
// pair of at most two products with FIFO eviction. Adding a third product
// evicts the first slot and shifts, so the pair always holds the latest two
// distinct additions. The pair persists to durable storage under its own
// namespace.
package compare

import (
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/storekit/storefront/pkg/constants"
	"github.com/storekit/storefront/pkg/logging"
	"github.com/storekit/storefront/pkg/products"
	"github.com/storekit/storefront/pkg/storage"
)

// ChangeHook is called with a snapshot of the compared products after every
// effective mutation.
type ChangeHook func(items []products.Product)

// Store holds up to two products for comparison.
// It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	slots []products.Product
	store storage.Store
	hooks []ChangeHook
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

// New creates a compare store with the given options.
func New(opts ...Option) *Store {
	c := &Store{}
	for _, opt := range opts {
		opt(c)
	}
	c.hydrate()
	return c
}

// Add puts the product in the comparison pair. Products already present are
// ignored. When the pair is full, the first slot is evicted and the
// remaining product shifts into it.
func (c *Store) Add(p products.Product) {
	c.mu.Lock()
	if c.indexLocked(p.ID) >= 0 {
		c.mu.Unlock()
		return
	}
	if len(c.slots) < constants.MaxCompareProducts {
		c.slots = append(c.slots, p)
	} else {
		c.slots = []products.Product{c.slots[len(c.slots)-1], p}
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.afterChange(snapshot)
}

// Remove deletes the product with productID from whichever slot holds it.
// The remaining product, if any, keeps its slot.
func (c *Store) Remove(productID int) {
	c.mu.Lock()
	i := c.indexLocked(productID)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.slots = append(c.slots[:i], c.slots[i+1:]...)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.afterChange(snapshot)
}

// Clear empties both slots.
func (c *Store) Clear() {
	c.mu.Lock()
	changed := len(c.slots) > 0
	c.slots = nil
	c.mu.Unlock()

	if changed {
		c.afterChange([]products.Product{})
	}
}

// Contains reports whether a product with productID is being compared.
func (c *Store) Contains(productID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexLocked(productID) >= 0
}

// Products returns a copy of the compared products in slot order.
func (c *Store) Products() []products.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Len returns the number of occupied slots.
func (c *Store) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots)
}

// OnChange registers a hook called after every effective mutation.
func (c *Store) OnChange(fn ChangeHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, fn)
}

func (c *Store) indexLocked(productID int) int {
	for i, p := range c.slots {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Store) snapshotLocked() []products.Product {
	out := make([]products.Product, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *Store) afterChange(snapshot []products.Product) {
	c.persist(snapshot)

	c.mu.RLock()
	hooks := make([]ChangeHook, len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.RUnlock()

	for _, fn := range hooks {
		fn(snapshot)
	}
}

// hydrate restores the pair from the durable snapshot, best-effort.
func (c *Store) hydrate() {
	if c.store == nil {
		return
	}
	data, ok, err := c.store.Load(constants.CompareStorageKey)
	if err != nil {
		logging.Warn().Err(err).Msg("loading compare snapshot")
		return
	}
	if !ok {
		return
	}
	var slots []products.Product
	if err := yaml.Unmarshal(data, &slots); err != nil {
		logging.Warn().Err(err).Msg("decoding compare snapshot")
		return
	}
	if len(slots) > constants.MaxCompareProducts {
		slots = slots[:constants.MaxCompareProducts]
	}
	c.slots = slots
}

// persist writes the snapshot to durable storage, best-effort.
func (c *Store) persist(snapshot []products.Product) {
	if c.store == nil {
		return
	}
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		logging.Warn().Err(err).Msg("encoding compare snapshot")
		return
	}
	if err := c.store.Save(constants.CompareStorageKey, data); err != nil {
		logging.Warn().Err(err).Msg("persisting compare snapshot")
	}
}
