// Package storefront wires the product catalog and the cart, wishlist, and
// compare stores into a single state container, constructed once at process
// start and passed by reference to consumers. Views observe mutations
// through the change-hook surface instead of polling hidden globals.
package storefront

import (
	"fmt"

	"github.com/storekit/storefront/pkg/cart"
	"github.com/storekit/storefront/pkg/catalog"
	"github.com/storekit/storefront/pkg/compare"
	"github.com/storekit/storefront/pkg/wishlist"
)

// Storefront is the shared application state: one catalog and the three
// independent stores. There are no cross-store transactions.
type Storefront interface {
	// Catalog returns the product data source.
	Catalog() catalog.Catalog

	// Cart returns the shopping cart store.
	Cart() *cart.Store

	// Wishlist returns the saved-products store.
	Wishlist() *wishlist.Store

	// Compare returns the comparison store.
	Compare() *compare.Store

	// OnCartChange registers a callback for cart mutations.
	OnCartChange(cart.ChangeHook)

	// OnWishlistChange registers a callback for wishlist mutations.
	OnWishlistChange(wishlist.ChangeHook)

	// OnCompareChange registers a callback for compare mutations.
	OnCompareChange(compare.ChangeHook)
}

// storefront is the internal implementation of the Storefront interface.
type storefront struct {
	catalog  catalog.Catalog
	cart     *cart.Store
	wishlist *wishlist.Store
	compare  *compare.Store
}

// New creates a Storefront with the given options. Without WithStorage the
// cart and compare stores run memory-only; the wishlist always does.
func New(opts ...Option) (Storefront, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying storefront option: %w", err)
		}
	}

	cat := cfg.catalog
	if cat == nil {
		var err error
		cat, err = catalog.New(cfg.catalogOptions...)
		if err != nil {
			return nil, fmt.Errorf("creating catalog: %w", err)
		}
	}

	var cartOpts []cart.Option
	var compareOpts []compare.Option
	if cfg.storage != nil {
		cartOpts = append(cartOpts, cart.WithStorage(cfg.storage))
		compareOpts = append(compareOpts, compare.WithStorage(cfg.storage))
	}

	return &storefront{
		catalog:  cat,
		cart:     cart.New(cartOpts...),
		wishlist: wishlist.New(),
		compare:  compare.New(compareOpts...),
	}, nil
}

// Catalog returns the product data source.
func (s *storefront) Catalog() catalog.Catalog {
	return s.catalog
}

// Cart returns the shopping cart store.
func (s *storefront) Cart() *cart.Store {
	return s.cart
}

// Wishlist returns the saved-products store.
func (s *storefront) Wishlist() *wishlist.Store {
	return s.wishlist
}

// Compare returns the comparison store.
func (s *storefront) Compare() *compare.Store {
	return s.compare
}

// OnCartChange registers a callback for cart mutations.
func (s *storefront) OnCartChange(fn cart.ChangeHook) {
	s.cart.OnChange(fn)
}

// OnWishlistChange registers a callback for wishlist mutations.
func (s *storefront) OnWishlistChange(fn wishlist.ChangeHook) {
	s.wishlist.OnChange(fn)
}

// OnCompareChange registers a callback for compare mutations.
func (s *storefront) OnCompareChange(fn compare.ChangeHook) {
	s.compare.OnChange(fn)
}
