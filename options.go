package storefront

import (
	"github.com/storekit/storefront/pkg/catalog"
	"github.com/storekit/storefront/pkg/storage"
)

// Option is a function that configures a Storefront instance.
type Option func(*config) error

// config collects the construction-time configuration.
type config struct {
	catalog        catalog.Catalog
	catalogOptions []catalog.Option
	storage        storage.Store
}

// WithCatalog configures the product data source to use. It takes
// precedence over WithCatalogOptions.
func WithCatalog(cat catalog.Catalog) Option {
	return func(c *config) error {
		c.catalog = cat
		return nil
	}
}

// WithCatalogOptions configures the default in-memory catalog built when no
// explicit catalog is provided.
func WithCatalogOptions(opts ...catalog.Option) Option {
	return func(c *config) error {
		c.catalogOptions = append(c.catalogOptions, opts...)
		return nil
	}
}

// WithStorage configures durable storage for the cart and compare stores,
// so their state survives a process restart. The wishlist deliberately
// stays memory-only.
func WithStorage(s storage.Store) Option {
	return func(c *config) error {
		c.storage = s
		return nil
	}
}
