// Package catalog provides the product data source: read-only product and
// review reference data behind an interface that simulates network latency
// on every call. The baseline implementation is in-memory, always succeeds,
// and supports pluggable failure injection for tests.
package catalog

import (
	"context"

	"github.com/storekit/storefront/pkg/products"
)

// Catalog is the read-only product data source. Every call suspends for the
// configured simulated latency before resolving, honoring context
// cancellation. Lookup misses are reported in-band, never as errors.
type Catalog interface {
	// Products returns all products.
	Products(ctx context.Context) ([]products.Product, error)

	// Product returns the product with the given ID.
	// A miss returns ok == false, not an error.
	Product(ctx context.Context, id int) (p products.Product, ok bool, err error)

	// ProductsByID returns the products matching the given IDs, in catalog
	// order. Unknown IDs are skipped.
	ProductsByID(ctx context.Context, ids []int) ([]products.Product, error)

	// Categories returns the distinct product categories in first-seen order.
	Categories(ctx context.Context) ([]string, error)

	// Reviews returns the reviews for the given product, possibly empty.
	Reviews(ctx context.Context, productID int) ([]products.Review, error)

	// Filter runs the filter/sort/paginate engine over the catalog.
	Filter(ctx context.Context, q products.Query) (products.Page, error)
}
