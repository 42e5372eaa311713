package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/storekit/storefront/pkg/constants"
	"github.com/storekit/storefront/pkg/products"
)

// FailureFunc injects an error for the named operation. Returning nil lets
// the call proceed normally.
type FailureFunc func(op string) error

// Option is a function that configures the in-memory catalog.
type Option func(*config) error

// config is the configuration for the in-memory catalog.
type config struct {
	latency  time.Duration
	products []products.Product
	reviews  []products.Review
	fail     FailureFunc
}

// WithLatency configures the fixed simulated delay applied to every call.
// Zero disables the delay.
func WithLatency(d time.Duration) Option {
	return func(cfg *config) error {
		if d < 0 {
			return fmt.Errorf("latency cannot be negative")
		}
		cfg.latency = d
		return nil
	}
}

// WithProducts replaces the embedded product fixtures.
func WithProducts(list []products.Product) Option {
	return func(cfg *config) error {
		if len(list) == 0 {
			return fmt.Errorf("product list cannot be empty")
		}
		cfg.products = make([]products.Product, len(list))
		copy(cfg.products, list)
		return nil
	}
}

// WithReviews replaces the embedded review fixtures.
func WithReviews(list []products.Review) Option {
	return func(cfg *config) error {
		cfg.reviews = make([]products.Review, len(list))
		copy(cfg.reviews, list)
		return nil
	}
}

// WithFailure installs a failure injection point for testing. The function
// is consulted before each operation's simulated delay.
func WithFailure(fn FailureFunc) Option {
	return func(cfg *config) error {
		cfg.fail = fn
		return nil
	}
}

// memory is the in-memory Catalog implementation.
type memory struct {
	latency  time.Duration
	products []products.Product
	reviews  []products.Review
	fail     FailureFunc
}

// New creates an in-memory catalog. Without WithProducts/WithReviews it
// serves the embedded fixture set.
func New(opts ...Option) (Catalog, error) {
	cfg := &config{
		latency: constants.DefaultLatency,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying catalog option: %w", err)
		}
	}

	if cfg.products == nil {
		loaded, err := loadFixtureProducts()
		if err != nil {
			return nil, fmt.Errorf("loading product fixtures: %w", err)
		}
		cfg.products = loaded
	}
	if cfg.reviews == nil {
		loaded, err := loadFixtureReviews()
		if err != nil {
			return nil, fmt.Errorf("loading review fixtures: %w", err)
		}
		cfg.reviews = loaded
	}

	return &memory{
		latency:  cfg.latency,
		products: cfg.products,
		reviews:  cfg.reviews,
		fail:     cfg.fail,
	}, nil
}

// Products returns a copy of all products.
func (m *memory) Products(ctx context.Context) ([]products.Product, error) {
	if err := m.wait(ctx, "products"); err != nil {
		return nil, err
	}
	out := make([]products.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

// Product returns the product with the given ID, reporting a miss in-band.
func (m *memory) Product(ctx context.Context, id int) (products.Product, bool, error) {
	if err := m.wait(ctx, "product"); err != nil {
		return products.Product{}, false, err
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return products.Product{}, false, nil
}

// ProductsByID returns the matching products in catalog order.
func (m *memory) ProductsByID(ctx context.Context, ids []int) ([]products.Product, error) {
	if err := m.wait(ctx, "products_by_id"); err != nil {
		return nil, err
	}
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]products.Product, 0, len(ids))
	for _, p := range m.products {
		if _, ok := wanted[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Categories returns the distinct categories in first-seen order.
func (m *memory) Categories(ctx context.Context) ([]string, error) {
	if err := m.wait(ctx, "categories"); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range m.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out, nil
}

// Reviews returns the reviews for the given product.
func (m *memory) Reviews(ctx context.Context, productID int) ([]products.Review, error) {
	if err := m.wait(ctx, "reviews"); err != nil {
		return nil, err
	}
	out := make([]products.Review, 0)
	for _, r := range m.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Filter runs the filter engine over the catalog.
func (m *memory) Filter(ctx context.Context, q products.Query) (products.Page, error) {
	if err := m.wait(ctx, "filter"); err != nil {
		return products.Page{}, err
	}
	return products.Filter(m.products, q), nil
}

// wait applies failure injection and the simulated latency. It is the one
// suspension point of every catalog call.
func (m *memory) wait(ctx context.Context, op string) error {
	if m.fail != nil {
		if err := m.fail(op); err != nil {
			return err
		}
	}
	if m.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
