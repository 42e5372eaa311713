package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/storefront/pkg/products"
)

func testProducts() []products.Product {
	return []products.Product{
		{ID: 1, Title: "Product 1", Description: "Description 1", Category: "Electronics", Price: 100, Rating: 4.5, Stock: 10},
		{ID: 2, Title: "Product 2", Description: "Description 2", Category: "Fashion", Price: 50, Rating: 4.0, Stock: 5},
		{ID: 3, Title: "Product 3", Description: "Description 3", Category: "Electronics", Price: 150, Rating: 4.8, Stock: 3},
	}
}

func testReviews() []products.Review {
	return []products.Review{
		{ID: 1, ProductID: 1, Comment: "Great product"},
		{ID: 2, ProductID: 1, Comment: "Excellent"},
		{ID: 3, ProductID: 2, Comment: "Nice"},
	}
}

// newTestCatalog builds a catalog over the small fixture set with the
// simulated latency disabled.
func newTestCatalog(t *testing.T, opts ...Option) Catalog {
	t.Helper()
	opts = append([]Option{
		WithLatency(0),
		WithProducts(testProducts()),
		WithReviews(testReviews()),
	}, opts...)
	cat, err := New(opts...)
	require.NoError(t, err)
	return cat
}

func TestProducts(t *testing.T) {
	cat := newTestCatalog(t)
	list, err := cat.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Product 1", list[0].Title)
}

func TestProductByID(t *testing.T) {
	cat := newTestCatalog(t)

	t.Run("hit", func(t *testing.T) {
		p, ok, err := cat.Product(context.Background(), 2)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Product 2", p.Title)
	})

	t.Run("miss is not an error", func(t *testing.T) {
		_, ok, err := cat.Product(context.Background(), 999)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestProductsByID(t *testing.T) {
	cat := newTestCatalog(t)

	list, err := cat.ProductsByID(context.Background(), []int{3, 1, 999})
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Catalog order, not request order.
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 3, list[1].ID)
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	cat := newTestCatalog(t, WithProducts([]products.Product{
		{ID: 1, Category: "A"},
		{ID: 2, Category: "B"},
		{ID: 3, Category: "A"},
		{ID: 4, Category: "C"},
	}))

	categories, err := cat.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, categories)
}

func TestReviews(t *testing.T) {
	cat := newTestCatalog(t)

	reviews, err := cat.Reviews(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Great product", reviews[0].Comment)

	none, err := cat.Reviews(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFilterDelegatesToEngine(t *testing.T) {
	cat := newTestCatalog(t)

	page, err := cat.Filter(context.Background(), products.Query{
		Category: "Electronics",
		SortBy:   products.SortByPrice,
		Order:    products.OrderDesc,
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, 150.0, page.Data[0].Price)
	assert.Equal(t, 100.0, page.Data[1].Price)
}

func TestLatencyHonorsContext(t *testing.T) {
	cat, err := New(
		WithLatency(500*time.Millisecond),
		WithProducts(testProducts()),
		WithReviews(testReviews()),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = cat.Products(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "cancellation should cut the delay short")
}

func TestFailureInjection(t *testing.T) {
	injected := assert.AnError
	cat := newTestCatalog(t, WithFailure(func(op string) error {
		if op == "filter" {
			return injected
		}
		return nil
	}))

	_, err := cat.Filter(context.Background(), products.Query{})
	assert.ErrorIs(t, err, injected)

	_, err = cat.Products(context.Background())
	assert.NoError(t, err)
}

func TestInvalidOptions(t *testing.T) {
	_, err := New(WithLatency(-time.Second))
	assert.Error(t, err)

	_, err = New(WithProducts(nil))
	assert.Error(t, err)
}

func TestEmbeddedFixtures(t *testing.T) {
	cat, err := New(WithLatency(0))
	require.NoError(t, err)

	list, err := cat.Products(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, list)

	categories, err := cat.Categories(context.Background())
	require.NoError(t, err)
	assert.Contains(t, categories, "Electronics")

	reviews, err := cat.Reviews(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEmpty(t, reviews)
}

func TestProductsReturnsCopy(t *testing.T) {
	cat := newTestCatalog(t)

	list, err := cat.Products(context.Background())
	require.NoError(t, err)
	list[0].Title = "mutated"

	again, err := cat.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Product 1", again[0].Title)
}
