package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/storefront/pkg/products"
	"github.com/storekit/storefront/pkg/storage"
)

func headphones() products.Product {
	return products.Product{ID: 1, Title: "Wireless Headphones", Category: "Electronics", Price: 100, Stock: 3}
}

func wallet() products.Product {
	return products.Product{ID: 2, Title: "Leather Wallet", Category: "Fashion", Price: 35, Stock: 10}
}

func TestAddMergesByProductID(t *testing.T) {
	c := New()
	c.Add(headphones())
	c.Add(headphones())

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestAddStopsAtStockCeiling(t *testing.T) {
	c := New()
	p := headphones() // stock 3

	// Adding stock+1 times yields exactly stock, never stock+1.
	for i := 0; i < p.Stock+1; i++ {
		c.Add(p)
	}

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, p.Stock, entries[0].Quantity)
}

func TestAddZeroStockStillInserts(t *testing.T) {
	c := New()
	c.Add(products.Product{ID: 9, Title: "Sold Out", Stock: 0})

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Quantity)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(headphones())
	c.Add(wallet())

	c.Remove(1)
	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].ID)

	// Removing an absent product is a no-op.
	c.Remove(99)
	assert.Len(t, c.Entries(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.Add(headphones()) // stock 3, quantity 1

	t.Run("sets quantity exactly", func(t *testing.T) {
		c.UpdateQuantity(1, 3)
		assert.Equal(t, 3, c.Entries()[0].Quantity)
	})

	t.Run("rejects quantity above stock", func(t *testing.T) {
		c.UpdateQuantity(1, 4)
		assert.Equal(t, 3, c.Entries()[0].Quantity)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		c.UpdateQuantity(1, 0)
		assert.Equal(t, 3, c.Entries()[0].Quantity)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		c.UpdateQuantity(1, -1)
		assert.Equal(t, 3, c.Entries()[0].Quantity)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		c.UpdateQuantity(42, 2)
		require.Len(t, c.Entries(), 1)
	})
}

func TestTotalsComputedFresh(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())

	c.Add(headphones()) // 100
	c.Add(headphones()) // 200
	c.Add(wallet())     // 235

	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, 235.0, c.TotalPrice())

	c.UpdateQuantity(2, 4)
	assert.Equal(t, 6, c.TotalItems())
	assert.Equal(t, 340.0, c.TotalPrice())

	c.Clear()
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := storage.NewMemory()

	c := New(WithStorage(store))
	c.Add(headphones())
	c.Add(headphones())
	c.Add(wallet())
	before := c.Entries()

	// A fresh store against the same storage is the "page reload".
	reloaded := New(WithStorage(store))
	assert.Equal(t, before, reloaded.Entries())
	assert.Equal(t, 3, reloaded.TotalItems())
	assert.Equal(t, 235.0, reloaded.TotalPrice())
}

func TestPersistenceSurvivesClear(t *testing.T) {
	store := storage.NewMemory()

	c := New(WithStorage(store))
	c.Add(wallet())
	c.Clear()

	reloaded := New(WithStorage(store))
	assert.Empty(t, reloaded.Entries())
}

func TestStorageFailureDoesNotBlockMutation(t *testing.T) {
	c := New(WithStorage(failingStore{}))
	c.Add(headphones())
	assert.Len(t, c.Entries(), 1, "mutation proceeds in-memory when persistence fails")
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Save("cart-storage", []byte("[unclosed")))

	c := New(WithStorage(store))
	assert.Empty(t, c.Entries())
}

func TestOnChange(t *testing.T) {
	c := New()
	var calls [][]Entry
	c.OnChange(func(entries []Entry) {
		calls = append(calls, entries)
	})

	c.Add(headphones())
	require.Len(t, calls, 1)
	assert.Equal(t, 1, calls[0][0].Quantity)

	// Ineffective mutations fire no hooks.
	c.UpdateQuantity(1, 0)
	c.Remove(99)
	assert.Len(t, calls, 1)

	c.Clear()
	require.Len(t, calls, 2)
	assert.Empty(t, calls[1])
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := New()
	c.Add(headphones())

	entries := c.Entries()
	entries[0].Quantity = 99

	assert.Equal(t, 1, c.Entries()[0].Quantity)
}

// failingStore always errors, standing in for full or unavailable storage.
type failingStore struct{}

func (failingStore) Load(string) ([]byte, bool, error) {
	return nil, false, assert.AnError
}
func (failingStore) Save(string, []byte) error { return assert.AnError }
func (failingStore) Delete(string) error       { return assert.AnError }
