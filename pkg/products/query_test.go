package products

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	q := Query{}.Normalize()
	assert.Equal(t, DefaultQuery(), q)
	assert.True(t, math.IsInf(q.MaxPrice, 1))
	assert.Equal(t, SortByTitle, q.SortBy)
	assert.Equal(t, OrderAsc, q.Order)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 8, q.PageSize)
}

func TestNormalizeRejectsUnknownSort(t *testing.T) {
	q := Query{SortBy: "popularity", Order: "sideways"}.Normalize()
	assert.Equal(t, SortByTitle, q.SortBy)
	assert.Equal(t, OrderAsc, q.Order)
}

func TestNormalizeKeepsNegativePageSize(t *testing.T) {
	q := Query{PageSize: -3}.Normalize()
	assert.Equal(t, -3, q.PageSize)
}

func TestParseQuery(t *testing.T) {
	values, err := url.ParseQuery("search=watch&category=Electronics&min_price=50&max_price=200&sort=price&order=desc&page=2&limit=4")
	require.NoError(t, err)

	q := ParseQuery(values)
	assert.Equal(t, "watch", q.Search)
	assert.Equal(t, "Electronics", q.Category)
	assert.Equal(t, 50.0, q.MinPrice)
	assert.Equal(t, 200.0, q.MaxPrice)
	assert.Equal(t, SortByPrice, q.SortBy)
	assert.Equal(t, OrderDesc, q.Order)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 4, q.PageSize)
}

func TestParseQueryMalformedValuesFallBack(t *testing.T) {
	values := url.Values{
		"min_price": {"cheap"},
		"page":      {"first"},
		"sort":      {"shoe-size"},
	}
	q := ParseQuery(values)
	assert.Equal(t, DefaultQuery(), q)
}

func TestQueryValuesRoundTrip(t *testing.T) {
	q := Query{
		Search:   "lamp",
		Category: "Home",
		MinPrice: 10,
		MaxPrice: 99.5,
		SortBy:   SortByRating,
		Order:    OrderDesc,
		Page:     3,
		PageSize: 12,
	}.Normalize()

	assert.Equal(t, q, ParseQuery(q.Values()))
}

func TestQueryValuesOmitsDefaults(t *testing.T) {
	assert.Empty(t, DefaultQuery().Values().Encode())
	assert.Empty(t, Query{}.Normalize().Values().Encode())
}
