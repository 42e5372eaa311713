package products

import (
	"math"
	"net/url"
	"strconv"

	"github.com/storekit/storefront/pkg/constants"
)

// SortField selects the product attribute results are ordered by.
type SortField string

// Sort fields supported by the filter engine.
const (
	SortByTitle  SortField = "title"
	SortByPrice  SortField = "price"
	SortByRating SortField = "rating"
)

// SortOrder selects ascending or descending ordering.
type SortOrder string

// Sort orders supported by the filter engine.
const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Query holds the search, filter, sort, and pagination parameters driving
// the filter engine. The zero value of every field means "use the default",
// so a literal Query{} behaves like DefaultQuery().
type Query struct {
	// Search is matched case-insensitively against title and description.
	Search string

	// Category filters on exact category match when non-empty.
	Category string

	// MinPrice and MaxPrice bound the price range inclusively.
	// A MaxPrice of 0 means unbounded.
	MinPrice float64
	MaxPrice float64

	// SortBy and Order control result ordering.
	SortBy SortField
	Order  SortOrder

	// Page is 1-based. Out-of-range pages yield an empty page, not an error.
	Page int

	// PageSize is the number of results per page. An explicitly negative
	// PageSize is treated defensively as a no-match page: empty data with
	// TotalPages 0.
	PageSize int
}

// DefaultQuery returns a query with every parameter at its default.
func DefaultQuery() Query {
	return Query{
		MaxPrice: math.Inf(1),
		SortBy:   SortByTitle,
		Order:    OrderAsc,
		Page:     1,
		PageSize: constants.DefaultPageSize,
	}
}

// Normalize fills zero-valued fields with their defaults. It does not touch
// explicitly negative page sizes so their defensive handling survives.
func (q Query) Normalize() Query {
	if q.MaxPrice == 0 {
		q.MaxPrice = math.Inf(1)
	}
	switch q.SortBy {
	case SortByTitle, SortByPrice, SortByRating:
	default:
		q.SortBy = SortByTitle
	}
	switch q.Order {
	case OrderAsc, OrderDesc:
	default:
		q.Order = OrderAsc
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = constants.DefaultPageSize
	}
	return q
}

// Query parameter names mirrored to and from the address bar, so a shared
// link reproduces the same result page.
const (
	paramSearch   = "search"
	paramCategory = "category"
	paramMinPrice = "min_price"
	paramMaxPrice = "max_price"
	paramSort     = "sort"
	paramOrder    = "order"
	paramPage     = "page"
	paramLimit    = "limit"
)

// ParseQuery extracts a Query from URL query parameters. Unknown or
// malformed values fall back to their defaults; parsing never fails.
func ParseQuery(values url.Values) Query {
	q := Query{
		Search:   values.Get(paramSearch),
		Category: values.Get(paramCategory),
		MinPrice: parseFloatOrDefault(values.Get(paramMinPrice), 0),
		MaxPrice: parseFloatOrDefault(values.Get(paramMaxPrice), 0),
		SortBy:   SortField(values.Get(paramSort)),
		Order:    SortOrder(values.Get(paramOrder)),
		Page:     parseIntOrDefault(values.Get(paramPage), 0),
		PageSize: parseIntOrDefault(values.Get(paramLimit), 0),
	}
	return q.Normalize()
}

// Values encodes the query as URL parameters, omitting defaults so shared
// links stay short. ParseQuery(q.Values()) reproduces q for any normalized q.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set(paramSearch, q.Search)
	}
	if q.Category != "" {
		values.Set(paramCategory, q.Category)
	}
	if q.MinPrice != 0 {
		values.Set(paramMinPrice, strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != 0 && !math.IsInf(q.MaxPrice, 1) {
		values.Set(paramMaxPrice, strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if q.SortBy != "" && q.SortBy != SortByTitle {
		values.Set(paramSort, string(q.SortBy))
	}
	if q.Order != "" && q.Order != OrderAsc {
		values.Set(paramOrder, string(q.Order))
	}
	if q.Page > 1 {
		values.Set(paramPage, strconv.Itoa(q.Page))
	}
	if q.PageSize != 0 && q.PageSize != constants.DefaultPageSize {
		values.Set(paramLimit, strconv.Itoa(q.PageSize))
	}
	return values
}

func parseIntOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseFloatOrDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
