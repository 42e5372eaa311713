package products

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Page is one page of filtered results plus pagination metadata.
type Page struct {
	Data       []Product `json:"data"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	PageSize   int       `json:"page_size"`
}

// Filter applies the query to the product list and returns one page of
// results. The input list is never modified and the returned page holds
// copies. Out-of-range pages yield an empty page, not an error.
func Filter(list []Product, q Query) Page {
	q = q.Normalize()

	filtered := make([]Product, 0, len(list))
	search := strings.ToLower(q.Search)
	for _, p := range list {
		if !matches(p, q, search) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q)

	page := Page{
		Total:    len(filtered),
		Page:     q.Page,
		PageSize: q.PageSize,
		Data:     []Product{},
	}

	// Negative page sizes are undefined input; degrade to a no-match page.
	if q.PageSize <= 0 {
		return page
	}

	page.TotalPages = (page.Total + q.PageSize - 1) / q.PageSize

	start := (q.Page - 1) * q.PageSize
	if start < 0 || start >= page.Total {
		return page
	}
	end := min(start+q.PageSize, page.Total)
	page.Data = append(page.Data, filtered[start:end]...)
	return page
}

// matches reports whether a product passes the search, category, and price
// criteria. The search term is pre-lowercased by the caller.
func matches(p Product, q Query, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(p.Title), search) &&
		!strings.Contains(strings.ToLower(p.Description), search) {
		return false
	}
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	if p.Price < q.MinPrice || p.Price > q.MaxPrice {
		return false
	}
	return true
}

// sortProducts orders the filtered set in place. The sort is stable, so
// products that compare equal keep their input order.
func sortProducts(list []Product, q Query) {
	var cmp func(a, b Product) int
	switch q.SortBy {
	case SortByPrice:
		cmp = func(a, b Product) int { return compareFloats(a.Price, b.Price) }
	case SortByRating:
		cmp = func(a, b Product) int { return compareFloats(a.Rating, b.Rating) }
	default:
		// Collators are stateful, so build one per sort rather than sharing.
		collator := collate.New(language.Und, collate.Loose)
		cmp = func(a, b Product) int { return collator.CompareString(a.Title, b.Title) }
	}

	desc := q.Order == OrderDesc
	slices.SortStableFunc(list, func(a, b Product) int {
		c := cmp(a, b)
		if desc {
			return -c
		}
		return c
	})
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
