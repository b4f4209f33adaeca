// Package catalog keeps the canonical filter/sort state for the product
// listing. The shareable URL query string and the product-service request
// are both projections of one Query value; neither is ever edited directly.
package catalog

import (
	"net/url"
	"strconv"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
)

// CategoryAll is the sentinel for "no category filter".
const CategoryAll = "all"

type Query struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Sort     SortKey
}

func DefaultQuery() Query {
	return Query{Category: CategoryAll, Sort: SortNewest}
}

// sort key ↔ (sort_by, order) wire pairs the product service understands
var sortToWire = map[SortKey][2]string{
	SortNewest:    {"created_at", "desc"},
	SortPriceAsc:  {"price", "asc"},
	SortPriceDesc: {"price", "desc"},
	SortNameAsc:   {"name", "asc"},
	SortNameDesc:  {"name", "desc"},
}

func sortFromWire(sortBy, order string) SortKey {
	for key, pair := range sortToWire {
		if pair[0] == sortBy && pair[1] == order {
			return key
		}
	}
	return SortNewest
}

// Encode serializes the query for the shareable URL. Defaults are omitted,
// so the default query encodes to the empty string.
func (q Query) Encode() string {
	vals := url.Values{}
	if q.Search != "" {
		vals.Set("q", q.Search)
	}
	if q.Category != "" && q.Category != CategoryAll {
		vals.Set("category", q.Category)
	}
	if q.MinPrice != nil {
		vals.Set("min_price", formatPrice(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		vals.Set("max_price", formatPrice(*q.MaxPrice))
	}
	if q.Sort != "" && q.Sort != SortNewest {
		pair := sortToWire[q.Sort]
		vals.Set("sort_by", pair[0])
		vals.Set("order", pair[1])
	}
	return vals.Encode()
}

// ParseQuery is the inverse of Encode: unspecified fields get defaults.
func ParseQuery(vals url.Values) Query {
	q := DefaultQuery()
	q.Search = vals.Get("q")
	if c := vals.Get("category"); c != "" {
		q.Category = c
	}
	if v, err := strconv.ParseFloat(vals.Get("min_price"), 64); err == nil {
		q.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(vals.Get("max_price"), 64); err == nil {
		q.MaxPrice = &v
	}
	if sortBy := vals.Get("sort_by"); sortBy != "" {
		q.Sort = sortFromWire(sortBy, vals.Get("order"))
	}
	return q
}

// RequestValues builds the product-service request parameters. Unlike the
// URL form, the sort pair is always sent.
func (q Query) RequestValues() url.Values {
	vals := url.Values{}
	if q.Search != "" {
		vals.Set("q", q.Search)
	}
	if q.Category != "" && q.Category != CategoryAll {
		vals.Set("category", q.Category)
	}
	if q.MinPrice != nil {
		vals.Set("min_price", formatPrice(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		vals.Set("max_price", formatPrice(*q.MaxPrice))
	}
	sort := q.Sort
	if sort == "" {
		sort = SortNewest
	}
	pair := sortToWire[sort]
	vals.Set("sort_by", pair[0])
	vals.Set("order", pair[1])
	return vals
}

func formatPrice(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
