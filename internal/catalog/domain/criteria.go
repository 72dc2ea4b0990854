package domain

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// SortOption orders a filtered listing
type SortOption string

const (
	SortDefault       SortOption = "default"
	SortPriceLowHigh  SortOption = "price-low-high"
	SortPriceHighLow  SortOption = "price-high-low"
	SortRatingHighLow SortOption = "rating-high-low"
	SortNewest        SortOption = "newest"
)

// CategoryAll disables the category filter
const CategoryAll = "all"

// Query parameter names
const (
	ParamCategory  = "category"
	ParamSort      = "sort"
	ParamMinPrice  = "minPrice"
	ParamMaxPrice  = "maxPrice"
	ParamInStock   = "inStock"
	ParamSearch    = "search"
	ParamPage      = "page"
	ParamLocation  = "location"
	ParamLanguage  = "language"
	ParamMinRating = "rating"
)

// Valid reports whether s is a known sort option
func (s SortOption) Valid() bool {
	switch s {
	case SortDefault, SortPriceLowHigh, SortPriceHighLow, SortRatingHighLow, SortNewest:
		return true
	}
	return false
}

// Criteria selects and orders a view of the catalog
type Criteria struct {
	Category    string
	MinPrice    decimal.Decimal
	MaxPrice    decimal.Decimal
	InStockOnly bool
	SearchText  string
	Sort        SortOption
	Page        int

	// Pandit listing filters; zero values disable them
	Location  string
	Language  string
	MinRating float64
}

// Defaults are the per-view values a missing query parameter falls back to
type Defaults struct {
	MaxPrice decimal.Decimal
	PageSize int
}

var (
	// ProductDefaults drive the products listing
	ProductDefaults = Defaults{MaxPrice: decimal.NewFromInt(3000), PageSize: 8}
	// PanditDefaults drive the pandits listing
	PanditDefaults = Defaults{MaxPrice: decimal.NewFromInt(50000), PageSize: 6}
)

// DefaultsFor returns the view defaults of kind
func DefaultsFor(kind Kind) Defaults {
	if kind == KindPandit {
		return PanditDefaults
	}
	return ProductDefaults
}

// Criteria returns the criteria of an unfiltered first page
func (d Defaults) Criteria() Criteria {
	return Criteria{
		Category: CategoryAll,
		MinPrice: decimal.Zero,
		MaxPrice: d.MaxPrice,
		Sort:     SortDefault,
		Page:     1,
	}
}

// Equal compares two criteria field by field, prices by value
func (c Criteria) Equal(o Criteria) bool {
	return c.Category == o.Category &&
		c.MinPrice.Equal(o.MinPrice) &&
		c.MaxPrice.Equal(o.MaxPrice) &&
		c.InStockOnly == o.InStockOnly &&
		c.SearchText == o.SearchText &&
		c.Sort == o.Sort &&
		c.Page == o.Page &&
		c.Location == o.Location &&
		c.Language == o.Language &&
		c.MinRating == o.MinRating
}

// ParseCriteria rebuilds criteria from query parameters. A parameter that is
// missing or does not parse keeps its default.
func ParseCriteria(q url.Values, d Defaults) Criteria {
	c := d.Criteria()

	if v := q.Get(ParamCategory); v != "" {
		c.Category = v
	}
	if v := SortOption(q.Get(ParamSort)); v.Valid() {
		c.Sort = v
	}
	if v, ok := parsePrice(q.Get(ParamMinPrice)); ok {
		c.MinPrice = v
	}
	if v, ok := parsePrice(q.Get(ParamMaxPrice)); ok {
		c.MaxPrice = v
	}
	c.InStockOnly = q.Get(ParamInStock) == "true"
	c.SearchText = q.Get(ParamSearch)
	if v, err := strconv.Atoi(q.Get(ParamPage)); err == nil && v >= 1 {
		c.Page = v
	}
	c.Location = q.Get(ParamLocation)
	c.Language = q.Get(ParamLanguage)
	if v, err := strconv.ParseFloat(q.Get(ParamMinRating), 64); err == nil && v > 0 && v <= 5 {
		c.MinRating = v
	}
	return c
}

func parsePrice(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil || v.IsNegative() {
		return decimal.Zero, false
	}
	return v, true
}

// Query encodes the criteria, emitting only values that differ from d
func (c Criteria) Query(d Defaults) url.Values {
	q := url.Values{}
	if c.Category != "" && c.Category != CategoryAll {
		q.Set(ParamCategory, c.Category)
	}
	if c.Sort != "" && c.Sort != SortDefault {
		q.Set(ParamSort, string(c.Sort))
	}
	if !c.MinPrice.IsZero() {
		q.Set(ParamMinPrice, c.MinPrice.String())
	}
	if !c.MaxPrice.Equal(d.MaxPrice) {
		q.Set(ParamMaxPrice, c.MaxPrice.String())
	}
	if c.InStockOnly {
		q.Set(ParamInStock, "true")
	}
	if c.SearchText != "" {
		q.Set(ParamSearch, c.SearchText)
	}
	if c.Page > 1 {
		q.Set(ParamPage, strconv.Itoa(c.Page))
	}
	if c.Location != "" {
		q.Set(ParamLocation, c.Location)
	}
	if c.Language != "" {
		q.Set(ParamLanguage, c.Language)
	}
	if c.MinRating > 0 {
		q.Set(ParamMinRating, strconv.FormatFloat(c.MinRating, 'f', -1, 64))
	}
	return q
}
