package domain

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseCriteriaDefaults(t *testing.T) {
	c := ParseCriteria(url.Values{}, ProductDefaults)
	want := Criteria{
		Category: CategoryAll,
		MinPrice: decimal.Zero,
		MaxPrice: decimal.NewFromInt(3000),
		Sort:     SortDefault,
		Page:     1,
	}
	if !c.Equal(want) {
		t.Fatalf("got %+v want %+v", c, want)
	}
	if enc := c.Query(ProductDefaults).Encode(); enc != "" {
		t.Fatalf("default criteria must encode to an empty query, got %q", enc)
	}
}

func TestParseCriteriaInvalidFallsBack(t *testing.T) {
	q := url.Values{
		ParamSort:      {"cheapest"},
		ParamMinPrice:  {"abc"},
		ParamMaxPrice:  {"-5"},
		ParamPage:      {"0"},
		ParamInStock:   {"yes"},
		ParamMinRating: {"9"},
	}
	c := ParseCriteria(q, ProductDefaults)
	if !c.Equal(ProductDefaults.Criteria()) {
		t.Fatalf("invalid parameters must keep defaults, got %+v", c)
	}
}

func TestCriteriaRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		defaults Defaults
		c        Criteria
	}{
		{
			name:     "products filtered",
			defaults: ProductDefaults,
			c: Criteria{
				Category:    CategoryIdols,
				MinPrice:    decimal.NewFromInt(500),
				MaxPrice:    decimal.NewFromInt(1500),
				InStockOnly: true,
				SearchText:  "Ganesha idol",
				Sort:        SortPriceLowHigh,
				Page:        2,
			},
		},
		{
			name:     "max above default",
			defaults: ProductDefaults,
			c: Criteria{
				Category: CategoryAll,
				MinPrice: decimal.Zero,
				MaxPrice: decimal.RequireFromString("4999.50"),
				Sort:     SortNewest,
				Page:     1,
			},
		},
		{
			name:     "pandits",
			defaults: PanditDefaults,
			c: Criteria{
				Category:  "wedding-ceremony",
				MinPrice:  decimal.Zero,
				MaxPrice:  decimal.NewFromInt(6000),
				Sort:      SortRatingHighLow,
				Page:      3,
				Location:  "delhi",
				Language:  "Sanskrit",
				MinRating: 4.5,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := tc.c.Query(tc.defaults).Encode()
			parsed, err := url.ParseQuery(encoded)
			if err != nil {
				t.Fatalf("parse %q: %v", encoded, err)
			}
			got := ParseCriteria(parsed, tc.defaults)
			if !got.Equal(tc.c) {
				t.Fatalf("round trip through %q: got %+v want %+v", encoded, got, tc.c)
			}
		})
	}
}
