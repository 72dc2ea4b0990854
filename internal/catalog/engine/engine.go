// Package engine derives ordered, paginated views of a catalog. Every
// function here is pure: the same items and criteria always give the same
// result, and the input slice is never modified.
package engine

import (
	"sort"
	"strings"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
)

// Matches reports whether item passes every filter of c
func Matches(item domain.Item, c domain.Criteria) bool {
	if c.Category != "" && c.Category != domain.CategoryAll && item.Category != c.Category {
		return false
	}

	price := item.EffectivePrice()
	if price.LessThan(c.MinPrice) || price.GreaterThan(c.MaxPrice) {
		return false
	}

	if c.InStockOnly && !item.InStock {
		return false
	}

	if c.SearchText != "" {
		needle := strings.ToLower(c.SearchText)
		if !strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			return false
		}
	}

	if c.Location != "" && !strings.Contains(strings.ToLower(item.Location), strings.ToLower(c.Location)) {
		return false
	}
	if c.Language != "" && !speaks(item, c.Language) {
		return false
	}
	if c.MinRating > 0 && item.Rating < c.MinRating {
		return false
	}
	return true
}

func speaks(item domain.Item, language string) bool {
	for _, l := range item.Languages {
		if strings.EqualFold(l, language) {
			return true
		}
	}
	return false
}

// FilterAndSort returns the items matching c in the order c.Sort asks for.
// Ties keep their catalog order. The result is never nil.
func FilterAndSort(items []domain.Item, c domain.Criteria) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if Matches(it, c) {
			out = append(out, it)
		}
	}

	less := lessFunc(c.Sort)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(s domain.SortOption) func(a, b domain.Item) bool {
	switch s {
	case domain.SortPriceLowHigh:
		return func(a, b domain.Item) bool {
			return a.EffectivePrice().LessThan(b.EffectivePrice())
		}
	case domain.SortPriceHighLow:
		return func(a, b domain.Item) bool {
			return a.EffectivePrice().GreaterThan(b.EffectivePrice())
		}
	case domain.SortRatingHighLow:
		return func(a, b domain.Item) bool {
			return a.Rating > b.Rating
		}
	case domain.SortNewest:
		return newer
	default:
		return featuredThenID
	}
}

// newer orders by date added, latest first. Undated items go last.
func newer(a, b domain.Item) bool {
	switch {
	case a.DateAdded == nil:
		return false
	case b.DateAdded == nil:
		return true
	default:
		return a.DateAdded.After(*b.DateAdded)
	}
}

// featuredThenID puts featured items first, then orders by numeric id.
// Numeric ids come before non-numeric ones, which compare as text.
func featuredThenID(a, b domain.Item) bool {
	if a.IsFeatured != b.IsFeatured {
		return a.IsFeatured
	}
	an, aok := a.NumericID()
	bn, bok := b.NumericID()
	switch {
	case aok && bok:
		return an < bn
	case aok != bok:
		return aok
	default:
		return a.ID < b.ID
	}
}
