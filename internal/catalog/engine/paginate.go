package engine

import (
	"github.com/shopspring/decimal"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
)

// Page is one slice of an ordered listing
type Page struct {
	Items      []domain.Item `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
}

// Paginate cuts page (1-based) of size items out of ordered. TotalPages is at
// least 1. A page outside 1..TotalPages is empty rather than clamped. A size of
// zero or less puts the whole list on one page.
func Paginate(ordered []domain.Item, page, size int) Page {
	total := len(ordered)
	if size <= 0 {
		size = total
	}

	totalPages := 1
	if size > 0 && total > 0 {
		totalPages = (total + size - 1) / size
	}

	p := Page{
		Items:      []domain.Item{},
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
	}
	if page < 1 || page > totalPages || total == 0 {
		return p
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	p.Items = append(p.Items, ordered[start:end]...)
	return p
}

// Stats summarises a set of items for filter controls
type Stats struct {
	Total      int             `json:"total"`
	InStock    int             `json:"in_stock"`
	Featured   int             `json:"featured"`
	MinPrice   decimal.Decimal `json:"min_price"`
	MaxPrice   decimal.Decimal `json:"max_price"`
	Categories map[string]int  `json:"categories"`
}

// ComputeStats counts items and finds effective price bounds
func ComputeStats(items []domain.Item) Stats {
	s := Stats{Categories: make(map[string]int)}
	for i, it := range items {
		s.Total++
		if it.InStock {
			s.InStock++
		}
		if it.IsFeatured {
			s.Featured++
		}
		s.Categories[it.Category]++

		price := it.EffectivePrice()
		if i == 0 || price.LessThan(s.MinPrice) {
			s.MinPrice = price
		}
		if i == 0 || price.GreaterThan(s.MaxPrice) {
			s.MaxPrice = price
		}
	}
	return s
}

// Related returns up to limit items sharing item's kind and category, in
// catalog order, excluding item itself
func Related(items []domain.Item, item domain.Item, limit int) []domain.Item {
	if limit < 0 {
		limit = 0
	}
	out := make([]domain.Item, 0, limit)
	for _, it := range items {
		if len(out) >= limit {
			break
		}
		if it.Kind == item.Kind && it.Category == item.Category && it.ID != item.ID {
			out = append(out, it)
		}
	}
	return out
}
