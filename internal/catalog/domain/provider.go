package domain

import "context"

// CatalogProvider is the only thing the engine needs from a data source
type CatalogProvider interface {
	ListAll(ctx context.Context) ([]Item, error)
}

// CatalogRepository adds keyed lookup on top of CatalogProvider
type CatalogRepository interface {
	CatalogProvider
	FindByID(ctx context.Context, kind Kind, id string) (*Item, error)
}

// OfKind keeps the items of kind, preserving order
func OfKind(items []Item, kind Kind) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}
