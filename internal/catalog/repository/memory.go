package repository

import (
	"context"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
)

// MemoryCatalogRepository serves a fixed catalog held in process
type MemoryCatalogRepository struct {
	items []domain.Item
}

// NewMemoryCatalogRepository keeps a copy of items
func NewMemoryCatalogRepository(items []domain.Item) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{items: append([]domain.Item(nil), items...)}
}

func (r *MemoryCatalogRepository) ListAll(_ context.Context) ([]domain.Item, error) {
	return append([]domain.Item(nil), r.items...), nil
}

func (r *MemoryCatalogRepository) FindByID(_ context.Context, kind domain.Kind, id string) (*domain.Item, error) {
	for _, it := range r.items {
		if it.Kind == kind && it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, domain.ErrItemNotFound
}
