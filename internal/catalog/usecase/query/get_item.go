package query

import (
	"context"
	"fmt"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
	"github.com/tair/bookmypanditji/internal/catalog/engine"
)

// GetItemQuery represents the query to get one catalog item
type GetItemQuery struct {
	Kind domain.Kind
	ID   string
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.CatalogRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.CatalogRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(ctx context.Context, q GetItemQuery) (*domain.Item, error) {
	item, err := h.repo.FindByID(ctx, q.Kind, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", q.Kind, q.ID, err)
	}
	return item, nil
}

// RelatedItemsQuery asks for items similar to one item
type RelatedItemsQuery struct {
	Kind  domain.Kind
	ID    string
	Limit int
}

// RelatedItemsHandler handles related items query
type RelatedItemsHandler struct {
	repo domain.CatalogRepository
}

// NewRelatedItemsHandler creates a new related items handler
func NewRelatedItemsHandler(repo domain.CatalogRepository) *RelatedItemsHandler {
	return &RelatedItemsHandler{repo: repo}
}

// Handle executes the related items query
func (h *RelatedItemsHandler) Handle(ctx context.Context, q RelatedItemsQuery) ([]domain.Item, error) {
	if q.Limit <= 0 {
		q.Limit = 4
	}

	item, err := h.repo.FindByID(ctx, q.Kind, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", q.Kind, q.ID, err)
	}

	all, err := h.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return engine.Related(all, *item, q.Limit), nil
}
