package query

import (
	"context"
	"fmt"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
	"github.com/tair/bookmypanditji/internal/catalog/engine"
)

// ListItemsQuery represents the query to list one view of the catalog
type ListItemsQuery struct {
	Kind     domain.Kind
	Criteria domain.Criteria
	Defaults domain.Defaults
}

// ListItemsResult is a page of the view plus its canonical query string
type ListItemsResult struct {
	engine.Page
	Query string `json:"query"`
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	provider domain.CatalogProvider
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(provider domain.CatalogProvider) *ListItemsHandler {
	return &ListItemsHandler{provider: provider}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(ctx context.Context, q ListItemsQuery) (*ListItemsResult, error) {
	all, err := h.provider.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	ordered := engine.FilterAndSort(domain.OfKind(all, q.Kind), q.Criteria)
	return &ListItemsResult{
		Page:  engine.Paginate(ordered, q.Criteria.Page, q.Defaults.PageSize),
		Query: q.Criteria.Query(q.Defaults).Encode(),
	}, nil
}
