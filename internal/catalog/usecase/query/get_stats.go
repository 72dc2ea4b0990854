package query

import (
	"context"
	"fmt"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
	"github.com/tair/bookmypanditji/internal/catalog/engine"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct {
	Kind domain.Kind
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	provider domain.CatalogProvider
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(provider domain.CatalogProvider) *GetStatsHandler {
	return &GetStatsHandler{provider: provider}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(ctx context.Context, q GetStatsQuery) (*engine.Stats, error) {
	all, err := h.provider.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := engine.ComputeStats(domain.OfKind(all, q.Kind))
	return &stats, nil
}
