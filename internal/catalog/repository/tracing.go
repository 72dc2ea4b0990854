package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingCatalogRepository wraps another repository with spans
type TracingCatalogRepository struct {
	next domain.CatalogRepository
}

// NewTracingCatalogRepository decorates next
func NewTracingCatalogRepository(next domain.CatalogRepository) *TracingCatalogRepository {
	return &TracingCatalogRepository{next: next}
}

// ListAll with tracing
func (r *TracingCatalogRepository) ListAll(ctx context.Context) ([]domain.Item, error) {
	ctx, span := tracer.Start(ctx, "repository.ListAll")
	defer span.End()

	items, err := r.next.ListAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

// FindByID with tracing
func (r *TracingCatalogRepository) FindByID(ctx context.Context, kind domain.Kind, id string) (*domain.Item, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("item.kind", string(kind)),
			attribute.String("item.id", id),
		),
	)
	defer span.End()

	item, err := r.next.FindByID(ctx, kind, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("item.name", item.Name),
		attribute.String("item.category", item.Category),
	)
	return item, nil
}
