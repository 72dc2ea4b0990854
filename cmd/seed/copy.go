package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
)

// catalogColumns is the COPY column order of catalog_items
var catalogColumns = []string{
	"id", "kind", "name", "description", "category",
	"base_price", "discount_price", "rating", "review_count", "in_stock",
	"availability", "date_added", "is_featured", "position",
	"location", "expertise", "languages", "experience", "services",
}

func jsonColumn(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return nil, nil
	}
	return string(raw), nil
}

// copyRow renders item in catalogColumns order
func copyRow(item domain.Item) ([]any, error) {
	var discount any
	if item.DiscountPrice != nil {
		discount = item.DiscountPrice.String()
	}
	var added any
	if item.DateAdded != nil {
		added = item.DateAdded.Format("2006-01-02")
	}

	row := []any{
		item.ID, string(item.Kind), item.Name, item.Description, item.Category,
		item.BasePrice.String(), discount, item.Rating, item.ReviewCount, item.InStock,
		nil, added, item.IsFeatured, item.Position,
		item.Location, nil, nil, item.Experience, nil,
	}
	for i, v := range map[int]any{10: item.Availability, 15: item.Expertise, 16: item.Languages, 18: item.Services} {
		col, err := jsonColumn(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s of item %s: %w", catalogColumns[i], item.ID, err)
		}
		row[i] = col
	}
	return row, nil
}

// copyItems replaces the catalog with items in one transaction
func copyItems(ctx context.Context, db *sql.DB, items []domain.Item) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "TRUNCATE "+domain.Item{}.TableName()); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(domain.Item{}.TableName(), catalogColumns...))
	if err != nil {
		return fmt.Errorf("prepare copy: %w", err)
	}
	for _, item := range items {
		row, err := copyRow(item)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("copy item %s: %w", item.ID, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close copy: %w", err)
	}
	return tx.Commit()
}
