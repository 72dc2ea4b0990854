package main

import (
	"testing"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
	"github.com/tair/bookmypanditji/internal/catalog/repository"
)

func TestCopyRowMatchesColumns(t *testing.T) {
	for _, item := range repository.SeedItems() {
		row, err := copyRow(item)
		if err != nil {
			t.Fatalf("item %s: %v", item.ID, err)
		}
		if len(row) != len(catalogColumns) {
			t.Fatalf("row has %d values for %d columns", len(row), len(catalogColumns))
		}
	}
}

func TestCopyRowEncodesOptionalColumns(t *testing.T) {
	items := repository.SeedItems()
	var pandit, undated *domain.Item
	for i := range items {
		switch {
		case items[i].Kind == domain.KindPandit && pandit == nil:
			pandit = &items[i]
		case items[i].Kind == domain.KindProduct && items[i].DateAdded == nil && undated == nil:
			undated = &items[i]
		}
	}

	row, err := copyRow(*pandit)
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := row[18].(string); !ok || s == "" || s[0] != '[' {
		t.Fatalf("services column %v", row[18])
	}

	row, err = copyRow(*undated)
	if err != nil {
		t.Fatal(err)
	}
	if row[11] != nil {
		t.Fatalf("date_added of undated item = %v", row[11])
	}
	if row[15] != nil {
		t.Fatalf("expertise of a product = %v", row[15])
	}
}
