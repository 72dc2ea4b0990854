package usecase

import (
	"context"
	"reflect"
	"testing"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookmypanditji/internal/catalog/repository"
	"github.com/tair/bookmypanditji/internal/collection/domain"
	"github.com/tair/bookmypanditji/pkg/kvstore"
)

func newService() (*CollectionService, *kvstore.Memory, *prometheus.Registry) {
	store := kvstore.NewMemory()
	reg := prometheus.NewRegistry()
	svc := NewCollectionService(store, repository.NewMemoryCatalogRepository(repository.SeedItems()), reg)
	return svc, store, reg
}

func rejections(t *testing.T, reg *prometheus.Registry) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() == "compare_rejections_total" {
			return f.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestCompareFourthIsRejectedAndCounted(t *testing.T) {
	ctx := context.Background()
	svc, _, reg := newService()

	for _, id := range []string{"1", "2", "3"} {
		if _, err := svc.ToggleCompare(ctx, "v1", id); err != nil {
			t.Fatalf("compare %s: %v", id, err)
		}
	}
	_, err := svc.ToggleCompare(ctx, "v1", "4")
	if !errors.Is(err, domain.ErrCompareFull) {
		t.Fatalf("expected ErrCompareFull, got %v", err)
	}

	res, err := svc.Get(ctx, domain.CompareList, "v1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(res.IDs, []string{"1", "2", "3"}) || len(res.Items) != 3 {
		t.Fatalf("compare list changed: %v", res.IDs)
	}
	if got := rejections(t, reg); got != 1 {
		t.Fatalf("rejections = %v", got)
	}
}

func TestRecentlyViewedStoredState(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService()

	if err := kvstore.SaveList(ctx, store, "recentlyViewed:v2", []string{"3", "1", "2", "4"}); err != nil {
		t.Fatal(err)
	}
	res, err := svc.View(ctx, "v2", "5")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if !reflect.DeepEqual(res.IDs, []string{"5", "3", "1", "2"}) {
		t.Fatalf("got %v", res.IDs)
	}

	if err := svc.ClearRecent(ctx, "v2"); err != nil {
		t.Fatal(err)
	}
	res, _ = svc.Get(ctx, domain.RecentlyViewed, "v2")
	if len(res.IDs) != 0 {
		t.Fatalf("expected empty after clear, got %v", res.IDs)
	}
}

func TestUnknownIDsAreRefused(t *testing.T) {
	svc, _, _ := newService()
	if _, err := svc.ToggleWishlist(context.Background(), "v3", "999"); !errors.Is(err, domain.ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestCorruptListRecoversEmpty(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService()
	_ = store.Set(ctx, "wishlist:v4", []byte("{not json"))

	res, err := svc.ToggleWishlist(ctx, "v4", "7")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !res.Added || !reflect.DeepEqual(res.IDs, []string{"7"}) {
		t.Fatalf("got %+v", res)
	}
}
