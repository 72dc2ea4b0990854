package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
)

func TestSeedItemsAreValid(t *testing.T) {
	items := SeedItems()
	if got := len(domain.OfKind(items, domain.KindProduct)); got != 12 {
		t.Fatalf("expected 12 products, got %d", got)
	}
	if got := len(domain.OfKind(items, domain.KindPandit)); got != 6 {
		t.Fatalf("expected 6 pandits, got %d", got)
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			t.Fatalf("seed item %s/%s invalid: %v", it.Kind, it.ID, err)
		}
	}
}

func TestMemoryFindByID(t *testing.T) {
	repo := NewMemoryCatalogRepository(SeedItems())
	ctx := context.Background()

	it, err := repo.FindByID(ctx, domain.KindPandit, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Name != "Pandit Rajesh Sharma" {
		t.Fatalf("wrong pandit %q", it.Name)
	}
	if _, err := repo.FindByID(ctx, domain.KindProduct, "99"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

type countingProvider struct {
	items []domain.Item
	calls int
}

func (p *countingProvider) ListAll(_ context.Context) ([]domain.Item, error) {
	p.calls++
	return p.items, nil
}

func TestSnapshotLoadsOnceAndSkipsInvalid(t *testing.T) {
	bad := domain.Item{ID: "x", Kind: domain.KindProduct, Name: "Broken", BasePrice: decimal.Zero}
	src := &countingProvider{items: append(SeedItems(), bad)}
	reg := prometheus.NewRegistry()
	snap := NewSnapshot(src, reg)
	ctx := context.Background()

	if snap.Ready() {
		t.Fatal("snapshot must not be ready before the first load")
	}
	first, err := snap.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := snap.ListAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("expected a single source read, got %d", src.calls)
	}
	if len(first) != 18 {
		t.Fatalf("invalid item must be skipped, got %d items", len(first))
	}
	if got := gaugeValue(t, reg, "catalog_items_total", "product"); got != 12 {
		t.Fatalf("product gauge = %v", got)
	}

	if err := snap.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("refresh must reread the source, got %d calls", src.calls)
	}
}

type slowProvider struct {
	items    []domain.Item
	calls    atomic.Int32
	inFlight atomic.Int32
	overlap  atomic.Bool
}

func (p *slowProvider) ListAll(_ context.Context) ([]domain.Item, error) {
	p.calls.Add(1)
	if p.inFlight.Add(1) > 1 {
		p.overlap.Store(true)
	}
	defer p.inFlight.Add(-1)
	time.Sleep(10 * time.Millisecond)
	return p.items, nil
}

func TestSnapshotReloadsOneAtATime(t *testing.T) {
	tests := []struct {
		name      string
		call      func(ctx context.Context, snap *Snapshot) error
		wantCalls int32
	}{
		{
			name: "cold reads share the first load",
			call: func(ctx context.Context, snap *Snapshot) error {
				_, err := snap.ListAll(ctx)
				return err
			},
			wantCalls: 1,
		},
		{
			name:      "refreshes queue",
			call:      func(ctx context.Context, snap *Snapshot) error { return snap.Refresh(ctx) },
			wantCalls: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &slowProvider{items: SeedItems()}
			snap := NewSnapshot(src, prometheus.NewRegistry())
			ctx := context.Background()

			var wg sync.WaitGroup
			errs := make(chan error, 5)
			for range 5 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					errs <- tt.call(ctx, snap)
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			if src.overlap.Load() {
				t.Fatal("source was read by two reloads at once")
			}
			if got := src.calls.Load(); got != tt.wantCalls {
				t.Fatalf("expected %d source reads, got %d", tt.wantCalls, got)
			}
		})
	}
}

func gaugeValue(t *testing.T, reg *prometheus.Registry, name, kind string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "kind" && l.GetValue() == kind {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{kind=%q} not found", name, kind)
	return 0
}
