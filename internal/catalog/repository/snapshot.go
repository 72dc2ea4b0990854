package repository

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// Snapshot caches the catalog of a slower source. The cached list is
// replaced as a whole on Refresh, so readers always see one consistent
// version.
type Snapshot struct {
	source domain.CatalogProvider

	// refreshMu orders reloads so an older read never replaces a newer one
	refreshMu sync.Mutex

	mu     sync.RWMutex
	items  []domain.Item
	loaded bool

	size *prometheus.GaugeVec
}

// NewSnapshot wraps source and registers the catalog size gauge on reg
func NewSnapshot(source domain.CatalogProvider, reg prometheus.Registerer) *Snapshot {
	size := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_items_total",
			Help: "Number of items in the served catalog snapshot",
		},
		[]string{"kind"},
	)
	reg.MustRegister(size)

	return &Snapshot{source: source, size: size}
}

// Refresh reloads the catalog from the source. Items that break the catalog
// invariants are logged and left out.
func (s *Snapshot) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	return s.reload(ctx)
}

func (s *Snapshot) reload(ctx context.Context) error {
	items, err := s.source.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "refresh catalog")
	}

	valid := make([]domain.Item, 0, len(items))
	counts := map[domain.Kind]int{domain.KindProduct: 0, domain.KindPandit: 0}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			logger.Warn(ctx).
				Err(err).
				Str("item_id", it.ID).
				Str("kind", string(it.Kind)).
				Msg("Skipping invalid catalog item")
			continue
		}
		valid = append(valid, it)
		counts[it.Kind]++
	}

	s.mu.Lock()
	s.items = valid
	s.loaded = true
	s.mu.Unlock()

	for kind, n := range counts {
		s.size.WithLabelValues(string(kind)).Set(float64(n))
	}

	logger.Info(ctx).
		Int("products", counts[domain.KindProduct]).
		Int("pandits", counts[domain.KindPandit]).
		Msg("Catalog snapshot refreshed")
	return nil
}

// Ready reports whether a snapshot has been loaded
func (s *Snapshot) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Snapshot) ListAll(ctx context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	loaded := s.loaded
	items := s.items
	s.mu.RUnlock()

	if !loaded {
		if err := s.loadOnce(ctx); err != nil {
			return nil, err
		}
		s.mu.RLock()
		items = s.items
		s.mu.RUnlock()
	}
	return append([]domain.Item(nil), items...), nil
}

// loadOnce performs the first load; callers that queued behind it reuse it
func (s *Snapshot) loadOnce(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	if s.Ready() {
		return nil
	}
	return s.reload(ctx)
}

func (s *Snapshot) FindByID(ctx context.Context, kind domain.Kind, id string) (*domain.Item, error) {
	items, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.Kind == kind && it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, domain.ErrItemNotFound
}
