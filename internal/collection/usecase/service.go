package usecase

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"

	catalog "github.com/tair/bookmypanditji/internal/catalog/domain"
	"github.com/tair/bookmypanditji/internal/collection/domain"
	"github.com/tair/bookmypanditji/pkg/kvstore"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// Result is a visitor list after an operation, with ids resolved to items
type Result struct {
	List  domain.List    `json:"list"`
	IDs   []string       `json:"ids"`
	Items []catalog.Item `json:"items"`
	Added bool           `json:"added"`
}

// CollectionService applies list rules to visitor state in a kvstore
type CollectionService struct {
	store    kvstore.Store
	catalog  catalog.CatalogRepository
	rejected prometheus.Counter
}

// NewCollectionService creates a collection service
func NewCollectionService(store kvstore.Store, repo catalog.CatalogRepository, reg prometheus.Registerer) *CollectionService {
	rejected := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "compare_rejections_total",
		Help: "Compare insertions refused because the list was full",
	})
	reg.MustRegister(rejected)

	return &CollectionService{store: store, catalog: repo, rejected: rejected}
}

func (s *CollectionService) ensureProduct(ctx context.Context, id string) error {
	_, err := s.catalog.FindByID(ctx, catalog.KindProduct, id)
	if errors.Is(err, catalog.ErrItemNotFound) {
		return domain.ErrUnknownItem
	}
	return err
}

func (s *CollectionService) load(ctx context.Context, list domain.List, visitor string) ([]string, error) {
	return kvstore.LoadList[string](ctx, s.store, domain.Key(list, visitor))
}

func (s *CollectionService) save(ctx context.Context, list domain.List, visitor string, ids []string) error {
	return kvstore.SaveList(ctx, s.store, domain.Key(list, visitor), ids)
}

// resolve maps ids to catalog items, skipping ids that left the catalog
func (s *CollectionService) resolve(ctx context.Context, list domain.List, ids []string, added bool) (*Result, error) {
	items := make([]catalog.Item, 0, len(ids))
	for _, id := range ids {
		item, err := s.catalog.FindByID(ctx, catalog.KindProduct, id)
		if errors.Is(err, catalog.ErrItemNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return &Result{List: list, IDs: ids, Items: items, Added: added}, nil
}

// Get returns the stored list
func (s *CollectionService) Get(ctx context.Context, list domain.List, visitor string) (*Result, error) {
	ids, err := s.load(ctx, list, visitor)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, list, ids, false)
}

// ToggleWishlist adds or removes a product from the wishlist
func (s *CollectionService) ToggleWishlist(ctx context.Context, visitor, id string) (*Result, error) {
	if err := s.ensureProduct(ctx, id); err != nil {
		return nil, err
	}
	ids, err := s.load(ctx, domain.Wishlist, visitor)
	if err != nil {
		return nil, err
	}
	next, added := domain.ToggleWishlist(ids, id)
	if err := s.save(ctx, domain.Wishlist, visitor, next); err != nil {
		return nil, fmt.Errorf("failed to save wishlist: %w", err)
	}
	return s.resolve(ctx, domain.Wishlist, next, added)
}

// ToggleCompare adds or removes a product from the compare list. A full list
// is left as is and ErrCompareFull is returned.
func (s *CollectionService) ToggleCompare(ctx context.Context, visitor, id string) (*Result, error) {
	if err := s.ensureProduct(ctx, id); err != nil {
		return nil, err
	}
	ids, err := s.load(ctx, domain.CompareList, visitor)
	if err != nil {
		return nil, err
	}
	next, added, err := domain.ToggleCompare(ids, id)
	if errors.Is(err, domain.ErrCompareFull) {
		s.rejected.Inc()
		logger.Info(ctx).
			Str("visitor", visitor).
			Str("product_id", id).
			Strs("compare", ids).
			Msg("Compare list full, insertion refused")
		return nil, err
	}
	if err := s.save(ctx, domain.CompareList, visitor, next); err != nil {
		return nil, fmt.Errorf("failed to save compare list: %w", err)
	}
	return s.resolve(ctx, domain.CompareList, next, added)
}

// View records a product visit at the front of the recently viewed list
func (s *CollectionService) View(ctx context.Context, visitor, id string) (*Result, error) {
	if err := s.ensureProduct(ctx, id); err != nil {
		return nil, err
	}
	ids, err := s.load(ctx, domain.RecentlyViewed, visitor)
	if err != nil {
		return nil, err
	}
	next := domain.View(ids, id)
	if err := s.save(ctx, domain.RecentlyViewed, visitor, next); err != nil {
		return nil, fmt.Errorf("failed to save recently viewed: %w", err)
	}
	return s.resolve(ctx, domain.RecentlyViewed, next, true)
}

// ClearRecent empties the recently viewed list
func (s *CollectionService) ClearRecent(ctx context.Context, visitor string) error {
	return s.store.Delete(ctx, domain.Key(domain.RecentlyViewed, visitor))
}
