package repository

import (
	"context"

	"github.com/go-faster/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Item{})
}

func (r *GormCatalogRepository) ListAll(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.WithContext(ctx).Order("kind, position").Find(&items).Error
	return items, err
}

func (r *GormCatalogRepository) FindByID(ctx context.Context, kind domain.Kind, id string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).Where("kind = ? AND id = ?", kind, id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert inserts items, overwriting rows that share (kind, id)
func (r *GormCatalogRepository) Upsert(ctx context.Context, items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&items).Error
}

func (r *GormCatalogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Item{}).Count(&count).Error
	return count, err
}
