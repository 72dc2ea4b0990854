package domain

import (
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/tair/bookmypanditji/internal/validation"
)

// Kind tells products and pandit listings apart inside one catalog
type Kind string

const (
	KindProduct Kind = "product"
	KindPandit  Kind = "pandit"
)

// Product categories
const (
	CategoryPoojaKits   = "pooja-kits"
	CategoryIdols       = "idols"
	CategoryIncense     = "incense"
	CategoryLamps       = "lamps"
	CategoryBooks       = "books"
	CategoryAccessories = "accessories"
)

// ProductCategories lists the closed set of product categories
var ProductCategories = []string{
	CategoryPoojaKits,
	CategoryIdols,
	CategoryIncense,
	CategoryLamps,
	CategoryBooks,
	CategoryAccessories,
}

// ErrItemNotFound is returned when no item carries the requested id
var ErrItemNotFound = errors.New("catalog item not found")

// Service is a ceremony a pandit can be booked for
type Service struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Item is one catalog entry: a product or a pandit listing
type Item struct {
	ID            string           `json:"id" gorm:"primaryKey"`
	Kind          Kind             `json:"kind" gorm:"primaryKey"`
	Name          string           `json:"name" gorm:"not null"`
	Description   string           `json:"description"`
	Category      string           `json:"category" gorm:"index"`
	BasePrice     decimal.Decimal  `json:"base_price" gorm:"type:numeric(12,2);not null"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty" gorm:"type:numeric(12,2)"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	InStock       bool             `json:"in_stock"`
	Availability  []string         `json:"availability,omitempty" gorm:"serializer:json;type:jsonb"`
	DateAdded     *time.Time       `json:"date_added,omitempty" gorm:"type:date"`
	IsFeatured    bool             `json:"is_featured"`
	Position      int              `json:"-" gorm:"not null;default:0"`

	// Pandit listing details
	Location   string    `json:"location,omitempty"`
	Expertise  []string  `json:"expertise,omitempty" gorm:"serializer:json;type:jsonb"`
	Languages  []string  `json:"languages,omitempty" gorm:"serializer:json;type:jsonb"`
	Experience int       `json:"experience,omitempty"`
	Services   []Service `json:"services,omitempty" gorm:"serializer:json;type:jsonb"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "catalog_items"
}

// EffectivePrice is the discount price when present, otherwise the base price
func (i Item) EffectivePrice() decimal.Decimal {
	if i.DiscountPrice != nil {
		return *i.DiscountPrice
	}
	return i.BasePrice
}

// NumericID parses the id as an integer. ok is false for non-numeric ids.
func (i Item) NumericID() (n int64, ok bool) {
	n, err := strconv.ParseInt(i.ID, 10, 64)
	return n, err == nil
}

// FindService returns the named service of a pandit listing
func (i Item) FindService(name string) (Service, bool) {
	for _, s := range i.Services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}

// Validate checks the catalog invariants of a single item
func (i Item) Validate() error {
	errs := validation.Errors{}
	errs.Required("id", i.ID, "ID")
	errs.Required("name", i.Name, "Name")
	if i.Kind != KindProduct && i.Kind != KindPandit {
		errs.Add("kind", "Kind must be product or pandit")
	}
	if !i.BasePrice.IsPositive() {
		errs.Add("base_price", "Base price must be positive")
	}
	if i.DiscountPrice != nil {
		if i.DiscountPrice.IsNegative() {
			errs.Add("discount_price", "Discount price cannot be negative")
		} else if !i.DiscountPrice.LessThan(i.BasePrice) {
			errs.Add("discount_price", "Discount price must be below the base price")
		}
	}
	if i.Rating < 0 || i.Rating > 5 {
		errs.Add("rating", "Rating must be between 0 and 5")
	}
	for _, s := range i.Services {
		if !s.Price.IsPositive() {
			errs.Add("services", "Service prices must be positive")
			break
		}
	}
	return errs.Err()
}
