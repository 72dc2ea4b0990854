package domain

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/tair/bookmypanditji/internal/pricing"
	"github.com/tair/bookmypanditji/internal/validation"
)

// ErrBookingNotFound is returned when no booking carries the requested id
var ErrBookingNotFound = errors.New("booking not found")

// DateLayout is the calendar date format bookings are requested with
const DateLayout = "2006-01-02"

// MaxAdvance is how far ahead a ceremony can be booked
const MaxAdvance = 3 // months

// CeremonyZone is the local time ceremonies are scheduled in
var CeremonyZone = time.FixedZone("IST", 5*60*60+30*60)

// TimeSlot is a part of the day a ceremony starts in
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

var slotStart = map[TimeSlot]int{
	SlotMorning:   6,
	SlotAfternoon: 11,
	SlotEvening:   16,
}

// StartHour is the local hour the slot opens at
func (s TimeSlot) StartHour() (int, bool) {
	h, ok := slotStart[s]
	return h, ok
}

// Request is what a devotee submits to book a pandit
type Request struct {
	PanditID     string              `json:"pandit_id"`
	Service      string              `json:"service"`
	Date         string              `json:"date"`
	TimeSlot     TimeSlot            `json:"time_slot"`
	Address      string              `json:"address"`
	Requirements string              `json:"requirements,omitempty"`
	BookingType  pricing.BookingType `json:"booking_type"`
	IncludeAddOn bool                `json:"include_add_on"`
	VisitorID    string              `json:"visitor_id,omitempty"`
}

// Normalize fills optional fields with their defaults
func (r *Request) Normalize() {
	if r.BookingType == "" {
		r.BookingType = pricing.BookingNormal
	}
}

// Validate checks required fields and their formats
func (r Request) Validate() validation.Errors {
	errs := validation.Errors{}
	if r.PanditID == "" {
		errs.Add("pandit_id", "Please select a pandit")
	}
	if r.Service == "" {
		errs.Add("service", "Please select a service")
	}
	if r.Date == "" {
		errs.Add("date", "Please select a date")
	} else if _, err := time.Parse(DateLayout, r.Date); err != nil {
		errs.Add("date", "Please select a valid date")
	}
	if r.TimeSlot == "" {
		errs.Add("time_slot", "Please select a time")
	} else if _, ok := r.TimeSlot.StartHour(); !ok {
		errs.Add("time_slot", "Please select morning, afternoon or evening")
	}
	if strings.TrimSpace(r.Address) == "" {
		errs.Add("address", "Please enter venue address")
	}
	if !r.BookingType.Valid() {
		errs.Add("booking_type", "Booking type must be normal or premium")
	}
	return errs
}

// CeremonyAt is the moment the ceremony starts: the requested date at the
// opening hour of the slot, in loc
func (r Request) CeremonyAt(loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, r.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	h, ok := r.TimeSlot.StartHour()
	if !ok {
		return time.Time{}, errors.Errorf("unknown time slot %q", r.TimeSlot)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), h, 0, 0, 0, loc), nil
}

// Status of a stored booking
const (
	StatusPending = "pending"
)

// Booking is an accepted booking request with its price
type Booking struct {
	ID           string          `json:"id" gorm:"primaryKey"`
	PanditID     string          `json:"pandit_id" gorm:"index;not null"`
	PanditName   string          `json:"pandit_name"`
	Service      string          `json:"service" gorm:"not null"`
	CeremonyAt   time.Time       `json:"ceremony_at"`
	TimeSlot     TimeSlot        `json:"time_slot"`
	Address      string          `json:"address"`
	Requirements string          `json:"requirements,omitempty"`
	BookingType  string          `json:"booking_type"`
	IncludeAddOn bool            `json:"include_add_on"`
	BasePrice    decimal.Decimal `json:"base_price" gorm:"type:numeric(12,2)"`
	ServiceFee   decimal.Decimal `json:"service_fee" gorm:"type:numeric(12,2)"`
	PlatformFee  decimal.Decimal `json:"platform_fee" gorm:"type:numeric(12,2)"`
	Total        decimal.Decimal `json:"total" gorm:"type:numeric(12,2)"`
	Status       string          `json:"status" gorm:"default:pending"`
	VisitorID    string          `json:"visitor_id,omitempty" gorm:"index"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}

// BookingRepository defines the contract for booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id string) (*Booking, error)
}
