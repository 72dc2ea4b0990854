package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/tair/bookmypanditji/internal/booking/domain"
	bookingrepo "github.com/tair/bookmypanditji/internal/booking/repository"
	catalogrepo "github.com/tair/bookmypanditji/internal/catalog/repository"
	"github.com/tair/bookmypanditji/internal/pricing"
	"github.com/tair/bookmypanditji/internal/validation"
	"github.com/tair/bookmypanditji/kafka"
)

var now = time.Date(2025, 5, 1, 10, 0, 0, 0, domain.CeremonyZone)

func settings() Settings {
	return Settings{Zone: domain.CeremonyZone, Now: func() time.Time { return now }}
}

func quoter() *QuoteBookingHandler {
	return NewQuoteBookingHandler(catalogrepo.NewMemoryCatalogRepository(catalogrepo.SeedItems()), settings())
}

func request(mut func(*domain.Request)) domain.Request {
	r := domain.Request{
		PanditID:    "1",
		Service:     "Vastu Consultation",
		Date:        "2025-05-02",
		TimeSlot:    domain.SlotEvening,
		Address:     "12 MG Road, Delhi",
		BookingType: pricing.BookingNormal,
	}
	if mut != nil {
		mut(&r)
	}
	return r
}

func TestQuotePricesTheSelectedService(t *testing.T) {
	q, err := quoter().Handle(context.Background(), QuoteBookingCommand{Request: request(func(r *domain.Request) {
		r.BookingType = pricing.BookingPremium
		r.IncludeAddOn = true
	})})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2500 x 1.5 x 1.2 = 4500, fee 225
	if !q.Breakdown.Total.Equal(decimal.NewFromInt(4725)) {
		t.Fatalf("total = %s", q.Breakdown.Total)
	}
	want := time.Date(2025, 5, 2, 16, 0, 0, 0, domain.CeremonyZone)
	if !q.CeremonyAt.Equal(want) {
		t.Fatalf("ceremony at %v, want %v", q.CeremonyAt, want)
	}
}

func TestQuoteMissingFields(t *testing.T) {
	_, err := quoter().Handle(context.Background(), QuoteBookingCommand{Request: domain.Request{PanditID: "1"}})
	fields, ok := validation.AsErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	for _, f := range []string{"service", "date", "time_slot", "address"} {
		if fields[f] == "" {
			t.Fatalf("missing message for %s in %v", f, fields)
		}
	}
}

func TestQuoteRejectsUnknownServiceAndDates(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*domain.Request)
		field string
	}{
		{"service not offered", func(r *domain.Request) { r.Service = "Car Puja" }, "service"},
		{"past slot", func(r *domain.Request) { r.Date = "2025-05-01"; r.TimeSlot = domain.SlotMorning }, "date"},
		{"beyond three months", func(r *domain.Request) { r.Date = "2025-08-02" }, "date"},
		{"bad slot", func(r *domain.Request) { r.TimeSlot = "midnight" }, "time_slot"},
		{"unknown pandit", func(r *domain.Request) { r.PanditID = "77" }, "pandit_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := quoter().Handle(context.Background(), QuoteBookingCommand{Request: request(tc.mut)})
			fields, ok := validation.AsErrors(err)
			if !ok || fields[tc.field] == "" {
				t.Fatalf("expected error on %s, got %v", tc.field, err)
			}
		})
	}
}

func TestPremiumFiveDaysOutIsBlocked(t *testing.T) {
	repo := bookingrepo.NewMemoryBookingRepository()
	h := NewCreateBookingHandler(quoter(), repo, kafka.NopPublisher{}, settings(), prometheus.NewRegistry())

	_, err := h.Handle(context.Background(), CreateBookingCommand{Request: request(func(r *domain.Request) {
		r.Date = "2025-05-06"
		r.BookingType = pricing.BookingPremium
	})})
	rule, ok := validation.AsRule(err)
	if !ok || rule.Field != "booking_type" {
		t.Fatalf("expected booking_type rule error, got %v", err)
	}
	if _, ok := validation.AsErrors(err); ok {
		t.Fatal("premium window must not be reported as field errors")
	}
}

type recordingPublisher struct {
	kafka.NopPublisher
	events []kafka.BookingCreatedEvent
	err    error
}

func (p *recordingPublisher) PublishBookingCreated(_ context.Context, e kafka.BookingCreatedEvent) error {
	p.events = append(p.events, e)
	return p.err
}

func TestCreateStoresAndPublishes(t *testing.T) {
	repo := bookingrepo.NewMemoryBookingRepository()
	pub := &recordingPublisher{err: errors.New("broker down")}
	h := NewCreateBookingHandler(quoter(), repo, pub, settings(), prometheus.NewRegistry())

	b, err := h.Handle(context.Background(), CreateBookingCommand{Request: request(nil)})
	if err != nil {
		t.Fatalf("publish failures must not fail the booking: %v", err)
	}
	if b.Status != domain.StatusPending || !b.Total.Equal(decimal.NewFromInt(2625)) {
		t.Fatalf("unexpected booking %+v", b)
	}
	stored, err := repo.FindByID(context.Background(), b.ID)
	if err != nil || stored.PanditName != "Pandit Rajesh Sharma" {
		t.Fatalf("stored booking %+v, err %v", stored, err)
	}
	if len(pub.events) != 1 || pub.events[0].BookingID != b.ID || pub.events[0].Total != "2625" {
		t.Fatalf("events %+v", pub.events)
	}
}

func TestCreateHonoursCancellationDuringDelay(t *testing.T) {
	s := settings()
	s.SubmitDelay = time.Hour
	repo := bookingrepo.NewMemoryBookingRepository()
	h := NewCreateBookingHandler(quoter(), repo, kafka.NopPublisher{}, s, prometheus.NewRegistry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.Handle(ctx, CreateBookingCommand{Request: request(nil)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
