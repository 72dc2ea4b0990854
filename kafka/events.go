package kafka

import "time"

// BookingCreatedEvent is published once a booking has been stored
type BookingCreatedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	BookingID    string    `json:"booking_id"`
	PanditID     string    `json:"pandit_id"`
	Service      string    `json:"service"`
	BookingType  string    `json:"booking_type"`
	IncludeAddOn bool      `json:"include_add_on"`
	CeremonyAt   time.Time `json:"ceremony_at"`
	Total        string    `json:"total"`
	VisitorID    string    `json:"visitor_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// RegistrationSubmittedEvent is published when a wizard reaches submitted
type RegistrationSubmittedEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	RegistrationID string    `json:"registration_id"`
	Flow           string    `json:"flow"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Timestamp      time.Time `json:"timestamp"`
}

// CatalogUpdatedEvent tells catalog readers to reload their snapshot
type CatalogUpdatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Source    string    `json:"source"`
	Products  int       `json:"products"`
	Pandits   int       `json:"pandits"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeBookingCreated        = "booking.created"
	EventTypeRegistrationSubmitted = "registration.submitted"
	EventTypeCatalogUpdated        = "catalog.updated"
)

// Kafka topics
const (
	TopicBookingCreated        = "booking-created"
	TopicRegistrationSubmitted = "registration-submitted"
	TopicCatalogUpdated        = "catalog-updated"
)
