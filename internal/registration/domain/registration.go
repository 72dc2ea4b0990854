package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
)

// ErrRegistrationNotFound is returned when no registration has the given id
var ErrRegistrationNotFound = errors.New("registration not found")

// Registration is a submitted wizard
type Registration struct {
	ID        string                     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Flow      string                     `gorm:"type:varchar(32);index;not null" json:"flow"`
	Name      string                     `gorm:"type:varchar(255)" json:"name"`
	Email     string                     `gorm:"type:varchar(255);index" json:"email"`
	Data      map[string]json.RawMessage `gorm:"serializer:json;type:jsonb" json:"data"`
	Status    string                     `gorm:"type:varchar(32);not null" json:"status"`
	CreatedAt time.Time                  `json:"created_at"`
}

func (Registration) TableName() string {
	return "registrations"
}

// StatusReceived marks a registration waiting for review
const StatusReceived = "received"

// RegistrationRepository stores submitted registrations
type RegistrationRepository interface {
	Create(ctx context.Context, r *Registration) error
	FindByID(ctx context.Context, id string) (*Registration, error)
}

// SessionStore keeps in-progress wizard sessions
type SessionStore interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	// Claim reserves a session for submission. It returns ErrSubmitting while
	// another claim is held; release gives the claim back.
	Claim(ctx context.Context, id string, ttl time.Duration) (release func(), err error)
}
