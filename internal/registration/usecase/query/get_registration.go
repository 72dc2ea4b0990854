package query

import (
	"context"

	"github.com/tair/bookmypanditji/internal/registration/domain"
)

// GetSessionQuery represents the query to load a wizard session
type GetSessionQuery struct {
	ID string
}

// GetSessionHandler handles get session query
type GetSessionHandler struct {
	sessions domain.SessionStore
}

// NewGetSessionHandler creates a new get session handler
func NewGetSessionHandler(sessions domain.SessionStore) *GetSessionHandler {
	return &GetSessionHandler{sessions: sessions}
}

func (h *GetSessionHandler) Handle(ctx context.Context, q GetSessionQuery) (*domain.Session, error) {
	return h.sessions.Load(ctx, q.ID)
}

// GetRegistrationQuery represents the query to fetch a submitted registration
type GetRegistrationQuery struct {
	ID string
}

// GetRegistrationHandler handles get registration query
type GetRegistrationHandler struct {
	repo domain.RegistrationRepository
}

// NewGetRegistrationHandler creates a new get registration handler
func NewGetRegistrationHandler(repo domain.RegistrationRepository) *GetRegistrationHandler {
	return &GetRegistrationHandler{repo: repo}
}

func (h *GetRegistrationHandler) Handle(ctx context.Context, q GetRegistrationQuery) (*domain.Registration, error) {
	return h.repo.FindByID(ctx, q.ID)
}
