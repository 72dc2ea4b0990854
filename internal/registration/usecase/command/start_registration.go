package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/bookmypanditji/internal/registration/domain"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// Settings carries the timing knobs shared by registration commands
type Settings struct {
	SubmitDelay time.Duration
	Now         func() time.Time
}

func (s Settings) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// StartRegistrationCommand opens a wizard session
type StartRegistrationCommand struct {
	Flow string
}

// StartRegistrationHandler handles start registration command
type StartRegistrationHandler struct {
	flows    domain.Flows
	sessions domain.SessionStore
	settings Settings
}

// NewStartRegistrationHandler creates a new start registration handler
func NewStartRegistrationHandler(flows domain.Flows, sessions domain.SessionStore, settings Settings) *StartRegistrationHandler {
	return &StartRegistrationHandler{flows: flows, sessions: sessions, settings: settings}
}

func (h *StartRegistrationHandler) Handle(ctx context.Context, cmd StartRegistrationCommand) (*domain.Session, error) {
	flow, err := h.flows.Lookup(cmd.Flow)
	if err != nil {
		return nil, err
	}

	sess := flow.Start(uuid.NewString(), h.settings.now())
	if err := h.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Debug(ctx).Str("session_id", sess.ID).Str("flow", flow.Name).Msg("Registration started")
	return sess, nil
}
