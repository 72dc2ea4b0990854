package command

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookmypanditji/internal/registration/domain"
	"github.com/tair/bookmypanditji/internal/validation"
	"github.com/tair/bookmypanditji/kafka"
	"github.com/tair/bookmypanditji/pkg/delay"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// claimGrace is how long a submission claim outlives the submit delay
const claimGrace = 30 * time.Second

// NextStepCommand submits the current step of a session
type NextStepCommand struct {
	SessionID string
	Payload   json.RawMessage
}

// PreviousStepCommand moves a session back one step
type PreviousStepCommand struct {
	SessionID string
}

// NavigateRegistrationHandler moves sessions through their flow and submits
// them once the last step validates
type NavigateRegistrationHandler struct {
	flows     domain.Flows
	sessions  domain.SessionStore
	repo      domain.RegistrationRepository
	publisher kafka.EventPublisher
	settings  Settings
	submitted *prometheus.CounterVec
}

// NewNavigateRegistrationHandler creates a new navigate registration handler
func NewNavigateRegistrationHandler(
	flows domain.Flows,
	sessions domain.SessionStore,
	repo domain.RegistrationRepository,
	publisher kafka.EventPublisher,
	settings Settings,
	reg prometheus.Registerer,
) *NavigateRegistrationHandler {
	submitted := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_submitted_total",
			Help: "Total number of registration wizards submitted",
		},
		[]string{"flow"},
	)
	reg.MustRegister(submitted)

	return &NavigateRegistrationHandler{
		flows:     flows,
		sessions:  sessions,
		repo:      repo,
		publisher: publisher,
		settings:  settings,
		submitted: submitted,
	}
}

func (h *NavigateRegistrationHandler) load(ctx context.Context, id string) (*domain.Session, *domain.Flow, error) {
	sess, err := h.sessions.Load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	flow, err := h.flows.Lookup(sess.Flow)
	if err == nil {
		err = flow.Resume(sess)
	}
	if err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("session_id", id).
			Str("flow", sess.Flow).
			Int("step", sess.Step).
			Msg("Discarding registration session that no longer fits its flow")
		return nil, nil, domain.ErrSessionMissing
	}
	return sess, flow, nil
}

// Next validates and stores the current step. On the last step it waits out
// the submission delay, persists the registration and announces it.
func (h *NavigateRegistrationHandler) Next(ctx context.Context, cmd NextStepCommand) (*domain.Session, error) {
	sess, flow, err := h.load(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	ready, err := flow.Next(sess, cmd.Payload, h.settings.now())
	if fields, ok := validation.AsErrors(err); ok {
		logger.Debug(ctx).
			Str("session_id", sess.ID).
			Str("step", sess.StepName).
			Interface("fields", fields).
			Msg("Registration step rejected")
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if ready {
		release, err := h.sessions.Claim(ctx, sess.ID, h.settings.SubmitDelay+claimGrace)
		if err != nil {
			return nil, err
		}
		defer release()

		// A submission that finished before our claim has already saved the session
		current, err := h.sessions.Load(ctx, sess.ID)
		if err != nil {
			return nil, err
		}
		if current.Submitted {
			return nil, domain.ErrSubmitted
		}
		return h.submit(ctx, flow, sess)
	}

	if err := h.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

func (h *NavigateRegistrationHandler) submit(ctx context.Context, flow *domain.Flow, sess *domain.Session) (*domain.Session, error) {
	if err := delay.Wait(ctx, h.settings.SubmitDelay); err != nil {
		return nil, fmt.Errorf("registration submission abandoned: %w", err)
	}

	name, email := flow.Contact(sess)
	reg := &domain.Registration{
		ID:        uuid.NewString(),
		Flow:      flow.Name,
		Name:      name,
		Email:     email,
		Data:      sess.Data,
		Status:    domain.StatusReceived,
		CreatedAt: h.settings.now(),
	}
	if err := h.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	sess.MarkSubmitted(reg.ID, h.settings.now())
	if err := h.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	h.submitted.WithLabelValues(flow.Name).Inc()

	if err := h.publisher.PublishRegistrationSubmitted(ctx, kafka.RegistrationSubmittedEvent{
		RegistrationID: reg.ID,
		Flow:           reg.Flow,
		Name:           reg.Name,
		Email:          reg.Email,
	}); err != nil {
		logger.Warn(ctx).Err(err).Str("registration_id", reg.ID).Msg("Failed to publish registration event")
	}

	logger.Info(ctx).
		Str("registration_id", reg.ID).
		Str("session_id", sess.ID).
		Str("flow", reg.Flow).
		Msg("Registration submitted")

	return sess, nil
}

// Previous steps back without validating
func (h *NavigateRegistrationHandler) Previous(ctx context.Context, cmd PreviousStepCommand) (*domain.Session, error) {
	sess, flow, err := h.load(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}
	if err := flow.Back(sess, h.settings.now()); err != nil {
		return nil, err
	}
	if err := h.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}
