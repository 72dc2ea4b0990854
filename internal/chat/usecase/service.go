package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookmypanditji/internal/chat/domain"
	"github.com/tair/bookmypanditji/internal/validation"
	"github.com/tair/bookmypanditji/pkg/kvstore"
	"github.com/tair/bookmypanditji/pkg/logger"
)

func historyKey(visitor string) string {
	return "chatHistory:" + visitor
}

// ChatService keeps per-visitor transcripts and answers messages
type ChatService struct {
	store    kvstore.Store
	bot      *domain.Bot
	now      func() time.Time
	messages *prometheus.CounterVec
}

// NewChatService creates a chat service
func NewChatService(store kvstore.Store, bot *domain.Bot, reg prometheus.Registerer) *ChatService {
	messages := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Visitor chat messages by detected intent",
		},
		[]string{"intent"},
	)
	reg.MustRegister(messages)

	return &ChatService{store: store, bot: bot, now: time.Now, messages: messages}
}

func (s *ChatService) greet(ctx context.Context, visitor string) ([]domain.Message, error) {
	history := []domain.Message{{
		ID:        1,
		Text:      s.bot.Reply(domain.IntentGreeting),
		Intent:    domain.IntentGreeting,
		Timestamp: s.now(),
	}}
	if err := kvstore.SaveList(ctx, s.store, historyKey(visitor), history); err != nil {
		return nil, fmt.Errorf("failed to save chat history: %w", err)
	}
	return history, nil
}

// Open returns the transcript, starting it with a greeting when empty
func (s *ChatService) Open(ctx context.Context, visitor string) ([]domain.Message, error) {
	history, err := kvstore.LoadList[domain.Message](ctx, s.store, historyKey(visitor))
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return s.greet(ctx, visitor)
	}
	return history, nil
}

// Send appends the visitor's message and the assistant's reply
func (s *ChatService) Send(ctx context.Context, visitor, text string) ([]domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		errs := validation.Errors{}
		errs.Add("text", "Please type a message")
		return nil, errs
	}

	history, err := s.Open(ctx, visitor)
	if err != nil {
		return nil, err
	}

	intent := domain.Classify(text)
	now := s.now()
	history = append(history,
		domain.Message{ID: len(history) + 1, Text: text, IsUser: true, Timestamp: now},
		domain.Message{ID: len(history) + 2, Text: s.bot.Reply(intent), Intent: intent, Timestamp: now},
	)
	if err := kvstore.SaveList(ctx, s.store, historyKey(visitor), history); err != nil {
		return nil, fmt.Errorf("failed to save chat history: %w", err)
	}

	s.messages.WithLabelValues(string(intent)).Inc()
	logger.Debug(ctx).Str("visitor", visitor).Str("intent", string(intent)).Msg("Chat message answered")
	return history, nil
}

// Clear drops the transcript and starts over with a fresh greeting
func (s *ChatService) Clear(ctx context.Context, visitor string) ([]domain.Message, error) {
	if err := s.store.Delete(ctx, historyKey(visitor)); err != nil {
		return nil, fmt.Errorf("failed to clear chat history: %w", err)
	}
	return s.greet(ctx, visitor)
}
