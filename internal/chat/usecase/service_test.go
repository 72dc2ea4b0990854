package usecase

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bookmypanditji/internal/chat/domain"
	"github.com/tair/bookmypanditji/internal/validation"
	"github.com/tair/bookmypanditji/pkg/kvstore"
)

func newService(store kvstore.Store) *ChatService {
	bot := domain.NewBotWithPicker(func(int) int { return 0 })
	return NewChatService(store, bot, prometheus.NewRegistry())
}

func TestOpenGreetsOnce(t *testing.T) {
	ctx := context.Background()
	svc := newService(kvstore.NewMemory())

	history, err := svc.Open(ctx, "v1")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].IsUser || history[0].Intent != domain.IntentGreeting {
		t.Fatalf("history %+v", history)
	}
	again, _ := svc.Open(ctx, "v1")
	if len(again) != 1 {
		t.Fatalf("greeting repeated: %+v", again)
	}
}

func TestSendAppendsReply(t *testing.T) {
	ctx := context.Background()
	svc := newService(kvstore.NewMemory())

	history, err := svc.Send(ctx, "v2", "Urgent puja booking")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 3 {
		t.Fatalf("want greeting, question and reply, got %+v", history)
	}
	reply := history[2]
	if reply.IsUser || reply.Intent != domain.IntentUrgentBooking || reply.ID != 3 {
		t.Fatalf("reply %+v", reply)
	}
	if reply.Text != domain.Replies(domain.IntentUrgentBooking)[0] {
		t.Fatalf("text %q", reply.Text)
	}

	if _, err := svc.Send(ctx, "v2", "   "); err == nil {
		t.Fatal("blank message must be rejected")
	} else if fields, ok := validation.AsErrors(err); !ok || fields["text"] == "" {
		t.Fatalf("expected text field error, got %v", err)
	}
}

func TestCorruptHistoryStartsOver(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	_ = store.Set(ctx, "chatHistory:v3", []byte(`[{"id":"oops"`))
	svc := newService(store)

	history, err := svc.Open(ctx, "v3")
	if err != nil {
		t.Fatalf("corrupt history must not surface: %v", err)
	}
	if len(history) != 1 || history[0].Intent != domain.IntentGreeting {
		t.Fatalf("history %+v", history)
	}
}

func TestClearRegreets(t *testing.T) {
	ctx := context.Background()
	svc := newService(kvstore.NewMemory())
	_, _ = svc.Send(ctx, "v4", "where are you")

	history, err := svc.Clear(ctx, "v4")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].Intent != domain.IntentGreeting {
		t.Fatalf("history %+v", history)
	}
}
