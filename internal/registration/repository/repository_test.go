package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"

	"github.com/tair/bookmypanditji/internal/registration/domain"
	"github.com/tair/bookmypanditji/pkg/kvstore"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewKVSessionStore(kvstore.NewMemory())

	if _, err := store.Load(ctx, "missing"); !errors.Is(err, domain.ErrSessionMissing) {
		t.Fatalf("expected ErrSessionMissing, got %v", err)
	}

	sess := domain.DevoteeFlow.Start("abc", time.Now())
	sess.Step = 2
	if err := store.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}
	got, err := store.Load(ctx, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if got.Flow != "devotee" || got.Step != 2 || got.TotalSteps != 5 {
		t.Fatalf("loaded %+v", got)
	}
}

func TestMemoryRegistrationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRegistrationRepository()
	reg := &domain.Registration{ID: "r1", Flow: "pandit", Status: domain.StatusReceived}
	if err := repo.Create(ctx, reg); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, reg); err == nil {
		t.Fatal("duplicate id must fail")
	}
	if _, err := repo.FindByID(ctx, "r2"); !errors.Is(err, domain.ErrRegistrationNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUnreadableSessionIsMissing(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	_ = kv.Set(ctx, "registration:abc", []byte(`{"flow":"pandit","step":`))

	if _, err := NewKVSessionStore(kv).Load(ctx, "abc"); !errors.Is(err, domain.ErrSessionMissing) {
		t.Fatalf("expected ErrSessionMissing, got %v", err)
	}
}

func TestClaimIsExclusiveUntilReleased(t *testing.T) {
	ctx := context.Background()
	store := NewKVSessionStore(kvstore.NewMemory())

	release, err := store.Claim(ctx, "abc", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Claim(ctx, "abc", time.Minute); !errors.Is(err, domain.ErrSubmitting) {
		t.Fatalf("expected ErrSubmitting, got %v", err)
	}
	if _, err := store.Claim(ctx, "other", time.Minute); err != nil {
		t.Fatalf("claims must be per session: %v", err)
	}

	release()
	if _, err := store.Claim(ctx, "abc", time.Minute); err != nil {
		t.Fatalf("claim after release: %v", err)
	}
}
