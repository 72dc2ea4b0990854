// Package kvstore is the key/value boundary behind visitor state: saved lists,
// chat transcripts and wizard sessions. Values are opaque JSON documents.
package kvstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-faster/errors"

	"github.com/tair/bookmypanditji/pkg/logger"
)

// ErrNotFound is returned by Get when the key holds no value
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a last-write-wins key/value store
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// SetNX stores value only when key is absent and reports whether it did.
	// ttl bounds how long the key lives; zero keeps it until deleted.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
}

// Memory is an in-process Store
type Memory struct {
	mu      sync.RWMutex
	m       map[string][]byte
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemory returns an empty in-process store
func NewMemory() *Memory {
	return &Memory{
		m:       make(map[string][]byte),
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

// live reports whether key holds an unexpired value. Callers hold mu.
func (s *Memory) live(key string) bool {
	if _, ok := s.m[key]; !ok {
		return false
	}
	at, ok := s.expires[key]
	return !ok || s.now().Before(at)
}

func (s *Memory) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.live(key) {
		return nil, ErrNotFound
	}
	v := s.m[key]
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Memory) Set(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.mu.Lock()
	s.m[key] = v
	delete(s.expires, key)
	s.mu.Unlock()
	return nil
}

func (s *Memory) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	delete(s.expires, key)
	s.mu.Unlock()
	return nil
}

func (s *Memory) SetNX(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live(key) {
		return false, nil
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.m[key] = v
	delete(s.expires, key)
	if ttl > 0 {
		s.expires[key] = s.now().Add(ttl)
	}
	return true, nil
}

// LoadList reads a JSON array stored under key. A missing key yields an empty
// list. A value that fails to decode is logged and treated as empty so one
// corrupt entry never blocks the caller.
func LoadList[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", key)
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("key", key).
			Int("size", len(raw)).
			Msg("Discarding unreadable stored list")
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// SaveList writes list under key as a JSON array
func SaveList[T any](ctx context.Context, s Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return errors.Wrapf(err, "encode %q", key)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "save %q", key)
	}
	return nil
}

// LoadJSON decodes the document stored under key into v.
// It returns ErrNotFound when the key is absent.
func LoadJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "decode %q", key)
	}
	return nil
}

// SaveJSON encodes v and stores it under key
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %q", key)
	}
	return s.Set(ctx, key, raw)
}
