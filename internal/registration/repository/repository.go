package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"gorm.io/gorm"

	"github.com/tair/bookmypanditji/internal/registration/domain"
	"github.com/tair/bookmypanditji/pkg/kvstore"
	"github.com/tair/bookmypanditji/pkg/logger"
)

type GormRegistrationRepository struct {
	db *gorm.DB
}

func NewGormRegistrationRepository(db *gorm.DB) *GormRegistrationRepository {
	return &GormRegistrationRepository{db: db}
}

func (r *GormRegistrationRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Registration{})
}

func (r *GormRegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *GormRegistrationRepository) FindByID(ctx context.Context, id string) (*domain.Registration, error) {
	var reg domain.Registration
	err := r.db.WithContext(ctx).First(&reg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// MemoryRegistrationRepository keeps registrations in process
type MemoryRegistrationRepository struct {
	mu   sync.RWMutex
	regs map[string]domain.Registration
}

func NewMemoryRegistrationRepository() *MemoryRegistrationRepository {
	return &MemoryRegistrationRepository{regs: make(map[string]domain.Registration)}
}

func (r *MemoryRegistrationRepository) Create(_ context.Context, reg *domain.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.regs[reg.ID]; ok {
		return errors.Errorf("registration %s already exists", reg.ID)
	}
	r.regs[reg.ID] = *reg
	return nil
}

func (r *MemoryRegistrationRepository) FindByID(_ context.Context, id string) (*domain.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.regs[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	return &reg, nil
}

// KVSessionStore keeps wizard sessions in a kvstore under registration:<id>
type KVSessionStore struct {
	store kvstore.Store
}

func NewKVSessionStore(store kvstore.Store) *KVSessionStore {
	return &KVSessionStore{store: store}
}

func sessionKey(id string) string {
	return "registration:" + id
}

// Load returns ErrSessionMissing for absent and for unreadable sessions
func (s *KVSessionStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.store.Get(ctx, sessionKey(id))
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, domain.ErrSessionMissing
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session")
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		logger.Warn(ctx).Err(err).Str("session_id", id).Msg("Discarding unreadable registration session")
		return nil, domain.ErrSessionMissing
	}
	return &sess, nil
}

func (s *KVSessionStore) Save(ctx context.Context, sess *domain.Session) error {
	return kvstore.SaveJSON(ctx, s.store, sessionKey(sess.ID), sess)
}

// Claim takes registration:<id>:submitting. The ttl frees the claim if the
// holder dies before releasing it.
func (s *KVSessionStore) Claim(ctx context.Context, id string, ttl time.Duration) (func(), error) {
	key := sessionKey(id) + ":submitting"
	ok, err := s.store.SetNX(ctx, key, []byte("1"), ttl)
	if err != nil {
		return nil, errors.Wrap(err, "claim session")
	}
	if !ok {
		return nil, domain.ErrSubmitting
	}
	return func() {
		// The request context may already be done.
		if err := s.store.Delete(context.WithoutCancel(ctx), key); err != nil {
			logger.Warn(ctx).Err(err).Str("session_id", id).Msg("Failed to release submission claim")
		}
	}, nil
}
