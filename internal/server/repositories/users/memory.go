package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
	"github.com/google/uuid"
)

type memoryRecord struct {
	mu   sync.Mutex
	user *models.User
}

// MemoryStore is an in-process Store. Each record has its own mutex, held
// for the whole of Update. Callers always receive copies.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]*memoryRecord
	byEmail map[string]string
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[string]*memoryRecord),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (s *MemoryStore) record(id string) (*memoryRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	return r, ok
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	id, ok := s.byEmail[NormalizeEmail(email)]
	s.mu.RUnlock()
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	r, ok := s.record(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.user.Clone(), nil
}

func (s *MemoryStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	u := user.Clone()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = NormalizeEmail(u.Email)
	now := s.now()
	u.Version = 1
	u.CreatedAt = now
	u.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	if _, ok := s.byID[u.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	s.byID[u.ID] = &memoryRecord{user: u}
	s.byEmail[u.Email] = u.ID

	return u.Clone(), nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, mutate func(u *models.User) error) (*models.User, error) {
	r, ok := s.record(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.user.Clone()
	if err := mutate(u); err != nil {
		return nil, err
	}
	// identity fields are not writable through Update
	u.ID = r.user.ID
	u.Email = r.user.Email
	u.CreatedAt = r.user.CreatedAt
	u.Version = r.user.Version + 1
	u.UpdatedAt = s.now()

	r.user = u
	return u.Clone(), nil
}
