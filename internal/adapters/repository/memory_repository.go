package repository

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

var (
	_ domain.UserRepository     = (*InMemoryUserRepository)(nil)
	_ domain.ProgressRepository = (*InMemoryProgressRepository)(nil)
)

type InMemoryUserRepository struct {
	byID    map[string]*domain.User
	byEmail map[string]string

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	if _, ok := r.byID[user.ID]; ok {
		return domain.ErrEmailAlreadyExists
	}

	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := *r.byID[id]
	return &u, nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := *stored
	return &u, nil
}

// InMemoryProgressRepository relies on UserProgress being immutable, so
// values are stored and returned without copying.
type InMemoryProgressRepository struct {
	store map[string]domain.UserProgress

	mu sync.RWMutex
}

func NewInMemoryProgressRepository() *InMemoryProgressRepository {
	return &InMemoryProgressRepository{
		store: make(map[string]domain.UserProgress),
	}
}

func (r *InMemoryProgressRepository) Load(ctx context.Context, userID string) (domain.UserProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[userID]
	if !ok {
		return domain.NewUserProgress(), nil
	}
	return p, nil
}

func (r *InMemoryProgressRepository) Save(ctx context.Context, userID string, progress domain.UserProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[userID] = progress
	return nil
}
