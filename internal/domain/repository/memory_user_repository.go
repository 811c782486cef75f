package repository

import (
	"context"
	"sync"
	"time"

	"outfit_advisor/internal/common"
	"outfit_advisor/internal/domain/model"
)

// memoryUserRepository keeps users in a mutex-guarded map. It honors the same
// contract as the postgres implementation and backs tests and local runs
// without a database.
type memoryUserRepository struct {
	mu     sync.Mutex
	byName map[string]*model.User
	byID   map[string]*model.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byName: make(map[string]*model.User),
		byID:   make(map[string]*model.User),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[user.Username]; exists {
		return common.ErrUsernameTaken
	}
	stored := *user
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.byName[stored.Username] = &stored
	r.byID[stored.ID] = &stored
	return nil
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byName[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *user
	return &copied, nil
}
