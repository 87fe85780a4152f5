package repository

import (
	"errors"
	"sync"
	"time"

	"DistroFM/model"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateUser is returned when a username is already taken.
	ErrDuplicateUser = errors.New("username already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(user *model.User) (*model.User, error)
	GetUserByID(id string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
}

// memoryUserRepository implements UserRepository over a map guarded by a
// RWMutex.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]*model.User
	byName map[string]string
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users:  make(map[string]*model.User),
		byName: make(map[string]string),
	}
}

func (r *memoryUserRepository) CreateUser(user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[user.Username]; taken {
		return nil, ErrDuplicateUser
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.users[stored.ID] = &stored
	r.byName[stored.Username] = stored.ID

	u := stored
	return &u, nil
}

func (r *memoryUserRepository) GetUserByID(id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (r *memoryUserRepository) GetUserByUsername(username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *r.users[id]
	return &u, nil
}
