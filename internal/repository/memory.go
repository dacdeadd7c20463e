package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// MemoryUserRepository is the default user store: a plain map guarded by a
// mutex, owned by whoever constructs it and passed down explicitly.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]models.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrAlreadyExists
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u := user
	return &u, nil
}

// MemoryExpenseRepository stores expenses in a map keyed by id.
type MemoryExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[uuid.UUID]models.Expense
}

func NewMemoryExpenseRepository() *MemoryExpenseRepository {
	return &MemoryExpenseRepository{expenses: make(map[uuid.UUID]models.Expense)}
}

func (r *MemoryExpenseRepository) Create(_ context.Context, expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.expenses[expense.ID]; exists {
		return ErrAlreadyExists
	}
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *MemoryExpenseRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expense, ok := r.expenses[id]
	if !ok {
		return nil, ErrNotFound
	}
	e := expense
	return &e, nil
}

func (r *MemoryExpenseRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Expense
	for _, expense := range r.expenses {
		if expense.UserID == userID {
			out = append(out, expense)
		}
	}
	sortByOccurredAt(out)
	return out, nil
}

func (r *MemoryExpenseRepository) ListByUserBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Expense
	for _, expense := range r.expenses {
		if expense.UserID != userID {
			continue
		}
		if expense.OccurredAt.Before(from) || !expense.OccurredAt.Before(to) {
			continue
		}
		out = append(out, expense)
	}
	sortByOccurredAt(out)
	return out, nil
}

func sortByOccurredAt(expenses []models.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].OccurredAt.Before(expenses[j].OccurredAt)
	})
}
