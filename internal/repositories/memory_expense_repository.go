package repositories

import (
	"slices"
	"sync"
	"time"

	"household-expenses/internal/models"

	"github.com/google/uuid"
)

// memoryExpenseRepository keeps expenses in process memory. Selected with EXPENSE_STORE=memory.
type memoryExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[uuid.UUID]models.Expense
	now      func() time.Time
}

// NewMemoryExpenseRepository creates an empty in-memory expense store
func NewMemoryExpenseRepository() ExpenseRepositoryInterface {
	return &memoryExpenseRepository{
		expenses: make(map[uuid.UUID]models.Expense),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *memoryExpenseRepository) Create(expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insert(expense)
	return nil
}

func (r *memoryExpenseRepository) CreateBatch(expenses []models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range expenses {
		r.insert(&expenses[i])
	}
	return nil
}

func (r *memoryExpenseRepository) insert(expense *models.Expense) {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	now := r.now()
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = now
	}
	expense.UpdatedAt = now
	expense.Date = models.NormalizeDate(expense.Date)
	r.expenses[expense.ID] = *expense
}

func (r *memoryExpenseRepository) GetByID(userID, id uuid.UUID) (*models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return nil, ErrExpenseNotFound
	}
	return &e, nil
}

func (r *memoryExpenseRepository) List(userID uuid.UUID) ([]models.Expense, error) {
	return r.filter(userID, func(models.Expense) bool { return true }), nil
}

func (r *memoryExpenseRepository) ListByDateRange(userID uuid.UUID, from, to time.Time) ([]models.Expense, error) {
	return r.filter(userID, func(e models.Expense) bool { return e.InRange(from, to) }), nil
}

func (r *memoryExpenseRepository) Update(expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.expenses[expense.ID]
	if !ok || existing.UserID != expense.UserID {
		return ErrExpenseNotFound
	}

	expense.CreatedAt = existing.CreatedAt
	expense.UpdatedAt = r.now()
	expense.Date = models.NormalizeDate(expense.Date)
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *memoryExpenseRepository) Delete(userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

// filter returns matching expenses ordered like the gorm repository: date then creation time, newest first
func (r *memoryExpenseRepository) filter(userID uuid.UUID, keep func(models.Expense) bool) []models.Expense {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Expense, 0)
	for _, e := range r.expenses {
		if e.UserID == userID && keep(e) {
			out = append(out, e)
		}
	}

	slices.SortFunc(out, func(a, b models.Expense) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
