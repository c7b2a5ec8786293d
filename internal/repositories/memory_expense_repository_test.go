package repositories

import (
	"sync"
	"testing"
	"time"

	"household-expenses/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryExpense(userID uuid.UUID, day int) *models.Expense {
	return &models.Expense{
		UserID:   userID,
		Date:     time.Date(2025, 3, day, 18, 30, 0, 0, time.UTC),
		Category: models.CategoryFood,
		Amount:   decimal.NewFromInt(int64(day) * 100),
		PaidBy:   models.MemberMother,
		ForWhom:  models.BeneficiaryShared,
	}
}

func TestMemoryExpenseRepository_CRUD(t *testing.T) {
	repo := NewMemoryExpenseRepository()
	userID := uuid.New()

	e := memoryExpense(userID, 10)
	require.NoError(t, repo.Create(e))
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, "2025-03-10", e.DateKey())
	assert.Equal(t, 0, e.Date.Hour())

	got, err := repo.GetByID(userID, e.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(1000)))

	_, err = repo.GetByID(uuid.New(), e.ID)
	assert.Equal(t, ErrExpenseNotFound, err)

	e.Amount = decimal.NewFromInt(5)
	e.Notes = "corrected"
	require.NoError(t, repo.Update(e))

	got, err = repo.GetByID(userID, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "corrected", got.Notes)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(5)))

	stranger := *e
	stranger.UserID = uuid.New()
	assert.Equal(t, ErrExpenseNotFound, repo.Update(&stranger))

	require.NoError(t, repo.Delete(userID, e.ID))
	assert.Equal(t, ErrExpenseNotFound, repo.Delete(userID, e.ID))
}

func TestMemoryExpenseRepository_ListOrderAndRange(t *testing.T) {
	repo := NewMemoryExpenseRepository()
	userID := uuid.New()

	require.NoError(t, repo.CreateBatch([]models.Expense{
		*memoryExpense(userID, 1),
		*memoryExpense(userID, 20),
		*memoryExpense(userID, 11),
		*memoryExpense(uuid.New(), 15),
	}))

	all, err := repo.List(userID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-03-20", all[0].DateKey())
	assert.Equal(t, "2025-03-11", all[1].DateKey())
	assert.Equal(t, "2025-03-01", all[2].DateKey())

	ranged, err := repo.ListByDateRange(userID,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}

func TestMemoryExpenseRepository_ConcurrentCreates(t *testing.T) {
	repo := NewMemoryExpenseRepository()
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			_ = repo.Create(memoryExpense(userID, day))
		}(i)
	}
	wg.Wait()

	all, err := repo.List(userID)
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
