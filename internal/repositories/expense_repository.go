package repositories

import (
	"errors"
	"fmt"
	"time"

	"household-expenses/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a gorm-backed expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

func (r *expenseRepository) Create(expense *models.Expense) error {
	record := models.NewExpenseRecord(expense)
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	expense.ID = record.ID
	expense.CreatedAt = record.CreatedAt
	expense.UpdatedAt = record.UpdatedAt
	return nil
}

// CreateBatch inserts all expenses in one database transaction
func (r *expenseRepository) CreateBatch(expenses []models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	records := make([]*models.ExpenseRecord, len(expenses))
	for i := range expenses {
		records[i] = models.NewExpenseRecord(&expenses[i])
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(records, 100).Error; err != nil {
			return fmt.Errorf("failed to create expense batch: %w", err)
		}
		return nil
	})
}

func (r *expenseRepository) GetByID(userID, id uuid.UUID) (*models.Expense, error) {
	var record models.ExpenseRecord
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return record.ToExpense()
}

// List returns all of the user's expenses, newest first
func (r *expenseRepository) List(userID uuid.UUID) ([]models.Expense, error) {
	var records []models.ExpenseRecord
	if err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return decodeExpenses(records)
}

// ListByDateRange returns expenses dated within [from, to], newest first
func (r *expenseRepository) ListByDateRange(userID uuid.UUID, from, to time.Time) ([]models.Expense, error) {
	var records []models.ExpenseRecord
	if err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, models.NormalizeDate(from), models.NormalizeDate(to)).
		Order("date DESC").
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses by date range: %w", err)
	}
	return decodeExpenses(records)
}

// Update overwrites every editable field of the expense. Rows owned by another user are not found.
func (r *expenseRepository) Update(expense *models.Expense) error {
	expense.UpdatedAt = time.Now().UTC()
	record := models.NewExpenseRecord(expense)

	result := r.db.Model(&models.ExpenseRecord{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Select("date", "category", "sub_category", "amount", "paid_by", "for_whom", "notes", "updated_at").
		Updates(record)
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

func (r *expenseRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.ExpenseRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

func decodeExpenses(records []models.ExpenseRecord) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0, len(records))
	for i := range records {
		e, err := records[i].ToExpense()
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, nil
}
