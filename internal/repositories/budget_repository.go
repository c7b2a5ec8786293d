package repositories

import (
	"errors"
	"fmt"
	"time"

	"household-expenses/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a gorm-backed budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// ListByMonth returns the user's budgets for month, the overall budget first and then by category
func (r *budgetRepository) ListByMonth(userID uuid.UUID, month time.Time) ([]models.Budget, error) {
	var records []models.BudgetRecord
	if err := r.db.Where("user_id = ? AND month = ?", userID, models.MonthStart(month)).
		Order("category IS NOT NULL").
		Order("category ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	budgets := make([]models.Budget, 0, len(records))
	for i := range records {
		b, err := records[i].ToBudget()
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *b)
	}
	return budgets, nil
}

// Upsert keeps a single budget per (user, category, month) with one INSERT .. ON CONFLICT: the amount
// of an existing row is replaced, otherwise a new row is inserted. The overall budget is keyed by "".
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	record := models.NewBudgetRecord(budget)
	record.ID = uuid.Nil
	record.UpdatedAt = time.Now().UTC()

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_key"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}

	var saved models.BudgetRecord
	if err := r.db.Where("user_id = ? AND category_key = ? AND month = ?",
		record.UserID, record.CategoryKey, record.Month).First(&saved).Error; err != nil {
		return fmt.Errorf("failed to reload budget: %w", err)
	}

	b, err := saved.ToBudget()
	if err != nil {
		return err
	}
	*budget = *b
	return nil
}

func (r *budgetRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.BudgetRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
