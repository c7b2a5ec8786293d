package repositories

import (
	"errors"
	"fmt"

	"household-expenses/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBankTransactionNotFound = errors.New("bank transaction not found")
)

type bankTransactionRepository struct {
	db *gorm.DB
}

// NewBankTransactionRepository creates a gorm-backed bank transaction repository
func NewBankTransactionRepository(db *gorm.DB) BankTransactionRepositoryInterface {
	return &bankTransactionRepository{
		db: db,
	}
}

func (r *bankTransactionRepository) Create(transaction *models.BankTransaction) error {
	record := models.NewBankTransactionRecord(transaction)
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create bank transaction: %w", err)
	}

	transaction.ID = record.ID
	transaction.CreatedAt = record.CreatedAt
	return nil
}

func (r *bankTransactionRepository) CreateBatch(transactions []models.BankTransaction) error {
	if len(transactions) == 0 {
		return nil
	}

	records := make([]*models.BankTransactionRecord, len(transactions))
	for i := range transactions {
		records[i] = models.NewBankTransactionRecord(&transactions[i])
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(records, 100).Error; err != nil {
			return fmt.Errorf("failed to create bank transaction batch: %w", err)
		}
		return nil
	})
}

// List returns every bank transaction of the user, newest first
func (r *bankTransactionRepository) List(userID uuid.UUID) ([]models.BankTransaction, error) {
	var records []models.BankTransactionRecord
	if err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list bank transactions: %w", err)
	}

	transactions := make([]models.BankTransaction, 0, len(records))
	for i := range records {
		t, err := records[i].ToBankTransaction()
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, nil
}

func (r *bankTransactionRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.BankTransactionRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete bank transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBankTransactionNotFound
	}
	return nil
}
