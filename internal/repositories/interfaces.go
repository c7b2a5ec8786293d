package repositories

import (
	"time"

	"household-expenses/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the contract for expense storage. Every method is scoped to one user.
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	CreateBatch(expenses []models.Expense) error
	GetByID(userID, id uuid.UUID) (*models.Expense, error)
	List(userID uuid.UUID) ([]models.Expense, error)
	ListByDateRange(userID uuid.UUID, from, to time.Time) ([]models.Expense, error)
	Update(expense *models.Expense) error
	Delete(userID, id uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget storage
type BudgetRepositoryInterface interface {
	ListByMonth(userID uuid.UUID, month time.Time) ([]models.Budget, error)
	Upsert(budget *models.Budget) error
	Delete(userID, id uuid.UUID) error
}

// BankTransactionRepositoryInterface defines the contract for bank transaction storage
type BankTransactionRepositoryInterface interface {
	Create(transaction *models.BankTransaction) error
	CreateBatch(transactions []models.BankTransaction) error
	List(userID uuid.UUID) ([]models.BankTransaction, error)
	Delete(userID, id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateLoginState(user *models.User) error
}

// SessionRepositoryInterface defines the contract for refresh-token sessions
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByTokenHash(tokenHash string) (*models.Session, error)
	Revoke(id uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired(before time.Time) (int64, error)
}

// RevokedTokenRepositoryInterface tracks access tokens invalidated by logout
type RevokedTokenRepositoryInterface interface {
	Revoke(token *models.RevokedAccessToken) error
	IsRevoked(jti string) (bool, error)
	DeleteExpired(before time.Time) (int64, error)
}

// AuditLogRepositoryInterface defines the contract for the activity log
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	ListByUser(userID uuid.UUID, offset, limit int) ([]models.AuditLog, int64, error)
}
