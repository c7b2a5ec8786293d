package analytics

import (
	"time"

	"household-expenses/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expense(amount int64, category models.Category, paidBy models.FamilyMember, forWhom models.Beneficiary, date time.Time) models.Expense {
	return models.Expense{
		ID:       uuid.New(),
		Date:     date,
		Category: category,
		Amount:   dec(amount),
		PaidBy:   paidBy,
		ForWhom:  forWhom,
	}
}

func deposit(amount int64, date time.Time) models.BankTransaction {
	return models.BankTransaction{ID: uuid.New(), Type: models.BankTransactionDeposit, Amount: dec(amount), Date: date}
}

func withdrawal(amount int64, date time.Time) models.BankTransaction {
	return models.BankTransaction{ID: uuid.New(), Type: models.BankTransactionWithdrawal, Amount: dec(amount), Date: date}
}
