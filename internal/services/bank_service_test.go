package services

import (
	"log/slog"
	"testing"
	"time"

	"household-expenses/internal/analytics"
	"household-expenses/internal/config"
	"household-expenses/internal/dto"
	"household-expenses/internal/models"
	"household-expenses/internal/repositories"
	"household-expenses/internal/repositories/repository_mocks"
	"household-expenses/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BankServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	bankRepo     *repository_mocks.MockBankTransactionRepositoryInterface
	expenseRepo  *repository_mocks.MockExpenseRepositoryInterface
	auditService *service_mocks.MockAuditServiceInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	service      *BankService
	userID       uuid.UUID
	today        time.Time
}

func (s *BankServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bankRepo = repository_mocks.NewMockBankTransactionRepositoryInterface(s.ctrl)
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	settings := config.DashboardConfig{Currency: "PKR", RecentDeposits: 2}
	s.service = NewBankService(s.bankRepo, s.expenseRepo, s.auditService, s.metrics, settings, slog.Default()).(*BankService)
	s.today = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.today.Add(14 * time.Hour) }
	s.userID = uuid.New()
}

func (s *BankServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBankServiceSuite(t *testing.T) {
	suite.Run(t, new(BankServiceSuite))
}

func (s *BankServiceSuite) tx(txType models.BankTransactionType, amount int64, date time.Time) models.BankTransaction {
	return models.BankTransaction{
		ID:          uuid.New(),
		UserID:      s.userID,
		Type:        txType,
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
		Description: gofakeit.Sentence(3),
	}
}

func (s *BankServiceSuite) TestCreateTransaction_DefaultsToToday() {
	s.bankRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(tx *models.BankTransaction) error {
		s.Equal(s.today, tx.Date)
		s.Equal(models.BankTransactionDeposit, tx.Type)
		s.Equal("Father", tx.FromMember)
		tx.ID = uuid.New()
		return nil
	})
	s.metrics.EXPECT().IncrementCounter(MetricBankTransaction, map[string]string{"operation": "create", "type": "deposit"})
	s.auditService.EXPECT().LogMutation(s.userID, models.AuditActionCreate, models.AuditResourceBankTransaction, gomock.Any(), "", "", gomock.Any())

	tx, err := s.service.CreateTransaction(s.userID, &dto.CreateBankTransactionRequest{
		Amount:     "50000",
		Type:       "deposit",
		FromMember: "Father",
	}, "", "")
	s.Require().NoError(err)
	s.True(tx.Amount.Equal(decimal.NewFromInt(50000)))
}

func (s *BankServiceSuite) TestCreateTransaction_Invalid() {
	testCases := []struct {
		name    string
		req     dto.CreateBankTransactionRequest
		wantErr error
	}{
		{"zero amount", dto.CreateBankTransactionRequest{Amount: "0", Type: "deposit"}, models.ErrInvalidAmount},
		{"negative amount", dto.CreateBankTransactionRequest{Amount: "-1", Type: "deposit"}, ErrInvalidAmount},
		{"unknown type", dto.CreateBankTransactionRequest{Amount: "10", Type: "transfer"}, models.ErrInvalidBankTransactionType},
		{"source on withdrawal", dto.CreateBankTransactionRequest{Amount: "10", Type: "withdrawal", FromMember: "Mother"}, models.ErrSourceOnWithdrawal},
		{"unknown source", dto.CreateBankTransactionRequest{Amount: "10", Type: "deposit", FromMember: "Landlord"}, models.ErrInvalidDepositSource},
		{"bad date", dto.CreateBankTransactionRequest{Amount: "10", Type: "deposit", Date: "20-03-2024"}, ErrInvalidDate},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.CreateTransaction(s.userID, &tc.req, "", "")
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *BankServiceSuite) TestListTransactions_FiltersByPeriod() {
	all := []models.BankTransaction{
		s.tx(models.BankTransactionDeposit, 100, s.today),
		s.tx(models.BankTransactionWithdrawal, 50, s.today.AddDate(0, 0, -25)),
	}
	s.bankRepo.EXPECT().List(s.userID).Return(all, nil).Times(2)

	current, err := s.service.ListTransactions(s.userID, analytics.PeriodCurrent)
	s.NoError(err)
	s.Len(current, 1)

	previous, err := s.service.ListTransactions(s.userID, analytics.PeriodPrevious)
	s.NoError(err)
	s.Len(previous, 1)
	s.Equal(models.BankTransactionWithdrawal, previous[0].Type)
}

func (s *BankServiceSuite) TestDeleteTransaction_NotFound() {
	id := uuid.New()
	s.bankRepo.EXPECT().Delete(s.userID, id).Return(repositories.ErrBankTransactionNotFound)
	s.ErrorIs(s.service.DeleteTransaction(s.userID, id, "", ""), repositories.ErrBankTransactionNotFound)
}

func (s *BankServiceSuite) TestGetBalance() {
	transactions := []models.BankTransaction{
		s.tx(models.BankTransactionDeposit, 30000, s.today),
		s.tx(models.BankTransactionWithdrawal, 5000, s.today.AddDate(0, 0, -3)),
		s.tx(models.BankTransactionDeposit, 20000, s.today.AddDate(0, 0, -10)),
		s.tx(models.BankTransactionDeposit, 40000, s.today.AddDate(0, -1, 0)),
	}
	expenses := []models.Expense{
		{Date: s.today, Category: models.CategoryFood, Amount: decimal.NewFromInt(12000)},
	}
	s.bankRepo.EXPECT().List(s.userID).Return(transactions, nil)
	s.expenseRepo.EXPECT().List(s.userID).Return(expenses, nil)
	s.metrics.EXPECT().RecordProcessingTime(MetricBankBalanceRecompute, gomock.Any())

	balance, err := s.service.GetBalance(s.userID, analytics.PeriodCurrent)
	s.Require().NoError(err)
	s.Equal("current", balance.Period)
	s.Equal("73000.00", balance.Balance)
	s.Equal("50000.00", balance.TotalDeposits)
	s.Equal("5000.00", balance.TotalWithdrawals)
	s.Equal("12000.00", balance.TotalExpenses)
	s.Equal(3, balance.TransactionCount)
	s.Require().Len(balance.RecentDeposits, 2)
	s.Equal("30000.00", balance.RecentDeposits[0].Amount)
	s.Equal("20000.00", balance.RecentDeposits[1].Amount)
}
