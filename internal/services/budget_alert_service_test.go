package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"household-expenses/internal/models"
	"household-expenses/internal/repositories/repository_mocks"
	"household-expenses/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetAlertServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	budgetRepo  *repository_mocks.MockBudgetRepositoryInterface
	expenseRepo *repository_mocks.MockExpenseRepositoryInterface
	publisher   *service_mocks.MockBudgetAlertPublisherInterface
	events      *service_mocks.MockNotificationLoggerInterface
	service     *BudgetAlertService
	userID      uuid.UUID
	month       time.Time
}

func (s *BudgetAlertServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.publisher = service_mocks.NewMockBudgetAlertPublisherInterface(s.ctrl)
	s.events = service_mocks.NewMockNotificationLoggerInterface(s.ctrl)
	s.service = NewBudgetAlertService(s.budgetRepo, s.expenseRepo, s.publisher, s.events, slog.Default()).(*BudgetAlertService)
	s.service.now = func() time.Time { return time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC) }
	s.userID = uuid.New()
	s.month = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
}

func (s *BudgetAlertServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBudgetAlertServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetAlertServiceTestSuite))
}

func (s *BudgetAlertServiceTestSuite) budget(category *models.Category, amount int64) models.Budget {
	return models.Budget{ID: uuid.New(), UserID: s.userID, Category: category, Amount: decimal.NewFromInt(amount), Month: s.month}
}

func (s *BudgetAlertServiceTestSuite) expense(category models.Category, amount int64) models.Expense {
	return models.Expense{
		ID:       uuid.New(),
		UserID:   s.userID,
		Date:     s.month.AddDate(0, 0, 4),
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		PaidBy:   models.MemberFather,
		ForWhom:  models.BeneficiaryShared,
	}
}

func (s *BudgetAlertServiceTestSuite) TestCheckMonth_NoBudgets() {
	s.budgetRepo.EXPECT().ListByMonth(s.userID, s.month).Return(nil, nil)

	alerts, err := s.service.CheckMonth(context.Background(), s.userID, s.month.AddDate(0, 0, 10))
	s.NoError(err)
	s.Empty(alerts)
}

func (s *BudgetAlertServiceTestSuite) TestCheckMonth_PublishesWarningAndOver() {
	food := s.budget(models.CategoryPtr(models.CategoryFood), 1000)
	fuel := s.budget(models.CategoryPtr(models.CategoryFuel), 1000)
	overall := s.budget(nil, 5000)

	s.budgetRepo.EXPECT().ListByMonth(s.userID, s.month).Return([]models.Budget{overall, food, fuel}, nil)
	s.expenseRepo.EXPECT().ListByDateRange(s.userID, s.month, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)).
		Return([]models.Expense{
			s.expense(models.CategoryFood, 850),
			s.expense(models.CategoryFuel, 1200),
		}, nil)

	s.events.EXPECT().LogBudgetAlertRaised(gomock.Any(), gomock.Any()).Times(2)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	alerts, err := s.service.CheckMonth(context.Background(), s.userID, s.month)
	s.Require().NoError(err)
	s.Require().Len(alerts, 2)

	s.Equal("Food", alerts[0].Category)
	s.Equal("warning", alerts[0].Status)
	s.Equal("2024-03", alerts[0].Month)
	s.Equal(food.ID, alerts[0].BudgetID)

	s.Equal("Fuel", alerts[1].Category)
	s.Equal("over", alerts[1].Status)
	s.True(alerts[1].Overspend.Equal(decimal.NewFromInt(200)))
	s.Equal(models.BudgetAlertEventType, alerts[1].EventType)
}

func (s *BudgetAlertServiceTestSuite) TestCheckMonth_PublishErrorIsNotFatal() {
	overall := s.budget(nil, 100)

	s.budgetRepo.EXPECT().ListByMonth(s.userID, s.month).Return([]models.Budget{overall}, nil)
	s.expenseRepo.EXPECT().ListByDateRange(s.userID, gomock.Any(), gomock.Any()).
		Return([]models.Expense{s.expense(models.CategoryKids, 150)}, nil)
	s.events.EXPECT().LogBudgetAlertRaised(gomock.Any(), gomock.Any())
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(ErrCircuitBreakerOpen)

	alerts, err := s.service.CheckMonth(context.Background(), s.userID, s.month)
	s.NoError(err)
	s.Require().Len(alerts, 1)
	s.Equal("Overall", alerts[0].Category)
}

func (s *BudgetAlertServiceTestSuite) TestCheckMonth_RepositoryErrors() {
	s.budgetRepo.EXPECT().ListByMonth(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	_, err := s.service.CheckMonth(context.Background(), s.userID, s.month)
	s.Error(err)

	s.budgetRepo.EXPECT().ListByMonth(gomock.Any(), gomock.Any()).Return([]models.Budget{s.budget(nil, 1)}, nil)
	s.expenseRepo.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	_, err = s.service.CheckMonth(context.Background(), s.userID, s.month)
	s.Error(err)
	s.Contains(err.Error(), "failed to load month expenses")
}
