package repositories

import (
	"testing"
	"time"

	"household-expenses/internal/database"
	"household-expenses/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_Create() {
	userID := uuid.New()
	expenseID := uuid.New()

	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionCreate,
		Resource:   models.AuditResourceExpense,
		ResourceID: expenseID.String(),
		IPAddress:  "192.168.1.1",
		UserAgent:  "Mozilla/5.0",
	}
	log.SetMetadata("amount", "1500")

	err := s.repo.Create(log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)

	logs, total, err := s.repo.ListByUser(userID, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(logs, 1)
	s.Equal("1500", logs[0].Metadata["amount"])
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CreateWithoutUserID() {
	log := &models.AuditLog{
		Action:    models.AuditActionFailedLogin,
		Resource:  models.AuditResourceUser,
		IPAddress: "192.168.1.1",
	}

	err := s.repo.Create(log)
	s.NoError(err)
	s.Nil(log.UserID)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CreateNil() {
	s.Error(s.repo.Create(nil))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_ListByUserPaginates() {
	userID := uuid.New()
	otherID := uuid.New()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		s.Require().NoError(s.repo.Create(&models.AuditLog{
			UserID:    &userID,
			Action:    models.AuditActionCreate,
			Resource:  models.AuditResourceExpense,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	s.Require().NoError(s.repo.Create(&models.AuditLog{
		UserID:   &otherID,
		Action:   models.AuditActionLogin,
		Resource: models.AuditResourceUser,
	}))

	page, total, err := s.repo.ListByUser(userID, 0, 2)
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(page, 2)
	s.True(page[0].CreatedAt.After(page[1].CreatedAt))

	rest, total, err := s.repo.ListByUser(userID, 4, 2)
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Len(rest, 1)
}
