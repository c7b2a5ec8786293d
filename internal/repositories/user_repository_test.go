package repositories

import (
	"testing"
	"time"

	"household-expenses/internal/database"
	"household-expenses/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) newUser(email string) *models.User {
	return &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		DisplayName:  "Khan Household",
	}
}

func (s *UserRepositorySuite) TestUserRepository_Create() {
	user := s.newUser("Owner@Example.com ")

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.Equal("owner@example.com", user.Email)
	s.NotZero(user.CreatedAt)
	s.NotZero(user.UpdatedAt)
}

func (s *UserRepositorySuite) TestUserRepository_CreateDuplicateEmail() {
	s.Require().NoError(s.repo.Create(s.newUser("owner@example.com")))

	err := s.repo.Create(s.newUser("OWNER@example.com"))
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestUserRepository_CreateNil() {
	s.Error(s.repo.Create(nil))
}

func (s *UserRepositorySuite) TestUserRepository_CreateInvalid() {
	user := s.newUser("not-an-email")

	err := s.repo.Create(user)
	s.ErrorIs(err, models.ErrInvalidEmail)
}

func (s *UserRepositorySuite) TestUserRepository_GetByEmail() {
	user := s.newUser("owner@example.com")
	s.Require().NoError(s.repo.Create(user))

	found, err := s.repo.GetByEmail("  OWNER@example.com")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail("nobody@example.com")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_GetByID() {
	user := s.newUser("owner@example.com")
	s.Require().NoError(s.repo.Create(user))

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("Khan Household", found.DisplayName)

	_, err = s.repo.GetByID(uuid.New())
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_UpdateLoginState() {
	user := s.newUser("owner@example.com")
	s.Require().NoError(s.repo.Create(user))

	for i := 0; i < models.MaxFailedLoginAttempts; i++ {
		user.RecordFailedLogin()
	}
	s.NoError(s.repo.UpdateLoginState(user))

	locked, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.Equal(models.MaxFailedLoginAttempts, locked.FailedLoginAttempts)
	s.True(locked.IsLocked())

	locked.LockedAt = nil
	locked.RecordLogin()
	s.NoError(s.repo.UpdateLoginState(locked))

	unlocked, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.Equal(0, unlocked.FailedLoginAttempts)
	s.False(unlocked.IsLocked())
	s.Require().NotNil(unlocked.LastLoginAt)
	s.WithinDuration(time.Now(), *unlocked.LastLoginAt, time.Minute)
}

func (s *UserRepositorySuite) TestUserRepository_UpdateLoginStateUnknownUser() {
	err := s.repo.UpdateLoginState(&models.User{ID: uuid.New()})
	s.Equal(ErrUserNotFound, err)
}
