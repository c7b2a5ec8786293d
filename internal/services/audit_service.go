package services

import (
	"errors"
	"fmt"
	"log/slog"

	"household-expenses/internal/models"
	"household-expenses/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidAuditLog = errors.New("invalid audit log")
)

var validActions = map[string]bool{
	models.AuditActionRegister:     true,
	models.AuditActionLogin:        true,
	models.AuditActionFailedLogin:  true,
	models.AuditActionLocked:       true,
	models.AuditActionLogout:       true,
	models.AuditActionTokenRefresh: true,
	models.AuditActionCreate:       true,
	models.AuditActionUpdate:       true,
	models.AuditActionDelete:       true,
	models.AuditActionUpsert:       true,
	models.AuditActionSeed:         true,
}

// AuditService records and lists the household activity log
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

// ValidateActivityType validates that the action is one the activity feed knows about
func ValidateActivityType(action string) error {
	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// LogMutation records a change made by userID. Failures are logged and never returned.
func (s *AuditService) LogMutation(userID uuid.UUID, action, resource, resourceID, ipAddress, userAgent string, metadata map[string]interface{}) {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	}

	if err := s.CreateAuditLog(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"resource", resource,
			"resource_id", resourceID)
	}
}

// ListActivity returns a page of the user's activity, newest first, with the total entry count
func (s *AuditService) ListActivity(userID uuid.UUID, offset, limit int) ([]models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	logs, total, err := s.repo.ListByUser(userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activity: %w", err)
	}
	return logs, total, nil
}
