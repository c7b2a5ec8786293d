package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"household-expenses/internal/dto"
	"household-expenses/internal/models"
	"household-expenses/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountLocked       = errors.New("account is locked due to too many failed attempts")
	ErrUserAlreadyExists   = errors.New("user with this email already exists")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	sessionRepo     repositories.SessionRepositoryInterface
	revokedRepo     repositories.RevokedTokenRepositoryInterface
	auditRepo       repositories.AuditLogRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	revokedRepo repositories.RevokedTokenRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		revokedRepo:     revokedRepo,
		auditRepo:       auditRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// Register creates a new household owner
func (s *AuthService) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error) {
	email := normalizeEmail(req.Email)

	if err := s.passwordService.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		s.auditFailedRegistration(email, ipAddress, userAgent, "email_already_exists")
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  strings.TrimSpace(req.DisplayName),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.countEvent("register")
	s.auditSuccessfulRegistration(user, ipAddress, userAgent)

	return user, nil
}

// Login authenticates a user and opens a refresh-token session
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.countEvent("login_failed")
			s.auditFailedLogin(email, ipAddress, userAgent, "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.IsLocked() {
		s.countEvent("login_locked")
		s.auditFailedLogin(email, ipAddress, userAgent, "account_locked")
		return nil, ErrAccountLocked
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		user.RecordFailedLogin()
		if err := s.userRepo.UpdateLoginState(user); err != nil {
			s.logger.Error("failed to update login attempts",
				"error", err,
				"user_id", user.ID)
		}

		if user.IsLocked() {
			s.auditAccountLocked(user, ipAddress, userAgent)
		}

		s.countEvent("login_failed")
		s.auditFailedLogin(email, ipAddress, userAgent, "invalid_password")
		return nil, ErrInvalidCredentials
	}

	user.RecordLogin()
	if err := s.userRepo.UpdateLoginState(user); err != nil {
		s.logger.Warn("failed to reset login attempts",
			"error", err,
			"user_id", user.ID)
	}

	tokens, err := s.issueTokens(user, ipAddress, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.countEvent("login_success")
	s.auditSuccessfulLogin(user, ipAddress, userAgent)

	return &dto.LoginResponse{
		User:   dto.NewUserResponse(user),
		Tokens: *tokens,
	}, nil
}

// RefreshTokens exchanges an active refresh token for a new pair. The old session is revoked.
func (s *AuthService) RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	session, err := s.sessionRepo.GetByTokenHash(HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			s.auditFailedTokenRefresh(nil, ipAddress, userAgent, "token_not_found")
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if !session.Active(s.now()) {
		s.auditFailedTokenRefresh(&session.UserID, ipAddress, userAgent, "token_expired_or_revoked")
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.IsLocked() {
		return nil, ErrAccountLocked
	}

	if err := s.sessionRepo.Revoke(session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}

	tokens, err := s.issueTokens(user, ipAddress, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	s.countEvent("token_refresh")
	s.auditSuccessfulTokenRefresh(user, ipAddress, userAgent)

	return tokens, nil
}

// Logout revokes the access token and the session of refreshToken, or every session of the
// user when no refresh token is given.
func (s *AuthService) Logout(accessToken, refreshToken, ipAddress, userAgent string) error {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		// revoke expired or tampered tokens too
		jti, _ := s.tokenService.GetJTI(accessToken)
		if jti != "" {
			expiry, expiryErr := s.tokenService.GetTokenExpiry(accessToken)
			if expiryErr != nil {
				expiry = s.now().Add(24 * time.Hour)
			}
			if err := s.revokeAccessToken(jti, uuid.Nil, expiry); err != nil {
				s.logger.Error("failed to revoke expired token",
					"error", err,
					"jti", jti)
			}
		}
		return nil
	}

	userID, _ := uuid.Parse(claims.UserID)

	expiry := s.now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}
	if err := s.revokeAccessToken(claims.ID, userID, expiry); err != nil {
		s.logger.Error("failed to revoke access token",
			"error", err,
			"jti", claims.ID,
			"user_id", userID)
	}

	s.revokeSessions(userID, refreshToken)

	s.countEvent("logout")
	s.auditLogout(userID, ipAddress, userAgent)

	return nil
}

func (s *AuthService) GetUser(userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

func (s *AuthService) revokeSessions(userID uuid.UUID, refreshToken string) {
	if refreshToken != "" {
		session, err := s.sessionRepo.GetByTokenHash(HashToken(refreshToken))
		if err == nil && session.UserID == userID {
			if err := s.sessionRepo.Revoke(session.ID); err != nil {
				s.logger.Warn("failed to revoke session",
					"error", err,
					"session_id", session.ID)
			}
			return
		}
	}

	if err := s.sessionRepo.RevokeAllForUser(userID); err != nil {
		s.logger.Warn("failed to revoke sessions",
			"error", err,
			"user_id", userID)
	}
}

func (s *AuthService) issueTokens(user *models.User, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.tokenService.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := &models.Session{
		UserID:    user.ID,
		TokenHash: HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: refreshExpiresAt,
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *AuthService) revokeAccessToken(jti string, userID uuid.UUID, expiresAt time.Time) error {
	return s.revokedRepo.Revoke(&models.RevokedAccessToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
		RevokedAt: s.now(),
	})
}

func (s *AuthService) countEvent(eventType string) {
	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": eventType})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Audit logging methods
func (s *AuthService) auditSuccessfulRegistration(user *models.User, ipAddress, userAgent string) {
	s.createAuditLog(&user.ID, models.AuditActionRegister, models.AuditResourceUser, user.ID.String(), ipAddress, userAgent, nil)
}

func (s *AuthService) auditFailedRegistration(email, ipAddress, userAgent, reason string) {
	metadata := map[string]interface{}{
		"email":  email,
		"reason": reason,
	}
	s.createAuditLog(nil, models.AuditActionRegister, models.AuditResourceUser, "", ipAddress, userAgent, metadata)
}

func (s *AuthService) auditSuccessfulLogin(user *models.User, ipAddress, userAgent string) {
	s.createAuditLog(&user.ID, models.AuditActionLogin, models.AuditResourceUser, user.ID.String(), ipAddress, userAgent, nil)
}

func (s *AuthService) auditFailedLogin(email, ipAddress, userAgent, reason string) {
	metadata := map[string]interface{}{
		"email":  email,
		"reason": reason,
	}
	s.createAuditLog(nil, models.AuditActionFailedLogin, models.AuditResourceUser, "", ipAddress, userAgent, metadata)
}

func (s *AuthService) auditAccountLocked(user *models.User, ipAddress, userAgent string) {
	s.createAuditLog(&user.ID, models.AuditActionLocked, models.AuditResourceUser, user.ID.String(), ipAddress, userAgent, nil)
}

func (s *AuthService) auditSuccessfulTokenRefresh(user *models.User, ipAddress, userAgent string) {
	s.createAuditLog(&user.ID, models.AuditActionTokenRefresh, models.AuditResourceUser, user.ID.String(), ipAddress, userAgent, nil)
}

func (s *AuthService) auditFailedTokenRefresh(userID *uuid.UUID, ipAddress, userAgent, reason string) {
	metadata := map[string]interface{}{
		"reason": reason,
	}
	s.createAuditLog(userID, models.AuditActionTokenRefresh, "token", "", ipAddress, userAgent, metadata)
}

func (s *AuthService) auditLogout(userID uuid.UUID, ipAddress, userAgent string) {
	s.createAuditLog(&userID, models.AuditActionLogout, models.AuditResourceUser, userID.String(), ipAddress, userAgent, nil)
}

func (s *AuthService) createAuditLog(userID *uuid.UUID, action, resource, resourceID, ipAddress, userAgent string, metadata map[string]interface{}) {
	log := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"resource", resource,
			"resource_id", resourceID)
	}
}
