package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"household-expenses/internal/dto"
	"household-expenses/internal/errors"
	"household-expenses/internal/repositories"
	"household-expenses/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles household owner registration
// @Summary Register a new user
// @Description Create the household owner account with email, password and display name
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.UserResponse} "User created successfully"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or VALIDATION_010"
// @Failure 409 {object} errors.ErrorResponse "Email already registered - AUTH_006"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUserAlreadyExists):
			return SendError(c, errors.AuthEmailTaken)
		case isPasswordPolicyError(err):
			return SendError(c, errors.ValidationWeakPassword, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewUserResponse(user),
		Message: "User registered successfully",
	})
}

// Login handles user authentication
// @Summary Login user
// @Description Authenticate with email and password, receive JWT access and refresh tokens
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful with JWT tokens"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Invalid credentials - AUTH_001"
// @Failure 403 {object} errors.ErrorResponse "Account locked - AUTH_005"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.authService.Login(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		if stderrors.Is(err, services.ErrAccountLocked) {
			return SendError(c, errors.AuthAccountLocked)
		}
		if stderrors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Rotate a refresh token into a new access and refresh token pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse "Token refreshed successfully"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Invalid refresh token - AUTH_007"
// @Failure 403 {object} errors.ErrorResponse "Account locked - AUTH_005"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.RefreshTokens(req.RefreshToken, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidRefreshToken) {
			return SendError(c, errors.AuthInvalidRefreshToken)
		}
		if stderrors.Is(err, services.ErrAccountLocked) {
			return SendError(c, errors.AuthAccountLocked)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout handles user logout
// @Summary Logout user
// @Description Revoke the bearer access token and, when given, the refresh token's session
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.LogoutRequest false "Refresh token to revoke"
// @Success 200 {object} SuccessResponse{message=string} "Logout successful"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002 or AUTH_004"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return SendError(c, errors.AuthMissingToken)
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return SendError(c, errors.AuthInvalidTokenFormat)
	}

	// the body is optional
	var req dto.LogoutRequest
	_ = c.Bind(&req)

	if err := h.authService.Logout(tokenParts[1], req.RefreshToken, getClientIP(c), c.Request().UserAgent()); err != nil {
		slog.Warn("Logout failed", "trace_id", getTraceID(c), "error", err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logout successful",
	})
}

// Me returns the authenticated user
// @Summary Current user
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.UserResponse}
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrUserNotFound) {
			return SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User no longer exists"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewUserResponse(user)})
}

func isPasswordPolicyError(err error) bool {
	return stderrors.Is(err, services.ErrPasswordEmpty) ||
		stderrors.Is(err, services.ErrPasswordTooShort) ||
		stderrors.Is(err, services.ErrPasswordTooLong) ||
		stderrors.Is(err, services.ErrPasswordNoLetter) ||
		stderrors.Is(err, services.ErrPasswordNoNumber)
}
