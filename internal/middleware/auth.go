package middleware

import (
	stderrors "errors"
	"log/slog"

	"household-expenses/internal/errors"
	"household-expenses/internal/handlers"
	"household-expenses/internal/repositories"
	"household-expenses/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid JWT access token
// and checks that the token has not been revoked (e.g., after logout)
func RequireAuth(tokenService services.TokenServiceInterface, revokedTokenRepo repositories.RevokedTokenRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			revoked, err := revokedTokenRepo.IsRevoked(claims.ID)
			if err != nil {
				slog.Error("Failed to check token revocation",
					"trace_id", GetTraceID(c),
					"error", err)
				return handlers.SendSystemError(c, err)
			}
			if revoked {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Token has been revoked"))
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}
