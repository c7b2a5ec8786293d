package handlers

import (
	stderrors "errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var errNoUser = stderrors.New("no authenticated user in context")

// getUserIDFromContext returns the user the Auth middleware attached to the request
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, errNoUser
	}
	return userID, nil
}

func getIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// getIntParam reads query parameter name, falling back to def when it is absent or not an integer
func getIntParam(c echo.Context, name string, def int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return def
	}
	return value
}

// getClientIP is the address recorded in audit entries. Echo resolves it from
// X-Forwarded-For, X-Real-IP or the peer address.
func getClientIP(c echo.Context) string {
	return c.RealIP()
}
