package handlers

import (
	"net/http"

	"household-expenses/internal/dto"
	"household-expenses/internal/errors"
	"household-expenses/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	demoDataService services.DemoDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(demoDataService services.DemoDataServiceInterface) *DevHandler {
	return &DevHandler{demoDataService: demoDataService}
}

// SeedDemoData fills the caller's household with generated data
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - days: Days of history to generate (default: 90, max: 365)
//   - count: Number of expenses to generate (default: 150, max: 1000)
//
// Success Response: 201 Created
//   - expenses, bank_transactions, budgets: rows inserted
//
// Error Responses:
//   - 400: Invalid parameters
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	req := dto.SeedRequest{
		Days:  getIntParam(c, "days", services.DefaultSeedDays),
		Count: getIntParam(c, "count", services.DefaultSeedCount),
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.demoDataService.Seed(userID, req.Days, req.Count, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    resp,
		Message: "Demo data generated successfully",
	})
}
