package handlers

import (
	"net/http"
	"time"

	"household-expenses/internal/dto"
	"household-expenses/internal/errors"
	"household-expenses/internal/models"
	"household-expenses/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles the monthly budget endpoints
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	currency      string
	now           func() time.Time
}

func NewBudgetHandler(budgetService services.BudgetServiceInterface, currency string) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		currency:      currency,
		now:           time.Now,
	}
}

// ListBudgets returns the budgets of a month
// @Summary List budgets
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} SuccessResponse{data=[]dto.BudgetResponse}
// @Failure 400 {object} errors.ErrorResponse "Invalid month - BUDGET_002"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month, err := h.monthParam(c)
	if err != nil {
		return SendError(c, errors.BudgetInvalidMonth, errors.WithDetails(err.Error()))
	}

	budgets, err := h.budgetService.ListBudgets(userID, month)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewBudgetResponses(budgets),
		Meta: map[string]string{"month": month.Format(models.MonthLayout)},
	})
}

// UpsertBudget creates or replaces the budget of a category, or the overall budget
// @Summary Set budget
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertBudgetRequest true "Budget"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001, BUDGET_002 or BUDGET_003"
// @Router /budgets [put]
func (h *BudgetHandler) UpsertBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.UpsertBudget(userID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(*budget))
}

// DeleteBudget removes a budget
// @Summary Delete budget
// @Tags Budgets
// @Security BearerAuth
// @Param id path string true "Budget ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "Not found - BUDGET_001"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := getIDParam(c)
	if err != nil {
		return SendError(c, errors.BudgetNotFound, errors.WithDetails("Invalid budget ID format"))
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOverview measures every budget of a month against that month's expenses
// @Summary Budget overview
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} dto.BudgetOverviewResponse
// @Failure 400 {object} errors.ErrorResponse "Invalid month - BUDGET_002"
// @Router /budgets/overview [get]
func (h *BudgetHandler) GetOverview(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month, err := h.monthParam(c)
	if err != nil {
		return SendError(c, errors.BudgetInvalidMonth, errors.WithDetails(err.Error()))
	}

	overview, err := h.budgetService.GetOverview(userID, month)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetOverviewResponse(month.Format(models.MonthLayout), *overview, h.currency))
}

func (h *BudgetHandler) monthParam(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("month")
	if raw == "" {
		return models.MonthStart(h.now()), nil
	}
	return models.ParseMonth(raw)
}
