package handlers

import (
	"net/http"

	"household-expenses/internal/dto"
	"household-expenses/internal/errors"
	"household-expenses/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles the household expense endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
	currency       string
}

// NewExpenseHandler creates a new expense handler. Money in responses is formatted in currency.
func NewExpenseHandler(expenseService services.ExpenseServiceInterface, currency string) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		currency:       currency,
	}
}

// CreateExpense records a new expense
// @Summary Create expense
// @Tags Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001, EXPENSE_002 or EXPENSE_003"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.CreateExpense(userID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewExpenseResponse(*expense, h.currency))
}

// ListExpenses lists expenses, newest first
// @Summary List expenses
// @Description Optional filters: from/to (YYYY-MM-DD, inclusive), member (payer or beneficiary), category
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Param from query string false "First date"
// @Param to query string false "Last date"
// @Param member query string false "Family member"
// @Param category query string false "Category"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or VALIDATION_006"
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var filters dto.ExpenseFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(filters); err != nil {
		return err
	}

	expenses, err := h.expenseService.ListExpenses(userID, &filters)
	if err != nil {
		return sendServiceError(c, err)
	}

	total := decimal.Zero
	for i := range expenses {
		total = total.Add(expenses[i].Amount)
	}

	return c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Expenses: dto.NewExpenseResponses(expenses, h.currency),
		Count:    len(expenses),
		Total:    total.StringFixed(2),
	})
}

// GetExpense returns one expense
// @Summary Get expense
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} errors.ErrorResponse "Not found - EXPENSE_001"
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := getIDParam(c)
	if err != nil {
		return SendError(c, errors.ExpenseNotFound, errors.WithDetails("Invalid expense ID format"))
	}

	expense, err := h.expenseService.GetExpense(userID, expenseID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewExpenseResponse(*expense, h.currency))
}

// UpdateExpense overwrites every field of an expense
// @Summary Update expense
// @Tags Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body dto.ExpenseRequest true "Expense"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error"
// @Failure 404 {object} errors.ErrorResponse "Not found - EXPENSE_001"
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := getIDParam(c)
	if err != nil {
		return SendError(c, errors.ExpenseNotFound, errors.WithDetails("Invalid expense ID format"))
	}

	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewExpenseResponse(*expense, h.currency))
}

// DeleteExpense removes an expense
// @Summary Delete expense
// @Tags Expenses
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "Not found - EXPENSE_001"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := getIDParam(c)
	if err != nil {
		return SendError(c, errors.ExpenseNotFound, errors.WithDetails("Invalid expense ID format"))
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
