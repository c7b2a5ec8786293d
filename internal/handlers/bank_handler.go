package handlers

import (
	"net/http"

	"household-expenses/internal/analytics"
	"household-expenses/internal/dto"
	"household-expenses/internal/errors"
	"household-expenses/internal/services"

	"github.com/labstack/echo/v4"
)

// BankHandler handles the household bank account endpoints
type BankHandler struct {
	bankService services.BankServiceInterface
	currency    string
}

func NewBankHandler(bankService services.BankServiceInterface, currency string) *BankHandler {
	return &BankHandler{
		bankService: bankService,
		currency:    currency,
	}
}

// CreateTransaction records a deposit or withdrawal
// @Summary Create bank transaction
// @Tags Bank
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBankTransactionRequest true "Transaction"
// @Success 201 {object} dto.BankTransactionResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001, BANK_002, BANK_003 or BANK_004"
// @Router /bank/transactions [post]
func (h *BankHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBankTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tx, err := h.bankService.CreateTransaction(userID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewBankTransactionResponse(*tx, h.currency))
}

// ListTransactions lists the bank transactions of a period
// @Summary List bank transactions
// @Tags Bank
// @Security BearerAuth
// @Produce json
// @Param period query string false "current, previous or all" default(current)
// @Success 200 {object} dto.ListBankTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "Invalid period - VALIDATION_009"
// @Router /bank/transactions [get]
func (h *BankHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, err := analytics.ParsePeriod(c.QueryParam("period"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}

	transactions, err := h.bankService.ListTransactions(userID, period)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListBankTransactionsResponse{
		Period:       string(period),
		Transactions: dto.NewBankTransactionResponses(transactions, h.currency),
		Count:        len(transactions),
	})
}

// DeleteTransaction removes a bank transaction
// @Summary Delete bank transaction
// @Tags Bank
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "Not found - BANK_001"
// @Router /bank/transactions/{id} [delete]
func (h *BankHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getIDParam(c)
	if err != nil {
		return SendError(c, errors.BankTransactionNotFound, errors.WithDetails("Invalid transaction ID format"))
	}

	if err := h.bankService.DeleteTransaction(userID, transactionID, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetBalance returns the lifetime balance with the period's totals
// @Summary Bank balance
// @Tags Bank
// @Security BearerAuth
// @Produce json
// @Param period query string false "current, previous or all" default(current)
// @Success 200 {object} dto.BankBalanceResponse
// @Failure 400 {object} errors.ErrorResponse "Invalid period - VALIDATION_009"
// @Router /bank/balance [get]
func (h *BankHandler) GetBalance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, err := analytics.ParsePeriod(c.QueryParam("period"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}

	balance, err := h.bankService.GetBalance(userID, period)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, balance)
}
