package handlers

import (
	stderrors "errors"
	"log/slog"

	"household-expenses/internal/errors"
	"household-expenses/internal/models"
	"household-expenses/internal/repositories"
	"household-expenses/internal/services"

	"github.com/labstack/echo/v4"
)

// serviceErrorCodes maps domain sentinels to the client error code they surface as.
// Order matters: the first match wins.
var serviceErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{repositories.ErrExpenseNotFound, errors.ExpenseNotFound},
	{repositories.ErrBudgetNotFound, errors.BudgetNotFound},
	{repositories.ErrBankTransactionNotFound, errors.BankTransactionNotFound},
	{services.ErrInvalidDate, errors.ValidationInvalidDate},
	{services.ErrInvalidDateRange, errors.ValidationInvalidDate},
	{models.ErrMissingDate, errors.ValidationInvalidDate},
	{services.ErrInvalidAmount, errors.ExpenseInvalidAmount},
	{models.ErrNegativeAmount, errors.ExpenseInvalidAmount},
	{models.ErrInvalidCategory, errors.ValidationInvalidCategory},
	{models.ErrInvalidSubCategory, errors.ExpenseInvalidSubCategory},
	{models.ErrInvalidFamilyMember, errors.ValidationInvalidMember},
	{models.ErrInvalidBeneficiary, errors.ValidationInvalidMember},
	{models.ErrNotesTooLong, errors.ValidationOutOfRange},
	{services.ErrInvalidMonth, errors.BudgetInvalidMonth},
	{models.ErrInvalidMonth, errors.BudgetInvalidMonth},
	{models.ErrNegativeBudgetAmount, errors.BudgetInvalidAmount},
	{models.ErrInvalidAmount, errors.BankInvalidAmount},
	{models.ErrInvalidBankTransactionType, errors.BankInvalidType},
	{models.ErrInvalidDepositSource, errors.BankInvalidSource},
	{models.ErrSourceOnWithdrawal, errors.BankInvalidSource},
}

// sendServiceError renders err as its mapped client error, or as a system error when unknown.
// Stored rows that fail to decode are reported as SYSTEM_007 before any sentinel they wrap is considered.
func sendServiceError(c echo.Context, err error) error {
	var decodeErr *models.DecodeError
	if stderrors.As(err, &decodeErr) {
		slog.Error("Stored row could not be decoded",
			"trace_id", getTraceID(c),
			"table", decodeErr.Table,
			"id", decodeErr.ID,
			"field", decodeErr.Field,
			"error", decodeErr.Err)
		return SendError(c, errors.SystemDataCorruption)
	}

	for _, m := range serviceErrorCodes {
		if stderrors.Is(err, m.err) {
			return SendError(c, m.code, errors.WithDetails(err.Error()))
		}
	}
	return SendSystemError(c, err)
}
