package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials  ErrorCode = "AUTH_001"
	AuthMissingToken        ErrorCode = "AUTH_002"
	AuthExpiredToken        ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat  ErrorCode = "AUTH_004"
	AuthAccountLocked       ErrorCode = "AUTH_005"
	AuthEmailTaken          ErrorCode = "AUTH_006"
	AuthInvalidRefreshToken ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail    ErrorCode = "VALIDATION_005"
	ValidationInvalidDate     ErrorCode = "VALIDATION_006"
	ValidationInvalidCategory ErrorCode = "VALIDATION_007"
	ValidationInvalidMember   ErrorCode = "VALIDATION_008"
	ValidationInvalidPeriod   ErrorCode = "VALIDATION_009"
	ValidationWeakPassword    ErrorCode = "VALIDATION_010"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound           ErrorCode = "EXPENSE_001"
	ExpenseInvalidAmount      ErrorCode = "EXPENSE_002"
	ExpenseInvalidSubCategory ErrorCode = "EXPENSE_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidMonth  ErrorCode = "BUDGET_002"
	BudgetInvalidAmount ErrorCode = "BUDGET_003"
)

// Bank error codes (BANK_*)
const (
	BankTransactionNotFound ErrorCode = "BANK_001"
	BankInvalidAmount       ErrorCode = "BANK_002"
	BankInvalidType         ErrorCode = "BANK_003"
	BankInvalidSource       ErrorCode = "BANK_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemDataCorruption     ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:  "Invalid email or password",
	AuthMissingToken:        "Authorization token is required",
	AuthExpiredToken:        "Authorization token has expired",
	AuthInvalidTokenFormat:  "Invalid authorization token format",
	AuthAccountLocked:       "Account is locked after too many failed logins",
	AuthEmailTaken:          "An account with this email already exists",
	AuthInvalidRefreshToken: "Refresh token is invalid, expired or revoked",

	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidEmail:    "Invalid email address format",
	ValidationInvalidDate:     "Invalid date format, expected YYYY-MM-DD",
	ValidationInvalidCategory: "Unknown expense category",
	ValidationInvalidMember:   "Unknown family member",
	ValidationInvalidPeriod:   "Period must be current, previous or all",
	ValidationWeakPassword:    "Password must be at least 8 characters and contain a letter and a digit",

	// Expense errors
	ExpenseNotFound:           "Expense not found",
	ExpenseInvalidAmount:      "Expense amount cannot be negative",
	ExpenseInvalidSubCategory: "Sub-category does not belong to the selected category",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetInvalidMonth:  "Invalid budget month, expected YYYY-MM",
	BudgetInvalidAmount: "Budget amount cannot be negative",

	// Bank errors
	BankTransactionNotFound: "Bank transaction not found",
	BankInvalidAmount:       "Bank transaction amount must be greater than zero",
	BankInvalidType:         "Bank transaction type must be deposit or withdrawal",
	BankInvalidSource:       "Deposit source must be a family member or Other",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemDataCorruption:     "Stored data could not be read",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
