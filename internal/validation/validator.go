package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"household-expenses/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with the household rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("family_member", validateFamilyMember)
	_ = v.RegisterValidation("beneficiary", validateBeneficiary)
	_ = v.RegisterValidation("deposit_source", validateDepositSource)
	_ = v.RegisterValidation("bank_tx_type", validateBankTransactionType)
	_ = v.RegisterValidation("date", validateDate)
	_ = v.RegisterValidation("month", validateMonth)
	_ = v.RegisterValidation("amount", validateAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("password", validatePassword)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s against its struct tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

func validateFamilyMember(fl validator.FieldLevel) bool {
	return models.FamilyMember(fl.Field().String()).IsValid()
}

func validateBeneficiary(fl validator.FieldLevel) bool {
	return models.Beneficiary(fl.Field().String()).IsValid()
}

// validateDepositSource accepts a family member or Other
func validateDepositSource(fl validator.FieldLevel) bool {
	return models.IsValidDepositSource(fl.Field().String())
}

func validateBankTransactionType(fl validator.FieldLevel) bool {
	return models.BankTransactionType(fl.Field().String()).IsValid()
}

// validateDate expects YYYY-MM-DD
func validateDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

// validateMonth expects YYYY-MM
func validateMonth(fl validator.FieldLevel) bool {
	_, err := models.ParseMonth(fl.Field().String())
	return err == nil
}

// validateAmount accepts a non-negative decimal with at most 2 decimal places
func validateAmount(fl validator.FieldLevel) bool {
	d, ok := parseAmount(fl.Field())
	return ok && !d.IsNegative()
}

// validatePositiveAmount accepts a decimal greater than zero with at most 2 decimal places
func validatePositiveAmount(fl validator.FieldLevel) bool {
	d, ok := parseAmount(fl.Field())
	return ok && d.IsPositive()
}

func parseAmount(field reflect.Value) (decimal.Decimal, bool) {
	var d decimal.Decimal
	switch field.Kind() {
	case reflect.String:
		parsed, err := decimal.NewFromString(strings.TrimSpace(field.String()))
		if err != nil {
			return decimal.Zero, false
		}
		d = parsed
	case reflect.Float32, reflect.Float64:
		d = decimal.NewFromFloat(field.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		d = decimal.NewFromInt(field.Int())
	default:
		return decimal.Zero, false
	}
	return d, d.Equal(d.Round(2))
}

// validatePassword requires at least one letter and one digit; length is checked with min
func validatePassword(fl validator.FieldLevel) bool {
	var hasLetter, hasDigit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// FieldErrors flattens validator errors into field -> message. Other errors yield nil.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors[fe.Field()] = FormatFieldError(fe)
	}
	return fieldErrors
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "category":
		return "must be a known expense category"
	case "family_member":
		return "must be a family member"
	case "beneficiary":
		return "must be a family member or Shared"
	case "deposit_source":
		return "must be a family member or Other"
	case "bank_tx_type":
		return "must be deposit or withdrawal"
	case "date":
		return "must be a date in YYYY-MM-DD format"
	case "month":
		return "must be a month in YYYY-MM format"
	case "amount":
		return "must be a non-negative amount with up to 2 decimal places"
	case "positive_amount":
		return "must be greater than 0 with up to 2 decimal places"
	case "password":
		return "must contain at least one letter and one digit"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
