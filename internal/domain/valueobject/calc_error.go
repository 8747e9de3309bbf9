package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// CalculationError – tagged caller-input errors
// ---------------------------------------------------------------------------

// ErrorCode identifies the category of a rejected calculation request.
type ErrorCode string

const (
	ErrCodeUnsupportedCreditType ErrorCode = "UNSUPPORTED_CREDIT_TYPE"
	ErrCodeInvalidAmount         ErrorCode = "INVALID_AMOUNT"
	ErrCodeAmountTooLarge        ErrorCode = "AMOUNT_TOO_LARGE"
	ErrCodeInvalidDate           ErrorCode = "INVALID_DATE"
	ErrCodeInvalidDateRange      ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeAmountOutOfRange      ErrorCode = "AMOUNT_OUT_OF_RANGE"
	ErrCodeNoMatchingTier        ErrorCode = "NO_MATCHING_TIER"
)

// CalculationError is returned for every rejected request. All of these are
// caller input errors: the engine performs no I/O and has no internal
// failure modes.
type CalculationError struct {
	Code    ErrorCode
	Message string
}

// Error returns the human-readable message.
func (e *CalculationError) Error() string { return e.Message }

// NewCalculationError builds a CalculationError with a formatted message.
func NewCalculationError(code ErrorCode, format string, args ...any) *CalculationError {
	return &CalculationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsCalculationError unwraps err into a *CalculationError if it carries one.
func AsCalculationError(err error) (*CalculationError, bool) {
	var calcErr *CalculationError
	if errors.As(err, &calcErr) {
		return calcErr, true
	}
	return nil, false
}
