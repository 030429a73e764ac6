package split

import "fmt"

// ErrorCode is a domain error code used by settlement validations.
type ErrorCode string

const (
	// ErrorEmptyInput indicates the payment set has no participants.
	ErrorEmptyInput ErrorCode = "0001"
	// ErrorInvalidName indicates a participant name is empty or blank.
	ErrorInvalidName ErrorCode = "0002"
	// ErrorInvalidAmount indicates a paid amount is negative.
	ErrorInvalidAmount ErrorCode = "0003"
	// ErrorDuplicateName indicates the same participant appears more than once.
	ErrorDuplicateName ErrorCode = "0004"
	// ErrorSelfTransfer indicates a transaction where payer and recipient match.
	ErrorSelfTransfer ErrorCode = "0005"
	// ErrorReconciliation indicates settled transactions do not zero the balances.
	ErrorReconciliation ErrorCode = "0006"
	// ErrorInvalidInput indicates a malformed value outside the codes above.
	ErrorInvalidInput ErrorCode = "1001"
)

// DomainError represents a structured settlement domain validation error.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}
