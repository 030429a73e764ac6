package safe

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned when attempting to divide by zero.
var ErrDivisionByZero = errors.New("division by zero")

// DivideRound performs decimal division with rounding and zero check.
// Returns ErrDivisionByZero if denominator is zero.
//
// Example:
//
//	average, err := safe.DivideRound(total, count, 2)
//	if err != nil {
//	    return fmt.Errorf("calculate average: %w", err)
//	}
func DivideRound(numerator, denominator decimal.Decimal, places int32) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.DivRound(denominator, places), nil
}
