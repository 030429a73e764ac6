package split

import (
	"github.com/google/uuid"
)

// Result is the complete outcome of a settlement run.
type Result struct {
	RunID        uuid.UUID     `json:"runId"`
	Payments     Payments      `json:"-"`
	Sheet        BalanceSheet  `json:"sheet"`
	Transactions []Transaction `json:"transactions"`
}

// Split runs the full pipeline: balances, transfer optimization, and a
// final cross-check that replaying the transfers zeroes every balance.
func Split(payments Payments) (Result, error) {
	sheet, err := Calculate(payments)
	if err != nil {
		return Result{}, err
	}

	transactions, err := Optimize(sheet)
	if err != nil {
		return Result{}, err
	}

	for _, transaction := range transactions {
		if err := transaction.Validate(); err != nil {
			return Result{}, err
		}
	}

	return Result{
		RunID:        uuid.New(),
		Payments:     payments,
		Sheet:        sheet,
		Transactions: transactions,
	}, nil
}

// Balanced reports whether everyone already paid their equal share.
func (r Result) Balanced() bool {
	return len(r.Transactions) == 0
}

// TransactionCount returns the number of transfers required.
func (r Result) TransactionCount() int {
	return len(r.Transactions)
}
