package split

import (
	"github.com/shopspring/decimal"
)

// Transaction is a single transfer from a payer to a recipient.
//
// Transactions are value objects; once emitted by the optimizer they are
// never mutated.
type Transaction struct {
	Payer     string          `json:"payer"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
}

// Validate checks the transaction invariants.
func (t Transaction) Validate() error {
	if t.Payer == "" {
		return NewDomainError(ErrorInvalidName, "payer", "payer name cannot be empty")
	}

	if t.Recipient == "" {
		return NewDomainError(ErrorInvalidName, "recipient", "recipient name cannot be empty")
	}

	if t.Payer == t.Recipient {
		return NewDomainError(ErrorSelfTransfer, "recipient", "payer and recipient cannot be the same participant")
	}

	if !t.Amount.IsPositive() {
		return NewDomainError(ErrorInvalidAmount, "amount", "transfer amount must be greater than zero")
	}

	return nil
}

// Replay applies transactions to the sheet's balances and returns the
// residual per participant. A residual of zero (within tolerance) for every
// name means the transactions settle the sheet completely.
//
// A payer's balance moves up by the amount sent, a recipient's moves down by
// the amount received: a debtor at −20 paying 20 lands at zero, a creditor
// at +20 receiving 20 lands at zero.
func Replay(sheet BalanceSheet, transactions []Transaction) map[string]decimal.Decimal {
	residuals := make(map[string]decimal.Decimal, len(sheet.Balances))
	for name, balance := range sheet.Balances {
		residuals[name] = balance
	}

	for _, transaction := range transactions {
		residuals[transaction.Payer] = residuals[transaction.Payer].Add(transaction.Amount)
		residuals[transaction.Recipient] = residuals[transaction.Recipient].Sub(transaction.Amount)
	}

	return residuals
}
