package split

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jannejalopeura/money-split/safe"
)

// PaymentEntry is a single raw payment: a participant and the amount paid.
type PaymentEntry struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Payments is a validated set of payments keyed by participant name.
//
// The zero value is not usable; construct with NewPayments.
type Payments struct {
	amounts map[string]decimal.Decimal
}

// NewPayments validates entries and builds a payment set.
//
// Names are trimmed of surrounding whitespace. Validation rules:
//   - at least one entry (ErrorEmptyInput)
//   - trimmed name must be non-empty (ErrorInvalidName)
//   - amount must be non-negative (ErrorInvalidAmount)
//   - names must be unique after trimming (ErrorDuplicateName)
//
// Duplicates are rejected rather than merged or overwritten: once input
// reaches the core as a batch, silently collapsing two payments loses money.
func NewPayments(entries []PaymentEntry) (Payments, error) {
	if len(entries) == 0 {
		return Payments{}, NewDomainError(ErrorEmptyInput, "payments", "at least one payment is required")
	}

	amounts := make(map[string]decimal.Decimal, len(entries))

	for i, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return Payments{}, NewDomainError(ErrorInvalidName, entryField(i, "name"), "participant name cannot be empty")
		}

		if entry.Amount.IsNegative() {
			return Payments{}, NewDomainError(ErrorInvalidAmount, entryField(i, "amount"), "amount paid by "+name+" cannot be negative")
		}

		if _, exists := amounts[name]; exists {
			return Payments{}, NewDomainError(ErrorDuplicateName, entryField(i, "name"), "participant "+name+" appears more than once")
		}

		amounts[name] = entry.Amount
	}

	return Payments{amounts: amounts}, nil
}

// Amount returns the amount paid by name and whether the participant exists.
func (p Payments) Amount(name string) (decimal.Decimal, bool) {
	amount, ok := p.amounts[name]
	return amount, ok
}

// Names returns all participant names in lexicographic order.
func (p Payments) Names() []string {
	names := make([]string, 0, len(p.amounts))
	for name := range p.amounts {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Count returns the number of participants.
func (p Payments) Count() int {
	return len(p.amounts)
}

// Total returns the sum of all amounts paid.
func (p Payments) Total() decimal.Decimal {
	total := decimal.Zero

	for _, amount := range p.amounts {
		total = total.Add(amount)
	}

	return total
}

// Average returns the equal share per participant, rounded half-up to
// cents. An empty set (possible only through the zero value) averages to
// zero.
func (p Payments) Average() decimal.Decimal {
	count := decimal.NewFromInt(int64(len(p.amounts)))

	average, err := safe.DivideRound(p.Total(), count, moneyPlaces)
	if err != nil {
		return decimal.Zero
	}

	return average
}

func entryField(index int, name string) string {
	return fmt.Sprintf("payments[%d].%s", index, name)
}
