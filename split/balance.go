package split

import (
	"sort"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the number of fractional digits kept on currency values.
const moneyPlaces = 2

// tolerance is half a cent. Balances and outstanding magnitudes at or below
// it count as settled.
var tolerance = decimal.New(5, -3)

// centTolerance is the penny-level bound the reconciliation guard accepts as
// rounding residue after replaying the transfers.
var centTolerance = decimal.New(1, -2)

// Party is a participant with an outstanding magnitude during settling.
type Party struct {
	Name   string
	Amount decimal.Decimal
}

// BalanceSheet holds per-participant balances relative to the equal share.
//
// Positive balance: the participant is owed money (creditor). Negative:
// the participant owes money (debtor). Balances are cent-quantized and
// always sum to exactly zero; Calculate spreads the residual left by
// rounding across the largest balances in cent steps.
type BalanceSheet struct {
	Balances map[string]decimal.Decimal
	Total    decimal.Decimal
	Average  decimal.Decimal
	Count    int
}

// Calculate derives the balance sheet for a payment set.
//
// balance[name] = amount[name] − average, rounded half-up to cents, with
// average = total/count rounded the same way. Rounding leaves a residual of
// at most a few cents across the group; it is distributed one cent at a
// time starting from the participant with the largest balance (ties broken
// by lexicographically smaller name) so the zero-sum invariant holds
// exactly and no single balance absorbs more than its share of rounding.
func Calculate(payments Payments) (BalanceSheet, error) {
	if payments.Count() == 0 {
		return BalanceSheet{}, NewDomainError(ErrorEmptyInput, "payments", "cannot calculate balances for an empty payment set")
	}

	total := payments.Total()
	average := payments.Average()
	names := payments.Names()

	balances := make(map[string]decimal.Decimal, len(names))

	for _, name := range names {
		amount, ok := payments.Amount(name)
		if !ok {
			return BalanceSheet{}, NewDomainError(ErrorInvalidInput, "payments", "participant "+name+" disappeared from the payment set")
		}

		if amount.IsNegative() {
			return BalanceSheet{}, NewDomainError(ErrorInvalidAmount, "payments", "amount paid by "+name+" cannot be negative")
		}

		balances[name] = amount.Sub(average).Round(moneyPlaces)
	}

	distributeResidual(balances, names)

	return BalanceSheet{
		Balances: balances,
		Total:    total,
		Average:  average,
		Count:    len(names),
	}, nil
}

// Debtors returns participants below the equal share, tracked by owed
// magnitude (−balance), ordered by magnitude descending then name ascending.
func (s BalanceSheet) Debtors() []Party {
	parties := make([]Party, 0, len(s.Balances))

	for name, balance := range s.Balances {
		if balance.Neg().GreaterThan(tolerance) {
			parties = append(parties, Party{Name: name, Amount: balance.Neg()})
		}
	}

	sortParties(parties)

	return parties
}

// Creditors returns participants above the equal share, tracked by owed
// magnitude (balance), ordered by magnitude descending then name ascending.
func (s BalanceSheet) Creditors() []Party {
	parties := make([]Party, 0, len(s.Balances))

	for name, balance := range s.Balances {
		if balance.GreaterThan(tolerance) {
			parties = append(parties, Party{Name: name, Amount: balance})
		}
	}

	sortParties(parties)

	return parties
}

// Sum returns the sum of all balances. It is zero for any sheet produced by
// Calculate; the accessor exists for reconciliation checks and tests.
func (s BalanceSheet) Sum() decimal.Decimal {
	sum := decimal.Zero

	for _, balance := range s.Balances {
		sum = sum.Add(balance)
	}

	return sum
}

// distributeResidual adjusts the cent-quantized balances so they sum to
// exactly zero. The residual is always a whole number of cents (every
// balance is a cent multiple); it is applied one cent at a time, cycling
// through participants ordered by balance descending then name ascending.
// Spreading keeps every adjustment within a cent per participant, so sheets
// where everyone is settled stay settled. names must be sorted and
// non-empty.
func distributeResidual(balances map[string]decimal.Decimal, names []string) {
	residual := decimal.Zero
	for _, name := range names {
		residual = residual.Sub(balances[name])
	}

	if residual.IsZero() {
		return
	}

	step := decimal.New(1, -moneyPlaces)
	if residual.IsNegative() {
		step = step.Neg()
	}

	order := make([]string, len(names))
	copy(order, names)
	sort.Slice(order, func(i, j int) bool {
		if !balances[order[i]].Equal(balances[order[j]]) {
			return balances[order[i]].GreaterThan(balances[order[j]])
		}

		return order[i] < order[j]
	})

	for i := 0; !residual.IsZero(); i = (i + 1) % len(order) {
		balances[order[i]] = balances[order[i]].Add(step)
		residual = residual.Sub(step)
	}
}

func sortParties(parties []Party) {
	sort.Slice(parties, func(i, j int) bool {
		if !parties[i].Amount.Equal(parties[j].Amount) {
			return parties[i].Amount.GreaterThan(parties[j].Amount)
		}

		return parties[i].Name < parties[j].Name
	})
}
