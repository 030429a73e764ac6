package split

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCalculate builds a sheet from name/amount pairs or fails the test.
func mustCalculate(t *testing.T, pairs ...string) BalanceSheet {
	t.Helper()

	sheet, err := Calculate(mustPayments(t, pairs...))
	require.NoError(t, err)

	return sheet
}

// assertBalance checks one participant's balance against an expected string.
func assertBalance(t *testing.T, sheet BalanceSheet, name, expected string) {
	t.Helper()

	balance, ok := sheet.Balances[name]
	require.True(t, ok, "missing balance for %s", name)
	assert.True(t, balance.Equal(dec(t, expected)),
		"expected balance %s for %s, got %s", expected, name, balance)
}

// ---------------------------------------------------------------------------
// Calculate
// ---------------------------------------------------------------------------

func TestCalculate_EmptyPayments(t *testing.T) {
	t.Parallel()

	_, err := Calculate(Payments{})
	assertDomainError(t, err, ErrorEmptyInput)
}

func TestCalculate_SingleParticipant(t *testing.T) {
	t.Parallel()

	sheet := mustCalculate(t, "Alice", "50")

	assert.Equal(t, 1, sheet.Count)
	assert.True(t, sheet.Total.Equal(dec(t, "50")))
	assert.True(t, sheet.Average.Equal(dec(t, "50")))
	assertBalance(t, sheet, "Alice", "0")
}

func TestCalculate_EqualPayments(t *testing.T) {
	t.Parallel()

	sheet := mustCalculate(t, "Alice", "30", "Bob", "30", "Charlie", "30")

	for _, name := range []string{"Alice", "Bob", "Charlie"} {
		assertBalance(t, sheet, name, "0")
	}

	assert.Empty(t, sheet.Debtors())
	assert.Empty(t, sheet.Creditors())
}

func TestCalculate_UnequalPayments(t *testing.T) {
	t.Parallel()

	sheet := mustCalculate(t, "Alice", "60", "Bob", "20")

	assert.True(t, sheet.Average.Equal(dec(t, "40")))
	assertBalance(t, sheet, "Alice", "20")
	assertBalance(t, sheet, "Bob", "-20")
}

func TestCalculate_FourParticipants(t *testing.T) {
	t.Parallel()

	sheet := mustCalculate(t, "Alice", "100", "Bob", "50", "Charlie", "30", "Dave", "20")

	assert.True(t, sheet.Average.Equal(dec(t, "50")))
	assertBalance(t, sheet, "Alice", "50")
	assertBalance(t, sheet, "Bob", "0")
	assertBalance(t, sheet, "Charlie", "-20")
	assertBalance(t, sheet, "Dave", "-30")
}

func TestCalculate_ZeroTotal(t *testing.T) {
	t.Parallel()

	sheet := mustCalculate(t, "Alice", "0", "Bob", "0")

	assertBalance(t, sheet, "Alice", "0")
	assertBalance(t, sheet, "Bob", "0")
}

// ---------------------------------------------------------------------------
// Rounding residual assignment
// ---------------------------------------------------------------------------

func TestCalculate_ResidualGoesToLargestCreditor(t *testing.T) {
	t.Parallel()

	// 80 / 3 = 26.666... rounds to 26.67, leaving a -0.01 residual that the
	// largest creditor absorbs so the debtor magnitudes reconcile exactly.
	sheet := mustCalculate(t, "Alice", "50", "Bob", "10", "Charlie", "20")

	assert.True(t, sheet.Average.Equal(dec(t, "26.67")))
	assertBalance(t, sheet, "Alice", "23.34")
	assertBalance(t, sheet, "Bob", "-16.67")
	assertBalance(t, sheet, "Charlie", "-6.67")
}

func TestCalculate_ResidualTieBreaksByName(t *testing.T) {
	t.Parallel()

	// Bob and Carol tie as largest creditors; the lexicographically smaller
	// name carries the residual.
	sheet := mustCalculate(t, "Alice", "10", "Bob", "20", "Carol", "20")

	assert.True(t, sheet.Average.Equal(dec(t, "16.67")))
	assertBalance(t, sheet, "Alice", "-6.67")
	assertBalance(t, sheet, "Bob", "3.34")
	assertBalance(t, sheet, "Carol", "3.33")
}

func TestCalculate_EqualSubCentPayments(t *testing.T) {
	t.Parallel()

	// 10.555 × 4 rounds the average up to 10.56, leaving every raw balance a
	// half-cent short. Spreading the residual cancels the rounding instead of
	// piling it on one participant as a phantom creditor.
	sheet := mustCalculate(t, "Alice", "10.555", "Bob", "10.555", "Carol", "10.555", "Dave", "10.555")

	assert.True(t, sheet.Average.Equal(dec(t, "10.56")))

	for _, name := range []string{"Alice", "Bob", "Carol", "Dave"} {
		assertBalance(t, sheet, name, "0")
	}

	assert.Empty(t, sheet.Debtors())
	assert.Empty(t, sheet.Creditors())
}

func TestCalculate_SubCentPaymentsQuantized(t *testing.T) {
	t.Parallel()

	sheet := mustCalculate(t, "Alice", "10.555", "Bob", "10.545")

	assert.True(t, sheet.Average.Equal(dec(t, "10.55")))
	assertBalance(t, sheet, "Alice", "0.01")
	assertBalance(t, sheet, "Bob", "-0.01")
}

func TestCalculate_BalancesSumToZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pairs []string
	}{
		{name: "even split", pairs: []string{"Alice", "50", "Bob", "10"}},
		{name: "repeating fraction", pairs: []string{"Alice", "50", "Bob", "10", "Charlie", "20"}},
		{name: "seven ways", pairs: []string{"A", "1", "B", "2", "C", "3", "D", "4", "E", "5", "F", "6", "G", "101.37"}},
		{name: "cents only", pairs: []string{"A", "0.01", "B", "0.02", "C", "0.05"}},
		{name: "large amounts", pairs: []string{"A", "999999.99", "B", "0.01", "C", "123456.78"}},
		{name: "equal sub-cent amounts", pairs: []string{"A", "10.555", "B", "10.555", "C", "10.555", "D", "10.555"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sheet := mustCalculate(t, tt.pairs...)
			assert.True(t, sheet.Sum().IsZero(), "expected zero sum, got %s", sheet.Sum())
		})
	}
}

// ---------------------------------------------------------------------------
// Debtors / Creditors partition
// ---------------------------------------------------------------------------

func TestBalanceSheet_Partition(t *testing.T) {
	t.Parallel()

	sheet := mustCalculate(t, "Alice", "100", "Bob", "50", "Charlie", "30", "Dave", "20")

	debtors := sheet.Debtors()
	require.Len(t, debtors, 2)
	assert.Equal(t, "Dave", debtors[0].Name)
	assert.True(t, debtors[0].Amount.Equal(dec(t, "30")))
	assert.Equal(t, "Charlie", debtors[1].Name)
	assert.True(t, debtors[1].Amount.Equal(dec(t, "20")))

	creditors := sheet.Creditors()
	require.Len(t, creditors, 1)
	assert.Equal(t, "Alice", creditors[0].Name)
	assert.True(t, creditors[0].Amount.Equal(dec(t, "50")))
}

func TestBalanceSheet_PartitionExcludesSettled(t *testing.T) {
	t.Parallel()

	sheet := mustCalculate(t, "Alice", "100", "Bob", "50", "Charlie", "30", "Dave", "20")

	for _, party := range append(sheet.Debtors(), sheet.Creditors()...) {
		assert.NotEqual(t, "Bob", party.Name, "settled participant must not be partitioned")
	}
}

func TestBalanceSheet_PartitionTieBreak(t *testing.T) {
	t.Parallel()

	sheet := BalanceSheet{
		Balances: map[string]decimal.Decimal{
			"Zoe":  dec(t, "-10"),
			"Adam": dec(t, "-10"),
			"Mia":  dec(t, "20"),
		},
	}

	debtors := sheet.Debtors()
	require.Len(t, debtors, 2)
	assert.Equal(t, "Adam", debtors[0].Name)
	assert.Equal(t, "Zoe", debtors[1].Name)
}
