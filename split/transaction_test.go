package split

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		transaction Transaction
		code        ErrorCode
	}{
		{
			name:        "valid",
			transaction: Transaction{Payer: "Bob", Recipient: "Alice", Amount: decimal.NewFromInt(20)},
		},
		{
			name:        "empty payer",
			transaction: Transaction{Payer: "", Recipient: "Alice", Amount: decimal.NewFromInt(20)},
			code:        ErrorInvalidName,
		},
		{
			name:        "empty recipient",
			transaction: Transaction{Payer: "Bob", Recipient: "", Amount: decimal.NewFromInt(20)},
			code:        ErrorInvalidName,
		},
		{
			name:        "self transfer",
			transaction: Transaction{Payer: "Bob", Recipient: "Bob", Amount: decimal.NewFromInt(20)},
			code:        ErrorSelfTransfer,
		},
		{
			name:        "zero amount",
			transaction: Transaction{Payer: "Bob", Recipient: "Alice", Amount: decimal.Zero},
			code:        ErrorInvalidAmount,
		},
		{
			name:        "negative amount",
			transaction: Transaction{Payer: "Bob", Recipient: "Alice", Amount: decimal.NewFromInt(-5)},
			code:        ErrorInvalidAmount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.transaction.Validate()
			if tt.code == "" {
				require.NoError(t, err)
			} else {
				assertDomainError(t, err, tt.code)
			}
		})
	}
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	original := Transaction{Payer: "Bob", Recipient: "Alice", Amount: dec(t, "16.67")}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Transaction
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, original.Payer, restored.Payer)
	assert.Equal(t, original.Recipient, restored.Recipient)
	assert.True(t, original.Amount.Equal(restored.Amount))
}

// ---------------------------------------------------------------------------
// Replay
// ---------------------------------------------------------------------------

func TestReplay_DrivesBalancesToZero(t *testing.T) {
	t.Parallel()

	sheet := mustCalculate(t, "Alice", "60", "Bob", "20")
	transactions := []Transaction{{Payer: "Bob", Recipient: "Alice", Amount: dec(t, "20")}}

	for name, residual := range Replay(sheet, transactions) {
		assert.True(t, residual.IsZero(), "expected zero residual for %s, got %s", name, residual)
	}
}

func TestReplay_NoTransactions(t *testing.T) {
	t.Parallel()

	sheet := mustCalculate(t, "Alice", "60", "Bob", "20")

	residuals := Replay(sheet, nil)
	assert.True(t, residuals["Alice"].Equal(dec(t, "20")))
	assert.True(t, residuals["Bob"].Equal(dec(t, "-20")))
}
