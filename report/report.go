package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/jannejalopeura/money-split/split"
)

// DefaultCurrency is the currency symbol used when Options leaves it empty.
const DefaultCurrency = "€"

// Options controls rendering.
type Options struct {
	// Currency is the symbol prefixed to every amount.
	Currency string
}

func (o Options) currency() string {
	if o.Currency == "" {
		return DefaultCurrency
	}

	return o.Currency
}

// Render writes the settlement result to w: summary totals, the transfer
// table, and the per-person status table sorted by name.
func Render(w io.Writer, result split.Result, opts Options) error {
	currency := opts.currency()

	header := strings.Repeat("=", 50)

	fmt.Fprintln(w, header)
	fmt.Fprintln(w, "MONEY SPLIT RESULTS")
	fmt.Fprintln(w, header)
	fmt.Fprintf(w, "Total paid: %s\n", money(currency, result.Sheet.Total))
	fmt.Fprintf(w, "Average per person: %s\n", money(currency, result.Sheet.Average))
	fmt.Fprintf(w, "Participants: %d\n", result.Sheet.Count)
	fmt.Fprintln(w)

	if result.Balanced() {
		fmt.Fprintln(w, "No transactions needed - everyone paid exactly the right amount!")
		return nil
	}

	fmt.Fprintln(w, "Transactions needed:")

	if err := renderTransactions(w, result.Transactions, currency); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")

	if err := renderSummary(w, result, currency); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total transactions: %d\n", result.TransactionCount())

	return nil
}

func renderTransactions(w io.Writer, transactions []split.Transaction, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "PAYER\tRECIPIENT\tAMOUNT")

	for _, transaction := range transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			transaction.Payer, transaction.Recipient, money(currency, transaction.Amount))
	}

	return tw.Flush()
}

func renderSummary(w io.Writer, result split.Result, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tPAID\tSHOULD PAY\tSTATUS")

	for _, name := range result.Payments.Names() {
		paid, _ := result.Payments.Amount(name)
		balance := result.Sheet.Balances[name]

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			name, money(currency, paid), money(currency, result.Sheet.Average), status(currency, balance))
	}

	return tw.Flush()
}

// status describes what a balance means for its owner.
func status(currency string, balance decimal.Decimal) string {
	switch {
	case balance.IsPositive():
		return "Receives " + money(currency, balance)
	case balance.IsNegative():
		return "Pays " + money(currency, balance.Neg())
	default:
		return "Even"
	}
}

func money(currency string, amount decimal.Decimal) string {
	return currency + amount.StringFixed(2)
}
