package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jannejalopeura/money-split/split"
)

// paymentsFile is the YAML schema for --file input. Amounts are strings so
// decimal values survive parsing without float conversion.
type paymentsFile struct {
	Currency string      `yaml:"currency"`
	Payments []fileEntry `yaml:"payments" validate:"required,min=1,dive"`
}

type fileEntry struct {
	Name   string `yaml:"name" validate:"required"`
	Amount string `yaml:"amount" validate:"required"`
}

var validate = validator.New()

// collectPayments reads the payment set from --file or interactively.
func collectPayments(cmd *cobra.Command) (split.Payments, error) {
	if inputFile != "" {
		return loadPaymentsFile(inputFile, cmd.Flags().Changed("currency"))
	}

	return promptPayments(cmd.InOrStdin(), cmd.OutOrStdout())
}

// loadPaymentsFile parses and validates a YAML payments file before handing
// the entries to the core. Schema errors surface here; domain errors
// (duplicates, negative amounts) surface from split.NewPayments.
func loadPaymentsFile(path string, currencyFlagSet bool) (split.Payments, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return split.Payments{}, fmt.Errorf("read payments file: %w", err)
	}

	var file paymentsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return split.Payments{}, fmt.Errorf("parse payments file: %w", err)
	}

	if err := validate.Struct(file); err != nil {
		return split.Payments{}, fmt.Errorf("invalid payments file: %w", err)
	}

	// The file's currency applies unless the flag or environment overrode it.
	if file.Currency != "" && !currencyFlagSet && os.Getenv(envCurrency) == "" {
		currency = file.Currency
	}

	entries := make([]split.PaymentEntry, 0, len(file.Payments))

	for _, entry := range file.Payments {
		amount, err := decimal.NewFromString(strings.TrimSpace(entry.Amount))
		if err != nil {
			return split.Payments{}, fmt.Errorf("invalid amount %q for %s: %w", entry.Amount, entry.Name, err)
		}

		entries = append(entries, split.PaymentEntry{Name: entry.Name, Amount: amount})
	}

	return split.NewPayments(entries)
}

// promptPayments collects entries interactively. A later entry for the same
// name overwrites the earlier one with a warning, so the core never sees
// duplicates from this path.
func promptPayments(in io.Reader, out io.Writer) (split.Payments, error) {
	fmt.Fprintln(out, "Enter payment information (type 'done' when finished):")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	amounts := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for {
		name, ok := promptLine(scanner, out, "Enter person's name (or 'done' to finish): ")
		if !ok {
			break
		}

		if strings.EqualFold(name, "done") {
			break
		}

		if name == "" {
			fmt.Fprintln(out, "Name cannot be empty. Please try again.")
			continue
		}

		if _, exists := amounts[name]; exists {
			fmt.Fprintf(out, "Warning: %s already exists. This will overwrite the previous amount.\n", name)
		} else {
			order = append(order, name)
		}

		amount, ok := promptAmount(scanner, out, name)
		if !ok {
			break
		}

		amounts[name] = amount
	}

	entries := make([]split.PaymentEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, split.PaymentEntry{Name: name, Amount: amounts[name]})
	}

	return split.NewPayments(entries)
}

func promptAmount(scanner *bufio.Scanner, out io.Writer, name string) (decimal.Decimal, bool) {
	for {
		raw, ok := promptLine(scanner, out, fmt.Sprintf("Enter amount %s paid: ", name))
		if !ok {
			return decimal.Zero, false
		}

		amount, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(out, "Invalid amount. Please enter a valid number.")
			continue
		}

		if amount.IsNegative() {
			fmt.Fprintln(out, "Amount cannot be negative. Please try again.")
			continue
		}

		return amount, true
	}
}

// promptLine writes the prompt and reads one trimmed line. ok is false once
// the input stream is exhausted.
func promptLine(scanner *bufio.Scanner, out io.Writer, prompt string) (string, bool) {
	fmt.Fprint(out, prompt)

	if !scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(scanner.Text()), true
}
