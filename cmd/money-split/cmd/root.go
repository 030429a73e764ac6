package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jannejalopeura/money-split/log"
	"github.com/jannejalopeura/money-split/report"
	"github.com/jannejalopeura/money-split/split"
	"github.com/jannejalopeura/money-split/zap"
)

// Environment variables consumed as flag defaults.
const (
	envCurrency = "MONEY_SPLIT_CURRENCY"
	envLogLevel = "MONEY_SPLIT_LOG_LEVEL"
	envLogFile  = "MONEY_SPLIT_LOG_FILE"
)

var (
	inputFile string
	currency  string
	logLevel  string
	logFile   string
	quiet     bool
)

// rootCmd is the single command: collect payments, settle, print the result.
var rootCmd = &cobra.Command{
	Use:   "money-split",
	Short: "Calculate optimal transfers to split expenses equally",
	Long: `money-split settles shared expenses among a group with the minimum
number of pairwise transfers.

Payments are read from a YAML file (--file) or collected interactively.
The output lists who pays whom, plus a per-person summary against the
equal share.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "money-split: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "YAML payments file (omit for interactive entry)")
	rootCmd.Flags().StringVar(&currency, "currency", envOr(envCurrency, report.DefaultCurrency), "currency symbol used in output")
	rootCmd.Flags().StringVar(&logLevel, "log-level", envOr(envLogLevel, "info"), "minimum log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", os.Getenv(envLogFile), "also write JSON logs to this file")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress run logging, print only the result")
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync(ctx) }()

	payments, err := collectPayments(cmd)
	if err != nil {
		logger.Log(ctx, log.LevelError, "invalid payment data", log.Err(err))
		return err
	}

	result, err := split.Split(payments)
	if err != nil {
		logger.Log(ctx, log.LevelError, "settlement failed", log.Err(err))
		return err
	}

	if err := report.Render(cmd.OutOrStdout(), result, report.Options{Currency: currency}); err != nil {
		return err
	}

	logResult(ctx, logger, result)

	return nil
}

// buildLogger wires the zap adapter; --quiet drops all run logging.
func buildLogger() (log.Logger, error) {
	if quiet {
		return log.NewNop(), nil
	}

	// Normalizes aliases ("warning") and rejects junk before zap sees it.
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	logger, _, err := zap.New(zap.Config{Level: level.String(), FilePath: logFile, Console: true})
	if err != nil {
		return nil, err
	}

	return logger, nil
}

func logResult(ctx context.Context, logger log.Logger, result split.Result) {
	runLogger := logger.With(log.String("run_id", result.RunID.String()))

	runLogger.Log(ctx, log.LevelInfo, "settlement complete",
		log.String("total", result.Sheet.Total.StringFixed(2)),
		log.String("average", result.Sheet.Average.StringFixed(2)),
		log.Int("participants", result.Sheet.Count),
		log.Int("transactions", result.TransactionCount()),
	)

	transferLogger := runLogger.WithGroup("transfer")

	for _, transaction := range result.Transactions {
		transferLogger.Log(ctx, log.LevelDebug, "transfer",
			log.String("payer", log.Sanitize(transaction.Payer)),
			log.String("recipient", log.Sanitize(transaction.Recipient)),
			log.String("amount", transaction.Amount.StringFixed(2)),
		)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
