package zap

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains all required logger initialization inputs.
type Config struct {
	// Level is the textual minimum level ("debug", "info", "warn", "error").
	// Empty defaults to info.
	Level string
	// FilePath, when set, appends a JSON log sink at the given path in
	// addition to stderr. The CLI uses this for per-run log files.
	FilePath string
	// Console switches stderr output to the human-readable console encoder.
	Console bool
}

// New creates a structured logger and returns it with a runtime-adjustable
// level handle.
func New(cfg Config) (*Logger, zap.AtomicLevel, error) {
	level, err := resolveLevel(cfg.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	baseConfig := buildConfig(cfg.Console)
	baseConfig.Level = level
	baseConfig.DisableStacktrace = true
	baseConfig.OutputPaths = []string{"stderr"}

	if cfg.FilePath != "" {
		baseConfig.OutputPaths = append(baseConfig.OutputPaths, cfg.FilePath)
	}

	built, err := baseConfig.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Logger{logger: built, atomicLevel: level}, level, nil
}

func resolveLevel(lvl string) (zap.AtomicLevel, error) {
	if strings.TrimSpace(lvl) == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}

	var parsed zapcore.Level
	if err := parsed.Set(strings.TrimSpace(lvl)); err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", lvl, err)
	}

	return zap.NewAtomicLevelAt(parsed), nil
}

func buildConfig(console bool) zap.Config {
	if console {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

		return cfg
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
