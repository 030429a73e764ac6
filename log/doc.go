// Package log defines the logging interface and typed logging fields.
//
// Adapters (such as the zap package) implement Logger so the CLI shell and
// library callers keep logging calls consistent across backends. User-entered
// participant names pass through the sanitizer before logging.
package log
