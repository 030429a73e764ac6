// Package safe provides guarded decimal arithmetic helpers.
//
// The helpers exist so callers never divide by zero implicitly: division
// surfaces ErrDivisionByZero instead of panicking.
package safe
