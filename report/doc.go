// Package report renders a settlement result as human-readable text.
package report
