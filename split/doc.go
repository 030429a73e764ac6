// Package split settles shared expenses among a group of participants.
//
// Core flow:
//   - NewPayments validates the name→amount input set.
//   - Calculate derives per-participant balances against the equal share.
//   - Optimize pairs debtors with creditors into a minimal transfer list.
//   - Split runs the full pipeline and cross-checks the result.
//
// All money values are shopspring decimals. The package enforces
// deterministic behavior using typed domain errors and a fixed tie-break
// rule (larger magnitude first, then lexicographically smaller name).
package split
