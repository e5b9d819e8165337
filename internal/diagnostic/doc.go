// Package diagnostic provides structured errors, warnings and notes produced
// while verifying conversion tables against the oracle.
//
// Key capabilities:
//   - Mismatched outcome reports, keyed by conversion pair and case
//   - Missing or unexpected fault reports
//   - Aggregation of all findings into a single error
package diagnostic
