// Package conversion decides whether numeric values convert to fixed-width
// integer kinds, and what the converted values are.
//
// Three policies are provided:
//   - Checked: total, reports Representable(value) or NotRepresentable(reason)
//   - Truncating: wraps integers to the target width; floats must be exact
//   - Trapping: integers must fit; floats are truncated toward zero and must fit
//
// All comparisons are carried out on math/big values, so no boundary is ever
// compared in a narrower representation than the operands need. Violated
// preconditions of Truncating and Trapping are reported to the Oracle's
// FaultHandler as a *Fault.
package conversion
