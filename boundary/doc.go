// Package boundary generates and verifies per-target conversion tables.
//
// A Suite lists, for one integer target kind, a Section per source kind with
// up to four groups of cases:
//   - NeverTraps / AlwaysTraps: outcome of the trapping conversion
//   - NeverFails / AlwaysFails: outcome of the checked conversion
//
// Cases are derived from the range rules of each (source, target) pair rather
// than enumerated by hand: source and target bounds with their neighbours, the
// nearest floats around bounds a float cannot hold, half-way points, zeros of
// both signs, infinities and NaNs. Suites round-trip through YAML so golden
// tables can be kept next to the code that checks them.
package boundary
