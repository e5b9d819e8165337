package boundary

import (
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"conversion-oracle/conversion"
	"conversion-oracle/internal/diagnostic"
	"conversion-oracle/primitive"
)

const (
	CodeInvalidLiteral    = "invalid-literal"
	CodeUnexpectedOutcome = "unexpected-outcome"
	CodeUnexpectedValue   = "unexpected-value"
	CodeUnexpectedFault   = "unexpected-fault"
	CodeMissingFault      = "missing-fault"
	CodePointerBits       = "pointer-bits"
	CodeVerified          = "verified"
)

// recorder captures the fault of the last call instead of trapping. One per
// goroutine. Expected faults go to the caller's logger at debug level.
type recorder struct {
	last   *conversion.Fault
	logger *slog.Logger
}

func (r *recorder) handle(f *conversion.Fault) {
	r.last = f
	r.logger.Debug("fault recorded",
		"policy", f.Policy.String(),
		"source_kind", f.Source.Kind().Name(),
		"source", f.Source.String(),
		"target", f.Target.Name(),
		"error", f.Reason,
	)
}

func (r *recorder) run(fn func() conversion.Value) (conversion.Value, *conversion.Fault) {
	r.last = nil
	v := fn()
	return v, r.last
}

// Verify runs every case of the suite through the checked, truncating and
// trapping policies of o and reports each disagreement. Faults are recorded,
// not raised. Sections are verified concurrently, findings keep section order.
//
// A suite generated for another pointer width yields one error, and its Int
// and UInt cases are skipped.
func Verify(o *conversion.Oracle, s *Suite) diagnostic.Diagnostics {
	perSection := make([]diagnostic.Diagnostics, len(s.Sections))
	counts := make([]int, len(s.Sections))

	var diags diagnostic.Diagnostics
	hostBits := primitive.KindInt.Bits()
	foreign := s.PointerBits != 0 && s.PointerBits != hostBits
	if foreign {
		diags.AddError(CodePointerBits,
			fmt.Sprintf("suite has %d-bit Int and UInt, host has %d-bit; skipping them", s.PointerBits, hostBits),
			s.Name, "")
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range s.Sections {
		if foreign && (pointerSized(s.Target) || pointerSized(s.Sections[i].Source)) {
			continue
		}

		g.Go(func() error {
			counts[i] = verifySection(o, s.Target, &s.Sections[i], &perSection[i])
			return nil
		})
	}

	_ = g.Wait()

	total := 0
	for i := range perSection {
		diags.Merge(perSection[i])
		total += counts[i]
	}

	diags.AddInfo(CodeVerified, fmt.Sprintf("%d cases", total), s.Name, "")

	return diags
}

func verifySection(o *conversion.Oracle, target primitive.KindEnum, section *Section,
	diags *diagnostic.Diagnostics) int {
	rec := recorder{logger: o.Logger()}
	oracle := o.With(
		conversion.WithFaultHandler(rec.handle),
		conversion.WithLogger(slog.New(slog.DiscardHandler)),
	)

	pair := section.Source.Name() + " -> " + target.Name()
	total := 0

	for _, group := range section.Groups {
		for i, c := range group.Cases {
			total++
			ref := fmt.Sprintf("%s[%d] %s", group.Class, i, c.Source)

			source, err := conversion.Parse(section.Source, c.Source)
			if err != nil {
				diags.AddError(CodeInvalidLiteral, err.Error(), pair, ref)
				continue
			}

			var expected, truncated conversion.Value
			if c.Expected != "" {
				if expected, err = conversion.Parse(target, c.Expected); err != nil {
					diags.AddError(CodeInvalidLiteral, err.Error(), pair, ref)
					continue
				}
			}

			if c.Truncated != "" {
				if truncated, err = conversion.Parse(target, c.Truncated); err != nil {
					diags.AddError(CodeInvalidLiteral, err.Error(), pair, ref)
					continue
				}
			}

			switch group.Class {
			case NeverFails:
				if out := oracle.Checked(source, target); !sameOutcome(out, expected) {
					diags.AddError(CodeUnexpectedOutcome,
						fmt.Sprintf("checked: got %s, want Representable(%s)", out, expected), pair, ref)
				}

				got, fault := rec.run(func() conversion.Value { return oracle.Truncating(source, target) })
				expectValue(diags, "truncating", got, fault, expected, pair, ref)
			case AlwaysFails:
				if out := oracle.Checked(source, target); out.IsRepresentable() {
					diags.AddError(CodeUnexpectedOutcome,
						fmt.Sprintf("checked: got %s, want NotRepresentable", out), pair, ref)
				}

				got, fault := rec.run(func() conversion.Value { return oracle.Truncating(source, target) })
				if source.IsInteger() {
					if truncated.IsValid() {
						expectValue(diags, "truncating", got, fault, truncated, pair, ref)
					}
				} else if fault == nil {
					diags.AddError(CodeMissingFault, "truncating: got "+got.String()+", want fault", pair, ref)
				}
			case NeverTraps:
				got, fault := rec.run(func() conversion.Value { return oracle.Trapping(source, target) })
				expectValue(diags, "trapping", got, fault, expected, pair, ref)
			case AlwaysTraps:
				got, fault := rec.run(func() conversion.Value { return oracle.Trapping(source, target) })
				if fault == nil {
					diags.AddError(CodeMissingFault, "trapping: got "+got.String()+", want fault", pair, ref)
				}
			default:
				diags.AddWarning(CodeInvalidLiteral, "unknown case class "+group.Class.String(), pair, ref)
			}
		}
	}

	return total
}

func pointerSized(k primitive.KindEnum) bool {
	return k == primitive.KindInt || k == primitive.KindUint
}

func sameOutcome(out conversion.Outcome, expected conversion.Value) bool {
	got, ok := out.Value()
	return ok && got.Equal(expected)
}

func expectValue(diags *diagnostic.Diagnostics, policy string, got conversion.Value, fault *conversion.Fault,
	expected conversion.Value, pair, ref string) {
	if fault != nil {
		diags.AddError(CodeUnexpectedFault, policy+": "+fault.Error(), pair, ref)
		return
	}

	if !got.Equal(expected) {
		diags.AddError(CodeUnexpectedValue,
			fmt.Sprintf("%s: got %s, want %s", policy, got, expected), pair, ref)
	}
}
