package conversion

import (
	"fmt"
	"log/slog"
	"math/big"

	"conversion-oracle/primitive"
)

// Oracle performs conversions. It holds no mutable state and is safe for
// concurrent use.
type Oracle struct {
	onFault FaultHandler
	logger  *slog.Logger
}

type Option func(*Oracle)

// WithFaultHandler replaces PanicOnFault.
func WithFaultHandler(handler FaultHandler) Option {
	return func(o *Oracle) {
		if handler != nil {
			o.onFault = handler
		}
	}
}

// WithLogger makes the oracle log every fault before handling it.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Oracle) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func New(opts ...Option) *Oracle {
	o := &Oracle{
		onFault: PanicOnFault,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// With returns a copy of the oracle with additional options applied.
func (o *Oracle) With(opts ...Option) *Oracle {
	clone := *o
	for _, opt := range opts {
		opt(&clone)
	}

	return &clone
}

// Logger returns the logger faults are reported to.
func (o *Oracle) Logger() *slog.Logger { return o.logger }

var defaultOracle = New()

// Default returns the package oracle: faults panic, nothing is logged.
func Default() *Oracle { return defaultOracle }

func Checked(source Value, target primitive.KindEnum) Outcome {
	return defaultOracle.Checked(source, target)
}

func Truncating(source Value, target primitive.KindEnum) Value {
	return defaultOracle.Truncating(source, target)
}

func Trapping(source Value, target primitive.KindEnum) Value {
	return defaultOracle.Trapping(source, target)
}

// Do answers a request with the checked policy.
func (o *Oracle) Do(req Request) Outcome {
	return o.Checked(req.Source, req.Target)
}

// Checked reports whether source is exactly representable in the integer kind
// target. It never faults.
func (o *Oracle) Checked(source Value, target primitive.KindEnum) Outcome {
	if !target.IsInteger() {
		return notRepresentable(unsupportedTarget(target))
	}

	if source.IsInteger() && primitive.IsSafe(source.kind, target) {
		return representable(newInteger(target, source.BigInt()))
	}

	n, err := exactInteger(source)
	if err != nil {
		return notRepresentable(err)
	}

	if !target.Contains(n) {
		return notRepresentable(outOfRange(n, target))
	}

	return representable(newInteger(target, n))
}

// Truncating wraps integer sources to the width of target. Float sources must
// be exactly representable, anything else faults.
func (o *Oracle) Truncating(source Value, target primitive.KindEnum) Value {
	if !target.IsInteger() {
		return o.fault(source, target, PolicyTruncating, unsupportedTarget(target))
	}

	if source.IsInteger() {
		return newInteger(target, target.Wrap(source.integer))
	}

	n, err := exactInteger(source)
	if err == nil && !target.Contains(n) {
		err = outOfRange(n, target)
	}

	if err != nil {
		return o.fault(source, target, PolicyTruncating, err)
	}

	return newInteger(target, n)
}

// Trapping converts integer sources that fit target and truncates finite float
// sources toward zero when the result fits. Anything else faults.
func (o *Oracle) Trapping(source Value, target primitive.KindEnum) Value {
	if !target.IsInteger() {
		return o.fault(source, target, PolicyTrapping, unsupportedTarget(target))
	}

	n, err := truncatedInteger(source)
	if err == nil && !target.Contains(n) {
		err = outOfRange(n, target)
	}

	if err != nil {
		return o.fault(source, target, PolicyTrapping, err)
	}

	return newInteger(target, n)
}

func (o *Oracle) fault(source Value, target primitive.KindEnum, policy Policy, reason error) Value {
	f := &Fault{Source: source, Target: target, Policy: policy, Reason: reason}

	o.logger.Error("conversion fault",
		"policy", policy.String(),
		"source_kind", source.kind.Name(),
		"source", source.String(),
		"target", target.Name(),
		"error", reason,
	)
	o.onFault(f)

	return Zero(target)
}

// exactInteger returns the mathematical integer value of v, failing for NaNs,
// infinities and fractions. Negative zero yields zero.
func exactInteger(v Value) (*big.Int, error) {
	switch {
	case v.integer != nil:
		return new(big.Int).Set(v.integer), nil
	case !v.IsFloat():
		return nil, fmt.Errorf("%w: invalid source value", ErrUnsupportedKind)
	case !v.IsFinite():
		return nil, fmt.Errorf("%w: %s", ErrNotFinite, v)
	case !v.float.IsInt():
		return nil, fmt.Errorf("%w: %s", ErrNotIntegral, v)
	}

	n, _ := v.float.Int(nil)
	return n, nil
}

// truncatedInteger drops the fractional part of a finite float.
func truncatedInteger(v Value) (*big.Int, error) {
	switch {
	case v.integer != nil:
		return new(big.Int).Set(v.integer), nil
	case !v.IsFloat():
		return nil, fmt.Errorf("%w: invalid source value", ErrUnsupportedKind)
	case !v.IsFinite():
		return nil, fmt.Errorf("%w: %s", ErrNotFinite, v)
	}

	n, _ := v.float.Int(nil)
	return n, nil
}

func outOfRange(n *big.Int, target primitive.KindEnum) error {
	return fmt.Errorf("%w: %s not in [%s, %s] of %s", ErrOutOfRange, n, target.Min(), target.Max(), target.Name())
}

func unsupportedTarget(target primitive.KindEnum) error {
	return fmt.Errorf("%w: target %s is not an integer kind", ErrUnsupportedKind, target.Name())
}
