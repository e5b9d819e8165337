package conversion

import (
	"conversion-oracle/primitive"
)

// Request is a single conversion question.
type Request struct {
	Source Value
	Target primitive.KindEnum
}

func (r Request) String() string {
	return r.Source.GoString() + " -> " + r.Target.Name()
}

// Outcome is either Representable(value) or NotRepresentable(reason), never both.
type Outcome struct {
	value  Value
	reason error
	ok     bool
}

func representable(v Value) Outcome {
	return Outcome{value: v, ok: true}
}

func notRepresentable(reason error) Outcome {
	return Outcome{reason: reason}
}

func (o Outcome) IsRepresentable() bool { return o.ok }

// Value returns the converted value of a Representable outcome.
func (o Outcome) Value() (Value, bool) {
	return o.value, o.ok
}

// Reason explains a NotRepresentable outcome; nil when representable.
func (o Outcome) Reason() error {
	return o.reason
}

func (o Outcome) String() string {
	if o.ok {
		return "Representable(" + o.value.String() + ")"
	}

	if o.reason == nil {
		return "NotRepresentable"
	}

	return "NotRepresentable(" + o.reason.Error() + ")"
}
