package conversion

import (
	"fmt"

	"conversion-oracle/internal/common"
	"conversion-oracle/primitive"
)

// Policy names the conversion operation that raised a fault.
type Policy int

const (
	PolicyChecked Policy = iota
	PolicyTruncating
	PolicyTrapping
)

func (p Policy) String() string {
	switch p {
	case PolicyChecked:
		return "checked"
	case PolicyTruncating:
		return "truncating"
	case PolicyTrapping:
		return "trapping"
	default:
		return common.UnknownStr
	}
}

// Fault is a violated conversion precondition: a programming error, not an
// outcome to branch on.
type Fault struct {
	Source Value
	Target primitive.KindEnum
	Policy Policy
	Reason error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s conversion of %s to %s: %v", f.Policy, f.Source.GoString(), f.Target.Name(), f.Reason)
}

func (f *Fault) Unwrap() error {
	return f.Reason
}

// FaultHandler receives every fault. It is expected not to return; if it does,
// the faulting operation yields the zero value of the target kind.
type FaultHandler func(*Fault)

// PanicOnFault is the default FaultHandler.
func PanicOnFault(f *Fault) {
	panic(f)
}
