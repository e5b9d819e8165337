package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"conversion-oracle/internal/common"
)

// Diagnostics holds all findings of a verification run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Pair identifies the conversion, e.g. "Int8 -> UInt8" (if any).
	Pair string
	// Case identifies the table entry, e.g. "AlwaysFails[1] -1" (if any).
	Case string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func newDiagnostic(severity Severity, code, message, pair, caseRef string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Pair:     pair,
		Case:     caseRef,
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, pair, caseRef string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, pair, caseRef))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, pair, caseRef string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, pair, caseRef))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, pair, caseRef string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, pair, caseRef))
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return !common.IsEmpty(d.Errors)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pair != "" {
		prefix = append(prefix, "["+d.Pair+"]")
	}

	if d.Case != "" {
		prefix = append(prefix, d.Case)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
