package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reflectkit/introspector/internal/common"
)

// Codes emitted by the introspection packages.
const (
	CodeFieldUnreadable = "field-unreadable"
	CodeFieldSkipped    = "field-skipped"
	CodeCycle           = "cycle"
	CodeMaxDepth        = "max-depth"
)

// Diagnostics holds all diagnostic information collected during a walk.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName identifies the struct type the finding relates to (if any).
	TypeName string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
	// Cause is the underlying error, when there is one.
	Cause error
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

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code string, cause error, typeName, fieldPath string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, cause, typeName, fieldPath))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code string, cause error, typeName, fieldPath string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, cause, typeName, fieldPath))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, fieldPath string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  SeverityInfo,
		Code:      code,
		Message:   message,
		TypeName:  typeName,
		FieldPath: fieldPath,
	})
}

func newDiagnostic(severity Severity, code string, cause error, typeName, fieldPath string) Diagnostic {
	d := Diagnostic{
		Severity:  severity,
		Code:      code,
		TypeName:  typeName,
		FieldPath: fieldPath,
		Cause:     cause,
	}
	if cause != nil {
		d.Message = cause.Error()
	}

	return d
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsEmpty returns true if nothing was recorded at any severity.
func (d *Diagnostics) IsEmpty() bool {
	return len(d.Errors) == 0 && len(d.Warnings) == 0 && len(d.Infos) == 0
}

// ByCode returns every diagnostic carrying code, errors first.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, bucket := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range bucket {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// FieldPaths returns the field paths of every diagnostic carrying code.
func (d *Diagnostics) FieldPaths(code string) []string {
	var paths []string
	for _, diag := range d.ByCode(code) {
		paths = append(paths, diag.FieldPath)
	}

	return paths
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, e)
	}

	return errors.Join(errs...)
}

// Error makes a Diagnostic usable as an error; it unwraps to its cause.
func (d Diagnostic) Error() string {
	return d.String()
}

func (d Diagnostic) Unwrap() error {
	return d.Cause
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypeName != "" {
		prefix = append(prefix, "["+d.TypeName+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
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
