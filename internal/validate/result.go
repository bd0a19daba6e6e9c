// Package validate gates filesystem mutation behind independent checks on
// the project name, the target path, and the resolved flag combination.
// Checks collect every problem instead of stopping at the first one, so a
// single run reports the complete list.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for validation failures. Every ValidationError wraps the
// sentinel of its category, so errors.Is works on aggregated results.
var (
	// ErrInvalidName indicates the project name violates the naming grammar.
	ErrInvalidName = errors.New("validate: invalid project name")

	// ErrInvalidPath indicates the target path cannot be used.
	ErrInvalidPath = errors.New("validate: invalid target path")

	// ErrInvalidOptions indicates a fatally contradictory flag combination.
	ErrInvalidOptions = errors.New("validate: invalid options")
)

// ValidationError is one violated rule with the field it concerns and the
// offending value.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors aggregates every violation from a run into one error.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (es ValidationErrors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errs
}

// Result is the outcome of a single validation check. Errors are fatal and
// abort the run before any filesystem mutation; warnings are advisory.
type Result struct {
	Valid    bool
	Errors   ValidationErrors
	Warnings []string
}

// ok returns a passing result.
func ok() Result {
	return Result{Valid: true}
}

// fail records a fatal violation and marks the result invalid.
func (r *Result) fail(field string, value any, sentinel error, format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
		Wrapped: sentinel,
	})
}

// Merge aggregates results from independent checks: the merged result is
// valid only when every input is, and it carries every error and warning.
func Merge(results ...Result) Result {
	merged := Result{Valid: true}
	for _, r := range results {
		if !r.Valid {
			merged.Valid = false
		}
		merged.Errors = append(merged.Errors, r.Errors...)
		merged.Warnings = append(merged.Warnings, r.Warnings...)
	}
	return merged
}

// Err converts a failed result into one aggregated error listing every
// violation. Returns nil for a valid result. The aggregate matches each
// violated category sentinel under errors.Is.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return r.Errors
}
