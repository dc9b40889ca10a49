package analyzer

import (
	"fmt"
	"strings"
)

// MethodErrors holds every error found while analyzing one method
type MethodErrors struct {
	Method string
	Errors []error
}

// Error implements the error interface
func (e *MethodErrors) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "\n")
}

// Unwrap returns the individual errors
func (e *MethodErrors) Unwrap() []error {
	return e.Errors
}

// Error is the aggregate analysis failure of one interface. It holds one
// entry per failing method.
type Error struct {
	Interface string
	Methods   []*MethodErrors
}

// Error implements the error interface
func (e *Error) Error() string {
	messages := make([]string, 0, len(e.Methods))
	for _, m := range e.Methods {
		messages = append(messages, m.Error())
	}
	return strings.Join(messages, "\n")
}

// Unwrap returns the per-method errors
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, len(e.Methods))
	for _, m := range e.Methods {
		errs = append(errs, m)
	}
	return errs
}

// Diagnostics flattens the aggregate into individual located errors
func (e *Error) Diagnostics() []error {
	var all []error
	for _, m := range e.Methods {
		all = append(all, m.Errors...)
	}
	return all
}

// Summary returns a one line description of the failure
func (e *Error) Summary() string {
	return fmt.Sprintf("%s: %d error(s) in %d method(s)", e.Interface, len(e.Diagnostics()), len(e.Methods))
}
