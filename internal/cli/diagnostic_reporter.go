package cli

import (
	stderrors "errors"
	"sort"

	"github.com/Ash-L2L/l2l-openapi/internal/analyzer"
	"github.com/Ash-L2L/l2l-openapi/internal/errors"
	"github.com/Ash-L2L/l2l-openapi/internal/utils"
)

// DiagnosticReporter turns generator errors into compiler style output
type DiagnosticReporter struct {
	diagnostics *utils.DiagnosticSystem
	verbose     bool
}

// NewDiagnosticReporter creates a reporter writing through diagnostics
func NewDiagnosticReporter(diagnostics *utils.DiagnosticSystem, verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		diagnostics: diagnostics,
		verbose:     verbose,
	}
}

// ReportWarning reports a non fatal problem
func (r *DiagnosticReporter) ReportWarning(format string, args ...interface{}) {
	r.diagnostics.Warn(format, args...)
}

// ReportError reports err, expanding aggregates into one line per located
// error. It returns the number of diagnostics printed.
func (r *DiagnosticReporter) ReportError(err error) int {
	if err == nil {
		return 0
	}

	if multi, ok := err.(*errors.MultipleErrors); ok {
		count := 0
		for _, inner := range multi.Errors {
			count += r.ReportError(inner)
		}
		return count
	}

	var analysis *analyzer.Error
	if stderrors.As(err, &analysis) {
		diags := analysis.Diagnostics()
		for _, diag := range diags {
			r.diagnostics.Located(diag)
		}
		r.diagnostics.Error("%s", analysis.Summary())
		return len(diags)
	}

	r.diagnostics.Located(err)
	var base *errors.BaseError
	if r.verbose && stderrors.As(err, &base) {
		r.printDetails(base)
	}
	return 1
}

func (r *DiagnosticReporter) printDetails(base *errors.BaseError) {
	r.diagnostics.Indent()
	defer r.diagnostics.Unindent()

	r.diagnostics.Verbose("kind: %s", base.Code)
	if len(base.ContextData) > 0 {
		keys := make([]string, 0, len(base.ContextData))
		for key := range base.ContextData {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			r.diagnostics.Verbose("%s: %v", key, base.ContextData[key])
		}
	}
	for _, hint := range base.Suggestions() {
		r.diagnostics.Verbose("hint: %s", hint)
	}
}
