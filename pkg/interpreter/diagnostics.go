package interpreter

import (
	"fmt"
	"io"
	"strings"

	"skibidi/interpreter-go/pkg/ast"
)

// Severity captures diagnostic levels.
type Severity string

const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
)

// Diagnostic is a message the interpreter writes to the diagnostic sink.
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     ast.Span
}

// String renders the diagnostic as `Error: <message> at line <N>`, leaving
// out the location when it is unknown.
func (d Diagnostic) String() string {
	severity := d.Severity
	if severity == "" {
		severity = SeverityError
	}
	message := strings.TrimSpace(d.Message)
	if d.Span.Known() {
		return fmt.Sprintf("%s: %s at line %d", severity, message, d.Span.Line)
	}
	return fmt.Sprintf("%s: %s", severity, message)
}

// DiagnosticFromError builds an error diagnostic, picking up the source line
// from the error when it carries one.
func DiagnosticFromError(err error) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: err.Error(), Span: errorSpan(err)}
}

// Reporter receives diagnostics as they happen.
type Reporter interface {
	Report(diag Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(diag Diagnostic) { f(diag) }

type writerReporter struct {
	w io.Writer
}

// NewWriterReporter writes one plain line per diagnostic to w.
func NewWriterReporter(w io.Writer) Reporter {
	return &writerReporter{w: w}
}

func (r *writerReporter) Report(diag Diagnostic) {
	fmt.Fprintln(r.w, diag.String())
}
