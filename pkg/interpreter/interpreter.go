package interpreter

import (
	"fmt"
	"io"
	"os"

	"fortio.org/log"

	"skibidi/interpreter-go/pkg/ast"
	"skibidi/interpreter-go/pkg/runtime"
)

// RecoveryPolicy decides what happens to recoverable evaluation errors.
type RecoveryPolicy int

const (
	// RecoverWithDefault reports the error and continues with the value 0.
	RecoverWithDefault RecoveryPolicy = iota
	// Escalate aborts the run with the error.
	Escalate
)

func (p RecoveryPolicy) String() string {
	if p == Escalate {
		return "strict"
	}
	return "continue"
}

// SwitchMode selects how default cases behave.
type SwitchMode int

const (
	// SwitchFaithful runs a default body whenever traversal reaches it and
	// then stops, even if no earlier case matched.
	SwitchFaithful SwitchMode = iota
	// SwitchConventional enters the default only when no case matched, and
	// lets it fall through to later cases like any other case.
	SwitchConventional
)

func (m SwitchMode) String() string {
	if m == SwitchConventional {
		return "conventional"
	}
	return "faithful"
}

// Options configures an interpreter.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Reporter receives diagnostics; defaults to plain lines on Stderr.
	Reporter Reporter
	// SymbolCapacity bounds the number of distinct variables; <= 0 is unbounded.
	SymbolCapacity int
	Recovery       RecoveryPolicy
	Switch         SwitchMode
}

// DefaultOptions: 100 variables, recoverable errors continue with 0, faithful
// switch semantics, process stdio.
func DefaultOptions() Options {
	return Options{
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		SymbolCapacity: runtime.DefaultCapacity,
		Recovery:       RecoverWithDefault,
		Switch:         SwitchFaithful,
	}
}

// Interpreter executes one tree against a global symbol table. It is not
// safe for concurrent use.
type Interpreter struct {
	symbols  *runtime.SymbolTable
	stdout   io.Writer
	stderr   io.Writer
	reporter Reporter
	recovery RecoveryPolicy
	switches SwitchMode

	lastBreak ast.Span
}

// New returns an interpreter with an empty symbol table.
func New(opts Options) *Interpreter {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Reporter == nil {
		opts.Reporter = NewWriterReporter(opts.Stderr)
	}
	return &Interpreter{
		symbols:  runtime.NewSymbolTable(opts.SymbolCapacity),
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		reporter: opts.Reporter,
		recovery: opts.Recovery,
		switches: opts.Switch,
	}
}

// Symbols exposes the global symbol table.
func (i *Interpreter) Symbols() *runtime.SymbolTable {
	return i.symbols
}

// Run executes root once. Errors that stop the run are reported to the
// diagnostic sink before they are returned.
func (i *Interpreter) Run(root ast.Node) error {
	err := i.run(root)
	if err != nil {
		i.reporter.Report(DiagnosticFromError(err))
	}
	return err
}

func (i *Interpreter) run(root ast.Node) error {
	if root == nil {
		return nil
	}
	stmt, ok := root.(ast.Statement)
	if !ok {
		return fmt.Errorf("cannot execute %s node", root.NodeType())
	}
	log.LogVf("run %s", root.NodeType())
	completion, err := i.Execute(stmt)
	if err != nil {
		return err
	}
	if completion == BreakRequested {
		return &BreakOutsideSwitchError{Span: i.lastBreak}
	}
	return nil
}

// Evaluate reduces an expression to an integer.
func (i *Interpreter) Evaluate(expr ast.Expression) (int64, error) {
	return i.evaluateExpression(expr)
}

// Execute runs a single statement and reports how it completed.
func (i *Interpreter) Execute(stmt ast.Statement) (Completion, error) {
	return i.executeStatement(stmt)
}

// recoverable applies the recovery policy: nil means the caller continues
// with its default value.
func (i *Interpreter) recoverable(err error, severity Severity) error {
	if i.recovery == Escalate {
		return err
	}
	log.Infof("recovered: %v", err)
	diag := DiagnosticFromError(err)
	diag.Severity = severity
	i.reporter.Report(diag)
	return nil
}
