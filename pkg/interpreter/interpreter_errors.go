package interpreter

import (
	"errors"
	"fmt"

	"skibidi/interpreter-go/pkg/ast"
	"skibidi/interpreter-go/pkg/runtime"
)

// FatalError aborts the whole run. The only source today is reading a
// variable that was never assigned.
type FatalError struct {
	Cause error
	Span  ast.Span
}

func (e *FatalError) Error() string {
	if e.Cause == nil {
		return "fatal error"
	}
	return e.Cause.Error()
}

func (e *FatalError) Unwrap() error { return e.Cause }

// EvaluationError is recoverable: under RecoverWithDefault it is reported and
// the offending expression yields 0.
type EvaluationError struct {
	Message string
	Node    ast.Node
}

func (e *EvaluationError) Error() string {
	return e.Message
}

// ArithmeticError reports division or modulo by zero.
type ArithmeticError struct {
	Operator ast.BinaryOperator
	Span     ast.Span
}

func (e *ArithmeticError) Error() string {
	if e.Operator == ast.BinaryOperatorMod {
		return "modulo by zero"
	}
	return "division by zero"
}

// BreakOutsideSwitchError reports a break that no switch consumed.
type BreakOutsideSwitchError struct {
	Span ast.Span
}

func (e *BreakOutsideSwitchError) Error() string {
	return "break outside switch"
}

// StoreError reports an assignment the symbol table refused.
type StoreError struct {
	Name string
	Err  error
	Span ast.Span
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsFatal reports whether err stops the run under every recovery policy.
func IsFatal(err error) bool {
	var fatal *FatalError
	var arith *ArithmeticError
	var brk *BreakOutsideSwitchError
	return errors.As(err, &fatal) || errors.As(err, &arith) || errors.As(err, &brk)
}

func errorSpan(err error) ast.Span {
	var (
		fatal *FatalError
		eval  *EvaluationError
		arith *ArithmeticError
		brk   *BreakOutsideSwitchError
		store *StoreError
	)
	switch {
	case errors.As(err, &fatal):
		return fatal.Span
	case errors.As(err, &eval):
		if eval.Node != nil {
			return eval.Node.Span()
		}
	case errors.As(err, &arith):
		return arith.Span
	case errors.As(err, &brk):
		return brk.Span
	case errors.As(err, &store):
		return store.Span
	}
	return ast.Span{}
}

func undefinedVariable(err error, node ast.Node) error {
	var undef *runtime.UndefinedVariableError
	if errors.As(err, &undef) {
		return &FatalError{Cause: undef, Span: node.Span()}
	}
	return fmt.Errorf("lookup failed: %w", err)
}
