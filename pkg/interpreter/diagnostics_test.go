package interpreter

import (
	"errors"
	"fmt"
	"testing"

	"skibidi/interpreter-go/pkg/ast"
	"skibidi/interpreter-go/pkg/runtime"
)

func TestDiagnosticString(t *testing.T) {
	cases := []struct {
		diag Diagnostic
		want string
	}{
		{Diagnostic{Severity: SeverityError, Message: "Undefined variable 'x'", Span: ast.Span{Line: 12, Column: 3}}, "Error: Undefined variable 'x' at line 12"},
		{Diagnostic{Severity: SeverityWarning, Message: "symbol table full"}, "Warning: symbol table full"},
		{Diagnostic{Message: " padded \n"}, "Error: padded"},
	}
	for _, tc := range cases {
		if got := tc.diag.String(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}

func TestDiagnosticFromErrorCarriesSpan(t *testing.T) {
	node := ast.WithSpan(ast.ID("y"), 7, 2)
	err := undefinedVariable(&runtime.UndefinedVariableError{Name: "y"}, node)
	diag := DiagnosticFromError(fmt.Errorf("running: %w", err))
	if diag.Span.Line != 7 {
		t.Fatalf("expected line 7, got %d", diag.Span.Line)
	}
	if diag.Severity != SeverityError {
		t.Fatalf("expected error severity, got %s", diag.Severity)
	}

	plain := DiagnosticFromError(errors.New("boom"))
	if plain.Span.Known() {
		t.Fatalf("plain errors carry no location")
	}
	if plain.String() != "Error: boom" {
		t.Fatalf("unexpected rendering %q", plain.String())
	}
}

func TestIsFatalClassification(t *testing.T) {
	cases := []struct {
		err   error
		fatal bool
	}{
		{&FatalError{Cause: errors.New("x")}, true},
		{&ArithmeticError{Operator: ast.BinaryOperatorDiv}, true},
		{fmt.Errorf("wrapped: %w", &BreakOutsideSwitchError{}), true},
		{&EvaluationError{Message: "nope"}, false},
		{&StoreError{Name: "a", Err: runtime.ErrSymbolTableFull}, false},
		{nil, false},
	}
	for idx, tc := range cases {
		if got := IsFatal(tc.err); got != tc.fatal {
			t.Fatalf("case %d: IsFatal(%v) = %v", idx, tc.err, got)
		}
	}
}

func TestExitCodeFromError(t *testing.T) {
	if code := ExitCodeFromError(nil); code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if code := ExitCodeFromError(&FatalError{Cause: errors.New("x")}); code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
}
