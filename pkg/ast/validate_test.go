package ast

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAcceptsWellFormedProgram(t *testing.T) {
	prog := Prog("main",
		Decl("i"),
		For(
			Assign("i", Int(0)),
			Bin(BinaryOperatorLt, ID("i"), Int(3)),
			Assign("i", Bin(BinaryOperatorAdd, ID("i"), Int(1))),
			Print(ID("i")),
		),
		Switch(ID("i"),
			Case(Int(3), Print(Str("three")), Brk()),
			Default(Eprint(Str("other"))),
		),
	)
	if err := Validate(prog); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateReportsIssues(t *testing.T) {
	prog := Prog("main",
		Assign("x", Str("oops")),
		Bin(BinaryOperator("**"), Int(1), Int(2)),
		NewUnaryExpression(UnaryOperator("!"), Int(1)),
		For(Int(0), Int(0), Int(0), Brk()),
		Print(ID("")),
		NewIfStatement(nil, Print(Int(1)), nil),
	)
	err := Validate(prog)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{
		"root.body.statements[0].value: string literal may only be printed",
		`root.body.statements[1]: unknown binary operator "**"`,
		`root.body.statements[2]: unknown unary operator "!"`,
		"root.body.statements[3].body: break outside switch",
		"root.body.statements[4].argument: identifier name must not be empty",
		"root.body.statements[5].condition: missing node",
	}
	if len(verr.Issues) != len(want) {
		t.Fatalf("expected %d issues, got %d:\n%s", len(want), len(verr.Issues), strings.Join(verr.Issues, "\n"))
	}
	for i := range want {
		if verr.Issues[i] != want[i] {
			t.Fatalf("issue %d = %q, want %q", i, verr.Issues[i], want[i])
		}
	}
}

func TestValidateBreakInsideNestedSwitch(t *testing.T) {
	stmt := Switch(Int(1),
		Case(Int(1),
			Switch(Int(2), Case(Int(2), Brk())),
			Brk(),
		),
	)
	if err := Validate(stmt); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if err := Validate(List(stmt, Brk())); err == nil {
		t.Fatalf("expected trailing break to be rejected")
	}
}

func TestValidateIssueIncludesLine(t *testing.T) {
	err := Validate(WithSpan(Brk(), 12, 1))
	if err == nil || !strings.Contains(err.Error(), "(line 12)") {
		t.Fatalf("expected line in error, got %v", err)
	}
}
