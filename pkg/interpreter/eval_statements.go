package interpreter

import (
	"fmt"
	"io"
	"strconv"

	"fortio.org/log"

	"skibidi/interpreter-go/pkg/ast"
)

func (i *Interpreter) executeStatement(node ast.Statement) (Completion, error) {
	switch n := node.(type) {
	case nil:
		return Completed, nil
	case ast.Expression:
		if _, err := i.evaluateExpression(n); err != nil {
			return Completed, err
		}
		return Completed, nil
	case *ast.ForStatement:
		return i.executeForStatement(n)
	case *ast.IfStatement:
		return i.executeIfStatement(n)
	case *ast.PrintStatement:
		return Completed, i.emit(i.stdout, n.Argument)
	case *ast.ErrorStatement:
		return Completed, i.emit(i.stderr, n.Argument)
	case *ast.StatementList:
		return i.executeStatementList(n)
	case *ast.SwitchStatement:
		return i.executeSwitchStatement(n)
	case *ast.BreakStatement:
		i.lastBreak = n.Span()
		return BreakRequested, nil
	case *ast.Program:
		log.LogVf("program %s", n.Name)
		return i.executeStatementList(n.Body)
	default:
		err := i.recoverable(&EvaluationError{Message: fmt.Sprintf("Unknown statement type %s", n.NodeType()), Node: n}, SeverityError)
		return Completed, err
	}
}

// executeStatementList runs the statements in source order. Lists that were
// built prepend-style are normalized on first execution; normalization is a
// no-op from then on, so re-executing a loop body never reorders it.
func (i *Interpreter) executeStatementList(list *ast.StatementList) (Completion, error) {
	if list == nil {
		return Completed, nil
	}
	list.Normalize()
	for _, stmt := range list.Statements {
		completion, err := i.executeStatement(stmt)
		if err != nil {
			return Completed, err
		}
		if completion == BreakRequested {
			return BreakRequested, nil
		}
	}
	return Completed, nil
}

func (i *Interpreter) executeIfStatement(stmt *ast.IfStatement) (Completion, error) {
	cond, err := i.evaluateExpression(stmt.Condition)
	if err != nil {
		return Completed, err
	}
	if cond != 0 {
		log.LogVf("if: condition true, taking then branch")
		return i.executeStatement(stmt.Then)
	}
	if stmt.Else != nil {
		log.LogVf("if: condition false, taking else branch")
		return i.executeStatement(stmt.Else)
	}
	return Completed, nil
}

// executeForStatement has no break of its own: a break in the body belongs
// to the enclosing switch, so it ends the loop and keeps travelling up.
func (i *Interpreter) executeForStatement(loop *ast.ForStatement) (Completion, error) {
	if _, err := i.evaluateExpression(loop.Init); err != nil {
		return Completed, err
	}
	for {
		cond, err := i.evaluateExpression(loop.Condition)
		if err != nil {
			return Completed, err
		}
		if cond == 0 {
			return Completed, nil
		}
		completion, err := i.executeStatement(loop.Body)
		if err != nil {
			return Completed, err
		}
		if completion == BreakRequested {
			return BreakRequested, nil
		}
		if _, err := i.evaluateExpression(loop.Increment); err != nil {
			return Completed, err
		}
	}
}

// emit writes a print payload: string literals verbatim, anything else as a
// decimal integer.
func (i *Interpreter) emit(w io.Writer, arg ast.Expression) error {
	var line string
	if lit, ok := arg.(*ast.StringLiteral); ok {
		line = lit.Value
	} else {
		val, err := i.evaluateExpression(arg)
		if err != nil {
			return err
		}
		line = strconv.FormatInt(val, 10)
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
