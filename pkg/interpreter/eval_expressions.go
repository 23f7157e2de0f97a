package interpreter

import (
	"errors"
	"fmt"

	"fortio.org/log"

	"skibidi/interpreter-go/pkg/ast"
	"skibidi/interpreter-go/pkg/runtime"
)

// evaluateExpression reduces node to an integer. Recoverable failures have
// already been reported when it returns a nil error with value 0.
func (i *Interpreter) evaluateExpression(node ast.Expression) (int64, error) {
	switch n := node.(type) {
	case nil:
		return 0, nil
	case *ast.IntegerLiteral:
		return n.Value, nil
	case *ast.Identifier:
		val, err := i.symbols.Get(n.Name)
		if err != nil {
			return 0, undefinedVariable(err, n)
		}
		return val, nil
	case *ast.AssignmentExpression:
		return i.evaluateAssignment(n)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n)
	case *ast.StringLiteral:
		return 0, i.recoverable(&EvaluationError{Message: "Cannot evaluate a string literal as an integer", Node: n}, SeverityError)
	default:
		return 0, i.recoverable(&EvaluationError{Message: fmt.Sprintf("Unknown expression type %s", n.NodeType()), Node: n}, SeverityError)
	}
}

// evaluateAssignment stores the right-hand side and yields it. The value is
// yielded even when the table refuses a new name.
func (i *Interpreter) evaluateAssignment(assign *ast.AssignmentExpression) (int64, error) {
	val, err := i.evaluateExpression(assign.Value)
	if err != nil {
		return 0, err
	}
	if assign.Target == nil || assign.Target.Name == "" {
		return val, i.recoverable(&EvaluationError{Message: "Assignment target must be an identifier", Node: assign}, SeverityError)
	}
	log.LogVf("assign %s = %d", assign.Target.Name, val)
	if err := i.symbols.Set(assign.Target.Name, val); err != nil {
		if !errors.Is(err, runtime.ErrSymbolTableFull) {
			return 0, err
		}
		storeErr := &StoreError{Name: assign.Target.Name, Err: err, Span: assign.Span()}
		if rerr := i.recoverable(storeErr, SeverityWarning); rerr != nil {
			return 0, rerr
		}
	}
	return val, nil
}

// evaluateBinaryExpression always evaluates both operands, left first. The
// logical operators do not short-circuit.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression) (int64, error) {
	left, err := i.evaluateExpression(expr.Left)
	if err != nil {
		return 0, err
	}
	right, err := i.evaluateExpression(expr.Right)
	if err != nil {
		return 0, err
	}
	switch expr.Operator {
	case ast.BinaryOperatorAdd:
		return left + right, nil
	case ast.BinaryOperatorSub:
		return left - right, nil
	case ast.BinaryOperatorMul:
		return left * right, nil
	case ast.BinaryOperatorDiv:
		if right == 0 {
			return 0, &ArithmeticError{Operator: expr.Operator, Span: expr.Span()}
		}
		return left / right, nil
	case ast.BinaryOperatorMod:
		if right == 0 {
			return 0, &ArithmeticError{Operator: expr.Operator, Span: expr.Span()}
		}
		return left % right, nil
	case ast.BinaryOperatorLt:
		return boolToInt(left < right), nil
	case ast.BinaryOperatorGt:
		return boolToInt(left > right), nil
	case ast.BinaryOperatorLe:
		return boolToInt(left <= right), nil
	case ast.BinaryOperatorGe:
		return boolToInt(left >= right), nil
	case ast.BinaryOperatorEq:
		return boolToInt(left == right), nil
	case ast.BinaryOperatorNe:
		return boolToInt(left != right), nil
	case ast.BinaryOperatorAnd:
		return boolToInt(left != 0 && right != 0), nil
	case ast.BinaryOperatorOr:
		return boolToInt(left != 0 || right != 0), nil
	default:
		return 0, i.recoverable(&EvaluationError{Message: fmt.Sprintf("Unknown operator %q", expr.Operator), Node: expr}, SeverityError)
	}
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression) (int64, error) {
	operand, err := i.evaluateExpression(expr.Operand)
	if err != nil {
		return 0, err
	}
	switch expr.Operator {
	case ast.UnaryOperatorNegate:
		return -operand, nil
	default:
		return 0, i.recoverable(&EvaluationError{Message: fmt.Sprintf("Unknown unary operator %q", expr.Operator), Node: expr}, SeverityError)
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
