package ast

import (
	"fmt"
	"strings"
)

// ValidationError aggregates structural problems found in a tree.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "ast: invalid tree"
	}
	var b strings.Builder
	b.WriteString("ast validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Validate checks the structural rules a finished tree must follow. It does
// not evaluate anything, so semantic problems such as undefined variables or
// division by zero are left to the interpreter.
func Validate(root Node) error {
	v := &validator{}
	v.node(root, "root", false)
	if len(v.issues) > 0 {
		return &ValidationError{Issues: v.issues}
	}
	return nil
}

type validator struct {
	issues      []string
	switchDepth int
}

func (v *validator) addf(node Node, path, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if node != nil && node.Span().Known() {
		msg = fmt.Sprintf("%s (line %d)", msg, node.Span().Line)
	}
	v.issues = append(v.issues, fmt.Sprintf("%s: %s", path, msg))
}

func (v *validator) required(node Node, path string) bool {
	if isNilNode(node) {
		v.addf(nil, path, "missing node")
		return false
	}
	return true
}

// node walks n. printArg marks the direct argument of a print statement, the
// only place a string literal may appear.
func (v *validator) node(n Node, path string, printArg bool) {
	if !v.required(n, path) {
		return
	}
	switch n := n.(type) {
	case *IntegerLiteral:
	case *Identifier:
		if n.Name == "" {
			v.addf(n, path, "identifier name must not be empty")
		}
	case *StringLiteral:
		if !printArg {
			v.addf(n, path, "string literal may only be printed")
		}
	case *AssignmentExpression:
		if n.Target == nil || n.Target.Name == "" {
			v.addf(n, path+".target", "assignment target must be a named identifier")
		}
		v.node(n.Value, path+".value", false)
	case *BinaryExpression:
		if !n.Operator.Valid() {
			v.addf(n, path, "unknown binary operator %q", n.Operator)
		}
		v.node(n.Left, path+".left", false)
		v.node(n.Right, path+".right", false)
	case *UnaryExpression:
		if !n.Operator.Valid() {
			v.addf(n, path, "unknown unary operator %q", n.Operator)
		}
		v.node(n.Operand, path+".operand", false)
	case *ForStatement:
		if !isNilNode(n.Init) {
			v.node(n.Init, path+".init", false)
		}
		v.node(n.Condition, path+".condition", false)
		if !isNilNode(n.Increment) {
			v.node(n.Increment, path+".increment", false)
		}
		v.node(n.Body, path+".body", false)
	case *IfStatement:
		v.node(n.Condition, path+".condition", false)
		v.node(n.Then, path+".then", false)
		if !isNilNode(n.Else) {
			v.node(n.Else, path+".else", false)
		}
	case *PrintStatement:
		v.node(n.Argument, path+".argument", true)
	case *ErrorStatement:
		v.node(n.Argument, path+".argument", true)
	case *StatementList:
		for idx, stmt := range n.Statements {
			v.node(stmt, fmt.Sprintf("%s.statements[%d]", path, idx), false)
		}
	case *SwitchStatement:
		v.node(n.Discriminant, path+".discriminant", false)
		v.switchDepth++
		for idx, c := range n.Cases {
			casePath := fmt.Sprintf("%s.cases[%d]", path, idx)
			if c == nil {
				v.addf(nil, casePath, "missing node")
				continue
			}
			if c.Test != nil {
				v.node(c.Test, casePath+".test", false)
			}
			v.node(c.Body, casePath+".body", false)
		}
		v.switchDepth--
	case *BreakStatement:
		if v.switchDepth == 0 {
			v.addf(n, path, "break outside switch")
		}
	case *Program:
		if n.Body == nil {
			v.addf(n, path+".body", "missing node")
			return
		}
		v.node(n.Body, path+".body", false)
	default:
		v.addf(n, path, "unsupported node type %s", n.NodeType())
	}
}

// isNilNode catches typed nil pointers stored in interface fields.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *StatementList:
		return v == nil
	case *Identifier:
		return v == nil
	case *IntegerLiteral:
		return v == nil
	case *StringLiteral:
		return v == nil
	case *AssignmentExpression:
		return v == nil
	case *BinaryExpression:
		return v == nil
	case *UnaryExpression:
		return v == nil
	case *ForStatement:
		return v == nil
	case *IfStatement:
		return v == nil
	case *PrintStatement:
		return v == nil
	case *ErrorStatement:
		return v == nil
	case *SwitchStatement:
		return v == nil
	case *BreakStatement:
		return v == nil
	case *Program:
		return v == nil
	}
	return false
}
