package driver

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"skibidi/interpreter-go/pkg/ast"
)

// DecodeError reports a malformed node together with where it sits in the
// document, e.g. body.statements[2].left.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErrorf(path, format string, args ...any) error {
	return &DecodeError{Path: path, Err: fmt.Errorf(format, args...)}
}

// DecodeNode turns a generic document tree (maps tagged with "type") into an
// AST. Numbers may be json.Number, Go integers, integral floats or decimal
// strings.
func DecodeNode(node map[string]any) (ast.Node, error) {
	return decodeNode(node, "")
}

func decodeNode(raw any, path string) (ast.Node, error) {
	node, ok := raw.(map[string]any)
	if !ok {
		return nil, decodeErrorf(path, "expected a node object, got %T", raw)
	}
	typ, _ := node["type"].(string)
	var (
		result ast.Node
		err    error
	)
	switch typ {
	case "Program":
		result, err = decodeProgram(node, path)
	case "StatementList":
		result, err = decodeStatementList(node["statements"], join(path, "statements"))
	case "Number", "IntegerLiteral":
		var val int64
		val, err = parseInt(node["value"], join(path, "value"))
		result = ast.NewIntegerLiteral(val)
	case "Identifier":
		name, _ := node["name"].(string)
		if name == "" {
			return nil, decodeErrorf(path, "identifier requires a name")
		}
		result = ast.NewIdentifier(name)
	case "StringLiteral":
		var val string
		val, err = stringValue(node["value"], join(path, "value"))
		result = ast.NewStringLiteral(val)
	case "Assignment", "AssignmentExpression":
		result, err = decodeAssignment(node, path)
	case "Declaration":
		name, _ := node["name"].(string)
		if name == "" {
			return nil, decodeErrorf(join(path, "name"), "declaration requires a name")
		}
		if typeName, ok := node["typeName"].(string); ok && typeName != "" && typeName != "int" {
			return nil, decodeErrorf(join(path, "typeName"), "unsupported type %q", typeName)
		}
		result = ast.Decl(name)
	case "BinaryOperation", "BinaryExpression":
		result, err = decodeBinary(node, path)
	case "UnaryOperation", "UnaryExpression":
		result, err = decodeUnary(node, path)
	case "ForStatement":
		result, err = decodeFor(node, path)
	case "IfStatement":
		result, err = decodeIf(node, path)
	case "PrintStatement":
		var arg ast.Expression
		arg, err = decodeExpression(node["argument"], join(path, "argument"))
		result = ast.NewPrintStatement(arg)
	case "ErrorStatement":
		var arg ast.Expression
		arg, err = decodeExpression(node["argument"], join(path, "argument"))
		result = ast.NewErrorStatement(arg)
	case "ReturnStatement":
		// A return statement only evaluates its argument.
		result, err = decodeExpression(node["argument"], join(path, "argument"))
	case "SwitchStatement":
		result, err = decodeSwitch(node, path)
	case "Case", "SwitchCase":
		result, err = decodeCase(node, path)
	case "BreakStatement":
		result = ast.NewBreakStatement()
	case "":
		return nil, decodeErrorf(path, "node is missing its type")
	default:
		return nil, decodeErrorf(path, "unsupported node type %q", typ)
	}
	if err != nil {
		return nil, err
	}
	if err := applySpan(result, node["span"], join(path, "span")); err != nil {
		return nil, err
	}
	return result, nil
}

func decodeExpression(raw any, path string) (ast.Expression, error) {
	if raw == nil {
		return nil, decodeErrorf(path, "missing expression")
	}
	node, err := decodeNode(raw, path)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(ast.Expression)
	if !ok {
		return nil, decodeErrorf(path, "%s is not an expression", node.NodeType())
	}
	return expr, nil
}

func decodeOptionalExpression(raw any, path string) (ast.Expression, error) {
	if raw == nil {
		return nil, nil
	}
	return decodeExpression(raw, path)
}

func decodeStatement(raw any, path string) (ast.Statement, error) {
	node, err := decodeNode(raw, path)
	if err != nil {
		return nil, err
	}
	stmt, ok := node.(ast.Statement)
	if !ok {
		return nil, decodeErrorf(path, "%s is not a statement", node.NodeType())
	}
	return stmt, nil
}

// decodeBody accepts a single statement or a bare array of statements.
func decodeBody(raw any, path string) (ast.Statement, error) {
	switch v := raw.(type) {
	case nil:
		return ast.NewStatementList(), nil
	case []any:
		return decodeStatementList(v, path)
	default:
		return decodeStatement(v, path)
	}
}

func decodeStatementList(raw any, path string) (*ast.StatementList, error) {
	if raw == nil {
		return ast.NewStatementList(), nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, decodeErrorf(path, "expected a list of statements, got %T", raw)
	}
	list := ast.NewStatementList()
	for idx, item := range items {
		stmt, err := decodeStatement(item, fmt.Sprintf("%s[%d]", path, idx))
		if err != nil {
			return nil, err
		}
		list.Append(stmt)
	}
	return list, nil
}

func decodeProgram(node map[string]any, path string) (*ast.Program, error) {
	name, _ := node["name"].(string)
	bodyPath := join(path, "body")
	var body *ast.StatementList
	switch raw := node["body"].(type) {
	case nil:
		body = ast.NewStatementList()
	case []any:
		list, err := decodeStatementList(raw, bodyPath)
		if err != nil {
			return nil, err
		}
		body = list
	default:
		decoded, err := decodeNode(raw, bodyPath)
		if err != nil {
			return nil, err
		}
		switch b := decoded.(type) {
		case *ast.StatementList:
			body = b
		case ast.Statement:
			body = ast.NewStatementList(b)
		default:
			return nil, decodeErrorf(bodyPath, "%s cannot be a program body", decoded.NodeType())
		}
	}
	return ast.NewProgram(name, body), nil
}

func decodeAssignment(node map[string]any, path string) (*ast.AssignmentExpression, error) {
	targetPath := join(path, "target")
	var target *ast.Identifier
	switch raw := node["target"].(type) {
	case string:
		if raw == "" {
			return nil, decodeErrorf(targetPath, "assignment target must not be empty")
		}
		target = ast.NewIdentifier(raw)
	case map[string]any:
		decoded, err := decodeNode(raw, targetPath)
		if err != nil {
			return nil, err
		}
		id, ok := decoded.(*ast.Identifier)
		if !ok {
			return nil, decodeErrorf(targetPath, "assignment target must be an identifier, got %s", decoded.NodeType())
		}
		target = id
	default:
		return nil, decodeErrorf(targetPath, "assignment target must be an identifier")
	}
	value, err := decodeExpression(node["value"], join(path, "value"))
	if err != nil {
		return nil, err
	}
	return ast.NewAssignmentExpression(target, value), nil
}

func decodeBinary(node map[string]any, path string) (*ast.BinaryExpression, error) {
	op, _ := node["operator"].(string)
	operator := ast.BinaryOperator(op)
	if !operator.Valid() {
		return nil, decodeErrorf(join(path, "operator"), "unknown binary operator %q", op)
	}
	left, err := decodeExpression(node["left"], join(path, "left"))
	if err != nil {
		return nil, err
	}
	right, err := decodeExpression(node["right"], join(path, "right"))
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryExpression(operator, left, right), nil
}

func decodeUnary(node map[string]any, path string) (*ast.UnaryExpression, error) {
	op, _ := node["operator"].(string)
	switch op {
	case "", "-":
		op = string(ast.UnaryOperatorNegate)
	}
	operator := ast.UnaryOperator(op)
	if !operator.Valid() {
		return nil, decodeErrorf(join(path, "operator"), "unknown unary operator %q", op)
	}
	operand, err := decodeExpression(node["operand"], join(path, "operand"))
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryExpression(operator, operand), nil
}

func decodeFor(node map[string]any, path string) (*ast.ForStatement, error) {
	initExpr, err := decodeOptionalExpression(node["init"], join(path, "init"))
	if err != nil {
		return nil, err
	}
	cond, err := decodeExpression(node["condition"], join(path, "condition"))
	if err != nil {
		return nil, err
	}
	incr, err := decodeOptionalExpression(node["increment"], join(path, "increment"))
	if err != nil {
		return nil, err
	}
	body, err := decodeBody(node["body"], join(path, "body"))
	if err != nil {
		return nil, err
	}
	return ast.NewForStatement(initExpr, cond, incr, body), nil
}

func decodeIf(node map[string]any, path string) (*ast.IfStatement, error) {
	cond, err := decodeExpression(node["condition"], join(path, "condition"))
	if err != nil {
		return nil, err
	}
	then, err := decodeBody(node["then"], join(path, "then"))
	if err != nil {
		return nil, err
	}
	var otherwise ast.Statement
	if raw, ok := node["else"]; ok && raw != nil {
		otherwise, err = decodeBody(raw, join(path, "else"))
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStatement(cond, then, otherwise), nil
}

func decodeSwitch(node map[string]any, path string) (*ast.SwitchStatement, error) {
	disc, err := decodeExpression(node["discriminant"], join(path, "discriminant"))
	if err != nil {
		return nil, err
	}
	casesPath := join(path, "cases")
	var rawCases []any
	if raw := node["cases"]; raw != nil {
		items, ok := raw.([]any)
		if !ok {
			return nil, decodeErrorf(casesPath, "expected a list of cases, got %T", raw)
		}
		rawCases = items
	}
	cases := make([]*ast.SwitchCase, 0, len(rawCases))
	for idx, raw := range rawCases {
		casePath := fmt.Sprintf("%s[%d]", casesPath, idx)
		decoded, err := decodeNode(raw, casePath)
		if err != nil {
			return nil, err
		}
		c, ok := decoded.(*ast.SwitchCase)
		if !ok {
			return nil, decodeErrorf(casePath, "expected Case, got %s", decoded.NodeType())
		}
		cases = append(cases, c)
	}
	return ast.NewSwitchStatement(disc, cases), nil
}

func decodeCase(node map[string]any, path string) (*ast.SwitchCase, error) {
	test, err := decodeOptionalExpression(node["test"], join(path, "test"))
	if err != nil {
		return nil, err
	}
	body, err := decodeBody(node["body"], join(path, "body"))
	if err != nil {
		return nil, err
	}
	return ast.NewSwitchCase(test, body), nil
}

func applySpan(node ast.Node, raw any, path string) error {
	if raw == nil {
		return nil
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return decodeErrorf(path, "span must be an object with line and column")
	}
	var span ast.Span
	if v, ok := fields["line"]; ok {
		line, err := parseInt(v, join(path, "line"))
		if err != nil {
			return err
		}
		span.Line = int(line)
	}
	if v, ok := fields["column"]; ok {
		column, err := parseInt(v, join(path, "column"))
		if err != nil {
			return err
		}
		span.Column = int(column)
	}
	ast.SetSpan(node, span)
	return nil
}

func parseInt(value any, path string) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, decodeErrorf(path, "missing integer")
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, decodeErrorf(path, "invalid integer %q", v.String())
		}
		return i, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, decodeErrorf(path, "integer %d out of range", v)
		}
		return int64(v), nil
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which no int64 holds.
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, decodeErrorf(path, "%v is not an integer", v)
		}
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, decodeErrorf(path, "invalid integer %q", v)
		}
		return i, nil
	default:
		return 0, decodeErrorf(path, "expected an integer, got %T", value)
	}
}

// stringValue accepts unquoted YAML scalars such as `value: 123` and keeps
// their text.
func stringValue(value any, path string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", decodeErrorf(path, "string literal requires a string value, got %T", value)
	}
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
