package ast

type NodeType string

const (
	NodeNumber          NodeType = "Number"
	NodeIdentifier      NodeType = "Identifier"
	NodeStringLiteral   NodeType = "StringLiteral"
	NodeAssignment      NodeType = "Assignment"
	NodeBinaryOperation NodeType = "BinaryOperation"
	NodeUnaryOperation  NodeType = "UnaryOperation"
	NodeForStatement    NodeType = "ForStatement"
	NodeIfStatement     NodeType = "IfStatement"
	NodePrintStatement  NodeType = "PrintStatement"
	NodeErrorStatement  NodeType = "ErrorStatement"
	NodeStatementList   NodeType = "StatementList"
	NodeSwitchStatement NodeType = "SwitchStatement"
	NodeCase            NodeType = "Case"
	NodeBreakStatement  NodeType = "BreakStatement"
	NodeProgram         NodeType = "Program"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

// Span locates a node in the source the external parser consumed. Zero
// values mean the position is unknown.
type Span struct {
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (n *nodeImpl) setSpan(span Span) { n.span = span }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeNumber), Value: value}
}

// StringLiteral is only meaningful as the direct argument of a print or
// error-print statement.
type StringLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

// Expressions

type AssignmentExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Target *Identifier `json:"target"`
	Value  Expression  `json:"value"`
}

func NewAssignmentExpression(target *Identifier, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignment), Target: target, Value: value}
}

type BinaryOperator string

const (
	BinaryOperatorAdd BinaryOperator = "+"
	BinaryOperatorSub BinaryOperator = "-"
	BinaryOperatorMul BinaryOperator = "*"
	BinaryOperatorDiv BinaryOperator = "/"
	BinaryOperatorMod BinaryOperator = "%"
	BinaryOperatorLt  BinaryOperator = "<"
	BinaryOperatorGt  BinaryOperator = ">"
	BinaryOperatorLe  BinaryOperator = "<="
	BinaryOperatorGe  BinaryOperator = ">="
	BinaryOperatorEq  BinaryOperator = "=="
	BinaryOperatorNe  BinaryOperator = "!="
	BinaryOperatorAnd BinaryOperator = "&&"
	BinaryOperatorOr  BinaryOperator = "||"
)

// Valid reports whether op is one of the supported binary operators.
func (op BinaryOperator) Valid() bool {
	switch op {
	case BinaryOperatorAdd, BinaryOperatorSub, BinaryOperatorMul, BinaryOperatorDiv, BinaryOperatorMod,
		BinaryOperatorLt, BinaryOperatorGt, BinaryOperatorLe, BinaryOperatorGe,
		BinaryOperatorEq, BinaryOperatorNe, BinaryOperatorAnd, BinaryOperatorOr:
		return true
	default:
		return false
	}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryOperation), Operator: operator, Left: left, Right: right}
}

type UnaryOperator string

const (
	UnaryOperatorNegate UnaryOperator = "negate"
)

func (op UnaryOperator) Valid() bool {
	return op == UnaryOperatorNegate
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryOperation), Operator: operator, Operand: operand}
}

// Statements

type ForStatement struct {
	nodeImpl
	statementMarker

	Init      Expression `json:"init"`
	Condition Expression `json:"condition"`
	Increment Expression `json:"increment"`
	Body      Statement  `json:"body"`
}

func NewForStatement(init, condition, increment Expression, body Statement) *ForStatement {
	return &ForStatement{nodeImpl: newNodeImpl(NodeForStatement), Init: init, Condition: condition, Increment: increment, Body: body}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Then      Statement  `json:"then"`
	Else      Statement  `json:"else,omitempty"`
}

func NewIfStatement(condition Expression, then, otherwise Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: otherwise}
}

type PrintStatement struct {
	nodeImpl
	statementMarker

	Argument Expression `json:"argument"`
}

func NewPrintStatement(argument Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Argument: argument}
}

// ErrorStatement prints its argument to the diagnostic sink.
type ErrorStatement struct {
	nodeImpl
	statementMarker

	Argument Expression `json:"argument"`
}

func NewErrorStatement(argument Expression) *ErrorStatement {
	return &ErrorStatement{nodeImpl: newNodeImpl(NodeErrorStatement), Argument: argument}
}

type SwitchCase struct {
	nodeImpl

	Test Expression `json:"test,omitempty"`
	Body Statement  `json:"body"`
}

func NewSwitchCase(test Expression, body Statement) *SwitchCase {
	return &SwitchCase{nodeImpl: newNodeImpl(NodeCase), Test: test, Body: body}
}

// IsDefault reports whether the case has no match value.
func (c *SwitchCase) IsDefault() bool {
	return c.Test == nil
}

type SwitchStatement struct {
	nodeImpl
	statementMarker

	Discriminant Expression    `json:"discriminant"`
	Cases        []*SwitchCase `json:"cases"`
}

func NewSwitchStatement(discriminant Expression, cases []*SwitchCase) *SwitchStatement {
	return &SwitchStatement{nodeImpl: newNodeImpl(NodeSwitchStatement), Discriminant: discriminant, Cases: cases}
}

type BreakStatement struct {
	nodeImpl
	statementMarker
}

func NewBreakStatement() *BreakStatement {
	return &BreakStatement{nodeImpl: newNodeImpl(NodeBreakStatement)}
}

// Program is the named top-level function wrapping the statement list.
type Program struct {
	nodeImpl
	statementMarker

	Name string         `json:"name"`
	Body *StatementList `json:"body"`
}

func NewProgram(name string, body *StatementList) *Program {
	if body == nil {
		body = NewStatementList()
	}
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Name: name, Body: body}
}
