package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

// Expression helpers.

func Assign(name string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(ID(name), value)
}

// Decl builds a bare declaration (`Type name;`), which is an assignment of 0.
func Decl(name string) *AssignmentExpression {
	return Assign(name, Int(0))
}

func Bin(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Neg(operand Expression) *UnaryExpression {
	return NewUnaryExpression(UnaryOperatorNegate, operand)
}

// Statement helpers.

func For(init, condition, increment Expression, body ...Statement) *ForStatement {
	return NewForStatement(init, condition, increment, bodyOf(body))
}

func If(condition Expression, then Statement) *IfStatement {
	return NewIfStatement(condition, then, nil)
}

func IfElse(condition Expression, then, otherwise Statement) *IfStatement {
	return NewIfStatement(condition, then, otherwise)
}

func Print(argument Expression) *PrintStatement {
	return NewPrintStatement(argument)
}

func Eprint(argument Expression) *ErrorStatement {
	return NewErrorStatement(argument)
}

func List(statements ...Statement) *StatementList {
	return NewStatementList(statements...)
}

func Switch(discriminant Expression, cases ...*SwitchCase) *SwitchStatement {
	return NewSwitchStatement(discriminant, cases)
}

func Case(test Expression, body ...Statement) *SwitchCase {
	return NewSwitchCase(test, bodyOf(body))
}

func Default(body ...Statement) *SwitchCase {
	return NewSwitchCase(nil, bodyOf(body))
}

func Brk() *BreakStatement {
	return NewBreakStatement()
}

func Prog(name string, statements ...Statement) *Program {
	return NewProgram(name, List(statements...))
}

func bodyOf(statements []Statement) Statement {
	if len(statements) == 1 {
		return statements[0]
	}
	return List(statements...)
}
