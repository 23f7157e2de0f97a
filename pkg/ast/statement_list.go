package ast

// StatementList holds statements in source order.
//
// Grammars that build the list by left recursion can either call Append
// (order is kept as statements arrive) or PrependStatement, which builds
// last-parsed-first and must be followed by exactly one Normalize once the
// list is complete. Executors never reorder a list.
type StatementList struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`

	reversed   bool
	normalized bool
}

func NewStatementList(statements ...Statement) *StatementList {
	body := make([]Statement, 0, len(statements))
	for _, stmt := range statements {
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	return &StatementList{nodeImpl: newNodeImpl(NodeStatementList), Statements: body, normalized: true}
}

// Append adds stmt after the statements already in the list.
func (l *StatementList) Append(stmt Statement) *StatementList {
	if stmt == nil {
		return l
	}
	l.Statements = append(l.Statements, stmt)
	return l
}

// PrependStatement is the prepend-style list action: stmt goes in front of
// list, creating the list when it is nil. The result is in reverse source
// order until Normalize is called.
func PrependStatement(stmt Statement, list *StatementList) *StatementList {
	if list == nil {
		list = &StatementList{nodeImpl: newNodeImpl(NodeStatementList)}
	}
	if !list.reversed {
		reverseStatements(list.Statements)
	}
	list.reversed = true
	list.normalized = false
	if stmt == nil {
		return list
	}
	list.Statements = append([]Statement{stmt}, list.Statements...)
	return list
}

// Normalize restores source order for a list built with PrependStatement. The
// reversal happens at most once; later calls are no-ops.
func (l *StatementList) Normalize() *StatementList {
	if l == nil || l.normalized {
		return l
	}
	if l.reversed {
		reverseStatements(l.Statements)
	}
	l.reversed = false
	l.normalized = true
	return l
}

func reverseStatements(stmts []Statement) {
	for i, j := 0, len(stmts)-1; i < j; i, j = i+1, j-1 {
		stmts[i], stmts[j] = stmts[j], stmts[i]
	}
}

func (l *StatementList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Statements)
}
