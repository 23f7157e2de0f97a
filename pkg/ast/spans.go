package ast

// SetSpan annotates the node with the provided span.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}

// WithSpan annotates node and returns it, for use in builder chains.
func WithSpan[T Node](node T, line, column int) T {
	SetSpan(node, Span{Line: line, Column: column})
	return node
}

// Known reports whether the span carries a source line.
func (s Span) Known() bool {
	return s.Line > 0
}
