package ast

// Expression is a value expression
type Expression interface {
	Node
	expressionNode()
}

// NullLiteral is `null`
type NullLiteral struct {
	At Position
}

func (e *NullLiteral) Pos() Position   { return e.At }
func (e *NullLiteral) expressionNode() {}

// StringLiteral holds the decoded string value
type StringLiteral struct {
	At    Position
	Value string
}

func (e *StringLiteral) Pos() Position   { return e.At }
func (e *StringLiteral) expressionNode() {}

// NumericLiteral holds the source text of a non-negative number, e.g. `42` or `3.5`
type NumericLiteral struct {
	At   Position
	Text string
}

func (e *NumericLiteral) Pos() Position   { return e.At }
func (e *NumericLiteral) expressionNode() {}

// BooleanLiteral is `true` or `false`
type BooleanLiteral struct {
	At    Position
	Value bool
}

func (e *BooleanLiteral) Pos() Position   { return e.At }
func (e *BooleanLiteral) expressionNode() {}

// PrefixUnaryExpression is `-x`, `+x` or `!x`
type PrefixUnaryExpression struct {
	At       Position
	Operator string
	Operand  Expression
}

func (e *PrefixUnaryExpression) Pos() Position   { return e.At }
func (e *PrefixUnaryExpression) expressionNode() {}

// ArrayLiteral is `[a, b]`
type ArrayLiteral struct {
	At       Position
	Elements []Expression
}

func (e *ArrayLiteral) Pos() Position   { return e.At }
func (e *ArrayLiteral) expressionNode() {}

// ObjectLiteral is `{ key: value }` with properties in insertion order
type ObjectLiteral struct {
	At         Position
	Properties []*PropertyAssignment
}

func (e *ObjectLiteral) Pos() Position   { return e.At }
func (e *ObjectLiteral) expressionNode() {}

// PropertyAssignment is one `key: value` entry of an object literal
type PropertyAssignment struct {
	At    Position
	Key   string
	Value Expression
}

func (p *PropertyAssignment) Pos() Position { return p.At }

// RawExpression is source text kept verbatim, used for initializers and defaults
type RawExpression struct {
	At   Position
	Text string
}

func (e *RawExpression) Pos() Position   { return e.At }
func (e *RawExpression) expressionNode() {}
