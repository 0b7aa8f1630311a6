// Package synth writes generated values back as TypeScript literal expressions.
package synth

import (
	"strings"

	"github.com/teranos/fakegen/tsdecl/ast"
	"github.com/teranos/fakegen/value"
)

// Synthesize mirrors v as a literal expression. It is total over every
// value the generator can produce and never mutates v.
func Synthesize(v value.Value) ast.Expression {
	switch n := v.(type) {
	case value.String:
		return &ast.StringLiteral{Value: string(n)}
	case value.Number:
		return number(n)
	case value.Bool:
		return &ast.BooleanLiteral{Value: bool(n)}
	case value.Array:
		elems := make([]ast.Expression, len(n))
		for i, el := range n {
			elems[i] = Synthesize(el)
		}
		return &ast.ArrayLiteral{Elements: elems}
	case *value.Object:
		entries := n.Entries()
		props := make([]*ast.PropertyAssignment, len(entries))
		for i, e := range entries {
			props[i] = &ast.PropertyAssignment{Key: e.Key, Value: Synthesize(e.Value)}
		}
		return &ast.ObjectLiteral{Properties: props}
	default:
		// value.Null and nil
		return &ast.NullLiteral{}
	}
}

// number writes negatives as a prefix minus over a positive literal
func number(n value.Number) ast.Expression {
	text := n.String()
	if rest, ok := strings.CutPrefix(text, "-"); ok {
		return &ast.PrefixUnaryExpression{
			Operator: "-",
			Operand:  &ast.NumericLiteral{Text: rest},
		}
	}
	return &ast.NumericLiteral{Text: text}
}
