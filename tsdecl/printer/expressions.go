package printer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/teranos/fakegen/tsdecl/ast"
)

// exprString renders e; indent is the level of the line e starts on
func exprString(e ast.Expression, indent int) string {
	switch n := e.(type) {
	case *ast.NullLiteral:
		return "null"
	case *ast.StringLiteral:
		return QuoteString(n.Value)
	case *ast.NumericLiteral:
		return n.Text
	case *ast.BooleanLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.PrefixUnaryExpression:
		return n.Operator + exprString(n.Operand, indent)
	case *ast.ArrayLiteral:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = exprString(el, indent)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.ObjectLiteral:
		if len(n.Properties) == 0 {
			return "{}"
		}
		var sb strings.Builder
		sb.WriteString("{\n")
		for i, prop := range n.Properties {
			sb.WriteString(indentation(indent + 1))
			sb.WriteString(PropertyKey(prop.Key))
			sb.WriteString(": ")
			sb.WriteString(exprString(prop.Value, indent+1))
			if i < len(n.Properties)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(indentation(indent))
		sb.WriteString("}")
		return sb.String()
	case *ast.RawExpression:
		return n.Text
	default:
		return "undefined"
	}
}

// PropertyKey renders an object literal key, quoting it unless it is a valid identifier
func PropertyKey(key string) string {
	if isIdentifier(key) {
		return key
	}
	return QuoteString(key)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// QuoteString renders s as a double-quoted JavaScript string literal
func QuoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\v':
			sb.WriteString(`\v`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&sb, `\u%04X`, r)
		default:
			if r < 0x20 || r == 0x7f || (r == utf8.RuneError && size == 1) {
				fmt.Fprintf(&sb, `\u%04X`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
