package printer

import (
	"strings"

	"github.com/teranos/fakegen/tsdecl/ast"
)

// typeString renders t; indent is the level of the line t starts on
func typeString(t ast.Type, indent int) string {
	switch n := t.(type) {
	case nil:
		return "any"
	case *ast.KeywordType:
		return n.Keyword
	case *ast.TypeReference:
		if len(n.Args) == 0 {
			return n.Name
		}
		return n.Name + "<" + typeList(n.Args, indent) + ">"
	case *ast.ArrayType:
		if n.Generic {
			return "Array<" + typeString(n.Element, indent) + ">"
		}
		return wrapCompound(n.Element, indent) + "[]"
	case *ast.UnionType:
		parts := make([]string, len(n.Types))
		for i, member := range n.Types {
			if _, ok := member.(*ast.FunctionType); ok {
				parts[i] = "(" + typeString(member, indent) + ")"
			} else {
				parts[i] = typeString(member, indent)
			}
		}
		return strings.Join(parts, " | ")
	case *ast.IntersectionType:
		parts := make([]string, len(n.Types))
		for i, member := range n.Types {
			parts[i] = wrapCompound(member, indent)
		}
		return strings.Join(parts, " & ")
	case *ast.ParenthesizedType:
		return "(" + typeString(n.Type, indent) + ")"
	case *ast.TupleType:
		return "[" + typeList(n.Elements, indent) + "]"
	case *ast.LiteralType:
		return exprString(n.Literal, indent)
	case *ast.FunctionType:
		return "(" + paramList(n.Params, indent) + ") => " + typeString(n.Return, indent)
	case *ast.RawType:
		return n.Text
	case *ast.TypeLiteral:
		if len(n.Members) == 0 {
			return "{}"
		}
		var sb strings.Builder
		sb.WriteString("{\n")
		for _, m := range n.Members {
			sb.WriteString(indentation(indent + 1))
			sb.WriteString(signatureString(m, indent+1))
			sb.WriteString("\n")
		}
		sb.WriteString(indentation(indent))
		sb.WriteString("}")
		return sb.String()
	default:
		return "unknown"
	}
}

// wrapCompound parenthesizes unions, intersections and function types used as operands
func wrapCompound(t ast.Type, indent int) string {
	switch t.(type) {
	case *ast.UnionType, *ast.IntersectionType, *ast.FunctionType:
		return "(" + typeString(t, indent) + ")"
	}
	return typeString(t, indent)
}

func typeList(types []ast.Type, indent int) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = typeString(t, indent)
	}
	return strings.Join(parts, ", ")
}

// signatureString renders `readonly name?: T;` for interfaces and type literals
func signatureString(m *ast.PropertySignature, indent int) string {
	if m.Kind != ast.SignatureProperty {
		return m.Text + ";"
	}
	var sb strings.Builder
	if m.Readonly {
		sb.WriteString("readonly ")
	}
	if m.Quoted {
		sb.WriteString(QuoteString(m.Name))
	} else {
		sb.WriteString(m.Name)
	}
	if m.Optional {
		sb.WriteString("?")
	}
	if m.Type != nil {
		sb.WriteString(": ")
		sb.WriteString(typeString(m.Type, indent))
	}
	sb.WriteString(";")
	return sb.String()
}
