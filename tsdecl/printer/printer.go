// Package printer renders tsdecl syntax trees back to TypeScript source.
package printer

import (
	"bytes"
	"strings"

	"github.com/teranos/fakegen/tsdecl/ast"
)

const indentUnit = "    "

// CodePrinter renders declarations with 4-space indentation
type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

// NewCodePrinter creates an empty printer
func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders a whole program.
// Declarations are separated by a blank line, consecutive imports by a single newline.
// The result has no trailing newline.
func Print(prog *ast.Program) string {
	p := NewCodePrinter()
	p.PrintProgram(prog)
	return p.String()
}

// PrintType renders a type expression at the top indentation level
func PrintType(t ast.Type) string {
	return typeString(t, 0)
}

// PrintExpression renders an expression at the top indentation level
func PrintExpression(e ast.Expression) string {
	return exprString(e, 0)
}

// String returns the accumulated output without trailing newlines
func (p *CodePrinter) String() string {
	return strings.TrimRight(p.buf.String(), "\n")
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(indentUnit)
	}
}

// line writes one indented line; text may itself span lines already indented for this level
func (p *CodePrinter) line(text string) {
	if text != "" {
		p.writeIndent()
		p.buf.WriteString(text)
	}
	p.buf.WriteByte('\n')
}

// PrintProgram appends every statement of prog
func (p *CodePrinter) PrintProgram(prog *ast.Program) {
	var prev ast.Statement
	for _, stmt := range prog.Statements {
		if prev != nil {
			_, prevImport := prev.(*ast.ImportDeclaration)
			_, curImport := stmt.(*ast.ImportDeclaration)
			if !(prevImport && curImport) {
				p.buf.WriteByte('\n')
			}
		}
		p.PrintStatement(stmt)
		prev = stmt
	}
}

// PrintStatement appends one top-level declaration
func (p *CodePrinter) PrintStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ImportDeclaration:
		p.line(s.Text)
	case *ast.RawStatement:
		for _, l := range s.Lines {
			p.line(l)
		}
	case *ast.TypeAliasDeclaration:
		p.line(exportPrefix(s.Exported) + "type " + s.Name + typeParams(s.TypeParams) + " = " + typeString(s.Type, p.indent) + ";")
	case *ast.InterfaceDeclaration:
		head := exportPrefix(s.Exported) + "interface " + s.Name + typeParams(s.TypeParams)
		if len(s.Extends) > 0 {
			head += " extends " + typeList(s.Extends, p.indent)
		}
		if len(s.Members) == 0 {
			p.line(head + " {}")
			return
		}
		p.line(head + " {")
		p.indent++
		for _, m := range s.Members {
			p.line(signatureString(m, p.indent))
		}
		p.indent--
		p.line("}")
	case *ast.ClassDeclaration:
		p.printClass(s)
	}
}

func (p *CodePrinter) printClass(c *ast.ClassDeclaration) {
	head := modifiers(c.Modifiers) + "class " + c.Name + typeParams(c.TypeParams)
	if c.Extends != nil {
		head += " extends " + typeString(c.Extends, p.indent)
	}
	if len(c.Implements) > 0 {
		head += " implements " + typeList(c.Implements, p.indent)
	}
	if len(c.Members) == 0 {
		p.line(head + " {}")
		return
	}
	p.line(head + " {")
	p.indent++
	for _, m := range c.Members {
		switch member := m.(type) {
		case *ast.MethodDeclaration:
			p.printMethod(member)
		case *ast.PropertyDeclaration:
			p.printProperty(member)
		case *ast.RawMember:
			p.printRawMember(member)
		}
	}
	p.indent--
	p.line("}")
}

// printRawMember writes a member kept as source; its separator is not part
// of the source, so signatures get one back
func (p *CodePrinter) printRawMember(m *ast.RawMember) {
	for i, l := range m.Lines {
		if i == len(m.Lines)-1 && m.Kind != "decorator" && !strings.HasSuffix(l, "}") && !strings.HasSuffix(l, ";") {
			l += ";"
		}
		p.line(l)
	}
}

func (p *CodePrinter) printMethod(m *ast.MethodDeclaration) {
	sig := modifiers(m.Modifiers) + m.Name
	if m.Optional {
		sig += "?"
	}
	sig += typeParams(m.TypeParams) + "(" + paramList(m.Params, p.indent) + ")"
	if m.ReturnType != nil {
		sig += ": " + typeString(m.ReturnType, p.indent)
	}
	if m.Body == nil {
		p.line(sig + ";")
		return
	}
	p.printBlock(sig, m.Body)
}

func (p *CodePrinter) printBlock(head string, b *ast.Block) {
	if len(b.Raw) == 0 && len(b.Statements) == 0 {
		p.line(head + " {}")
		return
	}
	p.line(head + " {")
	p.indent++
	for _, raw := range b.Raw {
		p.line(raw)
	}
	for _, stmt := range b.Statements {
		if ret, ok := stmt.(*ast.ReturnStatement); ok {
			if ret.Value == nil {
				p.line("return;")
			} else {
				p.line("return " + exprString(ret.Value, p.indent) + ";")
			}
		}
	}
	p.indent--
	p.line("}")
}

func (p *CodePrinter) printProperty(prop *ast.PropertyDeclaration) {
	text := modifiers(prop.Modifiers) + prop.Name
	switch {
	case prop.Optional:
		text += "?"
	case prop.Definite:
		text += "!"
	}
	if prop.Type != nil {
		text += ": " + typeString(prop.Type, p.indent)
	}
	if prop.Initializer != nil {
		text += " = " + exprString(prop.Initializer, p.indent)
	}
	p.line(text + ";")
}

func exportPrefix(exported bool) string {
	if exported {
		return "export "
	}
	return ""
}

func modifiers(mods []string) string {
	if len(mods) == 0 {
		return ""
	}
	return strings.Join(mods, " ") + " "
}

func typeParams(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "<" + strings.Join(params, ", ") + ">"
}

func paramList(params []*ast.Parameter, indent int) string {
	parts := make([]string, len(params))
	for i, param := range params {
		s := modifiers(param.Modifiers)
		if param.Rest {
			s += "..."
		}
		s += param.Name
		if param.Optional {
			s += "?"
		}
		if param.Type != nil {
			s += ": " + typeString(param.Type, indent)
		}
		if param.Default != nil {
			s += " = " + exprString(param.Default, indent)
		}
		parts[i] = s
	}
	return strings.Join(parts, ", ")
}

func indentation(level int) string {
	return strings.Repeat(indentUnit, level)
}
