// Package parser reads TypeScript declaration documents into tsdecl/ast trees.
//
// The tree-sitter TypeScript grammar does the parsing. Imports, type aliases,
// interfaces and classes are converted into typed nodes; every other statement,
// class member or type survives as source text in a Raw* node.
package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	ts "github.com/tree-sitter/go-tree-sitter"
	tsts "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/tsdecl/ast"
)

var typescript = ts.NewLanguage(tsts.LanguageTypescript())

// typePrefix wraps a bare type expression into a parseable alias
const typePrefix = "type __fakegen__ = "

// Parse parses a declaration document
func Parse(src string) (*ast.Program, error) {
	return ParseFile("", src)
}

// ParseFile parses a declaration document; file names it in errors
func ParseFile(file, src string) (*ast.Program, error) {
	c := newConverter(file, src, "")
	tree, err := c.parse()
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	return c.program(tree.RootNode()), nil
}

// ParseType parses a single type expression such as `string | number[]`
func ParseType(src string) (ast.Type, error) {
	c := newConverter("", src, typePrefix)
	tree, err := c.parse()
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	prog := c.program(tree.RootNode())
	if len(prog.Statements) == 1 {
		if alias, ok := prog.Statements[0].(*ast.TypeAliasDeclaration); ok && alias.Type != nil {
			return alias.Type, nil
		}
	}
	return nil, NewParseError(ErrorKindSyntax, "expected a single type expression").
		WithRange(ast.Range{Start: c.pos(len(typePrefix)), End: c.pos(len(c.buf))}).
		WithSource(lineAt(c.src, 0))
}

// parse runs tree-sitter over the buffer. A tree with error or missing nodes
// is closed and reported as a ParseError at the first of them.
func (c *converter) parse() (*ts.Tree, error) {
	p := ts.NewParser()
	defer p.Close()
	if err := p.SetLanguage(typescript); err != nil {
		return nil, errors.Wrap(err, "failed to load the TypeScript grammar")
	}
	tree := p.Parse(c.buf, nil)
	if tree == nil {
		return nil, errors.New("tree-sitter produced no tree")
	}
	if root := tree.RootNode(); root.HasError() {
		err := c.syntaxError(root)
		tree.Close()
		return nil, err
	}
	return tree, nil
}

// firstError returns the first ERROR or MISSING node in document order
func firstError(n *ts.Node) *ts.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		if e := firstError(n.Child(i)); e != nil {
			return e
		}
	}
	return nil
}

func (c *converter) syntaxError(root *ts.Node) *ParseError {
	n := firstError(root)
	if n == nil {
		n = root
	}
	start, end := int(n.StartByte()), int(n.EndByte())

	var pe *ParseError
	switch tok := leadingToken(string(c.buf[start:end])); {
	case n.IsMissing():
		pe = NewParseError(ErrorKindSyntax, fmt.Sprintf("expected %q", n.Kind())).
			WithSuggestion(fmt.Sprintf("insert %q", n.Kind()))
	case tok == "":
		pe = NewParseError(ErrorKindSyntax, "unexpected end of input").
			WithSuggestion("check for an unclosed brace or parenthesis")
	case strings.HasPrefix(tok, "/*"):
		pe = NewParseError(ErrorKindLexical, "unterminated comment")
	case strings.ContainsAny(tok[:1], "\"'`"):
		pe = NewParseError(ErrorKindLexical, "unterminated string literal")
	default:
		pe = NewParseError(ErrorKindSyntax, fmt.Sprintf("unexpected %q", tok))
	}
	return pe.WithRange(ast.Range{Start: c.pos(start), End: c.pos(end)}).
		WithSource(lineAt(c.src, c.srcOffset(start))).
		WithFile(c.file)
}

// leadingToken returns the first word of text, cut at 24 runes
func leadingToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	tok := fields[0]
	if utf8.RuneCountInString(tok) > 24 {
		tok = string([]rune(tok)[:24]) + "..."
	}
	return tok
}
