package parser

import (
	"strconv"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/teranos/fakegen/tsdecl/ast"
)

// converter walks a tree-sitter concrete syntax tree into tsdecl/ast nodes.
// buf is the parsed input: src behind an optional prefix of len shift.
type converter struct {
	file  string
	src   string
	buf   []byte
	shift int
	lines lineIndex
}

func newConverter(file, src, prefix string) *converter {
	return &converter{
		file:  file,
		src:   src,
		buf:   []byte(prefix + src),
		shift: len(prefix),
		lines: newLineIndex(src),
	}
}

// srcOffset maps an offset in buf to one in src
func (c *converter) srcOffset(off int) int {
	return off - c.shift
}

func (c *converter) pos(off int) ast.Position {
	return c.lines.position(c.srcOffset(off))
}

func (c *converter) at(n *ts.Node) ast.Position {
	return c.pos(int(n.StartByte()))
}

func (c *converter) text(n *ts.Node) string {
	return n.Utf8Text(c.buf)
}

// named returns the named children of n, comments left out
func named(n *ts.Node) []*ts.Node {
	if n == nil {
		return nil
	}
	var out []*ts.Node
	for i := uint(0); i < uint(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Kind() != "comment" {
			out = append(out, child)
		}
	}
	return out
}

func firstNamed(n *ts.Node) *ts.Node {
	if kids := named(n); len(kids) > 0 {
		return kids[0]
	}
	return nil
}

// hasToken reports whether n has a direct anonymous child spelled tok
func hasToken(n *ts.Node, tok string) bool {
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		if child := n.Child(i); !child.IsNamed() && child.Kind() == tok {
			return true
		}
	}
	return false
}

func (c *converter) program(root *ts.Node) *ast.Program {
	prog := &ast.Program{}
	for _, n := range named(root) {
		if n.Kind() == "empty_statement" {
			continue
		}
		prog.Statements = append(prog.Statements, c.statement(n))
	}
	return prog
}

func (c *converter) statement(n *ts.Node) ast.Statement {
	if n.Kind() == "import_statement" {
		return &ast.ImportDeclaration{At: c.at(n), Text: c.text(n)}
	}
	if decl, ok := c.declaration(n, n, nil); ok {
		return decl
	}
	return &ast.RawStatement{At: c.at(n), Kind: n.Kind(), Lines: dedent(c.text(n))}
}

// declaration converts the declarations fakegen models. outer is the
// statement that starts the declaration, including export or declare.
func (c *converter) declaration(outer, n *ts.Node, mods []string) (ast.Statement, bool) {
	switch n.Kind() {
	case "export_statement":
		mods = append(mods, ast.ModExport)
		if hasToken(n, ast.ModDefault) {
			mods = append(mods, ast.ModDefault)
		}
		decl := n.ChildByFieldName("declaration")
		if decl == nil {
			decl = n.ChildByFieldName("value")
		}
		if decl == nil {
			return nil, false
		}
		return c.declaration(outer, decl, mods)
	case "ambient_declaration":
		decl := firstNamed(n)
		if decl == nil {
			return nil, false
		}
		return c.declaration(outer, decl, append(mods, ast.ModDeclare))
	case "type_alias_declaration":
		return &ast.TypeAliasDeclaration{
			At:         c.at(outer),
			Exported:   exported(mods),
			Name:       c.text(n.ChildByFieldName("name")),
			TypeParams: c.typeParams(n.ChildByFieldName("type_parameters")),
			Type:       c.typ(n.ChildByFieldName("value")),
		}, true
	case "interface_declaration":
		d := &ast.InterfaceDeclaration{
			At:         c.at(outer),
			Exported:   exported(mods),
			Name:       c.text(n.ChildByFieldName("name")),
			TypeParams: c.typeParams(n.ChildByFieldName("type_parameters")),
			Members:    c.signatures(n.ChildByFieldName("body")),
		}
		for _, child := range named(n) {
			if child.Kind() == "extends_type_clause" {
				for _, base := range named(child) {
					d.Extends = append(d.Extends, c.typ(base))
				}
			}
		}
		return d, true
	case "class_declaration", "abstract_class_declaration", "class":
		if n.Kind() == "abstract_class_declaration" {
			mods = append(mods, ast.ModAbstract)
		}
		name := n.ChildByFieldName("name")
		if name == nil {
			return nil, false
		}
		return c.class(outer, n, name, mods), true
	}
	return nil, false
}

func exported(mods []string) bool {
	for _, m := range mods {
		if m == ast.ModExport {
			return true
		}
	}
	return false
}

func (c *converter) class(outer, n, name *ts.Node, mods []string) *ast.ClassDeclaration {
	d := &ast.ClassDeclaration{
		At:         c.at(outer),
		Modifiers:  mods,
		Name:       c.text(name),
		TypeParams: c.typeParams(n.ChildByFieldName("type_parameters")),
	}
	for _, child := range named(n) {
		if child.Kind() != "class_heritage" {
			continue
		}
		for _, clause := range named(child) {
			switch clause.Kind() {
			case "extends_clause":
				d.Extends = c.heritage(clause)
			case "implements_clause":
				for _, t := range named(clause) {
					d.Implements = append(d.Implements, c.typ(t))
				}
			}
		}
	}
	for _, m := range named(n.ChildByFieldName("body")) {
		if member := c.member(m); member != nil {
			d.Members = append(d.Members, member)
		}
	}
	return d
}

// heritage converts `extends Base<T>`, whose base is an expression
func (c *converter) heritage(clause *ts.Node) ast.Type {
	value := clause.ChildByFieldName("value")
	if value == nil {
		return nil
	}
	switch value.Kind() {
	case "identifier", "member_expression":
		ref := &ast.TypeReference{At: c.at(value), Name: c.text(value)}
		for _, arg := range named(clause.ChildByFieldName("type_arguments")) {
			ref.Args = append(ref.Args, c.typ(arg))
		}
		return ref
	}
	return &ast.RawType{At: c.at(value), Kind: value.Kind(), Text: c.text(value)}
}

func (c *converter) typeParams(n *ts.Node) []string {
	var out []string
	for _, p := range named(n) {
		out = append(out, c.text(p))
	}
	return out
}

// memberKeywords are the anonymous modifier tokens of class members
var memberKeywords = map[string]bool{
	ast.ModStatic:   true,
	ast.ModReadonly: true,
	ast.ModAsync:    true,
	ast.ModAbstract: true,
	ast.ModDeclare:  true,
	ast.ModAccessor: true,
	ast.ModGet:      true,
	ast.ModSet:      true,
	"*":             true,
}

// modifiers collects the modifier tokens of n that precede name
func (c *converter) modifiers(n, name *ts.Node) []string {
	var mods []string
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.StartByte() >= name.StartByte() {
			break
		}
		switch k := child.Kind(); {
		case k == "accessibility_modifier":
			mods = append(mods, c.text(child))
		case k == "override_modifier":
			mods = append(mods, ast.ModOverride)
		case !child.IsNamed() && memberKeywords[k]:
			mods = append(mods, k)
		}
	}
	return mods
}

// suffix reports whether tok follows name directly among n's children
func suffix(n, name *ts.Node, tok string) bool {
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.StartByte() < name.EndByte() {
			continue
		}
		return !child.IsNamed() && child.Kind() == tok
	}
	return false
}

func (c *converter) member(n *ts.Node) ast.ClassMember {
	name := n.ChildByFieldName("name")
	decorated := n.ChildByFieldName("decorator") != nil
	switch kind := n.Kind(); {
	case decorated || name == nil:
	case kind == "method_definition" || kind == "method_signature" || kind == "abstract_method_signature":
		m := &ast.MethodDeclaration{
			At:         c.at(n),
			Modifiers:  c.modifiers(n, name),
			Name:       c.text(name),
			Optional:   suffix(n, name, "?"),
			TypeParams: c.typeParams(n.ChildByFieldName("type_parameters")),
			Params:     c.params(n.ChildByFieldName("parameters")),
			ReturnType: c.annotation(n.ChildByFieldName("return_type")),
		}
		if body := n.ChildByFieldName("body"); body != nil {
			m.Body = &ast.Block{At: c.at(body), Raw: c.blockLines(body)}
		}
		return m
	case kind == "public_field_definition":
		p := &ast.PropertyDeclaration{
			At:        c.at(n),
			Modifiers: c.modifiers(n, name),
			Name:      c.text(name),
			Optional:  suffix(n, name, "?"),
			Definite:  suffix(n, name, "!"),
			Type:      c.annotation(n.ChildByFieldName("type")),
		}
		if v := n.ChildByFieldName("value"); v != nil {
			p.Initializer = &ast.RawExpression{At: c.at(v), Text: c.text(v)}
		}
		return p
	}
	return &ast.RawMember{At: c.at(n), Kind: n.Kind(), Lines: dedent(c.text(n))}
}

func (c *converter) params(n *ts.Node) []*ast.Parameter {
	var out []*ast.Parameter
	for _, child := range named(n) {
		pattern := child.ChildByFieldName("pattern")
		if pattern == nil {
			continue
		}
		p := &ast.Parameter{
			At:        c.at(child),
			Modifiers: c.modifiers(child, pattern),
			Name:      c.text(pattern),
			Optional:  child.Kind() == "optional_parameter",
			Type:      c.annotation(child.ChildByFieldName("type")),
		}
		if pattern.Kind() == "rest_pattern" {
			p.Rest = true
			p.Name = strings.TrimSpace(strings.TrimPrefix(p.Name, "..."))
		}
		if v := child.ChildByFieldName("value"); v != nil {
			p.Default = &ast.RawExpression{At: c.at(v), Text: c.text(v)}
		}
		out = append(out, p)
	}
	return out
}

// blockLines returns a statement block's contents as dedented lines
func (c *converter) blockLines(body *ts.Node) []string {
	text := c.text(body)
	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")
	return dedent(text)
}

// annotation unwraps `: T`; annotations such as `: asserts x` stay raw
func (c *converter) annotation(n *ts.Node) ast.Type {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "type_annotation":
		return c.typ(firstNamed(n))
	case "asserts_annotation", "type_predicate_annotation":
		return &ast.RawType{At: c.at(n), Kind: n.Kind(), Text: strings.TrimSpace(strings.TrimPrefix(c.text(n), ":"))}
	}
	return c.typ(n)
}

func (c *converter) signatures(body *ts.Node) []*ast.PropertySignature {
	var out []*ast.PropertySignature
	for _, n := range named(body) {
		sig := &ast.PropertySignature{At: c.at(n), Text: c.text(n)}
		switch n.Kind() {
		case "property_signature":
			name := n.ChildByFieldName("name")
			sig.Text = ""
			sig.Readonly = hasToken(n, ast.ModReadonly)
			sig.Name, sig.Quoted = c.propertyName(name)
			sig.Optional = suffix(n, name, "?")
			sig.Type = c.annotation(n.ChildByFieldName("type"))
		case "method_signature":
			sig.Kind = ast.SignatureMethod
			sig.Name, _ = c.propertyName(n.ChildByFieldName("name"))
		case "index_signature":
			sig.Kind = ast.SignatureIndex
		case "construct_signature":
			sig.Kind = ast.SignatureConstruct
		default:
			sig.Kind = ast.SignatureCall
		}
		out = append(out, sig)
	}
	return out
}

// propertyName decodes a member name, reporting whether it was quoted
func (c *converter) propertyName(n *ts.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	if n.Kind() == "string" {
		return c.stringValue(n), true
	}
	return c.text(n), false
}

// stringValue decodes a string literal node from its fragments and escapes
func (c *converter) stringValue(n *ts.Node) string {
	text := c.text(n)
	if text == "" {
		return ""
	}
	quote := text[0]
	var sb strings.Builder
	for i := uint(0); i < uint(n.NamedChildCount()); i++ {
		part := n.NamedChild(i)
		raw := c.text(part)
		if part.Kind() != "escape_sequence" {
			sb.WriteString(raw)
			continue
		}
		// escaped quotes and line continuations
		if len(raw) == 2 && strings.IndexByte("'\"`\n", raw[1]) >= 0 {
			if raw[1] != '\n' {
				sb.WriteByte(raw[1])
			}
			continue
		}
		r, _, tail, err := strconv.UnquoteChar(raw, quote)
		if err != nil || tail != "" {
			sb.WriteString(raw)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (c *converter) typ(n *ts.Node) ast.Type {
	if n == nil {
		return nil
	}
	at := c.at(n)
	switch n.Kind() {
	case "type_annotation":
		return c.typ(firstNamed(n))
	case "predefined_type":
		return &ast.KeywordType{At: at, Keyword: c.text(n)}
	case "type_identifier", "nested_type_identifier", "identifier":
		return &ast.TypeReference{At: at, Name: c.text(n)}
	case "generic_type":
		name := c.text(n.ChildByFieldName("name"))
		var args []ast.Type
		for _, arg := range named(n.ChildByFieldName("type_arguments")) {
			args = append(args, c.typ(arg))
		}
		if name == "Array" && len(args) == 1 {
			return &ast.ArrayType{At: at, Element: args[0], Generic: true}
		}
		return &ast.TypeReference{At: at, Name: name, Args: args}
	case "array_type":
		return &ast.ArrayType{At: at, Element: c.typ(firstNamed(n))}
	case "union_type":
		if types := c.operands(n, "union_type"); len(types) > 1 {
			return &ast.UnionType{At: at, Types: types}
		} else if len(types) == 1 {
			return types[0]
		}
	case "intersection_type":
		if types := c.operands(n, "intersection_type"); len(types) > 1 {
			return &ast.IntersectionType{At: at, Types: types}
		} else if len(types) == 1 {
			return types[0]
		}
	case "parenthesized_type":
		return &ast.ParenthesizedType{At: at, Type: c.typ(firstNamed(n))}
	case "tuple_type":
		t := &ast.TupleType{At: at}
		for _, el := range named(n) {
			t.Elements = append(t.Elements, c.typ(el))
		}
		return t
	case "literal_type":
		lit := firstNamed(n)
		switch lit.Kind() {
		case "null":
			return &ast.KeywordType{At: at, Keyword: ast.KeywordNull}
		case "undefined":
			return &ast.KeywordType{At: at, Keyword: ast.KeywordUndefined}
		}
		return &ast.LiteralType{At: at, Literal: c.literal(lit)}
	case "object_type", "interface_body":
		return &ast.TypeLiteral{At: at, Members: c.signatures(n)}
	case "function_type":
		if n.ChildByFieldName("type_parameters") == nil {
			return &ast.FunctionType{
				At:     at,
				Params: c.params(n.ChildByFieldName("parameters")),
				Return: c.annotation(n.ChildByFieldName("return_type")),
			}
		}
	}
	return &ast.RawType{At: at, Kind: n.Kind(), Text: c.text(n)}
}

// operands flattens the left-nested binary tree tree-sitter builds for
// `A | B | C`; a leading `|` contributes no operand
func (c *converter) operands(n *ts.Node, kind string) []ast.Type {
	var out []ast.Type
	for _, child := range named(n) {
		if child.Kind() == kind {
			out = append(out, c.operands(child, kind)...)
			continue
		}
		out = append(out, c.typ(child))
	}
	return out
}

func (c *converter) literal(n *ts.Node) ast.Expression {
	at := c.at(n)
	switch n.Kind() {
	case "string":
		return &ast.StringLiteral{At: at, Value: c.stringValue(n)}
	case "number":
		return &ast.NumericLiteral{At: at, Text: c.text(n)}
	case "true", "false":
		return &ast.BooleanLiteral{At: at, Value: n.Kind() == "true"}
	case "null":
		return &ast.NullLiteral{At: at}
	case "unary_expression":
		return &ast.PrefixUnaryExpression{
			At:       at,
			Operator: c.text(n.ChildByFieldName("operator")),
			Operand:  c.literal(n.ChildByFieldName("argument")),
		}
	}
	return &ast.RawExpression{At: at, Text: c.text(n)}
}

// dedent splits raw source into lines. The first line is trimmed; the rest
// lose their common leading whitespace. Trailing blank lines are dropped.
func dedent(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}
	head := ""
	if len(lines) > 0 {
		head = strings.TrimSpace(lines[0])
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	prefix := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = indent
			first = false
			continue
		}
		prefix = commonPrefix(prefix, indent)
	}

	var out []string
	if head != "" {
		out = append(out, head)
	}
	for _, line := range lines {
		if head == "" && len(out) == 0 && line == "" {
			continue
		}
		out = append(out, strings.TrimPrefix(line, prefix))
	}
	return out
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
