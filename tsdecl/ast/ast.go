// Package ast defines the syntax tree for the TypeScript declaration subset
// fakegen reads and prints: imports, type aliases, interfaces and classes.
// Anything else survives as Raw* nodes holding source text.
package ast

// Node is implemented by every syntax tree node.
// Synthesized nodes report a zero Position.
type Node interface {
	Pos() Position
}

// Program is a parsed declaration document
type Program struct {
	Statements []Statement
}

// Statement is a top-level declaration
type Statement interface {
	Node
	statementNode()
}

// ImportDeclaration keeps an import statement verbatim
type ImportDeclaration struct {
	At   Position
	Text string // full statement including the trailing semicolon, if any
}

func (d *ImportDeclaration) Pos() Position { return d.At }
func (d *ImportDeclaration) statementNode() {}

// RawStatement is any other top-level statement, such as a function or an
// enum, kept as dedented source lines
type RawStatement struct {
	At    Position
	Kind  string
	Lines []string
}

func (d *RawStatement) Pos() Position { return d.At }
func (d *RawStatement) statementNode() {}

// TypeAliasDeclaration is `type Name<T> = Type;`.
// TypeParams hold each parameter's source text, e.g. "T extends object".
type TypeAliasDeclaration struct {
	At         Position
	Exported   bool
	Name       string
	TypeParams []string
	Type       Type
}

func (d *TypeAliasDeclaration) Pos() Position { return d.At }
func (d *TypeAliasDeclaration) statementNode() {}

// InterfaceDeclaration is `interface Name extends A, B { members }`
type InterfaceDeclaration struct {
	At         Position
	Exported   bool
	Name       string
	TypeParams []string
	Extends    []Type
	Members    []*PropertySignature
}

func (d *InterfaceDeclaration) Pos() Position { return d.At }
func (d *InterfaceDeclaration) statementNode() {}

// ClassDeclaration is `[export] [abstract] class Name { members }`
type ClassDeclaration struct {
	At         Position
	Modifiers  []string // in source order: export, default, declare, abstract
	Name       string
	TypeParams []string
	Extends    Type // nil when absent
	Implements []Type
	Members    []ClassMember
}

func (d *ClassDeclaration) Pos() Position { return d.At }
func (d *ClassDeclaration) statementNode() {}

// HasModifier reports whether the class carries modifier m
func (d *ClassDeclaration) HasModifier(m string) bool {
	return hasModifier(d.Modifiers, m)
}

// ClassMember is a method or property inside a class body
type ClassMember interface {
	Node
	MemberName() string
	classMemberNode()
}

// Parameter is a single method parameter
type Parameter struct {
	At        Position
	Modifiers []string // constructor parameter properties: public, private, readonly...
	Rest      bool
	Name      string
	Optional  bool
	Type      Type       // nil when unannotated
	Default   Expression // nil when absent
}

func (p *Parameter) Pos() Position { return p.At }

// MethodDeclaration is a class method, abstract when Body is nil
type MethodDeclaration struct {
	At         Position
	Modifiers  []string
	Name       string
	Optional   bool
	TypeParams []string
	Params     []*Parameter
	ReturnType Type   // nil when unannotated
	Body       *Block // nil for `name(): T;`
}

func (m *MethodDeclaration) Pos() Position     { return m.At }
func (m *MethodDeclaration) MemberName() string { return m.Name }
func (m *MethodDeclaration) classMemberNode()   {}

// HasModifier reports whether the method carries modifier mod
func (m *MethodDeclaration) HasModifier(mod string) bool {
	return hasModifier(m.Modifiers, mod)
}

// PropertyDeclaration is a class field
type PropertyDeclaration struct {
	At          Position
	Modifiers   []string
	Name        string
	Optional    bool
	Definite    bool       // name!: T
	Type        Type       // nil when unannotated
	Initializer Expression // nil when absent
}

func (p *PropertyDeclaration) Pos() Position     { return p.At }
func (p *PropertyDeclaration) MemberName() string { return p.Name }
func (p *PropertyDeclaration) classMemberNode()   {}

// HasModifier reports whether the property carries modifier mod
func (p *PropertyDeclaration) HasModifier(mod string) bool {
	return hasModifier(p.Modifiers, mod)
}

// RawMember is a class member fakegen does not model, such as an index
// signature or a static block, kept as dedented source lines
type RawMember struct {
	At    Position
	Kind  string
	Lines []string
}

func (m *RawMember) Pos() Position     { return m.At }
func (m *RawMember) MemberName() string { return "" }
func (m *RawMember) classMemberNode()   {}

// Block is a method body.
// Source bodies are kept as dedented raw lines; synthesized bodies hold statements.
type Block struct {
	At         Position
	Raw        []string
	Statements []BodyStatement
}

func (b *Block) Pos() Position { return b.At }

// BodyStatement is a statement synthesized into a method body
type BodyStatement interface {
	Node
	bodyStatementNode()
}

// ReturnStatement is `return Value;`
type ReturnStatement struct {
	At    Position
	Value Expression // nil for a bare return
}

func (r *ReturnStatement) Pos() Position     { return r.At }
func (r *ReturnStatement) bodyStatementNode() {}

// Modifier names shared by classes and members
const (
	ModExport    = "export"
	ModDefault   = "default"
	ModDeclare   = "declare"
	ModAbstract  = "abstract"
	ModPublic    = "public"
	ModPrivate   = "private"
	ModProtected = "protected"
	ModStatic    = "static"
	ModReadonly  = "readonly"
	ModAsync     = "async"
	ModOverride  = "override"
	ModAccessor  = "accessor"
	ModGet       = "get"
	ModSet       = "set"
)

func hasModifier(mods []string, m string) bool {
	for _, x := range mods {
		if x == m {
			return true
		}
	}
	return false
}

// WithoutModifier returns a copy of mods with every occurrence of m removed
func WithoutModifier(mods []string, m string) []string {
	out := make([]string, 0, len(mods))
	for _, x := range mods {
		if x != m {
			out = append(out, x)
		}
	}
	return out
}

// HasAccessModifier reports whether mods contains public, private or protected
func HasAccessModifier(mods []string) bool {
	return hasModifier(mods, ModPublic) || hasModifier(mods, ModPrivate) || hasModifier(mods, ModProtected)
}
