package ast

// Type is a type expression
type Type interface {
	Node
	typeNode()
}

// Keyword type names
const (
	KeywordString    = "string"
	KeywordNumber    = "number"
	KeywordBoolean   = "boolean"
	KeywordNull      = "null"
	KeywordUndefined = "undefined"
	KeywordAny       = "any"
	KeywordUnknown   = "unknown"
	KeywordVoid      = "void"
	KeywordNever     = "never"
	KeywordObject    = "object"
	KeywordBigint    = "bigint"
	KeywordSymbol    = "symbol"
)

// KeywordType is a built-in type such as `string` or `undefined`
type KeywordType struct {
	At      Position
	Keyword string
}

func (t *KeywordType) Pos() Position { return t.At }
func (t *KeywordType) typeNode()     {}

// TypeReference names another type, optionally with type arguments: `Date`, `Map<K, V>`
type TypeReference struct {
	At   Position
	Name string // may be qualified: ns.Name
	Args []Type
}

func (t *TypeReference) Pos() Position { return t.At }
func (t *TypeReference) typeNode()     {}

// ArrayType is `T[]`, or `Array<T>` when Generic is set
type ArrayType struct {
	At      Position
	Element Type
	Generic bool
}

func (t *ArrayType) Pos() Position { return t.At }
func (t *ArrayType) typeNode()     {}

// UnionType is `A | B | C` with at least two members
type UnionType struct {
	At    Position
	Types []Type
}

func (t *UnionType) Pos() Position { return t.At }
func (t *UnionType) typeNode()     {}

// IntersectionType is `A & B`
type IntersectionType struct {
	At    Position
	Types []Type
}

func (t *IntersectionType) Pos() Position { return t.At }
func (t *IntersectionType) typeNode()     {}

// ParenthesizedType is `(T)`
type ParenthesizedType struct {
	At   Position
	Type Type
}

func (t *ParenthesizedType) Pos() Position { return t.At }
func (t *ParenthesizedType) typeNode()     {}

// TupleType is `[A, B]`
type TupleType struct {
	At       Position
	Elements []Type
}

func (t *TupleType) Pos() Position { return t.At }
func (t *TupleType) typeNode()     {}

// LiteralType is a literal used as a type: `"a"`, `42`, `true`, `-1`
type LiteralType struct {
	At      Position
	Literal Expression
}

func (t *LiteralType) Pos() Position { return t.At }
func (t *LiteralType) typeNode()     {}

// TypeLiteral is an inline object type `{ a: string; b?: number }`
type TypeLiteral struct {
	At      Position
	Members []*PropertySignature
}

func (t *TypeLiteral) Pos() Position { return t.At }
func (t *TypeLiteral) typeNode()     {}

// SignatureKind tells the members of a type literal or interface apart
type SignatureKind int

const (
	SignatureProperty SignatureKind = iota // name: T
	SignatureMethod                        // name(): T
	SignatureIndex                         // [key: K]: T
	SignatureCall                          // (): T
	SignatureConstruct                     // new (): T
)

func (k SignatureKind) String() string {
	switch k {
	case SignatureMethod:
		return "method signature"
	case SignatureIndex:
		return "index signature"
	case SignatureCall:
		return "call signature"
	case SignatureConstruct:
		return "construct signature"
	default:
		return "property signature"
	}
}

// PropertySignature is a member of a type literal or interface.
// Members other than properties keep only their name, if any, and their
// source text.
type PropertySignature struct {
	At       Position
	Kind     SignatureKind
	Readonly bool
	Name     string
	Quoted   bool // name was written as a string literal
	Optional bool
	Type     Type   // nil when the annotation is missing
	Text     string // source text of a non-property member, without separator
}

func (p *PropertySignature) Pos() Position { return p.At }

// Unparen strips any number of enclosing parentheses
func Unparen(t Type) Type {
	for {
		p, ok := t.(*ParenthesizedType)
		if !ok {
			return t
		}
		t = p.Type
	}
}

// RawType is a type expression outside the modelled subset, such as
// `keyof T` or a mapped type, kept as source text
type RawType struct {
	At   Position
	Kind string // grammar name of the construct, e.g. "index_type_query"
	Text string
}

func (t *RawType) Pos() Position { return t.At }
func (t *RawType) typeNode()     {}

// FunctionType is `(a: A, b?: B) => R`
type FunctionType struct {
	At     Position
	Params []*Parameter
	Return Type
}

func (t *FunctionType) Pos() Position { return t.At }
func (t *FunctionType) typeNode()     {}
