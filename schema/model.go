// Package schema describes the shape of a declared type as data:
// primitives, arrays of element variants and objects whose fields
// each carry a list of variants.
//
// A Schema is immutable once extracted and can be reused across any
// number of generation runs.
package schema

import (
	"strings"
)

// PrimitiveKind identifies a scalar field type
type PrimitiveKind int

const (
	String PrimitiveKind = iota + 1
	Number
	Boolean
)

func (k PrimitiveKind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	default:
		return "invalid"
	}
}

// Schema is one of *Primitive, *Array or *Object
type Schema interface {
	schemaNode()
	String() string
}

// Primitive is a scalar field
type Primitive struct {
	Kind PrimitiveKind
}

// Array is an array whose elements each take one of Elements.
// Nested arrays are flattened, so Elements never describes an array of arrays
// written directly as T[][].
type Array struct {
	Elements []Schema
}

// Object is a record with fields in declaration order
type Object struct {
	Properties []Property
}

// Property is a named field and the variants it may take.
// Variants is never empty.
type Property struct {
	Name     string
	Variants []Schema
}

func (*Primitive) schemaNode() {}
func (*Array) schemaNode()     {}
func (*Object) schemaNode()    {}

func (p *Primitive) String() string { return p.Kind.String() }

func (a *Array) String() string {
	if len(a.Elements) == 1 {
		return a.Elements[0].String() + "[]"
	}
	return "(" + variantString(a.Elements) + ")[]"
}

func (o *Object) String() string {
	if len(o.Properties) == 0 {
		return "{}"
	}
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		parts[i] = p.Name + ": " + variantString(p.Variants)
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// Property looks up a field by name
func (o *Object) Property(name string) (Property, bool) {
	for _, p := range o.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Names returns field names in declaration order
func (o *Object) Names() []string {
	names := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		names[i] = p.Name
	}
	return names
}

func variantString(variants []Schema) string {
	parts := make([]string, len(variants))
	for i, v := range variants {
		parts[i] = v.String()
	}
	return strings.Join(parts, " | ")
}

// Shorthand constructors, mostly for tests and callers building schemas by hand

// NewPrimitive returns a primitive schema of the given kind
func NewPrimitive(kind PrimitiveKind) *Primitive {
	return &Primitive{Kind: kind}
}

// NewArray returns an array schema over the given element variants
func NewArray(elements ...Schema) *Array {
	return &Array{Elements: elements}
}
