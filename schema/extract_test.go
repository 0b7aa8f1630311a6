package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/tsdecl/ast"
	"github.com/teranos/fakegen/tsdecl/parser"
)

func mustType(t *testing.T, src string) ast.Type {
	t.Helper()
	typ, err := parser.ParseType(src)
	require.NoError(t, err, "parse %q", src)
	return typ
}

func extract(t *testing.T, src string) Schema {
	t.Helper()
	s, err := NewExtractor(nil, Options{}).Extract(mustType(t, src))
	require.NoError(t, err)
	return s
}

func TestExtract_Primitives(t *testing.T) {
	obj, ok := extract(t, "{ a: string; b: number; c: boolean }").(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, obj.Names())

	a, _ := obj.Property("a")
	assert.Equal(t, []Schema{NewPrimitive(String)}, a.Variants)
	b, _ := obj.Property("b")
	assert.Equal(t, []Schema{NewPrimitive(Number)}, b.Variants)
	c, _ := obj.Property("c")
	assert.Equal(t, []Schema{NewPrimitive(Boolean)}, c.Variants)
}

func TestExtract_SingleStringProperty(t *testing.T) {
	obj := extract(t, "{ a: string }").(*Object)
	require.Len(t, obj.Properties, 1)
	assert.Equal(t, "a", obj.Properties[0].Name)
	assert.Equal(t, "{ a: string }", obj.String())
}

func TestExtract_NumberArrayProperty(t *testing.T) {
	obj := extract(t, "{ e: number[] }").(*Object)
	e, ok := obj.Property("e")
	require.True(t, ok)
	require.Len(t, e.Variants, 1)
	arr, ok := e.Variants[0].(*Array)
	require.True(t, ok)
	assert.Equal(t, []Schema{NewPrimitive(Number)}, arr.Elements)
}

func TestExtract_UnionPropertyKeepsVariantOrder(t *testing.T) {
	obj := extract(t, "{ c: string | number }").(*Object)
	c, _ := obj.Property("c")
	assert.Equal(t, []Schema{NewPrimitive(String), NewPrimitive(Number)}, c.Variants)
}

func TestExtract_DropsUnsupportedMember(t *testing.T) {
	ex := NewExtractor(nil, Options{})
	s, err := ex.ExtractDeclaration("Fake", mustType(t, "{ a: string; when: Date; f: () => void; b: number }"))
	require.NoError(t, err)

	obj := s.(*Object)
	assert.Equal(t, []string{"a", "b"}, obj.Names())
	require.Len(t, ex.Drops(), 2)
	assert.Equal(t, "Fake.when", ex.Drops()[0].Path)
	assert.Equal(t, "unknown type Date", ex.Drops()[0].Reason)
	assert.Equal(t, "Fake.f", ex.Drops()[1].Path)
}

func TestExtract_DropsSignatureMembers(t *testing.T) {
	ex := NewExtractor(nil, Options{})
	s, err := ex.ExtractDeclaration("T", mustType(t, "{ a: string; m(): void }"))
	require.NoError(t, err)
	assert.Equal(t, "{ a: string }", s.String())
	assert.Equal(t, []Drop{{Path: "T.m", Reason: "method signature"}}, ex.Drops())

	ex = NewExtractor(nil, Options{})
	s, err = ex.ExtractDeclaration("D", mustType(t, "{ a: string; [k: string]: string }"))
	require.NoError(t, err)
	assert.Equal(t, "{ a: string }", s.String())
	assert.Equal(t, []Drop{{Path: "D", Reason: "index signature"}}, ex.Drops())

	_, err = NewExtractor(nil, Options{Strict: true}).ExtractDeclaration("D", mustType(t, "{ [k: string]: string }"))
	assert.True(t, errors.IsUnsupportedType(err))
}

func TestExtract_StrictModeRejects(t *testing.T) {
	ex := NewExtractor(nil, Options{Strict: true})
	_, err := ex.ExtractDeclaration("Fake", mustType(t, "{ a: string; when: Date }"))
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedType(err))

	path, ok := UnsupportedPath(err)
	require.True(t, ok)
	assert.Equal(t, "Fake.when", path)
}

func TestExtract_UnionArrayElements(t *testing.T) {
	obj := extract(t, "{ f: (string | number | boolean)[] }").(*Object)
	f, _ := obj.Property("f")
	arr := f.Variants[0].(*Array)
	assert.Equal(t, []Schema{NewPrimitive(String), NewPrimitive(Number), NewPrimitive(Boolean)}, arr.Elements)
	assert.Equal(t, "(string | number | boolean)[]", arr.String())
}

func TestExtract_FlattensNestedArrays(t *testing.T) {
	tests := map[string]string{
		"number[][]":                  "number[]",
		"string[][][]":                "string[]",
		"(number[])[]":                "number[]",
		"Array<Array<boolean>>":       "boolean[]",
		"(string | number[])[]":       "(string | number[])[]",
		"{ x: number[][] }[]":         "{ x: number[] }[]",
		"(string | { a: boolean })[]": "(string | { a: boolean })[]",
	}
	for src, want := range tests {
		t.Run(src, func(t *testing.T) {
			assert.Equal(t, want, extract(t, src).String())
		})
	}
}

func TestExtract_NestedObjects(t *testing.T) {
	obj := extract(t, `{
		j: {
			a: string;
			b: { c: number }[];
		};
	}`).(*Object)
	assert.Equal(t, "{ j: { a: string; b: { c: number }[] } }", obj.String())
}

func TestExtract_QuotedAndDuplicateNames(t *testing.T) {
	obj := extract(t, `{ "first-name": string; a: string; a: number }`).(*Object)
	assert.Equal(t, []string{"first-name", "a"}, obj.Names())
	a, _ := obj.Property("a")
	assert.Equal(t, []Schema{NewPrimitive(Number)}, a.Variants)
}

func TestExtract_UnsupportedUnionVariantDropped(t *testing.T) {
	ex := NewExtractor(nil, Options{})
	s, err := ex.ExtractDeclaration("T", mustType(t, "{ name: string | null; tags: (string | undefined)[] }"))
	require.NoError(t, err)
	assert.Equal(t, "{ name: string; tags: string[] }", s.String())
	assert.Len(t, ex.Drops(), 2)
}

func TestExtract_EmptyUnionDropsMember(t *testing.T) {
	ex := NewExtractor(nil, Options{})
	s, err := ex.ExtractDeclaration("T", mustType(t, "{ a: null | undefined; b: boolean }"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, s.(*Object).Names())
}

func TestExtract_TopLevelUnsupported(t *testing.T) {
	for _, src := range []string{"Date", "string | number", "[string, number]", "A & B", `"x"`} {
		t.Run(src, func(t *testing.T) {
			_, err := NewExtractor(nil, Options{}).Extract(mustType(t, src))
			require.Error(t, err)
			assert.True(t, errors.IsUnsupportedType(err))
		})
	}
}

func TestExtract_References(t *testing.T) {
	decls := map[string]string{
		"Point": "{ x: number; y: number }",
		"Tags":  "string[]",
		"Shape": "{ origin: Point; tags: Tags; points: Point[] }",
	}
	resolver := ResolverFunc(func(name string) (ast.Type, bool) {
		src, ok := decls[name]
		if !ok {
			return nil, false
		}
		typ, err := parser.ParseType(src)
		return typ, err == nil
	})

	s, err := NewExtractor(resolver, Options{}).ExtractDeclaration("Shape", mustType(t, decls["Shape"]))
	require.NoError(t, err)
	assert.Equal(t,
		"{ origin: { x: number; y: number }; tags: string[]; points: { x: number; y: number }[] }",
		s.String())
}

func TestExtract_RecursiveReferenceIsUnsupported(t *testing.T) {
	decls := map[string]string{
		"Node": "{ value: number; next: Node; children: Node[] }",
		"A":    "{ b: B }",
		"B":    "{ a: A; ok: boolean }",
	}
	resolver := ResolverFunc(func(name string) (ast.Type, bool) {
		src, ok := decls[name]
		if !ok {
			return nil, false
		}
		typ, err := parser.ParseType(src)
		return typ, err == nil
	})

	ex := NewExtractor(resolver, Options{})
	s, err := ex.ExtractDeclaration("Node", mustType(t, decls["Node"]))
	require.NoError(t, err)
	assert.Equal(t, "{ value: number }", s.String())

	s, err = ex.ExtractDeclaration("A", mustType(t, decls["A"]))
	require.NoError(t, err)
	assert.Equal(t, "{ b: { ok: boolean } }", s.String())

	_, err = NewExtractor(resolver, Options{Strict: true}).ExtractDeclaration("Node", mustType(t, decls["Node"]))
	assert.True(t, errors.IsUnsupportedType(err))
}

func TestExtract_GenericReferenceIsUnsupported(t *testing.T) {
	ex := NewExtractor(ResolverFunc(func(string) (ast.Type, bool) { return nil, false }), Options{})
	s, err := ex.Extract(mustType(t, "{ m: Map<string, number>; ok: string }"))
	require.NoError(t, err)
	assert.Equal(t, "{ ok: string }", s.String())
	require.Len(t, ex.Drops(), 1)
	assert.Equal(t, "generic type Map<string, number>", ex.Drops()[0].Reason)
}
