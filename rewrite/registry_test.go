package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/schema"
	"github.com/teranos/fakegen/tsdecl/parser"
)

func readTestdata(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join("testdata", name))
	return string(data), err
}

func TestRegistry_IndexesAliasesAndInterfaces(t *testing.T) {
	prog, err := parser.Parse(`
type Point = { x: number; y: number };
interface Named { name: string }
interface Labeled extends Named { label: string }
class Other {}
`)
	require.NoError(t, err)
	reg := NewRegistry(prog, schema.Options{})

	assert.Equal(t, []string{"Point", "Named", "Labeled"}, reg.Names())
	assert.True(t, reg.Has("Named"))
	assert.False(t, reg.Has("Other"))

	s, err := reg.Schema("Labeled")
	require.NoError(t, err)
	assert.Equal(t, "{ name: string; label: string }", s.String())
}

func TestRegistry_InterfaceMergingAndAliasBase(t *testing.T) {
	prog, err := parser.Parse(`
type Base = { id: number };
interface Item extends Base { a: string }
interface Item { b: boolean }
`)
	require.NoError(t, err)
	reg := NewRegistry(prog, schema.Options{})

	s, err := reg.Schema("Item")
	require.NoError(t, err)
	assert.Equal(t, "{ id: number; a: string; b: boolean }", s.String())
}

func TestRegistry_CrossReferences(t *testing.T) {
	prog, err := parser.Parse(`
interface Address { city: string }
type User = { name: string; home: Address; past: Address[] };
`)
	require.NoError(t, err)
	s, err := NewRegistry(prog, schema.Options{}).Schema("User")
	require.NoError(t, err)
	assert.Equal(t, "{ name: string; home: { city: string }; past: { city: string }[] }", s.String())
}

func TestRegistry_UnknownName(t *testing.T) {
	prog, err := parser.Parse("type A = { a: string };")
	require.NoError(t, err)
	_, err = NewRegistry(prog, schema.Options{}).Schema("B")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRegistry_SelfExtendingInterface(t *testing.T) {
	prog, err := parser.Parse(`
interface A extends B { a: string }
interface B extends A { b: string }
`)
	require.NoError(t, err)
	reg := NewRegistry(prog, schema.Options{})
	s, err := reg.Schema("A")
	require.NoError(t, err)
	assert.Equal(t, "{ b: string; a: string }", s.String())
}

func TestRegistry_CachesFailures(t *testing.T) {
	prog, err := parser.Parse("type Id = string | number;")
	require.NoError(t, err)
	reg := NewRegistry(prog, schema.Options{})

	_, err1 := reg.Schema("Id")
	_, err2 := reg.Schema("Id")
	require.Error(t, err1)
	assert.Same(t, err1, err2)
	assert.True(t, errors.IsUnsupportedType(err1))
}
