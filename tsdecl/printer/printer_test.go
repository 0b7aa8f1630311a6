package printer

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/fakegen/tsdecl/ast"
	"github.com/teranos/fakegen/tsdecl/parser"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPrint_ExampleGolden(t *testing.T) {
	prog, err := parser.Parse(readFile(t, "testdata/example.ts"))
	require.NoError(t, err)

	got := Print(prog)
	want := strings.TrimRight(readFile(t, "testdata/example.golden"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Print() mismatch (-want +got):\n%s", diff)
	}
}

const roundTripSource = `import { Base } from "./base";
import type { Id } from "./id";
export type Tagged<T> = Array<T> | (T & { tag: 'x' })[];
interface Point { readonly x: number; "y-axis"?: number }
export abstract class Repo<T> extends Base implements Store<T>, Closer {
  private items: Map<string, T> = new Map()
  static version = "1.0";
  constructor(private readonly name: string, limit = 10) {
      super(name);
  }
  public abstract fakeRepo(): Tagged<Point>;
  protected handle(cb: (err: Error | null) => void, ...rest: any[]): void { cb(null); }
  get size(): number {
      if (this.items.size > 0) {
          return this.items.size;
      }
      return 0;
  }
}
`

func TestPrint_RoundTripIsStable(t *testing.T) {
	first, err := parser.Parse(roundTripSource)
	require.NoError(t, err)
	printed := Print(first)

	second, err := parser.Parse(printed)
	require.NoError(t, err, "printed output must parse:\n%s", printed)
	reprinted := Print(second)

	if diff := cmp.Diff(printed, reprinted); diff != "" {
		t.Errorf("print is not stable across a parse (-first +second):\n%s", diff)
	}

	assert.Equal(t, `import { Base } from "./base";
import type { Id } from "./id";

export type Tagged<T> = Array<T> | (T & {
    tag: "x";
})[];

interface Point {
    readonly x: number;
    "y-axis"?: number;
}

export abstract class Repo<T> extends Base implements Store<T>, Closer {
    private items: Map<string, T> = new Map();
    static version = "1.0";
    constructor(private readonly name: string, limit = 10) {
        super(name);
    }
    public abstract fakeRepo(): Tagged<Point>;
    protected handle(cb: (err: Error | null) => void, ...rest: any[]): void {
        cb(null);
    }
    get size(): number {
        if (this.items.size > 0) {
            return this.items.size;
        }
        return 0;
    }
}`, printed)
}

func TestPrint_KeepsUnmodelledSource(t *testing.T) {
	src := `export function twice(n: number): number {
  return n * 2;
}
type Dict = { [k: string]: string; size(): number; a: string };
type Keys = keyof Dict;
class Cache {
  [key: string]: unknown;
  static {
    warm();
  }
}`
	prog, err := parser.Parse(src)
	require.NoError(t, err)

	want := `export function twice(n: number): number {
  return n * 2;
}

type Dict = {
    [k: string]: string;
    size(): number;
    a: string;
};

type Keys = keyof Dict;

class Cache {
    [key: string]: unknown;
    static {
      warm();
    }
}`
	if diff := cmp.Diff(want, Print(prog)); diff != "" {
		t.Errorf("Print() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrint_SynthesizedMethod(t *testing.T) {
	method := &ast.MethodDeclaration{
		Modifiers:  []string{ast.ModPublic},
		Name:       "fakeUser",
		ReturnType: &ast.TypeReference{Name: "User"},
		Body: &ast.Block{Statements: []ast.BodyStatement{
			&ast.ReturnStatement{Value: &ast.ObjectLiteral{Properties: []*ast.PropertyAssignment{
				{Key: "name", Value: &ast.StringLiteral{Value: "abc"}},
				{Key: "score", Value: &ast.PrefixUnaryExpression{Operator: "-", Operand: &ast.NumericLiteral{Text: "12"}}},
				{Key: "tags", Value: &ast.ArrayLiteral{Elements: []ast.Expression{
					&ast.BooleanLiteral{Value: true},
					&ast.NullLiteral{},
				}}},
				{Key: "nested key", Value: &ast.ObjectLiteral{Properties: []*ast.PropertyAssignment{
					{Key: "x", Value: &ast.NumericLiteral{Text: "1.5"}},
				}}},
				{Key: "empty", Value: &ast.ObjectLiteral{}},
			}}},
		}},
	}
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.ClassDeclaration{Modifiers: []string{ast.ModExport}, Name: "Fixtures", Members: []ast.ClassMember{method}},
	}}

	want := `export class Fixtures {
    public fakeUser(): User {
        return {
            name: "abc",
            score: -12,
            tags: [true, null],
            "nested key": {
                x: 1.5
            },
            empty: {}
        };
    }
}`
	if diff := cmp.Diff(want, Print(prog)); diff != "" {
		t.Errorf("Print() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintExpression_ArrayOfObjects(t *testing.T) {
	expr := &ast.ArrayLiteral{Elements: []ast.Expression{
		&ast.ObjectLiteral{Properties: []*ast.PropertyAssignment{{Key: "a", Value: &ast.NumericLiteral{Text: "1"}}}},
		&ast.ArrayLiteral{},
	}}
	assert.Equal(t, "[{\n    a: 1\n}, []]", PrintExpression(expr))
}

func TestPrintType(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"string", "string"},
		{"(string | number)[]", "(string | number)[]"},
		{"Array<string | number>", "Array<string | number>"},
		{"| 'a' | \"b\"", `"a" | "b"`},
		{"[number, string]", "[number, string]"},
		{"() => void", "() => void"},
		{"{}", "{}"},
		{"{ a: string, b?: { c: boolean } }", "{\n    a: string;\n    b?: {\n        c: boolean;\n    };\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			typ, err := parser.ParseType(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, PrintType(typ))
		})
	}

	// Compound element types are parenthesized even when built directly
	arr := &ast.ArrayType{Element: &ast.UnionType{Types: []ast.Type{
		&ast.KeywordType{Keyword: "string"},
		&ast.FunctionType{Return: &ast.KeywordType{Keyword: "void"}},
	}}}
	assert.Equal(t, "(string | (() => void))[]", PrintType(arr))
}

func TestQuoteString(t *testing.T) {
	tests := map[string]string{
		"":              `""`,
		"plain":         `"plain"`,
		`say "hi"`:      `"say \"hi\""`,
		"back\\slash":   `"back\\slash"`,
		"line\nbreak\t": `"line\nbreak\t"`,
		"\x01":          `"\u0001"`,
		"\u2028":        `"\u2028"`,
		"héllo ✓":       `"héllo ✓"`,
	}
	for in, want := range tests {
		assert.Equal(t, want, QuoteString(in), "QuoteString(%q)", in)
	}
}

func TestPropertyKey(t *testing.T) {
	assert.Equal(t, "name", PropertyKey("name"))
	assert.Equal(t, "_private$", PropertyKey("_private$"))
	assert.Equal(t, `"with space"`, PropertyKey("with space"))
	assert.Equal(t, `"1st"`, PropertyKey("1st"))
	assert.Equal(t, `""`, PropertyKey(""))
}
