package schema

import (
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/logger"
	"github.com/teranos/fakegen/tsdecl/ast"
	"github.com/teranos/fakegen/tsdecl/printer"
)

// Resolver maps a declared type name to its type expression
type Resolver interface {
	Resolve(name string) (ast.Type, bool)
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(name string) (ast.Type, bool)

func (f ResolverFunc) Resolve(name string) (ast.Type, bool) { return f(name) }

// Options controls how unsupported constructs are handled
type Options struct {
	// Strict aborts on the first unsupported construct instead of dropping it
	Strict bool
}

// Drop records a construct left out of a schema
type Drop struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

// Extractor turns type expressions into schemas.
//
// In lenient mode an unsupported object member, union variant or array element
// variant is dropped and logged. A union or array left with no variants is
// unsupported in turn, which drops the enclosing member. Extract returns an
// error marked errors.ErrUnsupportedType only when nothing supported remains
// at the top, or on the first unsupported construct in strict mode.
type Extractor struct {
	resolver Resolver
	opts     Options
	log      *zap.SugaredLogger

	// references currently being expanded, for cycle detection
	expanding []string
	drops     []Drop
}

// NewExtractor creates an extractor. resolver may be nil, in which case every
// type reference is unsupported.
func NewExtractor(resolver Resolver, opts Options) *Extractor {
	return &Extractor{
		resolver: resolver,
		opts:     opts,
		log:      logger.Named("schema"),
	}
}

// WithLogger replaces the extractor's logger
func (e *Extractor) WithLogger(log *zap.SugaredLogger) *Extractor {
	e.log = log
	return e
}

// Drops returns everything dropped so far, in the order encountered
func (e *Extractor) Drops() []Drop {
	return e.drops
}

// Extract builds the schema for an anonymous type expression
func (e *Extractor) Extract(t ast.Type) (Schema, error) {
	return e.ExtractDeclaration("$", t)
}

// ExtractDeclaration builds the schema for the type declared as name.
// name roots the paths reported for dropped members.
func (e *Extractor) ExtractDeclaration(name string, t ast.Type) (Schema, error) {
	e.expanding = append(e.expanding[:0], name)
	defer func() { e.expanding = e.expanding[:0] }()

	s, err := e.extract(t, name)
	if err != nil {
		return nil, errors.Wrapf(err, "extract %s", name)
	}
	return s, nil
}

func (e *Extractor) extract(t ast.Type, path string) (Schema, error) {
	switch n := ast.Unparen(t).(type) {
	case nil:
		return nil, unsupported(path, "missing type annotation")
	case *ast.KeywordType:
		switch n.Keyword {
		case ast.KeywordString:
			return &Primitive{Kind: String}, nil
		case ast.KeywordNumber:
			return &Primitive{Kind: Number}, nil
		case ast.KeywordBoolean:
			return &Primitive{Kind: Boolean}, nil
		}
		return nil, unsupported(path, "keyword type "+n.Keyword)
	case *ast.ArrayType:
		return e.extractArray(n, path)
	case *ast.TypeLiteral:
		return e.extractObject(n.Members, path)
	case *ast.TypeReference:
		return e.extractReference(n, path)
	case *ast.UnionType:
		return nil, unsupported(path, "union outside a property or array element")
	default:
		return nil, unsupported(path, describe(n))
	}
}

// extractArray flattens T[][] to the element variants of T
func (e *Extractor) extractArray(n *ast.ArrayType, path string) (Schema, error) {
	elem := ast.Unparen(n.Element)
	if inner, ok := elem.(*ast.ArrayType); ok {
		return e.extractArray(inner, path)
	}
	variants, err := e.variants(elem, path+"[]")
	if err != nil {
		return nil, err
	}
	return &Array{Elements: variants}, nil
}

func (e *Extractor) extractObject(members []*ast.PropertySignature, path string) (Schema, error) {
	obj := &Object{Properties: make([]Property, 0, len(members))}
	index := make(map[string]int, len(members))

	for _, m := range members {
		memberPath := path + "." + m.Name
		if m.Kind != ast.SignatureProperty {
			// index, call and construct signatures have no name of their own
			if m.Name == "" {
				memberPath = path
			}
			if err := e.drop(unsupported(memberPath, m.Kind.String())); err != nil {
				return nil, err
			}
			continue
		}
		if m.Type == nil {
			if err := e.drop(unsupported(memberPath, "missing type annotation")); err != nil {
				return nil, err
			}
			continue
		}
		variants, err := e.variants(m.Type, memberPath)
		if err != nil {
			if err := e.drop(err); err != nil {
				return nil, err
			}
			continue
		}
		// A repeated name keeps its first position and takes the later type
		if i, ok := index[m.Name]; ok {
			obj.Properties[i].Variants = variants
			continue
		}
		index[m.Name] = len(obj.Properties)
		obj.Properties = append(obj.Properties, Property{Name: m.Name, Variants: variants})
	}
	return obj, nil
}

func (e *Extractor) extractReference(n *ast.TypeReference, path string) (Schema, error) {
	if len(n.Args) > 0 {
		return nil, unsupported(path, "generic type "+printer.PrintType(n))
	}
	if e.resolver == nil {
		return nil, unsupported(path, "unknown type "+n.Name)
	}
	target, ok := e.resolver.Resolve(n.Name)
	if !ok {
		return nil, unsupported(path, "unknown type "+n.Name)
	}
	for _, name := range e.expanding {
		if name == n.Name {
			return nil, unsupported(path, "recursive reference to "+n.Name)
		}
	}
	e.expanding = append(e.expanding, n.Name)
	defer func() { e.expanding = e.expanding[:len(e.expanding)-1] }()
	return e.extract(target, path)
}

// variants expands a union into its supported members; any other type is a
// single variant
func (e *Extractor) variants(t ast.Type, path string) ([]Schema, error) {
	union, ok := ast.Unparen(t).(*ast.UnionType)
	if !ok {
		s, err := e.extract(t, path)
		if err != nil {
			return nil, err
		}
		return []Schema{s}, nil
	}

	out := make([]Schema, 0, len(union.Types))
	for _, member := range union.Types {
		s, err := e.extract(member, path)
		if err != nil {
			if err := e.drop(err); err != nil {
				return nil, err
			}
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, unsupported(path, "no supported variant in "+printer.PrintType(union))
	}
	return out, nil
}

// drop records an unsupported construct in lenient mode; in strict mode, or
// for any other error, it hands the error back
func (e *Extractor) drop(err error) error {
	if e.opts.Strict || !errors.IsUnsupportedType(err) {
		return err
	}
	d := Drop{Reason: "unsupported"}
	var ue *unsupportedError
	if errors.As(err, &ue) {
		d = Drop{Path: ue.path, Reason: ue.reason}
	}
	e.drops = append(e.drops, d)
	e.log.Warnw("dropped member",
		logger.FieldPath, d.Path,
		logger.FieldReason, d.Reason,
	)
	return nil
}

type unsupportedError struct {
	path   string
	reason string
}

func (u *unsupportedError) Error() string {
	return u.path + ": " + u.reason
}

func unsupported(path, reason string) error {
	return errors.Mark(errors.WithStack(&unsupportedError{path: path, reason: reason}), errors.ErrUnsupportedType)
}

func describe(t ast.Type) string {
	switch n := t.(type) {
	case *ast.IntersectionType:
		return "intersection type " + printer.PrintType(t)
	case *ast.TupleType:
		return "tuple type " + printer.PrintType(t)
	case *ast.LiteralType:
		return "literal type " + printer.PrintType(t)
	case *ast.FunctionType:
		return "function type"
	case *ast.RawType:
		return strings.ReplaceAll(n.Kind, "_", " ") + " " + n.Text
	default:
		return "type " + strings.TrimSpace(printer.PrintType(t))
	}
}

// UnsupportedPath returns the path of the construct an unsupported-type error refers to
func UnsupportedPath(err error) (string, bool) {
	var ue *unsupportedError
	if errors.As(err, &ue) {
		return ue.path, true
	}
	return "", false
}
