package rewrite

import (
	"go.uber.org/zap"

	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/logger"
	"github.com/teranos/fakegen/schema"
	"github.com/teranos/fakegen/tsdecl/ast"
)

// Registry indexes the type aliases and interfaces of a program by name and
// extracts their schemas on first use
type Registry struct {
	decls     map[string]ast.Type
	order     []string
	extractor *schema.Extractor
	cache     map[string]cached
	log       *zap.SugaredLogger
}

type cached struct {
	schema schema.Schema
	err    error
}

// NewRegistry indexes prog. Interfaces declared more than once merge their
// members in order; a repeated type alias replaces the earlier one.
func NewRegistry(prog *ast.Program, opts schema.Options) *Registry {
	r := &Registry{
		decls: make(map[string]ast.Type),
		cache: make(map[string]cached),
		log:   logger.Named("registry"),
	}
	r.extractor = schema.NewExtractor(r, opts)

	interfaces := make(map[string][]*ast.InterfaceDeclaration)
	for _, stmt := range prog.Statements {
		switch d := stmt.(type) {
		case *ast.TypeAliasDeclaration:
			r.add(d.Name, d.Type)
		case *ast.InterfaceDeclaration:
			interfaces[d.Name] = append(interfaces[d.Name], d)
			r.add(d.Name, nil)
		}
	}
	for name, decls := range interfaces {
		r.decls[name] = &ast.TypeLiteral{
			At:      decls[0].At,
			Members: r.interfaceMembers(name, interfaces, nil),
		}
	}
	return r
}

// WithLogger replaces the logger used for registry and extractor warnings
func (r *Registry) WithLogger(log *zap.SugaredLogger) *Registry {
	r.log = log
	r.extractor.WithLogger(log)
	return r
}

func (r *Registry) add(name string, t ast.Type) {
	if _, ok := r.decls[name]; !ok {
		r.order = append(r.order, name)
	}
	r.decls[name] = t
}

// interfaceMembers flattens an interface and the interfaces or object type
// aliases it extends, inherited members first
func (r *Registry) interfaceMembers(name string, interfaces map[string][]*ast.InterfaceDeclaration, seen []string) []*ast.PropertySignature {
	for _, s := range seen {
		if s == name {
			r.log.Warnw("interface extends itself", logger.FieldType, name)
			return nil
		}
	}
	seen = append(seen, name)

	var members []*ast.PropertySignature
	for _, d := range interfaces[name] {
		for _, base := range d.Extends {
			ref, ok := base.(*ast.TypeReference)
			if !ok || len(ref.Args) > 0 {
				r.log.Debugw("ignoring unsupported base type", logger.FieldType, name)
				continue
			}
			if _, isInterface := interfaces[ref.Name]; isInterface {
				members = append(members, r.interfaceMembers(ref.Name, interfaces, seen)...)
				continue
			}
			if lit, ok := ast.Unparen(r.decls[ref.Name]).(*ast.TypeLiteral); ok {
				members = append(members, lit.Members...)
				continue
			}
			r.log.Debugw("ignoring unknown base type",
				logger.FieldType, name,
				logger.FieldReason, ref.Name,
			)
		}
		members = append(members, d.Members...)
	}
	return members
}

// Resolve implements schema.Resolver
func (r *Registry) Resolve(name string) (ast.Type, bool) {
	t, ok := r.decls[name]
	return t, ok && t != nil
}

// Names returns declared type names in source order
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether name is a declared type or interface
func (r *Registry) Has(name string) bool {
	_, ok := r.decls[name]
	return ok
}

// Schema extracts the schema of a declared type, caching the outcome.
// Unknown names return an error marked errors.ErrNotFound.
func (r *Registry) Schema(name string) (schema.Schema, error) {
	if c, ok := r.cache[name]; ok {
		return c.schema, c.err
	}
	t, ok := r.Resolve(name)
	if !ok {
		return nil, errors.NewNotFoundError("type %s is not declared", name)
	}
	s, err := r.extractor.ExtractDeclaration(name, t)
	r.cache[name] = cached{schema: s, err: err}
	return s, err
}

// Drops lists every construct dropped while extracting so far
func (r *Registry) Drops() []schema.Drop {
	return r.extractor.Drops()
}
