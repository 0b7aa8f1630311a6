// Package rewrite fills abstract fake* stubs with generated literals.
//
// A stub is a method in an abstract class whose name starts with the stub
// prefix, takes no parameters, has no body and returns a declared type by
// name. Each stub gets its own freshly generated value. The input program is
// never modified; Rewrite returns a new one that shares unchanged nodes.
package rewrite

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/generate"
	"github.com/teranos/fakegen/logger"
	"github.com/teranos/fakegen/synth"
	"github.com/teranos/fakegen/tsdecl/ast"
	"github.com/teranos/fakegen/tsdecl/printer"
	"github.com/teranos/fakegen/value"
)

// DefaultStubPrefix marks methods to fill
const DefaultStubPrefix = "fake"

// Status is the outcome for one stub
type Status string

const (
	StatusFilled          Status = "filled"
	StatusUnknownType     Status = "unknown-type"
	StatusUnsupportedType Status = "unsupported-type"
	StatusSkipped         Status = "skipped"
)

// StubReport describes what happened to one prefixed method
type StubReport struct {
	Class  string      `json:"class" yaml:"class"`
	Member string      `json:"member" yaml:"member"`
	Type   string      `json:"type,omitempty" yaml:"type,omitempty"`
	Status Status      `json:"status" yaml:"status"`
	Reason string      `json:"reason,omitempty" yaml:"reason,omitempty"`
	Value  value.Value `json:"value,omitempty" yaml:"value,omitempty"`
}

// Options configures stub detection and value generation
type Options struct {
	StubPrefix string
	Bounds     generate.Bounds
	// Strict aborts when a stub's type cannot be generated
	Strict bool
}

// Rewriter fills stubs using a registry of declared types
type Rewriter struct {
	registry *Registry
	gen      *generate.Generator
	opts     Options
}

// New creates a rewriter
func New(registry *Registry, gen *generate.Generator, opts Options) *Rewriter {
	if opts.StubPrefix == "" {
		opts.StubPrefix = DefaultStubPrefix
	}
	return &Rewriter{registry: registry, gen: gen, opts: opts}
}

// Rewrite returns a copy of prog with every matching stub filled, plus one
// report per prefixed method found in an abstract class
func (r *Rewriter) Rewrite(ctx context.Context, prog *ast.Program) (*ast.Program, []StubReport, error) {
	log := logger.LoggerFromContext(ctx).Named("rewrite")

	out := &ast.Program{Statements: make([]ast.Statement, len(prog.Statements))}
	var reports []StubReport
	for i, stmt := range prog.Statements {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		class, ok := stmt.(*ast.ClassDeclaration)
		if !ok || !class.HasModifier(ast.ModAbstract) {
			out.Statements[i] = stmt
			continue
		}
		rewritten, classReports, err := r.rewriteClass(class, log)
		if err != nil {
			return nil, nil, err
		}
		out.Statements[i] = rewritten
		reports = append(reports, classReports...)
	}
	return out, reports, nil
}

func (r *Rewriter) rewriteClass(class *ast.ClassDeclaration, log *zap.SugaredLogger) (*ast.ClassDeclaration, []StubReport, error) {
	var reports []StubReport
	members := make([]ast.ClassMember, len(class.Members))
	changed := false

	for i, m := range class.Members {
		members[i] = m
		method, ok := m.(*ast.MethodDeclaration)
		if !ok || !strings.HasPrefix(method.Name, r.opts.StubPrefix) {
			continue
		}
		report := StubReport{Class: class.Name, Member: method.Name}

		typeName, reason := stubReturnType(method)
		if reason != "" {
			report.Status, report.Reason = StatusSkipped, reason
			log.Debugw("skipped stub",
				logger.FieldClass, class.Name,
				logger.FieldStub, method.Name,
				logger.FieldReason, reason,
			)
			reports = append(reports, report)
			continue
		}
		report.Type = typeName

		filled, v, err := r.fill(method, typeName)
		switch {
		case err == nil:
			members[i] = filled
			changed = true
			report.Status, report.Value = StatusFilled, v
			log.Infow("filled stub",
				logger.FieldClass, class.Name,
				logger.FieldStub, method.Name,
				logger.FieldType, typeName,
			)
		case errors.IsNotFoundError(err):
			report.Status, report.Reason = StatusUnknownType, "type "+typeName+" is not declared"
			log.Debugw("unknown stub type",
				logger.FieldClass, class.Name,
				logger.FieldStub, method.Name,
				logger.FieldType, typeName,
			)
		case errors.IsUnsupportedType(err) && !r.opts.Strict:
			report.Status, report.Reason = StatusUnsupportedType, errors.UnwrapAll(err).Error()
			log.Warnw("cannot generate stub type",
				logger.FieldClass, class.Name,
				logger.FieldStub, method.Name,
				logger.FieldType, typeName,
				logger.FieldError, err,
			)
		default:
			return nil, nil, errors.Wrapf(err, "fill %s.%s", class.Name, method.Name)
		}
		reports = append(reports, report)
	}

	if !changed {
		return class, reports, nil
	}

	out := *class
	out.Members = members
	if !hasAbstractMember(members) {
		out.Modifiers = ast.WithoutModifier(class.Modifiers, ast.ModAbstract)
	}
	return &out, reports, nil
}

// stubReturnType returns the declared type a stub returns, or why the method
// is not a stub
func stubReturnType(m *ast.MethodDeclaration) (string, string) {
	switch {
	case m.Body != nil:
		return "", "method already has a body"
	case !m.HasModifier(ast.ModAbstract):
		return "", "method is not abstract"
	case len(m.Params) > 0:
		return "", "method takes parameters"
	case len(m.TypeParams) > 0:
		return "", "method is generic"
	case m.ReturnType == nil:
		return "", "method has no return type"
	}
	ref, ok := m.ReturnType.(*ast.TypeReference)
	if !ok {
		return "", "return type " + printer.PrintType(m.ReturnType) + " is not a declared type name"
	}
	if len(ref.Args) > 0 {
		return "", "return type " + printer.PrintType(ref) + " has type arguments"
	}
	return ref.Name, ""
}

// fill builds the concrete replacement for a stub
func (r *Rewriter) fill(m *ast.MethodDeclaration, typeName string) (*ast.MethodDeclaration, value.Value, error) {
	s, err := r.registry.Schema(typeName)
	if err != nil {
		return nil, nil, err
	}
	v, err := r.gen.Generate(s, r.opts.Bounds)
	if err != nil {
		return nil, nil, err
	}

	mods := ast.WithoutModifier(m.Modifiers, ast.ModAbstract)
	if !ast.HasAccessModifier(mods) {
		mods = append([]string{ast.ModPublic}, mods...)
	}
	out := *m
	out.Modifiers = mods
	out.Body = &ast.Block{
		Statements: []ast.BodyStatement{&ast.ReturnStatement{Value: synth.Synthesize(v)}},
	}
	return &out, v, nil
}

func hasAbstractMember(members []ast.ClassMember) bool {
	for _, m := range members {
		switch member := m.(type) {
		case *ast.MethodDeclaration:
			if member.HasModifier(ast.ModAbstract) {
				return true
			}
		case *ast.PropertyDeclaration:
			if member.HasModifier(ast.ModAbstract) {
				return true
			}
		}
	}
	return false
}
