package parser

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/tsdecl/ast"
)

// ErrorSeverity indicates the severity level of a parser error
type ErrorSeverity string

const (
	SeverityError   ErrorSeverity = "error"   // Prevents parsing
	SeverityWarning ErrorSeverity = "warning" // Best-effort parsing warnings
)

// ErrorKind categorizes parser errors for programmatic handling
type ErrorKind string

const (
	ErrorKindLexical ErrorKind = "lexical" // Unterminated string or comment
	ErrorKindSyntax  ErrorKind = "syntax"  // Unexpected or missing token
)

// ParseError represents a structured parser error with metadata.
// It unwraps to errors.ErrSyntax so callers can classify it with errors.Is.
type ParseError struct {
	Err         error         // Underlying error
	Kind        ErrorKind     // Error category
	Severity    ErrorSeverity // Error severity
	Message     string        // Human-readable message
	File        string        // Source file name (optional)
	Range       ast.Range     // Source span
	Source      string        // The offending source line
	Suggestions []string      // Possible fixes
}

// Error implements the error interface with a plain single-line message
func (e *ParseError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(":")
	}
	fmt.Fprintf(&sb, "%d:%d: %s", e.Range.Start.Line, e.Range.Start.Character+1, e.Message)
	if len(e.Suggestions) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(e.Suggestions, "; "))
		sb.WriteString(")")
	}
	return sb.String()
}

// FormatTerminal creates a rich colored error for terminal output,
// pointing at the offending column of the source line
func (e *ParseError) FormatTerminal() string {
	var baseMsg string
	switch e.Severity {
	case SeverityWarning:
		baseMsg = pterm.Yellow(e.Message)
	default:
		baseMsg = pterm.Red(e.Message)
	}

	loc := fmt.Sprintf("%d:%d", e.Range.Start.Line, e.Range.Start.Character+1)
	if e.File != "" {
		loc = e.File + ":" + loc
	}

	out := fmt.Sprintf("%s %s", pterm.LightCyan(loc), baseMsg)
	if e.Source != "" {
		gutter := fmt.Sprintf("%4d | ", e.Range.Start.Line)
		out += "\n" + pterm.Gray(gutter) + e.Source
		out += "\n" + strings.Repeat(" ", len(gutter)+caretColumn(e.Source, e.Range.Start.Character)) + pterm.Red("^")
	}

	if len(e.Suggestions) > 0 {
		out += fmt.Sprintf("\n\n%s", pterm.Green("Suggestions:"))
		for _, suggestion := range e.Suggestions {
			out += fmt.Sprintf("\n  • %s", suggestion)
		}
	}
	return out
}

// caretColumn converts a rune column into a display column, keeping tabs aligned
func caretColumn(line string, character int) int {
	col := 0
	for i, r := range []rune(line) {
		if i >= character {
			break
		}
		if r == '\t' {
			col += 4
		} else {
			col++
		}
	}
	return col
}

// Unwrap for errors.Is/As compatibility
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsWarning returns true if this error has warning severity
func (e *ParseError) IsWarning() bool {
	return e.Severity == SeverityWarning
}

// NewParseError creates a new ParseError with the given kind and message
func NewParseError(kind ErrorKind, message string) *ParseError {
	return &ParseError{
		Err:      errors.ErrSyntax,
		Kind:     kind,
		Severity: SeverityError,
		Message:  message,
	}
}

// WithRange sets the source span
func (e *ParseError) WithRange(r ast.Range) *ParseError {
	e.Range = r
	return e
}

// WithSource sets the offending source line
func (e *ParseError) WithSource(line string) *ParseError {
	e.Source = line
	return e
}

// WithFile sets the source file name
func (e *ParseError) WithFile(name string) *ParseError {
	e.File = name
	return e
}

// WithSuggestion adds a suggestion for fixing the error
func (e *ParseError) WithSuggestion(suggestion string) *ParseError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithUnderlying records the underlying error while keeping the syntax classification
func (e *ParseError) WithUnderlying(err error) *ParseError {
	if err != nil {
		e.Err = errors.Mark(err, errors.ErrSyntax)
	}
	return e
}

// AsParseError extracts a *ParseError from an error chain
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
