// Package errors provides error handling for fakegen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing CLI output
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := parse(src); err != nil {
//	    return errors.Wrap(err, "failed to parse declarations")
//	}
//
//	// Classify as an extraction failure
//	return errors.Mark(errors.Newf("unsupported type at %s", path), errors.ErrUnsupportedType)
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf   = crdb.AssertionFailedf
	IsAssertionFailure = crdb.IsAssertionFailure
)

// Sentinel errors for the generation pipeline.
// Use these with errors.Is() for type-safe error checking.
// Attach them with errors.Mark() so the message stays specific.
var (
	// ErrUnsupportedType indicates a type construct the extractor cannot classify
	ErrUnsupportedType = New("unsupported type")

	// ErrSyntax indicates the declaration document could not be parsed
	ErrSyntax = New("syntax error")

	// ErrNotFound indicates a requested declaration or file does not exist
	ErrNotFound = New("not found")

	// ErrInvalidConfig indicates configuration values out of range
	ErrInvalidConfig = New("invalid configuration")

	// ErrOutOfDate indicates a committed fixture differs from a regeneration
	ErrOutOfDate = New("fixture out of date")
)

// IsUnsupportedType checks if an error is or wraps ErrUnsupportedType
func IsUnsupportedType(err error) bool {
	return err != nil && Is(err, ErrUnsupportedType)
}

// IsSyntaxError checks if an error is or wraps ErrSyntax
func IsSyntaxError(err error) bool {
	return err != nil && Is(err, ErrSyntax)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// NewUnsupportedTypef creates an error marked as ErrUnsupportedType with a formatted message
func NewUnsupportedTypef(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrUnsupportedType)
}

// NewNotFoundError creates an error marked as ErrNotFound with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrNotFound)
}

// NewInvalidConfigf creates an error marked as ErrInvalidConfig with a formatted message
func NewInvalidConfigf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidConfig)
}
