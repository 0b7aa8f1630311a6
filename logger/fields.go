package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across fakegen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity
	FieldRunID     = "run_id"
	FieldComponent = "component"

	// Inputs
	FieldFile = "file"
	FieldLine = "line"

	// Declarations
	FieldType   = "type"   // declared type name
	FieldMember = "member" // member name within a type
	FieldPath   = "path"   // dotted property path, e.g. User.tags[]
	FieldStub   = "stub"   // fake* method name
	FieldClass  = "class"  // class owning a stub

	// Outcomes
	FieldReason = "reason"
	FieldStatus = "status"
	FieldError  = "error"

	// Counts and timing
	FieldCount      = "count"
	FieldSeed       = "seed"
	FieldDurationMS = "duration_ms"
)

// Context keys for propagating logging context
type contextKey string

const (
	runIDKey     contextKey = "logger_run_id"
	componentKey contextKey = "logger_component"
)

// WithRunID adds a run ID to the context for logging
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for Infow, Warnw and Debugw.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		fields = append(fields, FieldRunID, runID)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns a logger with fields extracted from context.
// Use this to get a logger that automatically includes run_id.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a pipeline stage.
//
// Example:
//
//	type Extractor struct {
//	    log *zap.SugaredLogger
//	}
//
//	func NewExtractor() *Extractor {
//	    return &Extractor{log: logger.ComponentLogger("schema.extract")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
