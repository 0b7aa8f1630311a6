package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/fakegen/errors"
)

// Logger is the process-wide logger. It discards everything until Initialize runs.
var Logger = zap.NewNop().Sugar()

// JSONOutput reports whether the last Initialize selected JSON logs
var JSONOutput bool

// Initialize sets up the global logger on stderr.
// stdout is reserved for generated declarations.
func Initialize(jsonOutput bool, verbosity int) error {
	if theme := os.Getenv("FAKEGEN_LOG_THEME"); theme != "" {
		SetTheme(theme)
	}
	return InitializeTo(zapcore.Lock(os.Stderr), jsonOutput, verbosity)
}

// InitializeTo sets up the global logger on an arbitrary sink
func InitializeTo(sink zapcore.WriteSyncer, jsonOutput bool, verbosity int) error {
	if sink == nil {
		return errors.New("logger sink is nil")
	}
	JSONOutput = jsonOutput
	Logger = zap.New(newCore(sink, jsonOutput, VerbosityToLevel(verbosity))).Sugar()
	return nil
}

// newCore picks the production JSON encoder or the minimal console encoder
func newCore(sink zapcore.WriteSyncer, jsonOutput bool, level zapcore.Level) zapcore.Core {
	if jsonOutput {
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewCore(zapcore.NewJSONEncoder(enc), sink, level)
	}
	return zapcore.NewCore(newMinimalEncoder(), sink, level)
}

// Named returns a child of the global logger for a pipeline component
func Named(component string) *zap.SugaredLogger {
	if Logger == nil {
		return zap.NewNop().Sugar()
	}
	return Logger.Named(component)
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		Logger.Sync()
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}
