package logger

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette holds the ANSI sequences for one console theme
type palette struct {
	fg       string
	time     string
	accent   []string // rotated per component name
	id       string
	number   string
	path     string
	yellow   string
	yellowBg string
	red      string
	redBg    string
}

// Gruvbox Dark (warm, muted)
var gruvbox = palette{
	fg:       "\x1b[38;2;235;219;178m",
	time:     "\x1b[38;2;142;192;124m",
	accent:   []string{"\x1b[38;2;254;128;25m", "\x1b[38;2;250;189;47m"},
	id:       "\x1b[38;2;131;165;152m",
	number:   "\x1b[38;2;211;134;155m",
	path:     "\x1b[38;2;184;187;38m",
	yellow:   "\x1b[38;2;250;189;47m",
	yellowBg: "\x1b[48;2;60;56;54m",
	red:      "\x1b[38;2;251;73;52m",
	redBg:    "\x1b[48;2;60;56;54m",
}

// Everforest Dark (green forward)
var everforest = palette{
	fg:       "\x1b[38;2;211;198;170m",
	time:     "\x1b[38;2;131;192;146m",
	accent:   []string{"\x1b[38;2;167;192;128m", "\x1b[38;2;131;192;146m", "\x1b[38;2;230;152;117m"},
	id:       "\x1b[38;2;127;187;179m",
	number:   "\x1b[38;2;167;192;128m",
	path:     "\x1b[38;2;219;188;127m",
	yellow:   "\x1b[38;2;219;188;127m",
	yellowBg: "\x1b[48;2;69;68;59m",
	red:      "\x1b[38;2;230;126;128m",
	redBg:    "\x1b[48;2;78;57;62m",
}

var currentTheme = "everforest"

// SetTheme configures the color scheme for log output
func SetTheme(theme string) {
	if theme == "everforest" || theme == "gruvbox" {
		currentTheme = theme
	}
}

func colors() palette {
	if currentTheme == "gruvbox" {
		return gruvbox
	}
	return everforest
}

func colorComponent(name string) string {
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	accents := colors().accent
	return accents[hash%len(accents)]
}

// Quoted identifiers in messages, e.g. `User` or `fakeUser`
var quotedPattern = regexp.MustCompile("`[^`]+`")

// colorizeMessage highlights backquoted identifiers in the message body
func colorizeMessage(msg string) string {
	p := colors()
	var result strings.Builder
	last := 0
	for _, m := range quotedPattern.FindAllStringIndex(msg, -1) {
		if m[0] > last {
			result.WriteString(p.fg + msg[last:m[0]] + colorReset)
		}
		result.WriteString(p.id + msg[m[0]:m[1]] + colorReset)
		last = m[1]
	}
	if last < len(msg) {
		result.WriteString(p.fg + msg[last:] + colorReset)
	}
	return result.String()
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  WARN  s.extract  dropped member  User.meta (unsupported type)"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	p := colors()
	final := buffer.NewPool().Get()

	final.AppendString(p.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown for WARN and above
	if lvl := levelColorString(ent.Level); lvl != "" {
		final.AppendString("  ")
		final.AppendString(lvl)
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(colorizeMessage(ent.Message))

	if vals := extractFieldValues(fields); vals != "" {
		final.AppendString("  ")
		final.AppendString(vals)
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for WARN/ERROR
func levelColorString(level zapcore.Level) string {
	p := colors()
	switch level {
	case zapcore.WarnLevel:
		return colorBold + p.yellowBg + p.yellow + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + p.redBg + p.red + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + p.redBg + p.red + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// abbreviateName shortens component names: schema.extract -> s.extract
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// getFieldValue renders any zap field through a map encoder so no type is dropped
func getFieldValue(field zapcore.Field) string {
	switch field.Type {
	case zapcore.StringType:
		return field.String
	case zapcore.SkipType:
		return ""
	}
	enc := zapcore.NewMapObjectEncoder()
	field.AddTo(enc)
	v, ok := enc.Fields[field.Key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// extractFieldValues pulls values from structured fields with theme-aware colors.
// Well-known fields get compact formatting; every other field is kept as key=value.
// Input: {"path": "User.meta", "reason": "unsupported type", "duration_ms": 3}
// Output: "User.meta 3ms (unsupported type)"
func extractFieldValues(fields []zapcore.Field) string {
	p := colors()
	var values []string
	var reason string

	for _, field := range fields {
		val := getFieldValue(field)
		if val == "" {
			continue
		}
		switch field.Key {
		case FieldPath, FieldStub:
			values = append(values, p.path+val+colorReset)
		case FieldRunID:
			// Short form keeps console lines compact
			if len(val) > 8 {
				val = val[:8]
			}
			values = append(values, p.id+val+colorReset)
		case FieldDurationMS:
			values = append(values, p.number+val+colorReset+"ms")
		case FieldReason:
			reason = val
		default:
			values = append(values, p.fg+field.Key+"="+colorReset+p.number+val+colorReset)
		}
	}

	if reason != "" {
		values = append(values, p.fg+"("+reason+")"+colorReset)
	}

	return strings.Join(values, " ")
}
