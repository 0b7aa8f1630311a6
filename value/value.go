// Package value holds generated data: the concrete instance of a schema,
// produced once per run and handed to the synthesizer.
package value

import (
	"math"
	"strconv"
	"strings"
)

// Value is one of Null, String, Number, Bool, Array or *Object
type Value interface {
	valueNode()
	// Kind names the variant: null, string, number, boolean, array or object
	Kind() string
}

// Null is the null value
type Null struct{}

// String is a string value
type String string

// Number is a numeric value. Integer is set when the value was drawn as an
// integer, which controls how it is written back as source.
type Number struct {
	Float   float64
	Integer bool
}

// Bool is a boolean value
type Bool bool

// Array is an ordered list of values
type Array []Value

// Object maps keys to values, keeping insertion order
type Object struct {
	keys   []string
	values map[string]Value
}

// Entry is one key/value pair of an Object
type Entry struct {
	Key   string
	Value Value
}

func (Null) valueNode()    {}
func (String) valueNode()  {}
func (Number) valueNode()  {}
func (Bool) valueNode()    {}
func (Array) valueNode()   {}
func (*Object) valueNode() {}

func (Null) Kind() string    { return "null" }
func (String) Kind() string  { return "string" }
func (Number) Kind() string  { return "number" }
func (Bool) Kind() string    { return "boolean" }
func (Array) Kind() string   { return "array" }
func (*Object) Kind() string { return "object" }

// Int builds an integer Number
func Int(n int) Number {
	return Number{Float: float64(n), Integer: true}
}

// Float builds a real Number
func Float(f float64) Number {
	return Number{Float: f}
}

// NewObject builds an object from entries in order
func NewObject(entries ...Entry) *Object {
	o := &Object{values: make(map[string]Value, len(entries))}
	for _, e := range entries {
		o.Set(e.Key, e.Value)
	}
	return o
}

// Set adds or replaces a key. A replaced key keeps its original position.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get looks up a key
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns keys in insertion order
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of keys
func (o *Object) Len() int {
	return len(o.keys)
}

// Entries returns the pairs in insertion order
func (o *Object) Entries() []Entry {
	out := make([]Entry, len(o.keys))
	for i, k := range o.keys {
		out[i] = Entry{Key: k, Value: o.values[k]}
	}
	return out
}

// Format renders v compactly for logs and error messages
func Format(v Value) string {
	var sb strings.Builder
	format(&sb, v)
	return sb.String()
}

func format(sb *strings.Builder, v Value) {
	switch n := v.(type) {
	case Null:
		sb.WriteString("null")
	case String:
		sb.WriteString(strconv.Quote(string(n)))
	case Number:
		sb.WriteString(n.String())
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(n)))
	case Array:
		sb.WriteByte('[')
		for i, el := range n {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, el)
		}
		sb.WriteByte(']')
	case *Object:
		sb.WriteByte('{')
		for i, e := range n.Entries() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.Key)
			sb.WriteString(": ")
			format(sb, e.Value)
		}
		sb.WriteByte('}')
	}
}

// String renders the number the way it would be written as a literal:
// integers without a decimal point, reals in shortest round-trip form
// with exponents outside [1e-6, 1e21)
func (n Number) String() string {
	if n.Integer {
		return strconv.FormatInt(int64(n.Float), 10)
	}
	if abs := math.Abs(n.Float); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(n.Float, 'f', -1, 64)
	}
	return trimExponent(strconv.FormatFloat(n.Float, 'g', -1, 64))
}

// trimExponent drops the zero padding strconv puts in one-digit exponents,
// so 1e-07 reads 1e-7
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+3 >= len(s) || s[i+2] != '0' {
		return s
	}
	return s[:i+2] + s[i+3:]
}
