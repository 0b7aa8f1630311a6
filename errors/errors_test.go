package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := New("unexpected token")
	err := Wrapf(cause, "failed to parse %s", "example.ts")

	assert.Equal(t, "failed to parse example.ts: unexpected token", err.Error())
	assert.True(t, Is(err, cause))
	assert.False(t, Is(err, New("unexpected end of input")))
}

type pathError struct {
	path string
}

func (e *pathError) Error() string { return e.path + ": unsupported" }

func TestAsFindsLeaf(t *testing.T) {
	err := Wrap(Wrap(&pathError{path: "Fake.j.a"}, "extract Fake"), "rewrite example.ts")

	var target *pathError
	require.True(t, As(err, &target))
	assert.Equal(t, "Fake.j.a", target.path)
	assert.Equal(t, "Fake.j.a: unsupported", UnwrapAll(err).Error())
	assert.NotNil(t, Unwrap(err))
}

func TestMarkedSentinels(t *testing.T) {
	err := NewUnsupportedTypef("unsupported type at %s", "Fake.x")
	require.NotNil(t, err)
	assert.Equal(t, "unsupported type at Fake.x", err.Error())
	assert.True(t, IsUnsupportedType(err))
	assert.False(t, IsSyntaxError(err))

	wrapped := Wrap(err, "extract Fake")
	assert.True(t, IsUnsupportedType(wrapped))
	assert.Contains(t, wrapped.Error(), "extract Fake")

	syntax := Mark(Newf("expected %q", ";"), ErrSyntax)
	assert.True(t, IsSyntaxError(Wrap(syntax, "parse")))
	assert.False(t, IsUnsupportedType(syntax))
}

func TestNotFoundAndConfigSentinels(t *testing.T) {
	nf := NewNotFoundError("declaration %q", "Fake")
	assert.True(t, IsNotFoundError(nf))
	assert.False(t, IsNotFoundError(nil))

	cfg := NewInvalidConfigf("generate.number.min %d > max %d", 5, 1)
	assert.True(t, Is(cfg, ErrInvalidConfig))
	assert.False(t, Is(cfg, ErrOutOfDate))
	assert.True(t, IsAny(cfg, ErrOutOfDate, ErrInvalidConfig))
}

func TestAssertionFailure(t *testing.T) {
	err := AssertionFailedf("pick from empty list")
	assert.True(t, IsAssertionFailure(err))
	assert.False(t, IsAssertionFailure(New("pick from empty list")))
}

func TestHintsAndDetailsSurviveWrapping(t *testing.T) {
	err := NewNotFoundError("input %s does not exist", "types.ts")
	err = WithHint(err, "pass the declaration file as an argument")
	err = WithDetailf(err, "searched %s", "/work")
	err = Wrap(err, "generate")

	assert.True(t, IsNotFoundError(err))
	assert.Equal(t, []string{"pass the declaration file as an argument"}, GetAllHints(err))
	assert.Equal(t, []string{"searched /work"}, GetAllDetails(err))
	assert.Equal(t, "generate: input types.ts does not exist", err.Error())
}

func TestStackTrace(t *testing.T) {
	detailed := fmt.Sprintf("%+v", New("with stack"))
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
	assert.False(t, IsUnsupportedType(nil))
}

func ExampleWrap() {
	baseErr := New("unexpected token")
	err := Wrap(baseErr, "failed to parse example.ts")
	fmt.Println(err)
	// Output: failed to parse example.ts: unexpected token
}

func ExampleWithHint() {
	err := New("unsupported member type")
	err = WithHint(err, "disable generate.strict to drop unsupported members")

	hints := GetAllHints(err)
	fmt.Println(hints[0])
	// Output: disable generate.strict to drop unsupported members
}
