package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	original := New("unexpected token")
	wrapped := Wrapf(original, "failed to parse %s", "ast.txt")

	assert.Contains(t, wrapped.Error(), "failed to parse ast.txt")
	assert.Contains(t, wrapped.Error(), "unexpected token")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelMarking(t *testing.T) {
	err := Mark(New("line 3: expected '}'"), ErrInvalidDescription)
	err = Wrap(err, "failed to load description")

	assert.True(t, IsInvalidDescription(err))
	assert.False(t, IsOutOfDate(err))
	assert.False(t, IsInvalidDescription(nil))
}

func TestOutOfDateWithHint(t *testing.T) {
	err := WithHint(Wrap(ErrOutOfDate, "ast_names_gen.inc.rs"), "run 'astgen' to regenerate")

	assert.True(t, IsOutOfDate(err))
	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "run 'astgen' to regenerate", hints[0])
}

func TestWithDetail(t *testing.T) {
	err := WithDetailf(New("error"), "struct %s", "Item")

	details := GetAllDetails(err)
	require.Len(t, details, 1)
	assert.Equal(t, "struct Item", details[0])
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestAs(t *testing.T) {
	wrapped := Wrap(&customError{msg: "custom"}, "wrapped")

	var target *customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.msg)
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
}

func ExampleWrap() {
	err := Wrap(New("unexpected EOF"), "failed to parse description")
	fmt.Println(err)
	// Output: failed to parse description: unexpected EOF
}
