package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Argument Error", Argument.String())
	assert.Equal(t, "Configuration Error", Configuration.String())
	assert.Equal(t, "Git Error", Git.String())
	assert.Equal(t, "Runtime Error", Runtime.String())
}

func TestWrap_PreservesUnderlyingError(t *testing.T) {
	underlying := errors.New("fatal: bad revision")

	wrapped := Wrap(underlying, Git, "check that the branch exists")
	require.NotNil(t, wrapped)

	assert.Equal(t, Git, wrapped.Category)
	assert.Equal(t, "fatal: bad revision", wrapped.Message)
	assert.True(t, errors.Is(wrapped, underlying))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, Git))
	assert.Nil(t, WrapWithMessage(nil, Git, "context"))
}

func TestWrapWithMessage(t *testing.T) {
	underlying := errors.New("exit status 128")

	wrapped := WrapWithMessage(underlying, Git, "listing commits")
	require.NotNil(t, wrapped)
	assert.Equal(t, "listing commits: exit status 128", wrapped.Message)
}

func TestFormatErrorPlain(t *testing.T) {
	err := NewConfigError("malformed config file",
		"run 'bumpgen config show' to inspect the effective config")

	out := FormatErrorPlain(err)
	assert.Contains(t, out, "Error [Configuration Error]: malformed config file")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "config show")
}

func TestFormatError_NilIsEmpty(t *testing.T) {
	assert.Empty(t, FormatError(nil))
	assert.Empty(t, FormatErrorPlain(nil))
}
