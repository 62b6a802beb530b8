package textrender

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want Code
	}{
		{nil, CodeOK},
		{ErrGeneric, CodeGenericError},
		{ErrOutOfMemory, CodeOutOfMemory},
		{ErrInitializationFailed, CodeInitializationFailed},
		{ErrNotInitialized, CodeNotInitialized},
		{ErrUnsupportedFontFormat, CodeUnsupportedFontFormat},
		{ErrOpeningFont, CodeErrorOpeningFont},
		{ErrFontNotUnicode, CodeFontNotUnicode},
		{ErrUnableToSetSize, CodeUnableToSetSize},
		{ErrFontNotSet, CodeFontNotSet},
		{ErrCantOpenFile, CodeCantOpenFile},
		{fmt.Errorf("wrapped: %w", ErrFontNotSet), CodeFontNotSet},
		{errors.New("something else"), CodeGenericError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CodeOf(tt.err), "CodeOf(%v)", tt.err)
	}
}

// TestCodeValues pins the numeric values used by host bindings.
func TestCodeValues(t *testing.T) {
	assert.Equal(t, 0, int(CodeOK))
	assert.Equal(t, 1, int(CodeGenericError))
	assert.Equal(t, 5, int(CodeUnsupportedFontFormat))
	assert.Equal(t, 8, int(CodeUnableToSetSize))
	assert.Equal(t, 10, int(CodeCantOpenFile))
}

func TestCodeErrRoundTrip(t *testing.T) {
	assert.NoError(t, CodeOK.Err())
	for c := CodeGenericError; c <= CodeCantOpenFile; c++ {
		assert.Equal(t, c, CodeOf(c.Err()), "code %d", c)
	}
	assert.Equal(t, "ok", CodeOK.String())
	assert.Equal(t, ErrFontNotSet.Error(), CodeFontNotSet.String())
}

func TestFontError(t *testing.T) {
	err := &FontError{Op: "open", Path: "/x.ttf", Kind: ErrOpeningFont, Err: fs.ErrNotExist}
	assert.ErrorIs(t, err, ErrOpeningFont)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "/x.ttf")
	assert.Equal(t, CodeErrorOpeningFont, CodeOf(err))

	bare := &FontError{Op: "charmap", Path: "/y.ttf", Kind: ErrFontNotUnicode}
	assert.ErrorIs(t, bare, ErrFontNotUnicode)
	assert.Equal(t, "textrender: font does not support unicode: charmap /y.ttf", bare.Error())
}
