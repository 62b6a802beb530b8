package textrender

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by textrender. Every failure wraps exactly one
// of them, so callers discriminate with errors.Is.
var (
	ErrGeneric               = errors.New("textrender: generic error")
	ErrOutOfMemory           = errors.New("textrender: out of memory")
	ErrInitializationFailed  = errors.New("textrender: library initialization failed")
	ErrNotInitialized        = errors.New("textrender: library not initialized")
	ErrUnsupportedFontFormat = errors.New("textrender: unsupported font format")
	ErrOpeningFont           = errors.New("textrender: error opening font")
	ErrFontNotUnicode        = errors.New("textrender: font does not support unicode")
	ErrUnableToSetSize       = errors.New("textrender: unable to set specified font size")
	ErrFontNotSet            = errors.New("textrender: the font must be set before calling this function")
	ErrCantOpenFile          = errors.New("textrender: unable to open file")
)

// Code is the numeric error code of the C rendering API, kept so that host
// bindings can report the same values.
type Code int

const (
	CodeOK Code = iota
	CodeGenericError
	CodeOutOfMemory
	CodeInitializationFailed
	CodeNotInitialized
	CodeUnsupportedFontFormat
	CodeErrorOpeningFont
	CodeFontNotUnicode
	CodeUnableToSetSize
	CodeFontNotSet
	CodeCantOpenFile
)

var codeErrors = []struct {
	code Code
	err  error
}{
	{CodeOutOfMemory, ErrOutOfMemory},
	{CodeInitializationFailed, ErrInitializationFailed},
	{CodeNotInitialized, ErrNotInitialized},
	{CodeUnsupportedFontFormat, ErrUnsupportedFontFormat},
	{CodeErrorOpeningFont, ErrOpeningFont},
	{CodeFontNotUnicode, ErrFontNotUnicode},
	{CodeUnableToSetSize, ErrUnableToSetSize},
	{CodeFontNotSet, ErrFontNotSet},
	{CodeCantOpenFile, ErrCantOpenFile},
	{CodeGenericError, ErrGeneric},
}

// CodeOf returns the code for err. A nil error is CodeOK; errors that wrap
// none of the sentinels are CodeGenericError.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	for _, ce := range codeErrors {
		if errors.Is(err, ce.err) {
			return ce.code
		}
	}
	return CodeGenericError
}

// Err returns the sentinel error for c, or nil for CodeOK.
func (c Code) Err() error {
	if c == CodeOK {
		return nil
	}
	for _, ce := range codeErrors {
		if ce.code == c {
			return ce.err
		}
	}
	return ErrGeneric
}

// String returns the message of the code's sentinel error.
func (c Code) String() string {
	if c == CodeOK {
		return "ok"
	}
	return c.Err().Error()
}

// FontError records a failed font operation and the file involved.
type FontError struct {
	Op   string // "open", "charmap", "size"
	Path string
	Kind error // one of the sentinel errors
	Err  error // underlying engine error, may be nil
}

func (e *FontError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s %s", e.Kind, e.Op, e.Path)
	}
	return fmt.Sprintf("%v: %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
}

// Unwrap returns both the sentinel and the engine error so errors.Is
// matches either.
func (e *FontError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
