package textrender

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// EncodingByName returns the encoding registered under an IANA or WHATWG
// name, such as "utf-8", "latin1" or "shift_jis".
func EncodingByName(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrGeneric, name)
	}
	return enc, nil
}

// decode converts caller text to the code points to draw. Invalid UTF-8
// bytes decode to U+FFFD.
func (c *sessionConfig) decode(text string) ([]rune, error) {
	if c.encoding != nil {
		s, err := c.encoding.NewDecoder().String(text)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding text: %v", ErrGeneric, err)
		}
		text = s
	}
	if c.normalize {
		text = c.form.String(text)
	}
	return []rune(text), nil
}
