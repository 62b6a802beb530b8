package textrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

func TestDecodeDefaultUTF8(t *testing.T) {
	c := defaultConfig()
	runes, err := c.decode("h\u00e9llo")
	require.NoError(t, err)
	assert.Equal(t, []rune{'h', '\u00e9', 'l', 'l', 'o'}, runes)

	runes, err = c.decode("")
	require.NoError(t, err)
	assert.Empty(t, runes)

	runes, err = c.decode("a\xffb")
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 0xFFFD, 'b'}, runes)
}

func TestDecodeLatin1(t *testing.T) {
	c := defaultConfig()
	WithEncoding(charmap.ISO8859_1)(&c)
	runes, err := c.decode("caf\xe9")
	require.NoError(t, err)
	assert.Equal(t, []rune{'c', 'a', 'f', '\u00e9'}, runes)
}

func TestDecodeNormalization(t *testing.T) {
	c := defaultConfig()
	WithNormalization(norm.NFC)(&c)
	runes, err := c.decode("e\u0301")
	require.NoError(t, err)
	assert.Equal(t, []rune{'\u00e9'}, runes)

	WithNormalization(norm.NFD)(&c)
	runes, err = c.decode("\u00e9")
	require.NoError(t, err)
	assert.Equal(t, []rune{'e', 0x0301}, runes)
}

func TestEncodingByName(t *testing.T) {
	enc, err := EncodingByName("latin1")
	require.NoError(t, err)
	s, err := enc.NewDecoder().String("\xe9")
	require.NoError(t, err)
	assert.Equal(t, "\u00e9", s)

	_, err = EncodingByName("no-such-encoding")
	assert.ErrorIs(t, err, ErrGeneric)
}
