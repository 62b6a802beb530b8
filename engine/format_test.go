package engine

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"truetype", []byte{0x00, 0x01, 0x00, 0x00, 0xAA}, FormatTrueType},
		{"apple truetype", []byte("true...."), FormatTrueType},
		{"cff", []byte("OTTO...."), FormatOpenType},
		{"collection", []byte("ttcf...."), FormatCollection},
		{"woff", []byte("wOFF...."), FormatUnknown},
		{"png", []byte("\x89PNG\r\n"), FormatUnknown},
		{"short", []byte("OTT"), FormatUnknown},
		{"empty", nil, FormatUnknown},
		{"go regular", goregular.TTF, FormatTrueType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.data))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "truetype", FormatTrueType.String())
	assert.Equal(t, "opentype", FormatOpenType.String())
	assert.Equal(t, "collection", FormatCollection.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

// tableRecords calls fn with the offset of each table record of a
// single-font file.
func tableRecords(data []byte, fn func(rec int)) {
	n := int(binary.BigEndian.Uint16(data[4:]))
	for i := 0; i < n; i++ {
		fn(12 + 16*i)
	}
}

// withoutUnicodeCmap returns a copy of data whose Unicode cmap encoding
// records are relabelled as Windows Symbol (3,0).
func withoutUnicodeCmap(t *testing.T, data []byte) []byte {
	t.Helper()
	out := append([]byte(nil), data...)
	patched := 0
	tableRecords(out, func(rec int) {
		if string(out[rec:rec+4]) != "cmap" {
			return
		}
		cmap := int(binary.BigEndian.Uint32(out[rec+8:]))
		n := int(binary.BigEndian.Uint16(out[cmap+2:]))
		for i := 0; i < n; i++ {
			at := cmap + 4 + 8*i
			pid := binary.BigEndian.Uint16(out[at:])
			eid := binary.BigEndian.Uint16(out[at+2:])
			if pid == 0 || (pid == 3 && (eid == 1 || eid == 10)) {
				binary.BigEndian.PutUint16(out[at:], 3)
				binary.BigEndian.PutUint16(out[at+2:], 0)
				patched++
			}
		}
	})
	require.Positive(t, patched)
	return out
}

// renameTable returns a copy of data with the tag of table from replaced.
func renameTable(data []byte, from, to string) []byte {
	out := append([]byte(nil), data...)
	tableRecords(out, func(rec int) {
		if string(out[rec:rec+4]) == from {
			copy(out[rec:], to)
		}
	})
	return out
}

// asCollection wraps a single-font file in a one-font ttcf container.
func asCollection(data []byte) []byte {
	const header = 16
	out := make([]byte, header, header+len(data))
	copy(out, "ttcf")
	binary.BigEndian.PutUint32(out[4:], 0x00010000)
	binary.BigEndian.PutUint32(out[8:], 1)
	binary.BigEndian.PutUint32(out[12:], header)
	out = append(out, data...)
	tableRecords(out[header:], func(rec int) {
		at := header + rec + 8
		binary.BigEndian.PutUint32(out[at:], binary.BigEndian.Uint32(out[at:])+header)
	})
	return out
}

func TestHasUnicodeCharmap(t *testing.T) {
	noUnicode := withoutUnicodeCmap(t, goregular.TTF)

	tests := []struct {
		name   string
		data   []byte
		format Format
		want   bool
	}{
		{"go regular", goregular.TTF, FormatTrueType, true},
		{"symbol and mac roman only", noUnicode, FormatTrueType, false},
		{"no cmap table", renameTable(goregular.TTF, "cmap", "cmaq"), FormatTrueType, false},
		{"collection", asCollection(goregular.TTF), FormatCollection, true},
		{"collection without unicode", asCollection(noUnicode), FormatCollection, false},
		{"truncated directory", goregular.TTF[:20], FormatTrueType, true},
		{"truncated collection", []byte("ttcf\x00\x01"), FormatCollection, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasUnicodeCharmap(tt.data, tt.format))
		})
	}
}

// TestOpenWithoutUnicodeCharmap tests that both engines reject a font whose
// only cmap subtables are non-Unicode.
func TestOpenWithoutUnicodeCharmap(t *testing.T) {
	path := writeFont(t, "symbol.ttf", withoutUnicodeCmap(t, goregular.TTF))

	forEachEngine(t, func(t *testing.T, e Engine) {
		_, err := e.Open(path)
		assert.ErrorIs(t, err, ErrNoUnicodeCharmap)
	})
}
