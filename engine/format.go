package engine

import (
	"encoding/binary"
	"os"
)

// Format identifies a font container.
type Format uint8

const (
	FormatUnknown    Format = iota
	FormatTrueType          // glyf outlines (0x00010000 or "true")
	FormatOpenType          // CFF outlines ("OTTO")
	FormatCollection        // "ttcf"
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatTrueType:
		return "truetype"
	case FormatOpenType:
		return "opentype"
	case FormatCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// DetectFormat sniffs the container format from the first four bytes.
func DetectFormat(data []byte) Format {
	if len(data) < 4 {
		return FormatUnknown
	}
	switch binary.BigEndian.Uint32(data) {
	case 0x00010000, 0x74727565: // "true"
		return FormatTrueType
	case 0x4f54544f: // "OTTO"
		return FormatOpenType
	case 0x74746366: // "ttcf"
		return FormatCollection
	default:
		return FormatUnknown
	}
}

// readFont loads a font file and checks its container format and
// character maps.
func readFont(path string) ([]byte, Format, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, FormatUnknown, err
	}
	format := DetectFormat(data)
	if format == FormatUnknown {
		return nil, FormatUnknown, ErrUnknownFormat
	}
	if !hasUnicodeCharmap(data, format) {
		return nil, format, ErrNoUnicodeCharmap
	}
	return data, format, nil
}

// hasUnicodeCharmap reports whether the font, or the first font of a
// collection, has a cmap subtable for Unicode: any Unicode platform encoding,
// or Windows UCS-2 (3,1) or UCS-4 (3,10). Truncated table directories report
// true and are left to the parser.
func hasUnicodeCharmap(data []byte, format Format) bool {
	offset := uint32(0)
	if format == FormatCollection {
		// ttcf header: tag, version, numFonts, then font offsets.
		if len(data) < 16 {
			return true
		}
		offset = binary.BigEndian.Uint32(data[12:])
	}

	cmap, ok := findTable(data, offset, "cmap")
	if !ok {
		return false
	}
	if cmap == nil {
		return true
	}

	const headerSize, entrySize = 4, 8
	if len(cmap) < headerSize {
		return true
	}
	n := int(binary.BigEndian.Uint16(cmap[2:]))
	for i := 0; i < n; i++ {
		at := headerSize + entrySize*i
		if at+entrySize > len(cmap) {
			return true
		}
		pid := binary.BigEndian.Uint16(cmap[at:])
		eid := binary.BigEndian.Uint16(cmap[at+2:])
		if pid == 0 || (pid == 3 && (eid == 1 || eid == 10)) {
			return true
		}
	}
	return false
}

// findTable returns the bytes of the table tagged tag in the table directory
// at offset. ok is false if the directory has no such table. A nil table
// with ok true means the directory or table is truncated.
func findTable(data []byte, offset uint32, tag string) (table []byte, ok bool) {
	const headerSize, recordSize = 12, 16
	if uint64(offset)+headerSize > uint64(len(data)) {
		return nil, true
	}
	dir := data[offset:]
	n := int(binary.BigEndian.Uint16(dir[4:]))
	for i := 0; i < n; i++ {
		at := headerSize + recordSize*i
		if at+recordSize > len(dir) {
			return nil, true
		}
		if string(dir[at:at+4]) != tag {
			continue
		}
		start := uint64(binary.BigEndian.Uint32(dir[at+8:]))
		end := start + uint64(binary.BigEndian.Uint32(dir[at+12:]))
		if end > uint64(len(data)) {
			return nil, true
		}
		return data[start:end], true
	}
	return nil, false
}
