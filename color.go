package textrender

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit-per-channel ARGB color packed as 0xAARRGGBB.
// Channels are straight (not premultiplied) alpha.
type Color uint32

// Pack packs four channels into a Color.
func Pack(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) Color {
	return Pack(0xFF, r, g, b)
}

// Unpack returns the four channels of c.
func (c Color) Unpack() (a, r, g, b uint8) {
	return c.A(), c.R(), c.G(), c.B()
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// bgra returns the color in buffer byte order.
func (c Color) bgra() [4]byte {
	return [4]byte{c.B(), c.G(), c.R(), c.A()}
}

// colorFromBGRA packs a pixel read from a buffer.
func colorFromBGRA(p [4]byte) Color {
	return Pack(p[3], p[2], p[1], p[0])
}

// NRGBA converts c to the standard non-premultiplied color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String formats c as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.A, n.R, n.G, n.B)
}

// ChannelRangeError reports a color channel outside [0, 255].
type ChannelRangeError struct {
	Channel string
	Value   int
}

func (e *ChannelRangeError) Error() string {
	return fmt.Sprintf("textrender: %s component not in range 0-255: %d", e.Channel, e.Value)
}

// Unwrap makes channel errors match ErrGeneric.
func (e *ChannelRangeError) Unwrap() error { return ErrGeneric }

// ColorFromChannels validates and packs host-supplied channels, given in the
// B, G, R, A order of pixel buffers. Alpha is checked first.
func ColorFromChannels(b, g, r, a int) (Color, error) {
	for _, ch := range []struct {
		name  string
		value int
	}{{"alpha", a}, {"red", r}, {"green", g}, {"blue", b}} {
		if ch.value < 0 || ch.value > 0xFF {
			return 0, &ChannelRangeError{Channel: ch.name, Value: ch.value}
		}
	}
	return Pack(uint8(a), uint8(r), uint8(g), uint8(b)), nil
}

// ParseHex parses a color from a hex string with an optional leading '#'.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA" (alpha last, as in CSS).
func ParseHex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var digits [8]uint8
	for i := 0; i < len(s) && i < len(digits); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: invalid hex color %q", ErrGeneric, hex)
		}
		digits[i] = d
	}

	switch len(s) {
	case 3: // RGB
		return Pack(0xFF, digits[0]*17, digits[1]*17, digits[2]*17), nil
	case 4: // RGBA
		return Pack(digits[3]*17, digits[0]*17, digits[1]*17, digits[2]*17), nil
	case 6: // RRGGBB
		return Pack(0xFF, digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]), nil
	case 8: // RRGGBBAA
		return Pack(digits[6]<<4|digits[7], digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]), nil
	default:
		return 0, fmt.Errorf("%w: invalid hex color %q", ErrGeneric, hex)
	}
}

// hexDigit decodes one hex digit.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(0xFF, 0xFF, 0xFF)
	Red         = RGB(0xFF, 0, 0)
	Green       = RGB(0, 0xFF, 0)
	Blue        = RGB(0, 0, 0xFF)
	Transparent = Pack(0, 0, 0, 0)
)
