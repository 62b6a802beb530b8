package textrender

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// BytesPerPixel is the size of one pixel in a PixelBuffer.
const BytesPerPixel = 4

// PixelBuffer is a rectangular grid of pixels stored row-major, 4 bytes per
// pixel in B, G, R, A order with straight alpha.
//
// Destination buffers belong to the caller: textrender writes into them but
// never reallocates them. PixelBuffer implements image.Image.
type PixelBuffer struct {
	width  int
	height int
	data   []byte
}

// NewPixelBuffer allocates a transparent buffer of the given size.
func NewPixelBuffer(width, height int) *PixelBuffer {
	width, height = max(width, 0), max(height, 0)
	return &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]byte, width*height*BytesPerPixel),
	}
}

// WrapPixelBuffer adopts caller memory as a width×height buffer without
// copying. data must hold at least width*height*4 bytes.
func WrapPixelBuffer(data []byte, width, height int) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative buffer size %dx%d", ErrGeneric, width, height)
	}
	if need := width * height * BytesPerPixel; len(data) < need {
		return nil, fmt.Errorf("%w: buffer holds %d bytes, %dx%d needs %d", ErrGeneric, len(data), width, height, need)
	}
	return &PixelBuffer{width: width, height: height, data: data}, nil
}

// Width returns the width of the buffer.
func (p *PixelBuffer) Width() int {
	return p.width
}

// Height returns the height of the buffer.
func (p *PixelBuffer) Height() int {
	return p.height
}

// Data returns the raw pixel data (B, G, R, A order).
func (p *PixelBuffer) Data() []byte {
	return p.data
}

// offset returns the byte offset of pixel (x, y). Bounds are not checked.
func (p *PixelBuffer) offset(x, y int) int {
	return (y*p.width + x) * BytesPerPixel
}

// pixel reads the B, G, R, A bytes at (x, y).
func (p *PixelBuffer) pixel(x, y int) [4]byte {
	i := p.offset(x, y)
	return [4]byte(p.data[i : i+4])
}

// setPixel writes the B, G, R, A bytes at (x, y).
func (p *PixelBuffer) setPixel(x, y int, px [4]byte) {
	i := p.offset(x, y)
	copy(p.data[i:i+4], px[:])
}

// Pixel returns the color at (x, y), or Transparent outside the buffer.
func (p *PixelBuffer) Pixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return colorFromBGRA(p.pixel(x, y))
}

// SetPixel sets the color at (x, y). Coordinates outside are ignored.
func (p *PixelBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.setPixel(x, y, c.bgra())
}

// Fill sets every pixel to c, including its alpha.
func (p *PixelBuffer) Fill(c Color) {
	px := c.bgra()
	for i := 0; i < p.width*p.height*BytesPerPixel; i += BytesPerPixel {
		copy(p.data[i:i+BytesPerPixel], px[:])
	}
}

// At implements the image.Image interface.
func (p *PixelBuffer) At(x, y int) color.Color {
	return p.Pixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the buffer to an *image.NRGBA.
func (p *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			px := p.pixel(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = px[2]
			img.Pix[i+1] = px[1]
			img.Pix[i+2] = px[0]
			img.Pix[i+3] = px[3]
		}
	}
	return img
}

// FromImage creates a buffer from an image.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	p := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return p
}

// WritePNG encodes the buffer as PNG, keeping alpha.
func (p *PixelBuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the buffer to a PNG file.
func (p *PixelBuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCantOpenFile, err)
	}
	if err := p.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
