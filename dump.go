package textrender

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DumpImage writes buf to path as a binary PPM (P6) image. Alpha is dropped.
// Fails with ErrCantOpenFile if path cannot be created.
func DumpImage(buf *PixelBuffer, path string) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrGeneric)
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCantOpenFile, err)
	}
	if err := WritePPM(f, buf); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrGeneric, err)
	}
	return nil
}

// WritePPM encodes buf as a binary PPM: the header "P6\n<w> <h>\n255\n"
// followed by one R, G, B triplet per pixel in row-major order.
func WritePPM(w io.Writer, buf *PixelBuffer) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrGeneric)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", buf.width, buf.height); err != nil {
		return fmt.Errorf("%w: %v", ErrGeneric, err)
	}

	row := make([]byte, buf.width*3)
	for y := 0; y < buf.height; y++ {
		for x := 0; x < buf.width; x++ {
			px := buf.pixel(x, y)
			row[x*3+0] = px[2]
			row[x*3+1] = px[1]
			row[x*3+2] = px[0]
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("%w: %v", ErrGeneric, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrGeneric, err)
	}
	return nil
}
