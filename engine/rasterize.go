package engine

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// pathOp is an outline drawing operation.
type pathOp uint8

const (
	opMoveTo pathOp = iota
	opLineTo
	opQuadTo
	opCubeTo
)

// pathPoint is an outline point in pixels, y pointing up.
type pathPoint struct {
	X, Y float32
}

// pathSegment is one outline operation with its control and end points.
type pathSegment struct {
	Op   pathOp
	Args [3]pathPoint
}

// nargs returns how many points of Args the operation uses.
func (s pathSegment) nargs() int {
	switch s.Op {
	case opQuadTo:
		return 2
	case opCubeTo:
		return 3
	default:
		return 1
	}
}

// rasterizeOutline renders an outline with the pen at the origin into a gray
// bitmap. It returns the bitmap and its offsets relative to the pen.
// An empty outline yields an empty gray bitmap.
func rasterizeOutline(segments []pathSegment) (bm Bitmap, left, top int) {
	if len(segments) == 0 {
		return Bitmap{Mode: PixelModeGray}, 0, 0
	}

	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for _, seg := range segments {
		for _, p := range seg.Args[:seg.nargs()] {
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
	}

	// Image space has y pointing down.
	x0 := int(math.Floor(float64(minX)))
	x1 := int(math.Ceil(float64(maxX)))
	y0 := int(math.Floor(float64(-maxY)))
	y1 := int(math.Ceil(float64(-minY)))
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return Bitmap{Mode: PixelModeGray}, 0, 0
	}

	ox, oy := float32(x0), float32(y0)
	tx := func(p pathPoint) (float32, float32) { return p.X - ox, -p.Y - oy }

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	started := false
	for _, seg := range segments {
		switch seg.Op {
		case opMoveTo:
			if started {
				r.ClosePath()
			}
			started = true
			r.MoveTo(tx(seg.Args[0]))
		case opLineTo:
			r.LineTo(tx(seg.Args[0]))
		case opQuadTo:
			bx, by := tx(seg.Args[0])
			cx, cy := tx(seg.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case opCubeTo:
			bx, by := tx(seg.Args[0])
			cx, cy := tx(seg.Args[1])
			dx, dy := tx(seg.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		r.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return Bitmap{Width: w, Rows: h, Pitch: mask.Stride, Mode: PixelModeGray, Pix: mask.Pix}, x0, -y0
}
