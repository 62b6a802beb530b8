package textrender

import (
	"fmt"
	"sync"
)

// bufferPool manages reusable working buffers for RenderText.
//
// Usage:
//
//	buf, err := pool.Get(w, h, limit)
//	if err != nil {
//	    return err
//	}
//	defer pool.Put(buf)
type bufferPool struct {
	pool sync.Pool
}

func newBufferPool() *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any {
				return &PixelBuffer{}
			},
		},
	}
}

// Get returns a width×height buffer with undefined contents.
// Fails with ErrOutOfMemory if the buffer would exceed limit pixels
// (limit <= 0 means DefaultMaxWorkingPixels).
func (p *bufferPool) Get(width, height, limit int) (*PixelBuffer, error) {
	if limit <= 0 {
		limit = DefaultMaxWorkingPixels
	}
	if int64(width)*int64(height) > int64(limit) {
		return nil, fmt.Errorf("%w: working buffer %dx%d exceeds %d pixels", ErrOutOfMemory, width, height, limit)
	}

	buf := p.pool.Get().(*PixelBuffer)
	n := width * height * BytesPerPixel
	if cap(buf.data) < n {
		buf.data = make([]byte, n)
	}
	buf.data = buf.data[:n]
	buf.width = width
	buf.height = height
	return buf, nil
}

// Put returns a buffer to the pool.
func (p *bufferPool) Put(buf *PixelBuffer) {
	if buf == nil {
		return
	}
	p.pool.Put(buf)
}

// workingBuffers is shared by all sessions.
var workingBuffers = newBufferPool()
