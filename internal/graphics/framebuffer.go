package graphics

import (
	"raycaster/internal/mathutil"
)

// Framebuffer is one frame of packed 0xRRGGBBAA pixels, row-major.
// It is the only thing a presentation backend needs from the renderer.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewFramebuffer allocates a cleared width x height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// Clear fills every pixel with c.
func (fb *Framebuffer) Clear(c uint32) {
	if c == 0 {
		clear(fb.Pix)
		return
	}
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// Set writes one pixel. Out-of-bounds coordinates are silently ignored.
func (fb *Framebuffer) Set(x, y int, c uint32) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pix[y*fb.Width+x] = c
}

// At returns one pixel, or 0 for out-of-bounds coordinates.
func (fb *Framebuffer) At(x, y int) uint32 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0
	}
	return fb.Pix[y*fb.Width+x]
}

// MidRow is the row strips are centred on.
func (fb *Framebuffer) MidRow() int {
	return fb.Height / 2
}

// DrawStrip draws a vertical strip in column centred on MidRow: for every j in
// [0, halfHeight) rows MidRow+j and MidRow-j are set to c. halfHeight is
// clamped so both rows stay inside the buffer. It returns the clamped extent,
// 0 when nothing was drawn.
func (fb *Framebuffer) DrawStrip(column, halfHeight int, c uint32) int {
	if column < 0 || column >= fb.Width || halfHeight <= 0 {
		return 0
	}

	mid := fb.MidRow()
	// mid+j <= Height-1 and mid-j >= 0
	extent := mathutil.IntMin(halfHeight, mathutil.IntMin(fb.Height-mid, mid+1))
	for j := 0; j < extent; j++ {
		fb.Pix[(mid+j)*fb.Width+column] = c
		fb.Pix[(mid-j)*fb.Width+column] = c
	}
	return extent
}

// ProjectHalfHeight converts a hit distance into a strip half-height. The
// projection is linear (closer is taller by one row per world unit), not
// perspective-correct. Distances at or beyond screenHalfHeight, and NaN,
// give zero.
func ProjectHalfHeight(screenHalfHeight int, dis float32) int {
	half := float32(screenHalfHeight)
	if !(dis < half) {
		return 0
	}
	return mathutil.IntMax(0, int(half-dis))
}

// WriteRGBA stores the frame into dst as 8-bit R, G, B, A bytes, the layout
// image.RGBA and ebiten.Image.WritePixels expect. dst must hold 4*Width*Height bytes.
func (fb *Framebuffer) WriteRGBA(dst []byte) {
	for i, c := range fb.Pix {
		o := i * 4
		dst[o] = uint8(c >> 24)
		dst[o+1] = uint8(c >> 16)
		dst[o+2] = uint8(c >> 8)
		dst[o+3] = uint8(c)
	}
}
