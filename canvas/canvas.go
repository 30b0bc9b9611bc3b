// Package canvas implements a software-rendered pixel surface over a
// caller-supplied buffer of packed 32-bit colors, with clipping draw
// primitives and a lazy image-asset cache.
//
// A Surface is single-writer: it owns its buffer exclusively for its
// lifetime and provides no internal synchronization.
package canvas

import (
	"fmt"

	"softcanvas/rgba"
)

// Surface owns a width×height pixel buffer, row-major, origin top-left.
// The cell for surface coordinate (x, y) is buf[y*width+x]. Dimensions
// never change after construction; a differently sized Surface must be
// built from scratch.
type Surface struct {
	buf    []uint32
	width  int
	height int
}

// New wraps an already-allocated pixel buffer. The dimensions must be
// strictly positive and the buffer length must equal width*height.
func New(buf []uint32, width, height int) (*Surface, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid surface dimensions %dx%d", width, height)
	}
	if len(buf) != width*height {
		return nil, fmt.Errorf("buffer length %d does not match %dx%d surface", len(buf), width, height)
	}
	return &Surface{buf: buf, width: width, height: height}, nil
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Destroy consumes the Surface and hands the pixel buffer back to the
// caller. The Surface must not be used afterwards.
func (s *Surface) Destroy() []uint32 {
	buf := s.buf
	s.buf = nil
	return buf
}

// Fill overwrites every cell with c.
func (s *Surface) Fill(c rgba.Color) {
	v := c.Uint32()
	for i := range s.buf {
		s.buf[i] = v
	}
}

// DrawRectangle fills the rectWidth×rectHeight rectangle whose top-left
// corner is at (x, y) in surface coordinates. Cells falling outside the
// surface are silently skipped, so partially off-surface rectangles draw
// only their on-surface portion.
func (s *Surface) DrawRectangle(x, y, rectWidth, rectHeight int, c rgba.Color) {
	v := c.Uint32()
	for row := 0; row < rectHeight; row++ {
		gy := y + row
		if gy < 0 || gy >= s.height {
			continue
		}
		for col := 0; col < rectWidth; col++ {
			gx := x + col
			if gx >= 0 && gx < s.width {
				s.buf[gy*s.width+gx] = v
			}
		}
	}
}

// DrawImage blits a full-color image with its top-left corner at (x, y).
// Source pixels are walked row-major; pixel i lands on surface coordinate
// (x + i mod srcWidth, y + i div srcWidth). Off-surface pixels are
// silently skipped and destination pixels are overwritten, not blended.
func (s *Surface) DrawImage(x, y int, src ColorSource) {
	pix := src.Pixels()
	srcWidth := src.Width()

	gx, gy := x, y
	for i := range pix {
		if gx >= 0 && gy >= 0 && gx < s.width && gy < s.height {
			s.buf[gy*s.width+gx] = pix[i].Uint32()
		}

		if gx == x+srcWidth-1 {
			gx, gy = x, gy+1
		} else {
			gx++
		}
	}
}

// Completion reports how much of a monochrome blit landed on the surface.
type Completion int

const (
	// CompletionNone means the draw was rejected before any pixel work.
	CompletionNone Completion = iota
	// CompletionPartial means at least one pixel was clipped.
	CompletionPartial
	// CompletionComplete means every pixel was drawn on-surface.
	CompletionComplete
)

func (c Completion) String() string {
	switch c {
	case CompletionNone:
		return "none"
	case CompletionPartial:
		return "partial"
	case CompletionComplete:
		return "complete"
	}
	return fmt.Sprintf("Completion(%d)", int(c))
}

// DrawMonochromeImage blits a grayscale image, mapping each source byte to
// a color: 0 draws black, 255 draws white, anything between draws
// black.Blend(white, b). Returns CompletionNone when the origin already
// lies past the right or bottom edge (a fast reject, checked on raw x/y
// only — callers must not rely on exact edge semantics beyond "fully
// outside is rejected"). Otherwise returns CompletionComplete, downgraded
// to CompletionPartial if any pixel was clipped.
func (s *Surface) DrawMonochromeImage(x, y int, src MonoSource, black, white rgba.Color) Completion {
	if s.width < x || s.height < y {
		return CompletionNone
	}

	comp := CompletionComplete
	gray := src.Gray()
	srcWidth := src.Width()

	gx, gy := x, y
	for i := range gray {
		if gx >= 0 && gy >= 0 && gx < s.width && gy < s.height {
			var c rgba.Color
			switch gray[i] {
			case 0:
				c = black
			case 255:
				c = white
			default:
				c = black.Blend(white, gray[i])
			}
			s.buf[gy*s.width+gx] = c.Uint32()
		} else {
			comp = CompletionPartial
		}

		if gx == x+srcWidth-1 {
			gx, gy = x, gy+1
		} else {
			gx++
		}
	}

	return comp
}
