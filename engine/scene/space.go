package scene

import (
	"math"

	"github.com/spnavcfg/spnavcfg/engine/core"
)

// VirtualHeight is the fixed vertical extent of the virtual canvas.
const VirtualHeight = 600

// Space maps between virtual layout units and framebuffer pixels. The
// vertical scale is fixed by VirtualHeight; the virtual width follows the
// window aspect ratio so that virtual units stay square.
//
// The zero value is usable: until the first valid Resize every conversion is
// the identity.
type Space struct {
	winW, winH int
	virtW      float32
	ready      bool
}

// NewSpace returns a Space already resized to w x h.
func NewSpace(w, h int) *Space {
	s := &Space{}
	s.Resize(w, h)
	return s
}

// Resize records the new framebuffer size and recomputes the virtual width.
// A non-positive dimension (minimized window) keeps the previous state and
// reports false.
func (s *Space) Resize(w, h int) bool {
	if w <= 0 || h <= 0 {
		core.Logger().Debug("space: resize ignored", "w", w, "h", h)
		return false
	}
	s.winW, s.winH = w, h
	s.virtW = float32(float64(w) * VirtualHeight / float64(h))
	s.ready = true
	return true
}

// Ready reports whether a valid resize has happened.
func (s *Space) Ready() bool { return s.ready }

// WindowSize returns the framebuffer size in pixels.
func (s *Space) WindowSize() (int, int) { return s.winW, s.winH }

// VirtualSize returns the virtual canvas size.
func (s *Space) VirtualSize() (float32, float32) {
	if !s.ready {
		return float32(s.winW), float32(s.winH)
	}
	return s.virtW, VirtualHeight
}

func (s *Space) sx() float64 {
	if !s.ready {
		return 1
	}
	return float64(s.winW) / float64(s.virtW)
}

func (s *Space) sy() float64 {
	if !s.ready {
		return 1
	}
	return float64(s.winH) / VirtualHeight
}

// PixelX converts a virtual x coordinate to pixels.
func (s *Space) PixelX(vx float32) float32 { return float32(float64(vx) * s.sx()) }

// PixelY converts a virtual y coordinate to pixels.
func (s *Space) PixelY(vy float32) float32 { return float32(float64(vy) * s.sy()) }

// VirtualX converts a pixel x coordinate to virtual units.
func (s *Space) VirtualX(px float32) float32 { return float32(float64(px) / s.sx()) }

// VirtualY converts a pixel y coordinate to virtual units.
func (s *Space) VirtualY(py float32) float32 { return float32(float64(py) / s.sy()) }

// Axis lengths scale like coordinates but are kept as separate entry points
// so callers say what they convert.

func (s *Space) PixelW(vw float32) float32   { return s.PixelX(vw) }
func (s *Space) PixelH(vh float32) float32   { return s.PixelY(vh) }
func (s *Space) VirtualW(pw float32) float32 { return s.VirtualX(pw) }
func (s *Space) VirtualH(ph float32) float32 { return s.VirtualY(ph) }

// Point converts a virtual point to pixels.
func (s *Space) Point(p core.Point) core.Point {
	return core.Point{X: s.PixelX(p.X), Y: s.PixelY(p.Y)}
}

// Rect converts a virtual rectangle to pixels, top-left origin.
func (s *Space) Rect(r core.Rect) core.Rect {
	return core.Rect{X: s.PixelX(r.X), Y: s.PixelY(r.Y), W: s.PixelW(r.W), H: s.PixelH(r.H)}
}

// Scissor converts a virtual rectangle to a bottom-left origin pixel clip
// rectangle. Negative sizes clamp to zero.
func (s *Space) Scissor(r core.Rect) core.ScissorRect {
	x := round(s.PixelX(r.X))
	y := round(s.PixelY(r.Y))
	w := max(round(s.PixelW(r.W)), 0)
	h := max(round(s.PixelH(r.H)), 0)
	return core.ScissorRect{X: x, Y: int32(s.winH) - y - h, W: w, H: h}
}

// Full returns the clip rectangle covering the whole window.
func (s *Space) Full() core.ScissorRect {
	return core.ScissorRect{W: int32(s.winW), H: int32(s.winH)}
}

func round(v float32) int32 { return int32(math.Round(float64(v))) }
