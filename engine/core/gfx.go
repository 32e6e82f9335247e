package core

import "github.com/spnavcfg/spnavcfg/engine/colors"

// Point is a 2D position. Whether it is virtual or pixel depends on the API
// that receives it.
type Point struct{ X, Y float32 }

func Pt(x, y float32) Point { return Point{x, y} }

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct{ X, Y, W, H float32 }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Primitive selects how a vertex list is assembled, with GL semantics.
type Primitive uint8

const (
	Lines Primitive = iota
	LineStrip
	LineLoop
	Triangles
	TriangleFan
)

func (p Primitive) String() string {
	switch p {
	case Lines:
		return "lines"
	case LineStrip:
		return "line-strip"
	case LineLoop:
		return "line-loop"
	case Triangles:
		return "triangles"
	case TriangleFan:
		return "triangle-fan"
	default:
		return "unknown"
	}
}

// Vertex is laid out for direct upload: pos2, uv2 (float32) then RGBA8.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color colors.Color
}

// ScissorRect is a clip rectangle in pixels with a bottom-left origin.
type ScissorRect struct {
	X, Y, W, H int32
}

// RenderState is the mutable global state a backend keeps between draws.
type RenderState struct {
	LineWidth  float32
	LineSmooth bool
}

// DefaultRenderState is what every backend starts with.
var DefaultRenderState = RenderState{LineWidth: 1}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // tightly packed rows, top-left origin
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
}

// Texture is a backend-owned image handle.
type Texture interface {
	Size() (w, h int)
}
