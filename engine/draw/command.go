// Package draw holds the per-frame command stream produced by the UI layer
// and the interpreter that rasterizes it.
//
// Geometry is in virtual units (see scene.Space) except Text.Origin, which
// is already in pixels.
package draw

import (
	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
)

// Kind tags a command variant.
type Kind uint8

const (
	KindNop Kind = iota
	KindScissor
	KindLine
	KindCurve
	KindRect
	KindRectFilled
	KindRectMultiColor
	KindCircle
	KindCircleFilled
	KindArc
	KindArcFilled
	KindTriangle
	KindTriangleFilled
	KindPolygon
	KindPolygonFilled
	KindPolyline
	KindText
	KindImage
)

var kindNames = [...]string{
	"nop", "scissor", "line", "curve", "rect", "rect-filled", "rect-multi-color",
	"circle", "circle-filled", "arc", "arc-filled", "triangle", "triangle-filled",
	"polygon", "polygon-filled", "polyline", "text", "image",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Command is one entry of the stream. The interface is open so that newer
// producers can emit kinds an older interpreter skips.
type Command interface{ Kind() Kind }

// MeasureFunc returns the virtual width of a text string.
type MeasureFunc func(s string) float32

// Scissor sets the clip rectangle. The interpreter overwrites its fields
// with the pixel rectangle (bottom-left origin) it applied.
type Scissor struct {
	X, Y, W, H float32
}

type Line struct {
	Begin, End core.Point
	Thickness  float32
	Color      colors.Color
}

type Curve struct {
	Begin     core.Point
	Ctrl      [2]core.Point
	End       core.Point
	Thickness float32
	Color     colors.Color
}

type Rect struct {
	Rect      core.Rect
	Rounding  float32
	Thickness float32
	Color     colors.Color
}

type RectFilled struct {
	Rect     core.Rect
	Rounding float32
	Color    colors.Color
}

// RectMultiColor fills Rect with one color per corner.
type RectMultiColor struct {
	Rect        core.Rect
	TopLeft     colors.Color
	TopRight    colors.Color
	BottomRight colors.Color
	BottomLeft  colors.Color
}

// Circle strokes the ellipse inscribed in Rect.
type Circle struct {
	Rect      core.Rect
	Thickness float32
	Color     colors.Color
}

type CircleFilled struct {
	Rect  core.Rect
	Color colors.Color
}

// Arc angles are radians, measured clockwise on screen from +x.
type Arc struct {
	Center    core.Point
	Radius    float32
	A0, A1    float32
	Thickness float32
	Color     colors.Color
}

type ArcFilled struct {
	Center core.Point
	Radius float32
	A0, A1 float32
	Color  colors.Color
}

type Triangle struct {
	A, B, C   core.Point
	Thickness float32
	Color     colors.Color
}

type TriangleFilled struct {
	A, B, C core.Point
	Color   colors.Color
}

type Polygon struct {
	Points    []core.Point
	Thickness float32
	Color     colors.Color
}

type PolygonFilled struct {
	Points []core.Point
	Color  colors.Color
}

type Polyline struct {
	Points    []core.Point
	Thickness float32
	Color     colors.Color
}

// Text draws the first Length bytes of String. Origin is the top-left of
// the line box in pixels; Rect is the virtual bounds used for culling.
type Text struct {
	Rect       core.Rect
	Origin     core.Point
	String     string
	Length     int
	Foreground colors.Color
	Background colors.Color
}

// Image draws Region (pixels, x y w h) of an image declared as
// ImageW x ImageH, stretched over Rect and modulated by Tint.
type Image struct {
	Rect           core.Rect
	Texture        core.Texture
	Region         [4]int
	ImageW, ImageH int
	Tint           colors.Color
}

func (*Scissor) Kind() Kind        { return KindScissor }
func (*Line) Kind() Kind           { return KindLine }
func (*Curve) Kind() Kind          { return KindCurve }
func (*Rect) Kind() Kind           { return KindRect }
func (*RectFilled) Kind() Kind     { return KindRectFilled }
func (*RectMultiColor) Kind() Kind { return KindRectMultiColor }
func (*Circle) Kind() Kind         { return KindCircle }
func (*CircleFilled) Kind() Kind   { return KindCircleFilled }
func (*Arc) Kind() Kind            { return KindArc }
func (*ArcFilled) Kind() Kind      { return KindArcFilled }
func (*Triangle) Kind() Kind       { return KindTriangle }
func (*TriangleFilled) Kind() Kind { return KindTriangleFilled }
func (*Polygon) Kind() Kind        { return KindPolygon }
func (*PolygonFilled) Kind() Kind  { return KindPolygonFilled }
func (*Polyline) Kind() Kind       { return KindPolyline }
func (*Text) Kind() Kind           { return KindText }
func (*Image) Kind() Kind          { return KindImage }
