package draw

import (
	"math"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/scene"
)

// noClip is the clip of a fresh buffer: everything is visible.
var noClip = core.Rect{X: -math.MaxFloat32 / 4, Y: -math.MaxFloat32 / 4, W: math.MaxFloat32 / 2, H: math.MaxFloat32 / 2}

// Buffer collects the commands of one frame. Fully transparent commands are
// dropped and rect-bounded commands entirely outside the current clip are
// culled. A Buffer is reused across frames via Reset.
type Buffer struct {
	space *scene.Space
	cmds  []Command
	clip  core.Rect
}

func NewBuffer(space *scene.Space) *Buffer {
	if space == nil {
		space = &scene.Space{}
	}
	return &Buffer{space: space, clip: noClip}
}

// Reset empties the buffer and removes the clip.
func (b *Buffer) Reset() {
	clear(b.cmds)
	b.cmds = b.cmds[:0]
	b.clip = noClip
}

// Commands returns the stream built so far. It stays valid until Reset.
func (b *Buffer) Commands() []Command { return b.cmds }
func (b *Buffer) Len() int            { return len(b.cmds) }
func (b *Buffer) Clip() core.Rect     { return b.clip }

// Push appends c without filtering.
func (b *Buffer) Push(c Command) { b.cmds = append(b.cmds, c) }

func (b *Buffer) visible(r core.Rect) bool { return b.clip.Intersects(r) }

// PushScissor sets the clip for the commands that follow.
func (b *Buffer) PushScissor(r core.Rect) {
	b.clip = r
	b.Push(&Scissor{X: r.X, Y: r.Y, W: r.W, H: r.H})
}

func (b *Buffer) StrokeLine(p0, p1 core.Point, thickness float32, c colors.Color) {
	if c.A == 0 {
		return
	}
	b.Push(&Line{Begin: p0, End: p1, Thickness: thickness, Color: c})
}

func (b *Buffer) StrokeCurve(p0, c0, c1, p1 core.Point, thickness float32, c colors.Color) {
	if c.A == 0 {
		return
	}
	b.Push(&Curve{Begin: p0, Ctrl: [2]core.Point{c0, c1}, End: p1, Thickness: thickness, Color: c})
}

func (b *Buffer) StrokeRect(r core.Rect, rounding, thickness float32, c colors.Color) {
	if c.A == 0 || r.Empty() || !b.visible(r) {
		return
	}
	b.Push(&Rect{Rect: r, Rounding: rounding, Thickness: thickness, Color: c})
}

func (b *Buffer) FillRect(r core.Rect, rounding float32, c colors.Color) {
	if c.A == 0 || r.Empty() || !b.visible(r) {
		return
	}
	b.Push(&RectFilled{Rect: r, Rounding: rounding, Color: c})
}

func (b *Buffer) FillRectMultiColor(r core.Rect, tl, tr, br, bl colors.Color) {
	if r.Empty() || !b.visible(r) {
		return
	}
	b.Push(&RectMultiColor{Rect: r, TopLeft: tl, TopRight: tr, BottomRight: br, BottomLeft: bl})
}

func (b *Buffer) StrokeCircle(r core.Rect, thickness float32, c colors.Color) {
	if c.A == 0 || r.Empty() || !b.visible(r) {
		return
	}
	b.Push(&Circle{Rect: r, Thickness: thickness, Color: c})
}

func (b *Buffer) FillCircle(r core.Rect, c colors.Color) {
	if c.A == 0 || r.Empty() || !b.visible(r) {
		return
	}
	b.Push(&CircleFilled{Rect: r, Color: c})
}

func (b *Buffer) StrokeArc(center core.Point, radius, a0, a1, thickness float32, c colors.Color) {
	if c.A == 0 {
		return
	}
	b.Push(&Arc{Center: center, Radius: radius, A0: a0, A1: a1, Thickness: thickness, Color: c})
}

func (b *Buffer) FillArc(center core.Point, radius, a0, a1 float32, c colors.Color) {
	if c.A == 0 {
		return
	}
	b.Push(&ArcFilled{Center: center, Radius: radius, A0: a0, A1: a1, Color: c})
}

func (b *Buffer) StrokeTriangle(p0, p1, p2 core.Point, thickness float32, c colors.Color) {
	if c.A == 0 {
		return
	}
	b.Push(&Triangle{A: p0, B: p1, C: p2, Thickness: thickness, Color: c})
}

func (b *Buffer) FillTriangle(p0, p1, p2 core.Point, c colors.Color) {
	if c.A == 0 {
		return
	}
	b.Push(&TriangleFilled{A: p0, B: p1, C: p2, Color: c})
}

// Point slices are copied so callers may reuse theirs.

func (b *Buffer) StrokePolygon(pts []core.Point, thickness float32, c colors.Color) {
	if c.A == 0 {
		return
	}
	b.Push(&Polygon{Points: append([]core.Point(nil), pts...), Thickness: thickness, Color: c})
}

func (b *Buffer) FillPolygon(pts []core.Point, c colors.Color) {
	if c.A == 0 {
		return
	}
	b.Push(&PolygonFilled{Points: append([]core.Point(nil), pts...), Color: c})
}

func (b *Buffer) StrokePolyline(pts []core.Point, thickness float32, c colors.Color) {
	if c.A == 0 {
		return
	}
	b.Push(&Polyline{Points: append([]core.Point(nil), pts...), Thickness: thickness, Color: c})
}

// DrawText places s with its line box at the top-left of the virtual
// rectangle r. The origin is converted to pixels here, at record time.
func (b *Buffer) DrawText(r core.Rect, s string, fg, bg colors.Color) {
	if fg.A == 0 || len(s) == 0 || !b.visible(r) {
		return
	}
	b.Push(&Text{
		Rect:       r,
		Origin:     b.space.Point(core.Point{X: r.X, Y: r.Y}),
		String:     s,
		Length:     len(s),
		Foreground: fg,
		Background: bg,
	})
}

// DrawImage stretches the pixel region (x, y, w, h) of an image declared as
// imgW x imgH over r.
func (b *Buffer) DrawImage(r core.Rect, tex core.Texture, region [4]int, imgW, imgH int, tint colors.Color) {
	if tint.A == 0 || tex == nil || !b.visible(r) {
		return
	}
	b.Push(&Image{Rect: r, Texture: tex, Region: region, ImageW: imgW, ImageH: imgH, Tint: tint})
}
