package renderer2d

import (
	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/scene"
)

// MinThickness is the thinnest stroke the rasterizer emits.
const MinThickness = 1

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	Commands     int // commands handed to the interpreter
	Skipped      int // commands with an unknown kind
	DrawCalls    int
	Vertices     int
	StateChanges int
	Scissors     int
}

// Renderer2D tessellates virtual-space primitives and submits them to a
// pixel-space backend. It is not safe for concurrent use; one Renderer2D
// owns its backend's state for the duration of a frame.
type Renderer2D struct {
	r     core.Renderer
	space *scene.Space
	stats Statistics
	verts []core.Vertex
}

func New(r core.Renderer, space *scene.Space) *Renderer2D {
	if space == nil {
		space = &scene.Space{}
	}
	return &Renderer2D{r: r, space: space, verts: make([]core.Vertex, 0, 256)}
}

func (rd *Renderer2D) Space() *scene.Space { return rd.space }
func (rd *Renderer2D) Stats() Statistics   { return rd.stats }

// Count lets the caller adjust counters it owns, such as Commands.
func (rd *Renderer2D) Count(f func(*Statistics)) { f(&rd.stats) }

// BeginFrame resets the frame statistics.
func (rd *Renderer2D) BeginFrame() { rd.stats = Statistics{} }

// EndFrame returns the statistics gathered since BeginFrame.
func (rd *Renderer2D) EndFrame() Statistics { return rd.stats }

// State exposes the backend state so callers can save and restore it.
func (rd *Renderer2D) State() core.RenderState { return rd.r.State() }

// SetState applies s if it differs from the current backend state.
func (rd *Renderer2D) SetState(s core.RenderState) {
	if rd.r.State() == s {
		return
	}
	rd.r.SetState(s)
	rd.stats.StateChanges++
}

func (rd *Renderer2D) lineWidth(thickness float32) {
	s := rd.r.State()
	s.LineWidth = max(thickness, MinThickness)
	rd.SetState(s)
}

// SetScissor makes sc the active clip rectangle.
func (rd *Renderer2D) SetScissor(sc core.ScissorRect) {
	rd.r.SetScissor(sc)
	rd.stats.Scissors++
}

// ResetScissor clips to the whole window.
func (rd *Renderer2D) ResetScissor() { rd.SetScissor(rd.space.Full()) }

// minVerts is the smallest vertex count that produces output for a mode.
func minVerts(mode core.Primitive) int {
	switch mode {
	case core.Triangles, core.TriangleFan:
		return 3
	default:
		return 2
	}
}

// DrawPixels submits already pixel-space vertices.
func (rd *Renderer2D) DrawPixels(mode core.Primitive, verts []core.Vertex) {
	if len(verts) < minVerts(mode) {
		if len(verts) > 0 {
			core.Logger().Debug("renderer2d: degenerate primitive", "mode", mode, "verts", len(verts))
		}
		return
	}
	rd.r.Draw(mode, verts)
	rd.stats.DrawCalls++
	rd.stats.Vertices += len(verts)
}

// submit converts virtual points to pixel vertices of a single color.
func (rd *Renderer2D) submit(mode core.Primitive, pts []core.Point, c colors.Color) {
	rd.verts = rd.verts[:0]
	for _, p := range pts {
		rd.verts = append(rd.verts, core.Vertex{X: rd.space.PixelX(p.X), Y: rd.space.PixelY(p.Y), Color: c})
	}
	rd.DrawPixels(mode, rd.verts)
}

func (rd *Renderer2D) Line(p0, p1 core.Point, thickness float32, c colors.Color) {
	rd.lineWidth(thickness)
	rd.submit(core.Lines, []core.Point{p0, p1}, c)
}

func (rd *Renderer2D) Curve(p0, c0, c1, p1 core.Point, thickness float32, c colors.Color) {
	rd.lineWidth(thickness)
	rd.submit(core.LineStrip, Curve(p0, c0, c1, p1), c)
}

// Rect strokes r with optionally rounded corners.
func (rd *Renderer2D) Rect(r core.Rect, rounding, thickness float32, c colors.Color) {
	pts := RoundedRectOutline(r, rounding)
	if pts == nil {
		return
	}
	rd.lineWidth(thickness)
	rd.submit(core.LineLoop, pts, c)
}

// RectFilled fills r with optionally rounded corners.
func (rd *Renderer2D) RectFilled(r core.Rect, rounding float32, c colors.Color) {
	f := FillRoundedRect(r, rounding)
	rd.submit(core.Triangles, f.Triangles, c)
	for _, fan := range f.Fans {
		rd.submit(core.TriangleFan, fan, c)
	}
}

// RectMultiColor fills r with a color per corner.
func (rd *Renderer2D) RectMultiColor(r core.Rect, tl, tr, br, bl colors.Color) {
	if r.Empty() {
		return
	}
	q := MultiColorRect(r, tl, tr, br, bl)
	rd.verts = rd.verts[:0]
	for i, p := range q.Points {
		rd.verts = append(rd.verts, core.Vertex{X: rd.space.PixelX(p.X), Y: rd.space.PixelY(p.Y), Color: q.Colors[i]})
	}
	rd.DrawPixels(core.Triangles, rd.verts)
}

// Circle strokes the ellipse inscribed in r.
func (rd *Renderer2D) Circle(r core.Rect, thickness float32, c colors.Color) {
	rd.lineWidth(thickness)
	rd.submit(core.LineLoop, Ellipse(r), c)
}

func (rd *Renderer2D) CircleFilled(r core.Rect, c colors.Color) {
	rd.submit(core.TriangleFan, EllipseFan(r), c)
}

// Arc strokes ArcSegments points from a0 to a1 (radians).
func (rd *Renderer2D) Arc(center core.Point, radius, a0, a1, thickness float32, c colors.Color) {
	rd.lineWidth(thickness)
	rd.submit(core.LineStrip, Arc(center.X, center.Y, radius, a0, a1, ArcSegments), c)
}

func (rd *Renderer2D) ArcFilled(center core.Point, radius, a0, a1 float32, c colors.Color) {
	rd.submit(core.TriangleFan, ArcFan(center.X, center.Y, radius, a0, a1), c)
}

func (rd *Renderer2D) Triangle(a, b, p core.Point, thickness float32, c colors.Color) {
	rd.lineWidth(thickness)
	rd.submit(core.LineLoop, []core.Point{a, b, p}, c)
}

func (rd *Renderer2D) TriangleFilled(a, b, p core.Point, c colors.Color) {
	rd.submit(core.Triangles, []core.Point{a, b, p}, c)
}

// Polygon strokes a closed outline through pts.
func (rd *Renderer2D) Polygon(pts []core.Point, thickness float32, c colors.Color) {
	rd.lineWidth(thickness)
	rd.submit(core.LineLoop, pts, c)
}

// PolygonFilled fans from the first point; pts should describe a convex shape.
func (rd *Renderer2D) PolygonFilled(pts []core.Point, c colors.Color) {
	rd.submit(core.TriangleFan, pts, c)
}

// Polyline strokes an open path through pts.
func (rd *Renderer2D) Polyline(pts []core.Point, thickness float32, c colors.Color) {
	rd.lineWidth(thickness)
	rd.submit(core.LineStrip, pts, c)
}

// Image draws sub stretched over the virtual rectangle dst, modulated by tint.
func (rd *Renderer2D) Image(dst core.Rect, sub SubTexture2D, tint colors.Color) {
	if dst.Empty() || sub.Texture == nil {
		return
	}
	p := rd.space.Rect(dst)
	v := func(x, y, u, w float32) core.Vertex { return core.Vertex{X: x, Y: y, U: u, V: w, Color: tint} }
	tl := v(p.X, p.Y, sub.U0, sub.V0)
	tr := v(p.X+p.W, p.Y, sub.U1, sub.V0)
	br := v(p.X+p.W, p.Y+p.H, sub.U1, sub.V1)
	bl := v(p.X, p.Y+p.H, sub.U0, sub.V1)
	rd.verts = append(rd.verts[:0], tl, tr, br, tl, br, bl)
	rd.r.DrawTextured(sub.Texture, rd.verts)
	rd.stats.DrawCalls++
	rd.stats.Vertices += len(rd.verts)
}
