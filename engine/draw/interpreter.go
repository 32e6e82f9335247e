package draw

import (
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/gfx/renderer2d"
	"github.com/spnavcfg/spnavcfg/engine/scene"
	"github.com/spnavcfg/spnavcfg/engine/text"
)

type state uint8

const (
	idle state = iota
	dispatching
)

// Interpreter rasterizes command streams against one backend. It owns the
// backend's global state while a frame is dispatched and must only be used
// from the goroutine that owns the rendering context.
type Interpreter struct {
	r     core.Renderer
	space *scene.Space
	rd    *renderer2d.Renderer2D
	text  *text.Metrics
	state state
}

// New creates an interpreter drawing into r. A nil space starts unsized.
func New(r core.Renderer, space *scene.Space) *Interpreter {
	if space == nil {
		space = &scene.Space{}
	}
	return &Interpreter{
		r:     r,
		space: space,
		rd:    renderer2d.New(r, space),
		text:  text.NewMetrics(space, nil),
	}
}

func (in *Interpreter) Space() *scene.Space                { return in.space }
func (in *Interpreter) Renderer2D() *renderer2d.Renderer2D { return in.rd }
func (in *Interpreter) Metrics() *text.Metrics             { return in.text }

// Resize updates the virtual canvas and the backend viewport. Non-positive
// sizes are ignored.
func (in *Interpreter) Resize(w, h int) {
	if !in.space.Resize(w, h) {
		return
	}
	in.r.Resize(w, h)
}

// Measure returns the virtual width of s.
func (in *Interpreter) Measure(s string) float32 { return in.text.Measure(s) }

// MeasureFunc is Measure in the form layout code registers.
func (in *Interpreter) MeasureFunc() MeasureFunc { return in.text.Measure }

// DrawFrame dispatches every command in order and returns the frame's
// statistics. An empty stream touches nothing. Unknown kinds are skipped.
func (in *Interpreter) DrawFrame(cmds []Command) renderer2d.Statistics {
	if in.state == dispatching {
		core.Logger().Warn("draw: nested DrawFrame rejected")
		return renderer2d.Statistics{}
	}
	in.state = dispatching
	defer func() { in.state = idle }()

	rd := in.rd
	rd.BeginFrame()
	if len(cmds) == 0 {
		return rd.EndFrame()
	}

	clipped := false
	for _, c := range cmds {
		rd.Count(func(s *renderer2d.Statistics) { s.Commands++ })
		switch c := c.(type) {
		case *Scissor:
			in.scissor(c)
			clipped = true
		case *Line:
			rd.Line(c.Begin, c.End, c.Thickness, c.Color)
		case *Curve:
			rd.Curve(c.Begin, c.Ctrl[0], c.Ctrl[1], c.End, c.Thickness, c.Color)
		case *Rect:
			rd.Rect(c.Rect, c.Rounding, c.Thickness, c.Color)
		case *RectFilled:
			rd.RectFilled(c.Rect, c.Rounding, c.Color)
		case *RectMultiColor:
			rd.RectMultiColor(c.Rect, c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft)
		case *Circle:
			rd.Circle(c.Rect, c.Thickness, c.Color)
		case *CircleFilled:
			rd.CircleFilled(c.Rect, c.Color)
		case *Arc:
			rd.Arc(c.Center, c.Radius, c.A0, c.A1, c.Thickness, c.Color)
		case *ArcFilled:
			rd.ArcFilled(c.Center, c.Radius, c.A0, c.A1, c.Color)
		case *Triangle:
			rd.Triangle(c.A, c.B, c.C, c.Thickness, c.Color)
		case *TriangleFilled:
			rd.TriangleFilled(c.A, c.B, c.C, c.Color)
		case *Polygon:
			rd.Polygon(c.Points, c.Thickness, c.Color)
		case *PolygonFilled:
			rd.PolygonFilled(c.Points, c.Color)
		case *Polyline:
			rd.Polyline(c.Points, c.Thickness, c.Color)
		case *Text:
			n := max(min(c.Length, len(c.String)), 0)
			in.text.Draw(rd, c.String[:n], c.Origin, c.Foreground)
		case *Image:
			in.image(c)
		default:
			rd.Count(func(s *renderer2d.Statistics) { s.Skipped++ })
			if c != nil {
				core.Logger().Debug("draw: skipping command", "kind", c.Kind())
			}
		}
	}

	if clipped {
		rd.ResetScissor()
	}
	return rd.EndFrame()
}

// scissor converts the command to pixels in place and applies it.
func (in *Interpreter) scissor(c *Scissor) {
	sc := in.space.Scissor(core.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H})
	c.X, c.Y, c.W, c.H = float32(sc.X), float32(sc.Y), float32(sc.W), float32(sc.H)
	in.rd.SetScissor(sc)
}

func (in *Interpreter) image(c *Image) {
	reg := c.Region
	sub, ok := renderer2d.FromPixels(c.Texture, reg[0], reg[1], reg[2], reg[3], c.ImageW, c.ImageH)
	if !ok {
		core.Logger().Debug("draw: image without size", "rect", c.Rect)
		return
	}
	in.rd.Image(c.Rect, sub, c.Tint)
}
