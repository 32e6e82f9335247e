package text

import (
	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/gfx/renderer2d"
	"github.com/spnavcfg/spnavcfg/engine/scene"
)

const (
	// TextScale maps design units to pixels: a 2048-unit em becomes 16 px.
	TextScale = 1.0 / 128
	// BaselineOffset moves the pixel origin (top of the line box) down to
	// the baseline.
	BaselineOffset = 14
)

// Metrics measures and strokes text. Measure is pure and may be called at
// any time, including from inside layout while a frame is being built.
type Metrics struct {
	space *scene.Space
	font  *StrokeFont
}

// NewMetrics uses the default stroke font when font is nil.
func NewMetrics(space *scene.Space, font *StrokeFont) *Metrics {
	if font == nil {
		font = Default()
	}
	return &Metrics{space: space, font: font}
}

func (m *Metrics) Font() *StrokeFont { return m.font }

// WidthPx is the pixel width s occupies when drawn.
func (m *Metrics) WidthPx(s string) float32 {
	var units int64
	for i := 0; i < len(s); i++ {
		units += int64(m.font.Advance(s[i]))
	}
	return float32(units) * TextScale
}

// Measure returns the width of s in virtual units.
func (m *Metrics) Measure(s string) float32 {
	return m.space.VirtualW(m.WidthPx(s))
}

// LineHeight is the virtual height of one line of text.
func (m *Metrics) LineHeight() float32 {
	return m.space.VirtualH(float32(m.font.UnitsPerEm) * TextScale * 1.25)
}

// Draw strokes s with its line box top-left at origin (pixels). The
// backend's line width and smoothing are restored before returning.
func (m *Metrics) Draw(rd *renderer2d.Renderer2D, s string, origin core.Point, c colors.Color) {
	if len(s) == 0 {
		return
	}
	saved := rd.State()
	rd.SetState(core.RenderState{LineWidth: 1, LineSmooth: true})

	var verts []core.Vertex
	penX := origin.X
	baseY := origin.Y + BaselineOffset
	for i := 0; i < len(s); i++ {
		g := m.font.Glyph(s[i])
		for _, contour := range g.Contours {
			verts = verts[:0]
			for _, p := range contour {
				verts = append(verts, core.Vertex{
					X:     penX + p.X*TextScale,
					Y:     baseY - p.Y*TextScale,
					Color: c,
				})
			}
			rd.DrawPixels(core.LineLoop, verts)
		}
		penX += float32(g.Advance) * TextScale
	}

	rd.SetState(saved)
}
