package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/gfx/record"
	"github.com/spnavcfg/spnavcfg/engine/gfx/renderer2d"
	"github.com/spnavcfg/spnavcfg/engine/scene"
)

func TestDefaultFontLoaded(t *testing.T) {
	f := Default()
	require.NotNil(t, f)
	assert.Equal(t, 2048, f.UnitsPerEm)
	assert.Same(t, f, Default(), "built once")

	a := f.Glyph('A')
	assert.Positive(t, a.Advance)
	assert.NotEmpty(t, a.Contours)
	assert.Positive(t, f.Advance(' '))
	assert.Empty(t, f.Glyph(' ').Contours)
	assert.Positive(t, f.Advance(0xe9), "latin-1 e acute")
}

func TestControlBytesHaveNoWidth(t *testing.T) {
	f := Default()
	for _, b := range []byte{0, '\n', '\t', 0x7f, 0x85} {
		assert.Zero(t, f.Advance(b), "byte %#x", b)
		assert.Empty(t, f.Glyph(b).Contours)
	}
}

func TestGlyphsAreYUp(t *testing.T) {
	// the top of a capital sits above the baseline
	var top float32
	for _, c := range Default().Glyph('T').Contours {
		for _, p := range c {
			top = max(top, p.Y)
		}
	}
	assert.Greater(t, top, float32(1000))
}

func TestMeasureAdditive(t *testing.T) {
	m := NewMetrics(scene.NewSpace(1280, 720), nil)
	pairs := [][2]string{
		{"Sensitivity", ": 1.50"},
		{"", "dead zone"},
		{"LED", ""},
		{"\xe9t\xe9", "\x00grab"},
	}
	for _, p := range pairs {
		assert.InDelta(t, m.Measure(p[0])+m.Measure(p[1]), m.Measure(p[0]+p[1]), 1e-3, "%q + %q", p[0], p[1])
	}
	assert.Zero(t, m.Measure(""))
	assert.Equal(t, m.Measure("Device"), m.Measure("Device"))
}

func TestMeasureTracksSpace(t *testing.T) {
	space := scene.NewSpace(800, 600)
	m := NewMetrics(space, nil)
	px := m.WidthPx("Hello")
	assert.InDelta(t, px, m.Measure("Hello"), 1e-3, "1:1 at 800x600")

	space.Resize(1600, 1200)
	assert.InDelta(t, px/2, m.Measure("Hello"), 1e-3)
	assert.Equal(t, px, m.WidthPx("Hello"), "pixel width does not depend on the window")
}

func TestDrawRestoresState(t *testing.T) {
	rec := record.New()
	rd := renderer2d.New(rec, scene.NewSpace(800, 600))
	rec.SetState(core.RenderState{LineWidth: 3})
	rec.Reset()

	m := NewMetrics(rd.Space(), nil)
	m.Draw(rd, "Hi", core.Pt(10, 20), colors.White)

	assert.Equal(t, core.RenderState{LineWidth: 3}, rec.State())
	draws := rec.Draws()
	require.NotEmpty(t, draws)
	for _, d := range draws {
		assert.Equal(t, core.LineLoop, d.Mode)
		assert.Equal(t, core.RenderState{LineWidth: 1, LineSmooth: true}, d.State)
	}
}

func TestDrawStaysInsideMeasuredBox(t *testing.T) {
	rec := record.New()
	rd := renderer2d.New(rec, scene.NewSpace(800, 600))
	m := NewMetrics(rd.Space(), nil)
	m.Draw(rd, "Axis", core.Pt(100, 50), colors.White)

	w := m.WidthPx("Axis")
	for _, d := range rec.Draws() {
		for _, v := range d.Verts {
			assert.GreaterOrEqual(t, v.X, float32(99))
			assert.LessOrEqual(t, v.X, 100+w+1)
			assert.Greater(t, v.Y, float32(50))
			assert.Less(t, v.Y, float32(50+BaselineOffset+5))
		}
	}
}

func TestDrawEmpty(t *testing.T) {
	rec := record.New()
	rd := renderer2d.New(rec, scene.NewSpace(800, 600))
	NewMetrics(rd.Space(), nil).Draw(rd, "", core.Pt(0, 0), colors.White)
	assert.Empty(t, rec.Calls)
}
