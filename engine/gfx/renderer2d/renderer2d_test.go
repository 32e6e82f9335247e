package renderer2d_test

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

func newRenderer(w, h int) (*renderer2d.Renderer2D, *record.Recorder) {
	rec := record.New()
	return renderer2d.New(rec, scene.NewSpace(w, h)), rec
}

func TestVerticesConvertedToPixels(t *testing.T) {
	// 1600x1200 doubles both axes of the 800x600 virtual canvas
	rd, rec := newRenderer(1600, 1200)
	rd.Line(core.Pt(10, 20), core.Pt(30, 40), 1, colors.White)

	draws := rec.Draws()
	require.Len(t, draws, 1)
	assert.Equal(t, core.Lines, draws[0].Mode)
	assert.Equal(t, float32(20), draws[0].Verts[0].X)
	assert.Equal(t, float32(40), draws[0].Verts[0].Y)
	assert.Equal(t, float32(60), draws[0].Verts[1].X)
	assert.Equal(t, float32(80), draws[0].Verts[1].Y)
}

func TestLineWidthOnlyChangedWhenDifferent(t *testing.T) {
	rd, rec := newRenderer(800, 600)
	rd.Line(core.Pt(0, 0), core.Pt(1, 1), 1, colors.White)
	rd.Line(core.Pt(0, 0), core.Pt(1, 1), 3, colors.White)
	rd.Line(core.Pt(0, 0), core.Pt(1, 1), 3, colors.White)
	rd.Line(core.Pt(0, 0), core.Pt(1, 1), 0.2, colors.White)

	var widths []float32
	for _, c := range rec.Calls {
		if c.Op == record.OpState {
			widths = append(widths, c.State.LineWidth)
		}
	}
	assert.Equal(t, []float32{3, 1}, widths, "thin strokes clamp to 1")
	assert.Equal(t, 2, rd.Stats().StateChanges)
}

func TestRoundedRectSubmission(t *testing.T) {
	rd, rec := newRenderer(800, 600)
	rd.Rect(core.Rect{W: 100, H: 50}, 0, 1, colors.White)
	rd.Rect(core.Rect{W: 100, H: 50}, 10, 1, colors.White)
	rd.RectFilled(core.Rect{W: 100, H: 50}, 10, colors.White)

	draws := rec.Draws()
	require.Len(t, draws, 1+1+1+4)
	assert.Equal(t, core.LineLoop, draws[0].Mode)
	assert.Len(t, draws[0].Verts, 4)
	assert.Len(t, draws[1].Verts, 32)
	assert.Equal(t, core.Triangles, draws[2].Mode)
	for _, d := range draws[3:] {
		assert.Equal(t, core.TriangleFan, d.Mode)
		assert.Len(t, d.Verts, 9)
	}
}

func TestDegenerateGeometryDrawsNothing(t *testing.T) {
	rd, rec := newRenderer(800, 600)
	rd.Polygon(nil, 1, colors.White)
	rd.Polygon([]core.Point{{X: 1, Y: 1}}, 1, colors.White)
	rd.PolygonFilled([]core.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, colors.White)
	rd.Polyline([]core.Point{{X: 1, Y: 1}}, 1, colors.White)
	rd.RectFilled(core.Rect{W: -4, H: 10}, 2, colors.White)
	rd.Rect(core.Rect{W: 10, H: 0}, 2, 1, colors.White)
	rd.RectMultiColor(core.Rect{W: 0, H: 0}, colors.Red, colors.Red, colors.Red, colors.Red)

	assert.Empty(t, rec.Draws())
	assert.Zero(t, rd.Stats().DrawCalls)
}

func TestMultiColorRectVertices(t *testing.T) {
	rd, rec := newRenderer(800, 600)
	rd.RectMultiColor(core.Rect{W: 100, H: 100},
		colors.RGBA(255, 0, 0, 255), colors.RGBA(0, 255, 0, 255),
		colors.RGBA(0, 0, 255, 255), colors.RGBA(255, 255, 0, 255))

	draws := rec.Draws()
	require.Len(t, draws, 1)
	require.Len(t, draws[0].Verts, 12)
	center := draws[0].Verts[2]
	assert.Equal(t, colors.RGBA(127, 127, 63, 255), center.Color)
	assert.Equal(t, float32(50), center.X)
	assert.Equal(t, float32(50), center.Y)
}

func TestCircleAndArcCounts(t *testing.T) {
	rd, rec := newRenderer(800, 600)
	rd.Circle(core.Rect{W: 20, H: 20}, 1, colors.White)
	rd.CircleFilled(core.Rect{W: 20, H: 20}, colors.White)
	rd.Arc(core.Pt(10, 10), 5, 0, 3, 1, colors.White)
	rd.ArcFilled(core.Pt(10, 10), 5, 0, 3, colors.White)
	rd.Curve(core.Pt(0, 0), core.Pt(1, 5), core.Pt(5, 5), core.Pt(6, 0), 1, colors.White)

	draws := rec.Draws()
	require.Len(t, draws, 5)
	want := []struct {
		mode core.Primitive
		n    int
	}{
		{core.LineLoop, 32},
		{core.TriangleFan, 33},
		{core.LineStrip, 24},
		{core.TriangleFan, 25},
		{core.LineStrip, 8},
	}
	for i, w := range want {
		assert.Equal(t, w.mode, draws[i].Mode, "draw %d", i)
		assert.Len(t, draws[i].Verts, w.n, "draw %d", i)
	}
}

func TestImageUV(t *testing.T) {
	rd, rec := newRenderer(800, 600)
	tex, err := rec.CreateTexture(core.TextureDesc{Width: 64, Height: 32, Pixels: make([]byte, 64*32*4)})
	require.NoError(t, err)

	sub, ok := renderer2d.FromPixels(tex, 16, 8, 32, 16, 0, 0)
	require.True(t, ok)
	assert.Equal(t, renderer2d.SubTexture2D{Texture: tex, U0: 0.25, V0: 0.25, U1: 0.75, V1: 0.75}, sub)

	rd.Image(core.Rect{X: 10, Y: 10, W: 40, H: 20}, sub, colors.Gray)
	draws := rec.Draws()
	require.Len(t, draws, 1)
	assert.Equal(t, record.OpDrawTextured, draws[0].Op)
	require.Len(t, draws[0].Verts, 6)
	assert.Equal(t, float32(0.25), draws[0].Verts[0].U)
	assert.Equal(t, float32(0.75), draws[0].Verts[2].V)
	assert.Equal(t, colors.Gray, draws[0].Verts[0].Color)
}

func TestFromPixelsDeclaredSize(t *testing.T) {
	tex := &record.Texture{W: 10, H: 10}
	sub, ok := renderer2d.FromPixels(tex, 0, 0, 50, 25, 100, 50)
	require.True(t, ok)
	assert.Equal(t, float32(0.5), sub.U1)
	assert.Equal(t, float32(0.5), sub.V1)

	_, ok = renderer2d.FromPixels(&record.Texture{}, 0, 0, 1, 1, 0, 0)
	assert.False(t, ok)
	_, ok = renderer2d.FromPixels(nil, 0, 0, 1, 1, 10, 10)
	assert.False(t, ok)
}

func TestScissorReset(t *testing.T) {
	rd, rec := newRenderer(640, 480)
	rd.ResetScissor()
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, core.ScissorRect{W: 640, H: 480}, rec.Calls[0].Scissor)
	assert.Equal(t, 1, rd.Stats().Scissors)
}
