package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/scene"
)

func TestBufferDropsTransparent(t *testing.T) {
	b := NewBuffer(scene.NewSpace(800, 600))
	clearColor := colors.Transparent
	b.StrokeLine(core.Pt(0, 0), core.Pt(1, 1), 1, clearColor)
	b.FillRect(core.Rect{W: 10, H: 10}, 0, clearColor)
	b.DrawText(core.Rect{W: 10, H: 10}, "x", clearColor, colors.Black)
	b.FillPolygon([]core.Point{{X: 1}}, clearColor)
	assert.Zero(t, b.Len())

	b.FillRect(core.Rect{W: 10, H: 10}, 0, colors.Red)
	assert.Equal(t, 1, b.Len())
}

func TestBufferCullsOutsideClip(t *testing.T) {
	b := NewBuffer(scene.NewSpace(800, 600))
	b.PushScissor(core.Rect{X: 0, Y: 0, W: 100, H: 100})
	b.FillRect(core.Rect{X: 200, Y: 200, W: 10, H: 10}, 0, colors.Red)
	b.StrokeCircle(core.Rect{X: 90, Y: 90, W: 20, H: 20}, 1, colors.Red)

	cmds := b.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, KindScissor, cmds[0].Kind())
	assert.Equal(t, KindCircle, cmds[1].Kind())

	b.Reset()
	assert.Zero(t, b.Len())
	b.FillRect(core.Rect{X: 200, Y: 200, W: 10, H: 10}, 0, colors.Red)
	assert.Equal(t, 1, b.Len(), "reset removes the clip")
}

func TestBufferTextOriginInPixels(t *testing.T) {
	b := NewBuffer(scene.NewSpace(1600, 1200))
	b.DrawText(core.Rect{X: 10, Y: 20, W: 50, H: 16}, "Grab", colors.White, colors.Black)
	require.Equal(t, 1, b.Len())
	txt := b.Commands()[0].(*Text)
	assert.Equal(t, core.Pt(20, 40), txt.Origin)
	assert.Equal(t, 4, txt.Length)
}

func TestBufferCopiesPoints(t *testing.T) {
	b := NewBuffer(nil)
	pts := []core.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	b.StrokePolyline(pts, 1, colors.White)
	pts[0].X = 99
	assert.Equal(t, float32(1), b.Commands()[0].(*Polyline).Points[0].X)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "rect-multi-color", KindRectMultiColor.String())
	assert.Equal(t, "image", KindImage.String())
	assert.Equal(t, "unknown", Kind(250).String())
}
