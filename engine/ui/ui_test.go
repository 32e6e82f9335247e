package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/draw"
)

// eight units per byte, sixteen per line
func newTestContext() (*Context, *draw.Buffer) {
	out := draw.NewBuffer(nil)
	measure := func(s string) float32 { return float32(len(s)) * 8 }
	return NewContext(core.Rect{W: 800, H: 600}, measure, 16, out), out
}

func TestVerticalViewStacksChildren(t *testing.T) {
	ctx, _ := newTestContext()
	a, b := Label("ab"), Label("abcd")
	root := View(a, b).FlowDirection(LayoutVertical).Gap(4).Padding(2)
	Render(ctx, root)

	w, h := root.Node().Size()
	assert.Equal(t, float32(36), w)
	assert.Equal(t, float32(40), h)

	assert.Equal(t, core.Rect{X: 2, Y: 2, W: 16, H: 16}, a.Node().Rect())
	assert.Equal(t, core.Rect{X: 2, Y: 22, W: 32, H: 16}, b.Node().Rect())
}

func TestExpandTakesRemainingSpace(t *testing.T) {
	ctx, _ := newTestContext()
	fixed := Shape(10, 10, nil)
	grow := Label("x").WidthExpand()
	root := View(fixed, grow).Gap(0).WidthFixed(100)
	Render(ctx, root)

	assert.Equal(t, core.Rect{X: 0, Y: 0, W: 10, H: 10}, fixed.Node().Rect())
	assert.Equal(t, core.Rect{X: 10, Y: 0, W: 90, H: 16}, grow.Node().Rect())
}

func TestMainAxisAlignment(t *testing.T) {
	ctx, _ := newTestContext()
	s := Shape(20, 10, nil)
	root := View(s).WidthFixed(100).AlignMain(AlignCenter).AlignCross(AlignEnd).HeightFixed(30)
	Render(ctx, root)

	assert.Equal(t, core.Rect{X: 40, Y: 20, W: 20, H: 10}, s.Node().Rect())
}

func TestLabelWrapsWithMeasureCallback(t *testing.T) {
	ctx, out := newTestContext()
	l := Label("aa bb cc").MaxWidth(40)
	Render(ctx, l)

	assert.Equal(t, []string{"aa bb", "cc"}, l.Lines())
	w, h := l.Node().Size()
	assert.Equal(t, float32(40), w)
	assert.Equal(t, float32(32), h)

	cmds := out.Commands()
	require.Len(t, cmds, 2)
	second, ok := cmds[1].(*draw.Text)
	require.True(t, ok)
	assert.Equal(t, "cc", second.String)
	assert.Equal(t, core.Point{X: 0, Y: 16}, second.Origin)
}

func TestLabelKeepsHardBreaks(t *testing.T) {
	ctx, _ := newTestContext()
	l := Label("one\ntwo")
	Render(ctx, l)
	assert.Equal(t, []string{"one", "two"}, l.Lines())
}

func TestClipViewRestoresParentScissor(t *testing.T) {
	ctx, out := newTestContext()
	var painted core.Rect
	inner := Shape(10, 10, func(b *draw.Buffer, r core.Rect) {
		painted = r
		b.FillRect(r, 0, colors.Red)
	})
	root := View(inner).Clip(true).Size(50, 50)
	Render(ctx, root)

	assert.Equal(t, core.Rect{W: 10, H: 10}, painted)

	cmds := out.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, &draw.Scissor{W: 50, H: 50}, cmds[0])
	assert.IsType(t, &draw.RectFilled{}, cmds[1])
	assert.Equal(t, &draw.Scissor{W: 800, H: 600}, cmds[2])
}

func TestButtonCentersLabel(t *testing.T) {
	ctx, out := newTestContext()
	btn := Button("ab")
	Render(ctx, btn)

	w, h := btn.Node().Size()
	assert.Equal(t, float32(36), w)
	assert.Equal(t, float32(28), h)
	assert.Equal(t, core.Rect{X: 10, Y: 6, W: 16, H: 16}, btn.Label().Node().Rect())

	cmds := out.Commands()
	require.Len(t, cmds, 3)
	assert.IsType(t, &draw.RectFilled{}, cmds[0])
	assert.IsType(t, &draw.Rect{}, cmds[1])
	assert.IsType(t, &draw.Text{}, cmds[2])
}

func TestTransparentBoxEmitsNothing(t *testing.T) {
	ctx, out := newTestContext()
	Render(ctx, View())
	assert.Zero(t, out.Len())
}
