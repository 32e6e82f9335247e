package soft_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/draw"
	"github.com/spnavcfg/spnavcfg/engine/gfx/soft"
	"github.com/spnavcfg/spnavcfg/engine/scene"
)

func frame(t *testing.T, cmds ...draw.Command) *soft.Renderer {
	t.Helper()
	r := soft.New(800, 600)
	require.NoError(t, r.Init())
	r.Clear(colors.Black)
	draw.New(r, scene.NewSpace(800, 600)).DrawFrame(cmds)
	return r
}

func assertNear(t *testing.T, want, got colors.Color, tol int) {
	t.Helper()
	d := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	ok := d(want.R, got.R) <= tol && d(want.G, got.G) <= tol && d(want.B, got.B) <= tol && d(want.A, got.A) <= tol
	assert.True(t, ok, "want %v got %v", want, got)
}

func TestFilledRect(t *testing.T) {
	r := frame(t, &draw.RectFilled{Rect: core.Rect{X: 10, Y: 10, W: 50, H: 50}, Color: colors.Red})
	assertNear(t, colors.Red, r.Pixel(30, 30), 2)
	assertNear(t, colors.Black, r.Pixel(5, 5), 2)
	assertNear(t, colors.Black, r.Pixel(70, 30), 2)
}

func TestRoundedCornerLeftEmpty(t *testing.T) {
	r := frame(t, &draw.RectFilled{Rect: core.Rect{X: 100, Y: 100, W: 100, H: 100}, Rounding: 30, Color: colors.Green})
	assertNear(t, colors.Green, r.Pixel(150, 150), 2)
	assertNear(t, colors.Green, r.Pixel(150, 102), 2)
	assertNear(t, colors.Black, r.Pixel(101, 101), 2)
}

func TestScissorClipsFill(t *testing.T) {
	r := frame(t,
		&draw.Scissor{X: 0, Y: 0, W: 100, H: 100},
		&draw.RectFilled{Rect: core.Rect{X: 0, Y: 0, W: 200, H: 200}, Color: colors.Blue},
	)
	assertNear(t, colors.Blue, r.Pixel(50, 50), 2)
	assertNear(t, colors.Black, r.Pixel(150, 150), 2)
	assertNear(t, colors.Black, r.Pixel(50, 150), 2)
}

func TestMultiColorCenter(t *testing.T) {
	r := frame(t, &draw.RectMultiColor{
		Rect:        core.Rect{X: 0, Y: 0, W: 200, H: 200},
		TopLeft:     colors.RGBA(255, 0, 0, 255),
		TopRight:    colors.RGBA(0, 255, 0, 255),
		BottomRight: colors.RGBA(0, 0, 255, 255),
		BottomLeft:  colors.RGBA(255, 255, 0, 255),
	})
	// inside the top triangle, 60% of the way to the center
	assertNear(t, colors.RGBA(127, 127, 38, 255), r.Pixel(100, 60), 4)
}

func TestMultiColorNoSeams(t *testing.T) {
	red := colors.RGBA(255, 0, 0, 255)
	r := frame(t, &draw.RectMultiColor{
		Rect:        core.Rect{X: 200, Y: 0, W: 100, H: 100},
		TopLeft:     red,
		TopRight:    colors.RGBA(254, 0, 0, 255),
		BottomRight: red,
		BottomLeft:  colors.RGBA(254, 0, 0, 255),
	})
	// pixels on the edges shared by the four triangles
	for _, p := range [][2]int{{250, 50}, {225, 25}, {275, 25}, {275, 75}, {225, 75}} {
		assertNear(t, red, r.Pixel(p[0], p[1]), 2)
	}
}

func TestStrokedLine(t *testing.T) {
	r := frame(t, &draw.Line{Begin: core.Pt(10, 300), End: core.Pt(400, 300), Thickness: 4, Color: colors.White})
	assertNear(t, colors.White, r.Pixel(200, 300), 8)
	assertNear(t, colors.Black, r.Pixel(200, 320), 2)
}

func TestTintedImage(t *testing.T) {
	r := soft.New(800, 600)
	r.Clear(colors.Black)
	tex, err := r.CreateTexture(core.TextureDesc{Width: 2, Height: 2, Pixels: bytes.Repeat([]byte{255}, 16)})
	require.NoError(t, err)

	in := draw.New(r, scene.NewSpace(800, 600))
	in.DrawFrame([]draw.Command{
		&draw.Image{Rect: core.Rect{X: 0, Y: 0, W: 40, H: 40}, Texture: tex, Region: [4]int{0, 0, 2, 2}, Tint: colors.Red},
		&draw.Image{Rect: core.Rect{X: 100, Y: 0, W: 40, H: 40}, Texture: tex, Region: [4]int{0, 0, 2, 2}, Tint: colors.White},
	})
	assertNear(t, colors.Red, r.Pixel(30, 10), 4)
	assertNear(t, colors.Red, r.Pixel(20, 20), 4)
	assertNear(t, colors.Red, r.Pixel(10, 10), 4)
	assertNear(t, colors.White, r.Pixel(120, 20), 4)
}

func TestCreateTextureValidates(t *testing.T) {
	r := soft.New(10, 10)
	_, err := r.CreateTexture(core.TextureDesc{Width: 0, Height: 2})
	assert.Error(t, err)
	_, err = r.CreateTexture(core.TextureDesc{Width: 2, Height: 2, Pixels: make([]byte, 3)})
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	r := frame(t, &draw.CircleFilled{Rect: core.Rect{X: 300, Y: 200, W: 200, H: 200}, Color: colors.Yellow})
	assertNear(t, colors.Yellow, r.Pixel(400, 300), 2)

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestResize(t *testing.T) {
	r := soft.New(100, 100)
	r.Resize(320, 200)
	w, h := r.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)

	r.Resize(0, 10)
	w, _ = r.Size()
	assert.Equal(t, 320, w, "invalid size keeps the framebuffer")
}
