package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage4FloorsEachChannel(t *testing.T) {
	got := Average4(
		Color{255, 0, 0, 255},
		Color{0, 255, 0, 255},
		Color{0, 0, 255, 255},
		Color{255, 255, 0, 255},
	)
	assert.Equal(t, Color{127, 127, 63, 255}, got)
}

func TestAverage4NoOverflow(t *testing.T) {
	assert.Equal(t, White, Average4(White, White, White, White))
	assert.Equal(t, Color{0, 0, 0, 191}, Average4(Black.WithAlpha(255), Transparent, Black, Black))
}

func TestModulate(t *testing.T) {
	assert.Equal(t, Color{255, 0, 0, 255}, Modulate(White, Red))
	assert.Equal(t, Color{128, 128, 128, 255}, Modulate(Gray, White))
	assert.Equal(t, Transparent, Modulate(Transparent, White))
}

func TestImplementsImageColor(t *testing.T) {
	var c color.Color = Color{255, 0, 0, 128}
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(128*257), a)
	assert.Equal(t, uint32(128*257), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestFloat(t *testing.T) {
	assert.Equal(t, [4]float32{1, 0, 0, 1}, Red.Float())
}
