package assets

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShader(t *testing.T) {
	for _, name := range []string{"prim.vert", "prim.frag"} {
		src, err := LoadShader(name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(src, "#version 330 core"))
		assert.True(t, strings.HasSuffix(src, "\x00"))
	}
	_, err := LoadShader("missing.frag")
	assert.Error(t, err)
}

func TestTextureFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	img.Set(5, 5, color.NRGBA{R: 255, A: 255})
	img.Set(7, 6, color.NRGBA{B: 255, A: 255})

	desc := TextureFromImage(img)
	assert.Equal(t, 3, desc.Width)
	assert.Equal(t, 2, desc.Height)
	require.Len(t, desc.Pixels, 3*2*4)
	assert.Equal(t, []byte{255, 0, 0, 255}, desc.Pixels[0:4])
	assert.Equal(t, []byte{0, 0, 255, 255}, desc.Pixels[len(desc.Pixels)-4:])
}
