package assets

import (
	"image"
	"image/draw"

	"github.com/spnavcfg/spnavcfg/engine/core"
)

// TextureFromImage repacks img into a tightly packed RGBA8 texture
// description (row-major, top-left origin).
func TextureFromImage(img image.Image) core.TextureDesc {
	rgbaImg := imageToRGBA(img)
	w, h := rgbaImg.Bounds().Dx(), rgbaImg.Bounds().Dy()

	// Repack in tight rows (stride == 4*w)
	out := make([]byte, w*h*4)
	src := rgbaImg.Pix
	srcStride := rgbaImg.Stride
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], src[y*srcStride:y*srcStride+w*4])
	}

	return core.TextureDesc{
		Width: w, Height: h,
		Format:    core.TextureRGBA8,
		Pixels:    out,
		MinFilter: "linear", MagFilter: "linear",
	}
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
