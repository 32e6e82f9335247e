package renderer2d

import "github.com/spnavcfg/spnavcfg/engine/core"

// SubTexture2D describes a UV sub-rect of a full texture.
type SubTexture2D struct {
	Texture core.Texture
	U0, V0  float32 // top-left
	U1, V1  float32 // bottom-right
}

// FromPixels builds a subtexture from a pixel region of an image whose
// declared size is imgW x imgH. When the declared size is zero the texture's
// own size is used; ok is false when neither gives a usable size.
func FromPixels(tex core.Texture, x, y, w, h, imgW, imgH int) (sub SubTexture2D, ok bool) {
	if (imgW <= 0 || imgH <= 0) && tex != nil {
		imgW, imgH = tex.Size()
	}
	if tex == nil || imgW <= 0 || imgH <= 0 {
		return SubTexture2D{}, false
	}
	u0 := float32(x) / float32(imgW)
	v0 := float32(y) / float32(imgH)
	u1 := float32(x+w) / float32(imgW)
	v1 := float32(y+h) / float32(imgH)
	return SubTexture2D{Texture: tex, U0: u0, V0: v0, U1: u1, V1: v1}, true
}

