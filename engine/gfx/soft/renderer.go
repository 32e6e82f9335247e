// Package soft is a headless core.Renderer that rasterizes into an in-memory
// framebuffer with gogpu/gg. It is used for snapshots and pixel tests.
package soft

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
)

type texture struct {
	img  *image.RGBA
	buf  *gg.ImageBuf
	w, h int
}

func (t *texture) Size() (int, int) { return t.w, t.h }

// Renderer draws with anti-aliasing regardless of the smoothing flag.
type Renderer struct {
	dc      *gg.Context
	w, h    int
	state   core.RenderState
	scissor core.ScissorRect
}

func New(w, h int) *Renderer {
	w, h = max(w, 1), max(h, 1)
	return &Renderer{
		dc:      gg.NewContext(w, h),
		w:       w,
		h:       h,
		state:   core.DefaultRenderState,
		scissor: core.ScissorRect{W: int32(w), H: int32(h)},
	}
}

func (r *Renderer) Init() error { return nil }

func (r *Renderer) Shutdown() {
	if err := r.dc.Close(); err != nil {
		core.Logger().Warn("soft: close", "err", err)
	}
}

func (r *Renderer) Resize(w, h int) {
	if err := r.dc.Resize(w, h); err != nil {
		core.Logger().Warn("soft: resize", "err", err)
		return
	}
	r.w, r.h = w, h
	r.SetScissor(core.ScissorRect{W: int32(w), H: int32(h)})
}

func toRGBA(c colors.Color) gg.RGBA {
	return gg.RGBA{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: float64(c.A) / 255}
}

func (r *Renderer) Clear(c colors.Color) { r.dc.ClearWithColor(toRGBA(c)) }

func (r *Renderer) State() core.RenderState     { return r.state }
func (r *Renderer) SetState(s core.RenderState) { r.state = s }

// SetScissor takes a bottom-left origin rectangle like glScissor.
func (r *Renderer) SetScissor(s core.ScissorRect) {
	r.scissor = s
	r.dc.ResetClip()
	if s.X <= 0 && s.Y <= 0 && int(s.W) >= r.w && int(s.H) >= r.h {
		return
	}
	top := int32(r.h) - s.Y - s.H
	r.dc.ClipRect(float64(s.X), float64(top), float64(s.W), float64(s.H))
}

func (r *Renderer) Draw(mode core.Primitive, verts []core.Vertex) {
	switch mode {
	case core.Lines:
		for i := 0; i+1 < len(verts); i += 2 {
			r.stroke(verts[i:i+2], false)
		}
	case core.LineStrip:
		r.stroke(verts, false)
	case core.LineLoop:
		r.stroke(verts, true)
	case core.Triangles:
		r.triangles(verts)
	case core.TriangleFan:
		r.fan(verts)
	}
}

func (r *Renderer) stroke(verts []core.Vertex, closed bool) {
	if len(verts) < 2 {
		return
	}
	r.dc.SetLineWidth(float64(r.state.LineWidth))
	r.dc.SetStrokeBrush(gg.Solid(toRGBA(verts[0].Color)))
	r.dc.MoveTo(float64(verts[0].X), float64(verts[0].Y))
	for _, v := range verts[1:] {
		r.dc.LineTo(float64(v.X), float64(v.Y))
	}
	if closed {
		r.dc.ClosePath()
	}
	if err := r.dc.Stroke(); err != nil {
		core.Logger().Debug("soft: stroke", "err", err)
	}
}

func uniform(verts []core.Vertex) bool {
	for _, v := range verts[1:] {
		if v.Color != verts[0].Color {
			return false
		}
	}
	return true
}

func (r *Renderer) fill() {
	if err := r.dc.Fill(); err != nil {
		core.Logger().Debug("soft: fill", "err", err)
	}
}

func (r *Renderer) triangles(verts []core.Vertex) {
	n := len(verts) / 3 * 3
	if n == 0 {
		return
	}
	verts = verts[:n]
	if uniform(verts) {
		r.dc.SetFillBrush(gg.Solid(toRGBA(verts[0].Color)))
		for i := 0; i < n; i += 3 {
			r.polygon(verts[i : i+3])
		}
		r.fill()
		return
	}
	var tris []tri
	for i := 0; i < n; i += 3 {
		tris = append(tris, tri{verts[i], verts[i+1], verts[i+2]})
	}
	r.fillTriangles(tris, gouraud)
}

// fan fills a star-shaped fan as one polygon when it has a single color.
func (r *Renderer) fan(verts []core.Vertex) {
	if len(verts) < 3 {
		return
	}
	if uniform(verts) {
		r.dc.SetFillBrush(gg.Solid(toRGBA(verts[0].Color)))
		r.polygon(verts)
		r.fill()
		return
	}
	var tris []tri
	for i := 1; i+1 < len(verts); i++ {
		tris = append(tris, tri{verts[0], verts[i], verts[i+1]})
	}
	r.fillTriangles(tris, gouraud)
}

func (r *Renderer) polygon(verts []core.Vertex) {
	r.dc.MoveTo(float64(verts[0].X), float64(verts[0].Y))
	for _, v := range verts[1:] {
		r.dc.LineTo(float64(v.X), float64(v.Y))
	}
	r.dc.ClosePath()
}

type tri struct{ a, b, c core.Vertex }

// area2 is twice the signed area; positive for clockwise on screen.
func (t tri) area2() float64 {
	return float64(t.b.X-t.a.X)*float64(t.c.Y-t.a.Y) - float64(t.c.X-t.a.X)*float64(t.b.Y-t.a.Y)
}

// weights returns the unclamped barycentric coordinates of (x, y).
func (t tri) weights(x, y float64) (wa, wb, wc float64) {
	ax, ay := float64(t.a.X), float64(t.a.Y)
	bx, by := float64(t.b.X), float64(t.b.Y)
	cx, cy := float64(t.c.X), float64(t.c.Y)
	den := (by-cy)*(ax-cx) + (cx-bx)*(ay-cy)
	wa = ((by-cy)*(x-cx) + (cx-bx)*(y-cy)) / den
	wb = ((cy-ay)*(x-cx) + (ax-cx)*(y-cy)) / den
	return wa, wb, 1 - wa - wb
}

// shader colors one pixel of t from its barycentric weights.
type shader func(t tri, wa, wb, wc float64) gg.RGBA

func gouraud(t tri, wa, wb, wc float64) gg.RGBA {
	return lerpColor(t.a.Color, t.b.Color, t.c.Color, wa, wb, wc)
}

// locate finds the triangle containing (x, y). Anti-aliased edge pixels
// outside every triangle take the closest one with weights clamped inside.
func locate(tris []tri, x, y float64) (t tri, wa, wb, wc float64) {
	best := math.Inf(-1)
	for _, cand := range tris {
		a, b, c := cand.weights(x, y)
		m := min(a, b, c)
		if m >= 0 {
			return cand, a, b, c
		}
		if m > best {
			best, t, wa, wb, wc = m, cand, a, b, c
		}
	}
	wa, wb = clamp01(wa), clamp01(wb)
	wc = 1 - wa - wb
	if wc < 0 {
		s := wa + wb
		wa, wb, wc = wa/s, wb/s, 0
	}
	return t, wa, wb, wc
}

// fillTriangles fills every triangle as one path under a single brush, so
// shared edges are covered once instead of blended twice.
func (r *Renderer) fillTriangles(tris []tri, shade shader) {
	live := tris[:0]
	for _, t := range tris {
		switch a := t.area2(); {
		case a == 0:
			continue
		case a < 0:
			t.b, t.c = t.c, t.b
		}
		live = append(live, t)
	}
	if len(live) == 0 {
		return
	}
	r.dc.SetFillBrush(gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		t, wa, wb, wc := locate(live, x, y)
		return shade(t, wa, wb, wc)
	}))
	for _, t := range live {
		r.polygon([]core.Vertex{t.a, t.b, t.c})
	}
	r.fill()
}

func clamp01(v float64) float64 { return min(max(v, 0), 1) }

func lerpColor(a, b, c colors.Color, wa, wb, wc float64) gg.RGBA {
	ca, cb, cc := toRGBA(a), toRGBA(b), toRGBA(c)
	return gg.RGBA{
		R: ca.R*wa + cb.R*wb + cc.R*wc,
		G: ca.G*wa + cb.G*wb + cc.G*wc,
		B: ca.B*wa + cb.B*wb + cc.B*wc,
		A: ca.A*wa + cb.A*wb + cc.A*wc,
	}
}

func (r *Renderer) DrawTextured(tex core.Texture, verts []core.Vertex) {
	t, ok := tex.(*texture)
	if !ok || len(verts) < 3 {
		return
	}
	if q, ok := axisQuad(verts); ok && q.tint == colors.White {
		src := image.Rect(
			int(q.u0*float32(t.w)), int(q.v0*float32(t.h)),
			int(q.u1*float32(t.w)), int(q.v1*float32(t.h)),
		)
		r.dc.DrawImageEx(t.buf, gg.DrawImageOptions{
			X:             float64(q.x0),
			Y:             float64(q.y0),
			DstWidth:      float64(q.x1 - q.x0),
			DstHeight:     float64(q.y1 - q.y0),
			SrcRect:       &src,
			Interpolation: gg.InterpNearest,
			Opacity:       1,
			BlendMode:     gg.BlendNormal,
		})
		return
	}
	var tris []tri
	for i := 0; i+2 < len(verts); i += 3 {
		tris = append(tris, tri{verts[i], verts[i+1], verts[i+2]})
	}
	r.fillTriangles(tris, t.sample)
}

// sample reads the texel at the interpolated UV and modulates it by the
// interpolated vertex color.
func (t *texture) sample(tr tri, wa, wb, wc float64) gg.RGBA {
	u := float64(tr.a.U)*wa + float64(tr.b.U)*wb + float64(tr.c.U)*wc
	v := float64(tr.a.V)*wa + float64(tr.b.V)*wb + float64(tr.c.V)*wc
	tx := min(max(int(u*float64(t.w)), 0), t.w-1)
	ty := min(max(int(v*float64(t.h)), 0), t.h-1)
	off := t.img.PixOffset(tx, ty)
	texel := toRGBA(colors.RGBA(t.img.Pix[off], t.img.Pix[off+1], t.img.Pix[off+2], t.img.Pix[off+3]))
	tint := lerpColor(tr.a.Color, tr.b.Color, tr.c.Color, wa, wb, wc)
	return gg.RGBA{R: texel.R * tint.R, G: texel.G * tint.G, B: texel.B * tint.B, A: texel.A * tint.A}
}

type quad struct {
	x0, y0, x1, y1 float32
	u0, v0, u1, v1 float32
	tint           colors.Color
}

// axisQuad recognizes the two-triangle layout (tl, tr, br, tl, br, bl) that
// Renderer2D emits for images.
func axisQuad(v []core.Vertex) (quad, bool) {
	if len(v) != 6 || !uniform(v) {
		return quad{}, false
	}
	tl, tr, br, bl := v[0], v[1], v[2], v[5]
	if v[3] != tl || v[4] != br || tl.Y != tr.Y || bl.Y != br.Y || tl.X != bl.X || tr.X != br.X {
		return quad{}, false
	}
	if tr.X <= tl.X || bl.Y <= tl.Y {
		return quad{}, false
	}
	return quad{tl.X, tl.Y, br.X, br.Y, tl.U, tl.V, br.U, br.V, tl.Color}, true
}

// CreateTexture accepts tightly packed RGBA8 pixels.
func (r *Renderer) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("soft: invalid texture size %dx%d", desc.Width, desc.Height)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return nil, fmt.Errorf("soft: texture wants %d bytes, got %d", want, len(desc.Pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, desc.Width, desc.Height))
	copy(img.Pix, desc.Pixels)
	return &texture{img: img, buf: gg.ImageBufFromImage(img), w: desc.Width, h: desc.Height}, nil
}

// Size returns the framebuffer size.
func (r *Renderer) Size() (int, int) { return r.w, r.h }

// Pixel reads back one framebuffer pixel as straight RGBA.
func (r *Renderer) Pixel(x, y int) colors.Color {
	c := r.dc.ResizeTarget().GetPixel(x, y)
	to8 := func(v float64) uint8 { return uint8(clamp01(v)*255 + 0.5) }
	return colors.RGBA(to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// Image returns a copy of the framebuffer.
func (r *Renderer) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the framebuffer as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("soft: encode png: %w", err)
	}
	return nil
}
