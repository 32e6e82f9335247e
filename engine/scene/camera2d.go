package scene

// PixelCamera projects framebuffer pixels (top-left origin, y down) to clip
// space.
type PixelCamera struct {
	Width, Height float32
	vp            [16]float32
	dirty         bool
}

func NewPixelCamera(width, height int) *PixelCamera {
	c := &PixelCamera{}
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *PixelCamera) SetViewportPixels(w, h int) {
	c.Width, c.Height = float32(w), float32(h)
	c.dirty = true
}

func (c *PixelCamera) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *PixelCamera) Recalculate() {
	// top = 0 and bottom = height flips y so pixel rows grow downward
	c.vp = ortho(0, c.Width, c.Height, 0, -1, 1)
	c.dirty = false
}

// Apply transforms a pixel position to normalized device coordinates.
func (c *PixelCamera) Apply(x, y float32) (float32, float32) {
	m := c.VP()
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}
