package colors

// Color is a straight-alpha RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

var (
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Magenta     = Color{255, 0, 255, 255}
	Cyan        = Color{0, 255, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Gray        = Color{128, 128, 128, 255}
	DarkGray    = Color{20, 26, 31, 255}
	Transparent = Color{}
)

func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Float returns the channels normalized to [0,1].
func (c Color) Float() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// RGBA implements image/color.Color (premultiplied, 16-bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 255
	g = uint32(c.G) * a / 255
	b = uint32(c.B) * a / 255
	return r | r<<8, g | g<<8, b | b<<8, a | a<<8
}

// Average4 is the channel-wise floor mean of four colors.
func Average4(c0, c1, c2, c3 Color) Color {
	avg := func(a, b, c, d uint8) uint8 {
		return uint8((int(a) + int(b) + int(c) + int(d)) >> 2)
	}
	return Color{
		R: avg(c0.R, c1.R, c2.R, c3.R),
		G: avg(c0.G, c1.G, c2.G, c3.G),
		B: avg(c0.B, c1.B, c2.B, c3.B),
		A: avg(c0.A, c1.A, c2.A, c3.A),
	}
}

// Modulate multiplies two colors channel by channel.
func Modulate(a, b Color) Color {
	mul := func(x, y uint8) uint8 { return uint8((uint32(x)*uint32(y) + 127) / 255) }
	return Color{mul(a.R, b.R), mul(a.G, b.G), mul(a.B, b.B), mul(a.A, b.A)}
}
