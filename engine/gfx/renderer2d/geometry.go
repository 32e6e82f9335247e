package renderer2d

import (
	"math"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
)

// Fixed tessellation densities.
const (
	ArcSegments    = 24 // standalone arcs
	CornerSegments = 8  // one rounded-rect quadrant
	CircleSegments = 32 // full ellipse
	CurveSegments  = 8  // cubic Bezier samples
)

// AppendArc appends n points on the circle (cx, cy, r) from angle a0 to a1,
// both ends included. n below 2 is raised to 2.
func AppendArc(dst []core.Point, cx, cy, r, a0, a1 float32, n int) []core.Point {
	if n < 2 {
		n = 2
	}
	step := float64(a1-a0) / float64(n-1)
	for i := 0; i < n; i++ {
		theta := float64(a0) + step*float64(i)
		if i == n-1 {
			theta = float64(a1)
		}
		dst = append(dst,
			core.Point{
				X: cx + float32(math.Cos(theta))*r,
				Y: cy + float32(math.Sin(theta))*r,
			})
	}
	return dst
}

// Arc returns n points from a0 to a1 inclusive.
func Arc(cx, cy, r, a0, a1 float32, n int) []core.Point {
	return AppendArc(make([]core.Point, 0, max(n, 2)), cx, cy, r, a0, a1, n)
}

// ClampRounding limits a corner radius to [0, min(w,h)/2].
func ClampRounding(w, h, radius float32) float32 {
	if radius <= 0 || w <= 0 || h <= 0 {
		return 0
	}
	return min(radius, min(w, h)/2)
}

// corner describes one quadrant of a rounded rectangle, in the winding order
// bottom-right, bottom-left, top-left, top-right (y grows downward).
type corner struct {
	cx, cy float32
	a0, a1 float32
}

func corners(r core.Rect, rad float32) [4]corner {
	const q = math.Pi / 2
	return [4]corner{
		{r.X + r.W - rad, r.Y + r.H - rad, 0, q},
		{r.X + rad, r.Y + r.H - rad, q, 2 * q},
		{r.X + rad, r.Y + rad, 2 * q, 3 * q},
		{r.X + r.W - rad, r.Y + rad, 3 * q, 4 * q},
	}
}

func rectPoints(r core.Rect) []core.Point {
	return []core.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// RoundedRectOutline returns the closed outline of r as a line loop. A zero
// radius gives the four corners; otherwise four quadrant arcs of
// CornerSegments points each.
func RoundedRectOutline(r core.Rect, radius float32) []core.Point {
	if r.Empty() {
		return nil
	}
	rad := ClampRounding(r.W, r.H, radius)
	if rad == 0 {
		return rectPoints(r)
	}
	out := make([]core.Point, 0, 4*CornerSegments)
	for _, c := range corners(r, rad) {
		out = AppendArc(out, c.cx, c.cy, rad, c.a0, c.a1, CornerSegments)
	}
	return out
}

// RoundedRectFill is the filled decomposition of a rounded rectangle:
// triangles for the rectangular bands and one fan per corner.
type RoundedRectFill struct {
	Triangles []core.Point   // whole triangles, 3 points each
	Fans      [][]core.Point // corner center followed by its quadrant arc
}

// FillRoundedRect decomposes r. A zero radius yields one quad as two
// triangles and no fans. The three bands are the center column and the two
// side caps of width radius.
func FillRoundedRect(r core.Rect, radius float32) RoundedRectFill {
	var f RoundedRectFill
	if r.Empty() {
		return f
	}
	rad := ClampRounding(r.W, r.H, radius)
	if rad == 0 {
		f.Triangles = appendQuad(nil, r)
		return f
	}
	f.Triangles = make([]core.Point, 0, 18)
	f.Triangles = appendQuad(f.Triangles, core.Rect{X: r.X + rad, Y: r.Y, W: r.W - 2*rad, H: r.H})
	f.Triangles = appendQuad(f.Triangles, core.Rect{X: r.X, Y: r.Y + rad, W: rad, H: r.H - 2*rad})
	f.Triangles = appendQuad(f.Triangles, core.Rect{X: r.X + r.W - rad, Y: r.Y + rad, W: rad, H: r.H - 2*rad})

	f.Fans = make([][]core.Point, 0, 4)
	for _, c := range corners(r, rad) {
		fan := make([]core.Point, 0, CornerSegments+1)
		fan = append(fan, core.Point{X: c.cx, Y: c.cy})
		fan = AppendArc(fan, c.cx, c.cy, rad, c.a0, c.a1, CornerSegments)
		f.Fans = append(f.Fans, fan)
	}
	return f
}

// appendQuad appends r as two triangles; degenerate bands are skipped.
func appendQuad(dst []core.Point, r core.Rect) []core.Point {
	if r.Empty() {
		return dst
	}
	p := rectPoints(r)
	return append(dst, p[0], p[1], p[2], p[0], p[2], p[3])
}

// Ellipse returns CircleSegments points around the ellipse inscribed in the
// bounding box r.
func Ellipse(r core.Rect) []core.Point {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	unit := Arc(0, 0, 1, 0, 2*math.Pi, CircleSegments)
	for i := range unit {
		unit[i] = core.Point{X: cx + unit[i].X*r.W/2, Y: cy + unit[i].Y*r.H/2}
	}
	return unit
}

// EllipseFan is Ellipse preceded by the center point.
func EllipseFan(r core.Rect) []core.Point {
	return append([]core.Point{{X: r.X + r.W/2, Y: r.Y + r.H/2}}, Ellipse(r)...)
}

// ArcFan is a triangle fan from the arc center over ArcSegments points.
func ArcFan(cx, cy, r, a0, a1 float32) []core.Point {
	out := make([]core.Point, 0, ArcSegments+1)
	out = append(out, core.Point{X: cx, Y: cy})
	return AppendArc(out, cx, cy, r, a0, a1, ArcSegments)
}

// Bezier evaluates the cubic Bernstein blend at t.
func Bezier(p0, c0, c1, p1 core.Point, t float32) core.Point {
	it := 1 - t
	b0 := it * it * it
	b1 := 3 * it * it * t
	b2 := 3 * it * t * t
	b3 := t * t * t
	return core.Point{
		X: b0*p0.X + b1*c0.X + b2*c1.X + b3*p1.X,
		Y: b0*p0.Y + b1*c0.Y + b2*c1.Y + b3*p1.Y,
	}
}

// Curve samples CurveSegments points from p0 to p1 for a line strip.
func Curve(p0, c0, c1, p1 core.Point) []core.Point {
	out := make([]core.Point, CurveSegments)
	for i := range out {
		out[i] = Bezier(p0, c0, c1, p1, float32(i)/float32(CurveSegments-1))
	}
	return out
}

// MultiColorQuad holds the four triangles of a corner-gradient rectangle.
type MultiColorQuad struct {
	Points [12]core.Point
	Colors [12]colors.Color
	Center colors.Color
}

// MultiColorRect splits r into four triangles meeting at its center. Each
// triangle pairs two adjacent corners (TL,TR), (TR,BR), (BR,BL), (BL,TL); the
// center takes the floor average of all four corner colors.
func MultiColorRect(r core.Rect, tl, tr, br, bl colors.Color) MultiColorQuad {
	q := MultiColorQuad{Center: colors.Average4(tl, tr, br, bl)}
	pts := rectPoints(r)
	cols := [4]colors.Color{tl, tr, br, bl}
	mid := core.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		q.Points[3*i], q.Colors[3*i] = pts[i], cols[i]
		q.Points[3*i+1], q.Colors[3*i+1] = pts[j], cols[j]
		q.Points[3*i+2], q.Colors[3*i+2] = mid, q.Center
	}
	return q
}

// WideLines expands a pixel-space line primitive into triangles, one quad
// per segment of the given width with square caps so strip joints overlap.
// Backends without wide line support draw the result as Triangles.
func WideLines(dst []core.Vertex, mode core.Primitive, verts []core.Vertex, width float32) []core.Vertex {
	seg := func(a, b core.Vertex) {
		dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
		l := math.Hypot(dx, dy)
		if l == 0 {
			return
		}
		h := float64(width) / 2
		// unit direction scaled to half width, and its normal
		tx, ty := float32(dx/l*h), float32(dy/l*h)
		nx, ny := -ty, tx
		p0 := core.Vertex{X: a.X - tx + nx, Y: a.Y - ty + ny, Color: a.Color}
		p1 := core.Vertex{X: b.X + tx + nx, Y: b.Y + ty + ny, Color: b.Color}
		p2 := core.Vertex{X: b.X + tx - nx, Y: b.Y + ty - ny, Color: b.Color}
		p3 := core.Vertex{X: a.X - tx - nx, Y: a.Y - ty - ny, Color: a.Color}
		dst = append(dst, p0, p1, p2, p0, p2, p3)
	}
	switch mode {
	case core.Lines:
		for i := 0; i+1 < len(verts); i += 2 {
			seg(verts[i], verts[i+1])
		}
	case core.LineStrip, core.LineLoop:
		for i := 0; i+1 < len(verts); i++ {
			seg(verts[i], verts[i+1])
		}
		if mode == core.LineLoop && len(verts) > 2 {
			seg(verts[len(verts)-1], verts[0])
		}
	}
	return dst
}
