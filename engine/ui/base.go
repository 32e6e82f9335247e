package ui

import (
	"math"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/draw"
)

type SizeMode int

const (
	SizeModeFit SizeMode = iota
	SizeModeFixed
	SizeModeExpand
)

type Constraints struct {
	Min [2]float32
	Max [2]float32 // 0 means unbounded
}

type LayoutResult struct {
	Size [2]float32
}

// Context carries what layout and drawing need for one frame. All values
// are in virtual units.
type Context struct {
	Viewport   [4]float32 // x, y, w, h
	Measure    draw.MeasureFunc
	LineHeight float32
	Out        *draw.Buffer

	clip core.Rect
}

// NewContext prepares a frame context covering the whole virtual canvas of
// out's space.
func NewContext(viewport core.Rect, measure draw.MeasureFunc, lineHeight float32, out *draw.Buffer) *Context {
	return &Context{
		Viewport:   [4]float32{viewport.X, viewport.Y, viewport.W, viewport.H},
		Measure:    measure,
		LineHeight: lineHeight,
		Out:        out,
		clip:       viewport,
	}
}

func (ctx *Context) measure(s string) float32 {
	if ctx.Measure == nil {
		return 0
	}
	return ctx.Measure(s)
}

// UIElement is a node of the retained layout tree. Layout sizes the node,
// Draw appends its commands to ctx.Out.
type UIElement interface {
	Node() *Base
	Layout(ctx *Context, constraints Constraints) LayoutResult
	Draw(ctx *Context)
}

// Render lays out root inside the viewport and records it.
func Render(ctx *Context, root UIElement) {
	b := root.Node()
	b.SetPos(ctx.Viewport[0], ctx.Viewport[1])
	root.Layout(ctx, Constraints{Max: [2]float32{ctx.Viewport[2], ctx.Viewport[3]}})
	root.Draw(ctx)
}

type Base struct {
	parent    UIElement
	children  []UIElement
	position  [2]float32
	size      [2]float32
	color     colors.Color
	border    colors.Color
	rounding  float32
	mode      [2]SizeMode
	fixed     [2]float32
	padding   [4]float32 // left, top, right, bottom
}

func (b *Base) Parent() UIElement       { return b.parent }
func (b *Base) Children() []UIElement   { return b.children }
func (b *Base) Pos() (x, y float32)     { return b.position[0], b.position[1] }
func (b *Base) Size() (w, h float32)    { return b.size[0], b.size[1] }
func (b *Base) SetPos(x, y float32)     { b.position = [2]float32{x, y} }
func (b *Base) SetSize(w, h float32)    { b.size = [2]float32{w, h} }
func (b *Base) SetColor(c colors.Color) { b.color = c }
func (b *Base) Padding() [4]float32     { return b.padding }
func (b *Base) SetPadding(l, t, r, btm float32) {
	b.padding = [4]float32{l, t, r, btm}
}

// Rect is the node's outer rectangle.
func (b *Base) Rect() core.Rect {
	return core.Rect{X: b.position[0], Y: b.position[1], W: b.size[0], H: b.size[1]}
}

// Inner is the rectangle left after padding.
func (b *Base) Inner() core.Rect {
	w, h := b.innerSize()
	return core.Rect{X: b.position[0] + b.padding[0], Y: b.position[1] + b.padding[1], W: w, H: h}
}

func (b *Base) innerSize() (float32, float32) {
	return maxf(0, b.size[0]-b.padding[0]-b.padding[2]),
		maxf(0, b.size[1]-b.padding[1]-b.padding[3])
}

// paddingAxis is the padding total along axis 0 (x) or 1 (y).
func (b *Base) paddingAxis(axis int) float32 {
	return b.padding[axis] + b.padding[axis+2]
}

// resolve picks the outer extent along axis given the content extent.
func (b *Base) resolve(axis int, content float32, c Constraints) float32 {
	maxv := unbounded(c.Max[axis])
	switch b.mode[axis] {
	case SizeModeFixed:
		if b.fixed[axis] > 0 {
			return clamp(b.fixed[axis], c.Min[axis], maxv)
		}
	case SizeModeExpand:
		if c.Max[axis] > 0 {
			return clamp(maxv, c.Min[axis], maxv)
		}
	}
	return clamp(content, c.Min[axis], maxv)
}

// drawBox records the background and border of b.
func (b *Base) drawBox(ctx *Context) {
	r := b.Rect()
	ctx.Out.FillRect(r, b.rounding, b.color)
	ctx.Out.StrokeRect(r, b.rounding, 1, b.border)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func unbounded(max float32) float32 {
	if max == 0 {
		return math.MaxFloat32
	}
	return max
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// ------ Helper ------

type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	return Common[T]{owner: owner}
}

func (c *Common[T]) Node() *Base              { return &c.base }
func (c *Common[T]) Position(x, y float32) T  { c.base.SetPos(x, y); return c.owner }
func (c *Common[T]) Color(col colors.Color) T { c.base.SetColor(col); return c.owner }
func (c *Common[T]) Border(col colors.Color) T {
	c.base.border = col
	return c.owner
}

func (c *Common[T]) Rounding(r float32) T {
	c.base.rounding = r
	return c.owner
}

func (c *Common[T]) WidthFit() T {
	c.base.mode[0] = SizeModeFit
	return c.owner
}

func (c *Common[T]) WidthFixed(width float32) T {
	c.base.mode[0], c.base.fixed[0] = SizeModeFixed, width
	return c.owner
}

func (c *Common[T]) WidthExpand() T {
	c.base.mode[0] = SizeModeExpand
	return c.owner
}

func (c *Common[T]) HeightFit() T {
	c.base.mode[1] = SizeModeFit
	return c.owner
}

func (c *Common[T]) HeightFixed(height float32) T {
	c.base.mode[1], c.base.fixed[1] = SizeModeFixed, height
	return c.owner
}

func (c *Common[T]) HeightExpand() T {
	c.base.mode[1] = SizeModeExpand
	return c.owner
}

// Size fixes both axes.
func (c *Common[T]) Size(w, h float32) T {
	c.base.mode = [2]SizeMode{SizeModeFixed, SizeModeFixed}
	c.base.fixed = [2]float32{w, h}
	return c.owner
}

func (c *Common[T]) Padding(all float32) T {
	c.base.SetPadding(all, all, all, all)
	return c.owner
}

func (c *Common[T]) Padding2(horizontal, vertical float32) T {
	c.base.SetPadding(horizontal, vertical, horizontal, vertical)
	return c.owner
}

func (c *Common[T]) Padding4(left, top, right, bottom float32) T {
	c.base.SetPadding(left, top, right, bottom)
	return c.owner
}

func (c *Common[T]) Children(kids ...UIElement) T {
	c.base.children = append(c.base.children, kids...)
	for _, k := range kids {
		k.Node().parent = any(c.owner).(UIElement)
	}
	return c.owner
}

func intersect(a, b core.Rect) core.Rect {
	x0, y0 := maxf(a.X, b.X), maxf(a.Y, b.Y)
	x1 := min(a.X+a.W, b.X+b.W)
	y1 := min(a.Y+a.H, b.Y+b.H)
	return core.Rect{X: x0, Y: y0, W: maxf(0, x1-x0), H: maxf(0, y1-y0)}
}
