package ui

import (
	"github.com/spnavcfg/spnavcfg/engine/colors"
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

type LayoutDirection int

const (
	LayoutHorizontal LayoutDirection = iota
	LayoutVertical
)

// UIView stacks its children along one axis.
type UIView struct {
	Common[*UIView]
	gap        float32
	mainAlign  Align
	crossAlign Align
	flow       LayoutDirection
	clip       bool
}

func View(children ...UIElement) *UIView {
	v := &UIView{gap: 10}
	v.Common = NewCommon(v)
	v.Children(children...)
	return v
}

func (l *UIView) BgColor(color colors.Color) *UIView              { l.base.color = color; return l }
func (l *UIView) FlowDirection(direction LayoutDirection) *UIView { l.flow = direction; return l }
func (l *UIView) Gap(g float32) *UIView                           { l.gap = g; return l }
func (l *UIView) AlignMain(a Align) *UIView                       { l.mainAlign = a; return l }
func (l *UIView) AlignCross(a Align) *UIView                      { l.crossAlign = a; return l }

// Clip restricts the children's drawing to the view's rectangle.
func (l *UIView) Clip(enabled bool) *UIView { l.clip = enabled; return l }

func (l *UIView) axes() (main, cross int) {
	if l.flow == LayoutVertical {
		return 1, 0
	}
	return 0, 1
}

func (l *UIView) Layout(ctx *Context, constraints Constraints) LayoutResult {
	b := &l.base
	main, cross := l.axes()
	children := b.children

	var inner Constraints
	for a := 0; a < 2; a++ {
		if constraints.Max[a] > 0 {
			inner.Max[a] = maxf(0, constraints.Max[a]-b.paddingAxis(a))
		}
	}

	sizes := make([][2]float32, len(children))
	var used, maxCross float32
	expand := 0
	for i, child := range children {
		sizes[i] = child.Layout(ctx, inner).Size
		if child.Node().mode[main] == SizeModeExpand {
			// grows into the leftover space below
			sizes[i][main] = 0
			expand++
		}
		used += sizes[i][main]
		maxCross = maxf(maxCross, sizes[i][cross])
	}
	if len(children) > 1 {
		used += l.gap * float32(len(children)-1)
	}

	var outer [2]float32
	outer[main] = b.resolve(main, used+b.paddingAxis(main), constraints)
	outer[cross] = b.resolve(cross, maxCross+b.paddingAxis(cross), constraints)
	b.SetSize(outer[0], outer[1])
	innerMain := maxf(0, outer[main]-b.paddingAxis(main))
	innerCross := maxf(0, outer[cross]-b.paddingAxis(cross))

	// Distribute extra space along the main axis to expanding children.
	remaining := maxf(0, innerMain-used)
	if expand > 0 {
		share := remaining / float32(expand)
		for i, child := range children {
			if child.Node().mode[main] == SizeModeExpand {
				sizes[i][main] += share
			}
		}
		remaining = 0
	}

	var cursor float32
	switch l.mainAlign {
	case AlignCenter:
		cursor = remaining / 2
	case AlignEnd:
		cursor = remaining
	}

	origin := [2]float32{b.position[0] + b.padding[0], b.position[1] + b.padding[1]}
	for i, child := range children {
		cb := child.Node()
		size := sizes[i]
		if l.crossAlign == AlignStretch || cb.mode[cross] == SizeModeExpand {
			size[cross] = innerCross
		}
		size[cross] = clamp(size[cross], 0, innerCross)

		var pos [2]float32
		pos[main] = origin[main] + cursor
		pos[cross] = origin[cross]
		switch l.crossAlign {
		case AlignCenter:
			pos[cross] += (innerCross - size[cross]) / 2
		case AlignEnd:
			pos[cross] += innerCross - size[cross]
		}
		cb.SetPos(pos[0], pos[1])
		cb.SetSize(size[0], size[1])
		// Containers place their own children, so run them again at the
		// final position and size.
		if len(cb.children) > 0 {
			child.Layout(ctx, Constraints{Min: size, Max: size})
		}
		cursor += size[main] + l.gap
	}

	return LayoutResult{Size: b.size}
}

func (l *UIView) Draw(ctx *Context) {
	l.base.drawBox(ctx)
	if !l.clip {
		for _, c := range l.base.children {
			c.Draw(ctx)
		}
		return
	}
	prev := ctx.clip
	r := intersect(prev, l.base.Rect())
	ctx.clip = r
	ctx.Out.PushScissor(r)
	for _, c := range l.base.children {
		c.Draw(ctx)
	}
	ctx.clip = prev
	ctx.Out.PushScissor(prev)
}
