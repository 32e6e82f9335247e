package ui

import (
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/draw"
)

// PaintFunc records arbitrary commands inside r (virtual units).
type PaintFunc func(out *draw.Buffer, r core.Rect)

// UIShape is a fixed-size leaf whose content is painted by a callback.
type UIShape struct {
	Common[*UIShape]
	paint PaintFunc
}

func Shape(w, h float32, paint PaintFunc) *UIShape {
	s := &UIShape{paint: paint}
	s.Common = NewCommon(s)
	s.Size(w, h)
	return s
}

func (s *UIShape) Layout(ctx *Context, constraints Constraints) LayoutResult {
	b := &s.base
	w := b.resolve(0, b.paddingAxis(0), constraints)
	h := b.resolve(1, b.paddingAxis(1), constraints)
	b.SetSize(w, h)
	return LayoutResult{Size: b.size}
}

func (s *UIShape) Draw(ctx *Context) {
	s.base.drawBox(ctx)
	if s.paint != nil {
		s.paint(ctx.Out, s.base.Inner())
	}
}
