package ui

import (
	"github.com/spnavcfg/spnavcfg/engine/colors"
)

// UIButton is a framed label. It only draws; there is no hit-testing.
type UIButton struct {
	Common[*UIButton]
	label *UILabel
}

func Button(str string) *UIButton {
	l := &UIButton{label: Label(str)}
	l.Common = NewCommon(l)
	l.Children(l.label)
	l.base.color = colors.Gray
	l.base.border = colors.White
	l.base.rounding = 4
	l.base.SetPadding(10, 6, 10, 6)
	return l
}

func (l *UIButton) BgColor(color colors.Color) *UIButton   { l.base.color = color; return l }
func (l *UIButton) TextColor(color colors.Color) *UIButton { l.label.fg = color; return l }
func (l *UIButton) Label() *UILabel                        { return l.label }

func (l *UIButton) Layout(ctx *Context, constraints Constraints) LayoutResult {
	b := &l.base
	var inner Constraints
	for a := 0; a < 2; a++ {
		if constraints.Max[a] > 0 {
			inner.Max[a] = maxf(0, constraints.Max[a]-b.paddingAxis(a))
		}
	}
	content := l.label.Layout(ctx, inner).Size

	w := b.resolve(0, content[0]+b.paddingAxis(0), constraints)
	h := b.resolve(1, content[1]+b.paddingAxis(1), constraints)
	b.SetSize(w, h)

	// center the label inside the padding box
	in := b.Inner()
	cw, ch := min(content[0], in.W), min(content[1], in.H)
	lb := l.label.Node()
	lb.SetPos(in.X+(in.W-cw)/2, in.Y+(in.H-ch)/2)
	lb.SetSize(cw, ch)
	return LayoutResult{Size: b.size}
}

func (l *UIButton) Draw(ctx *Context) {
	l.base.drawBox(ctx)
	l.label.Draw(ctx)
}
