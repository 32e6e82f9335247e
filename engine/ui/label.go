package ui

import (
	"strings"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
)

// UILabel shows one or more lines of text. Widths come from the context's
// measure callback, so wrapping matches what the stroke font draws.
type UILabel struct {
	Common[*UILabel]
	text     string
	fg       colors.Color
	wrap     bool
	maxWidth float32
	lines    []string
}

func Label(str string) *UILabel {
	l := &UILabel{text: str, fg: colors.White}
	l.Common = NewCommon(l)
	return l
}

func (l *UILabel) Text() string                       { return l.text }
func (l *UILabel) SetText(s string) *UILabel          { l.text = s; return l }
func (l *UILabel) Foreground(c colors.Color) *UILabel { l.fg = c; return l }
func (l *UILabel) Wrap(enabled bool) *UILabel         { l.wrap = enabled; return l }

func (l *UILabel) MaxWidth(width float32) *UILabel {
	l.maxWidth = width
	if width > 0 {
		l.wrap = true
	}
	return l
}

// Lines returns the lines produced by the last layout.
func (l *UILabel) Lines() []string { return l.lines }

func (l *UILabel) Layout(ctx *Context, constraints Constraints) LayoutResult {
	b := &l.base
	limit := constraints.Max[0]
	if l.maxWidth > 0 && (limit == 0 || l.maxWidth < limit) {
		limit = l.maxWidth
	}
	if limit > 0 {
		limit = maxf(0, limit-b.paddingAxis(0))
	}

	var contentW float32
	l.lines = l.layoutLines(ctx, limit)
	for _, line := range l.lines {
		contentW = maxf(contentW, ctx.measure(line))
	}
	contentH := ctx.LineHeight * float32(len(l.lines))

	w := b.resolve(0, contentW+b.paddingAxis(0), constraints)
	h := b.resolve(1, contentH+b.paddingAxis(1), constraints)
	b.SetSize(w, h)
	return LayoutResult{Size: b.size}
}

// layoutLines splits the text on newlines and, when wrapping, greedily on
// spaces so that no line exceeds maxWidth unless a single word does.
func (l *UILabel) layoutLines(ctx *Context, maxWidth float32) []string {
	if l.text == "" {
		return nil
	}
	raw := strings.Split(l.text, "\n")
	if !l.wrap || maxWidth <= 0 {
		return raw
	}

	var out []string
	for _, line := range raw {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if ctx.measure(candidate) > maxWidth {
				out = append(out, current)
				current = word
				continue
			}
			current = candidate
		}
		out = append(out, current)
	}
	return out
}

func (l *UILabel) Draw(ctx *Context) {
	l.base.drawBox(ctx)
	inner := l.base.Inner()
	for i, line := range l.lines {
		r := core.Rect{
			X: inner.X,
			Y: inner.Y + float32(i)*ctx.LineHeight,
			W: ctx.measure(line),
			H: ctx.LineHeight,
		}
		ctx.Out.DrawText(r, line, l.fg, l.base.color)
	}
}
