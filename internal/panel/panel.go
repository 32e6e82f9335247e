// Package panel describes the spnavcfg configuration panel as a UI tree.
// It is display only: values come from Settings and nothing reacts to input.
package panel

import (
	"fmt"
	"math"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/draw"
	"github.com/spnavcfg/spnavcfg/engine/ui"
)

const Title = "spacenav configuration"

var (
	Background = colors.DarkGray
	Foreground = colors.RGBA(220, 224, 228, 255)
	Muted      = colors.RGBA(110, 118, 126, 255)
	Accent     = colors.RGBA(90, 160, 255, 255)
	AccentHigh = colors.RGBA(120, 230, 140, 255)
	Track      = colors.RGBA(40, 48, 56, 255)
	LEDOn      = colors.RGBA(80, 240, 110, 255)
	LEDOff     = colors.RGBA(50, 60, 54, 255)
)

// Build returns the panel tree for s. A nil pic.Texture shows a placeholder
// instead of the device picture.
func Build(s Settings, pic Picture) ui.UIElement {
	model := LookupModel(s.DeviceType)

	header := ui.View(
		ui.Shape(16, 16, arrow(-1)),
		ui.Shape(28, 20, deviceIcon),
		ui.Label(Title).Foreground(Foreground),
		ui.Shape(16, 16, arrow(1)),
	).Gap(8).AlignCross(ui.AlignCenter)

	info := ui.View(
		ui.Label(s.DeviceName).Foreground(Foreground),
		ui.Label("model: "+model.Name).Foreground(Muted),
		ui.Label("path: "+s.DevicePath).Foreground(Muted),
		ui.Label(fmt.Sprintf("%d axes, %d buttons", s.Axes, s.Buttons)).Foreground(Muted),
		row(ui.Label("sensitivity").Foreground(Foreground).WidthFixed(110),
			ui.Shape(220, 16, gauge(s.Sensitivity/MaxSensitivity)),
			ui.Label(fmt.Sprintf("%.2f", s.Sensitivity)).Foreground(Foreground)),
		row(ui.Label("dead zone").Foreground(Foreground).WidthFixed(110),
			ui.Shape(64, 64, dial(float64(s.Deadzone)/MaxDeadzone)),
			ui.Label(fmt.Sprintf("%d", s.Deadzone)).Foreground(Foreground)),
		row(ui.Shape(18, 18, lamp(s.LED)), ui.Label(onOff("LED", s.LED)).Foreground(Foreground)),
		row(ui.Shape(18, 18, checkbox(s.Grab)), ui.Label("grab device").Foreground(Foreground)),
	).FlowDirection(ui.LayoutVertical).Gap(8)

	body := ui.View(
		ui.Shape(200, 200, picture(pic, model)).Border(Muted).Rounding(6),
		info,
	).Gap(24)

	footer := ui.View(
		ui.Button("Apply").BgColor(Accent).TextColor(colors.Black),
		ui.Button("Reset").BgColor(Track).TextColor(Foreground),
		ui.Shape(0, 32, flourish).WidthExpand(),
	).Gap(12).AlignCross(ui.AlignCenter)

	return ui.View(
		header,
		ui.Shape(0, 2, separator).WidthExpand(),
		body,
		footer.WidthExpand(),
	).FlowDirection(ui.LayoutVertical).
		Gap(12).Padding(16).
		BgColor(Background).
		WidthExpand().HeightExpand().
		Clip(true)
}

func row(children ...ui.UIElement) *ui.UIView {
	return ui.View(children...).Gap(10).AlignCross(ui.AlignCenter)
}

func onOff(name string, on bool) string {
	if on {
		return name + " on"
	}
	return name + " off"
}

// arrow points left for dir < 0 and right otherwise.
func arrow(dir float32) ui.PaintFunc {
	return func(out *draw.Buffer, r core.Rect) {
		tip, back := r.X+r.W, r.X
		if dir < 0 {
			tip, back = back, tip
		}
		a := core.Pt(back, r.Y)
		b := core.Pt(tip, r.Y+r.H/2)
		c := core.Pt(back, r.Y+r.H)
		out.FillTriangle(a, b, c, Muted)
		out.StrokeTriangle(a, b, c, 1, Foreground)
	}
}

// deviceIcon is a puck on a base with a trailing cable.
func deviceIcon(out *draw.Buffer, r core.Rect) {
	x, y, w, h := r.X, r.Y, r.W, r.H
	base := []core.Point{
		core.Pt(x+w*0.1, y+h), core.Pt(x+w*0.9, y+h),
		core.Pt(x+w*0.8, y+h*0.55), core.Pt(x+w*0.65, y+h*0.2),
		core.Pt(x+w*0.35, y+h*0.2), core.Pt(x+w*0.2, y+h*0.55),
	}
	out.FillPolygon(base, Track)
	out.StrokePolygon(base, 1, Accent)
	cable := []core.Point{
		core.Pt(x+w*0.9, y+h*0.8), core.Pt(x+w, y+h*0.6),
		core.Pt(x+w*0.95, y+h*0.35), core.Pt(x+w, y+h*0.1),
	}
	out.StrokePolyline(cable, 1, Muted)
}

func separator(out *draw.Buffer, r core.Rect) {
	y := r.Y + r.H/2
	out.StrokeLine(core.Pt(r.X, y), core.Pt(r.X+r.W, y), 1, Muted)
}

// gauge draws a track with a gradient fill up to frac and a knob.
func gauge(frac float64) ui.PaintFunc {
	frac = math.Max(0, math.Min(1, frac))
	return func(out *draw.Buffer, r core.Rect) {
		out.FillRect(r, r.H/2, Track)
		fill := r
		fill.W = r.W * float32(frac)
		end := lerp(Accent, AccentHigh, frac)
		out.FillRectMultiColor(fill, Accent, end, end, Accent)

		k := r.H/2 + 2
		knob := core.Rect{X: r.X + fill.W - k, Y: r.Y + r.H/2 - k, W: 2 * k, H: 2 * k}
		out.FillCircle(knob, Foreground)
		out.StrokeCircle(knob, 1, Background)
	}
}

const (
	dialStart = 3 * math.Pi / 4
	dialSweep = 3 * math.Pi / 2
)

// dial draws a 270 degree scale with the swept part filled and a needle.
func dial(frac float64) ui.PaintFunc {
	frac = math.Max(0, math.Min(1, frac))
	return func(out *draw.Buffer, r core.Rect) {
		c := core.Pt(r.X+r.W/2, r.Y+r.H/2)
		radius := min(r.W, r.H)/2 - 2
		a1 := dialStart + dialSweep*frac
		out.StrokeArc(c, radius, dialStart, dialStart+dialSweep, 2, Muted)
		if frac > 0 {
			out.FillArc(c, radius-4, dialStart, float32(a1), Accent)
		}
		tip := core.Pt(
			c.X+float32(math.Cos(a1))*radius,
			c.Y+float32(math.Sin(a1))*radius,
		)
		out.StrokeLine(c, tip, 2, Foreground)
	}
}

func lamp(on bool) ui.PaintFunc {
	return func(out *draw.Buffer, r core.Rect) {
		fill := LEDOff
		if on {
			fill = LEDOn
		}
		out.FillCircle(r, fill)
		out.StrokeCircle(r, 1, Foreground)
	}
}

func checkbox(checked bool) ui.PaintFunc {
	return func(out *draw.Buffer, r core.Rect) {
		out.StrokeRect(r, 3, 1.5, Foreground)
		if !checked {
			return
		}
		inner := core.Rect{X: r.X + 3, Y: r.Y + 3, W: r.W - 6, H: r.H - 6}
		out.FillRect(inner, 2, Accent)
		out.StrokePolyline([]core.Point{
			core.Pt(inner.X+inner.W*0.15, inner.Y+inner.H*0.55),
			core.Pt(inner.X+inner.W*0.4, inner.Y+inner.H*0.85),
			core.Pt(inner.X+inner.W*0.9, inner.Y+inner.H*0.15),
		}, 2, colors.White)
	}
}

func picture(pic Picture, m Model) ui.PaintFunc {
	return func(out *draw.Buffer, r core.Rect) {
		if pic.Texture == nil {
			out.StrokeLine(core.Pt(r.X, r.Y), core.Pt(r.X+r.W, r.Y+r.H), 1, Muted)
			out.StrokeLine(core.Pt(r.X+r.W, r.Y), core.Pt(r.X, r.Y+r.H), 1, Muted)
			return
		}
		inset := core.Rect{X: r.X + 8, Y: r.Y + 8, W: r.W - 16, H: r.H - 16}
		out.DrawImage(inset, pic.Texture, pic.Region(m), pic.W, pic.H, colors.White)
	}
}

// flourish is a decorative s-curve filling the rest of the footer.
func flourish(out *draw.Buffer, r core.Rect) {
	if r.W <= 0 {
		return
	}
	out.StrokeCurve(
		core.Pt(r.X, r.Y+r.H),
		core.Pt(r.X+r.W*0.35, r.Y-r.H),
		core.Pt(r.X+r.W*0.65, r.Y+2*r.H),
		core.Pt(r.X+r.W, r.Y),
		1.5, Muted,
	)
}

func lerp(a, b colors.Color, t float64) colors.Color {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5) }
	return colors.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
