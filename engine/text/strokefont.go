package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/spnavcfg/spnavcfg/engine/core"
)

// Flattening steps per outline segment.
const (
	quadSteps  = 4
	cubicSteps = 6
)

// Glyph is one stroke-font character in font design units, y up.
type Glyph struct {
	Advance  int32
	Contours [][]core.Point // each contour is a closed loop
}

// StrokeFont maps every byte to a Glyph. It is immutable once built.
type StrokeFont struct {
	UnitsPerEm int
	glyphs     [256]Glyph
}

// Glyph returns the glyph drawn for byte b.
func (f *StrokeFont) Glyph(b byte) *Glyph { return &f.glyphs[b] }

// Advance returns the advance width of b in design units.
func (f *StrokeFont) Advance(b byte) int32 { return f.glyphs[b].Advance }

var (
	defaultOnce sync.Once
	defaultFont *StrokeFont
)

// Default returns the built-in stroke font traced from Go Regular. A font
// that fails to load degrades to an empty table whose glyphs have no width.
func Default() *StrokeFont {
	defaultOnce.Do(func() {
		f, err := Parse(goregular.TTF)
		if err != nil {
			core.Logger().Warn("text: stroke font unavailable", "err", err)
			f = &StrokeFont{UnitsPerEm: 2048}
		}
		defaultFont = f
	})
	return defaultFont
}

// Parse traces the outlines of an sfnt font (TrueType or OpenType) for the
// Latin-1 range. Control codes get empty glyphs.
func Parse(ttf []byte) (*StrokeFont, error) {
	sf, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	upem := int(sf.UnitsPerEm())
	// ppem equal to units-per-em makes every 26.6 value a design unit
	ppem := fixed.I(upem)

	out := &StrokeFont{UnitsPerEm: upem}
	var buf sfnt.Buffer
	dec := charmap.ISO8859_1
	for i := 0; i < 256; i++ {
		r := dec.DecodeByte(byte(i))
		if r < 0x20 || (r >= 0x7f && r < 0xa0) {
			continue
		}
		idx, err := sf.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			continue
		}
		adv, err := sf.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("advance %q: %w", r, err)
		}
		segs, err := sf.LoadGlyph(&buf, idx, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("outline %q: %w", r, err)
		}
		out.glyphs[i] = Glyph{Advance: int32(adv.Round()), Contours: flatten(segs)}
	}
	return out, nil
}

func pt(p fixed.Point26_6) core.Point {
	// sfnt segments are y down
	return core.Point{X: float32(p.X) / 64, Y: -float32(p.Y) / 64}
}

// flatten turns outline segments into closed polylines.
func flatten(segs sfnt.Segments) [][]core.Point {
	var (
		contours [][]core.Point
		cur      []core.Point
	)
	closeContour := func() {
		if len(cur) > 1 {
			contours = append(contours, cur)
		}
		cur = nil
	}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			cur = append(cur, pt(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			cur = append(cur, pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			if len(cur) == 0 {
				continue
			}
			p0, c, p1 := cur[len(cur)-1], pt(s.Args[0]), pt(s.Args[1])
			for i := 1; i <= quadSteps; i++ {
				t := float32(i) / quadSteps
				it := 1 - t
				cur = append(cur, core.Point{
					X: it*it*p0.X + 2*it*t*c.X + t*t*p1.X,
					Y: it*it*p0.Y + 2*it*t*c.Y + t*t*p1.Y,
				})
			}
		case sfnt.SegmentOpCubeTo:
			if len(cur) == 0 {
				continue
			}
			p0, c0, c1, p1 := cur[len(cur)-1], pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2])
			for i := 1; i <= cubicSteps; i++ {
				t := float32(i) / cubicSteps
				it := 1 - t
				cur = append(cur, core.Point{
					X: it*it*it*p0.X + 3*it*it*t*c0.X + 3*it*t*t*c1.X + t*t*t*p1.X,
					Y: it*it*it*p0.Y + 3*it*it*t*c0.Y + 3*it*t*t*c1.Y + t*t*t*p1.Y,
				})
			}
		}
	}
	closeContour()
	return contours
}
