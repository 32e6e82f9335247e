package panel

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/spnavcfg/spnavcfg/engine/core"
)

const (
	AtlasCols = 8
	AtlasRows = 3
	CellSize  = 64
)

// DeviceAtlas paints a grid of device pictures, one cell per Model
// position, on an opaque background.
func DeviceAtlas() image.Image {
	dc := gg.NewContext(AtlasCols*CellSize, AtlasRows*CellSize)
	defer dc.Close()
	dc.ClearWithColor(gg.RGB(0.08, 0.1, 0.12))

	const c = float64(CellSize)
	for row := 0; row < AtlasRows; row++ {
		for col := 0; col < AtlasCols; col++ {
			x, y := float64(col)*c, float64(row)*c
			hue := float64(row*AtlasCols+col) * 360 / (AtlasCols * AtlasRows)

			// base
			dc.SetFillBrush(gg.Solid(gg.HSL(hue, 0.3, 0.25)))
			dc.DrawRoundedRectangle(x+c*0.12, y+c*0.6, c*0.76, c*0.28, c*0.1)
			fill(dc, col, row)
			// cap
			dc.SetFillBrush(gg.Solid(gg.HSL(hue, 0.6, 0.55)))
			dc.DrawEllipse(x+c/2, y+c*0.45, c*0.22, c*0.28)
			fill(dc, col, row)
		}
	}
	return dc.Image()
}

func fill(dc *gg.Context, col, row int) {
	if err := dc.Fill(); err != nil {
		core.Logger().Debug("panel: atlas fill", "col", col, "row", row, "err", err)
	}
}

// Picture is the uploaded atlas the panel samples from.
type Picture struct {
	Texture core.Texture
	W, H    int
}

// Region returns the atlas cell of m in pixels: x, y, w, h.
func (p Picture) Region(m Model) [4]int {
	return [4]int{m.Col * CellSize, m.Row * CellSize, CellSize, CellSize}
}
