package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lokwai/hkaqi/internal/aqi"
)

const (
	legendWidth  = 280
	legendTop    = 20
	legendRowGap = 45
)

// drawLegend renders the fixed AQI guide in the top-right corner: one swatch
// per level with its range, name, and a compact health note.
func (a *App) drawLegend() {
	x := a.cfg.Window.Width - legendWidth
	y := legendTop

	drawText(a.font, "AQI Guide", x, y, 24, colText)
	drawText(a.font, "Health Impact", x, y+22, 12, colTextDim)
	rl.DrawLine(int32(x), int32(y+38), int32(a.cfg.Window.Width-20), int32(y+38), colBorder)

	startY := y + 48
	for i, level := range aqi.Levels {
		rowY := startY + i*legendRowGap

		swatch := rl.NewRectangle(float32(x), float32(rowY), 16, 16)
		rl.DrawRectangleRec(swatch, rl.NewColor(level.Color.R, level.Color.G, level.Color.B, 255))
		rl.DrawRectangleLinesEx(swatch, 1, colBorder)

		drawText(a.font, fmt.Sprintf("%d-%d", level.Min, level.Max), x+22, rowY, 10, colTextDim)
		drawText(a.font, level.Name, x+22, rowY+12, 12, colText)
		drawText(a.font, aqi.ShortDesc[level.Name], x+22, rowY+26, 9, colTextFaint)
	}
}
