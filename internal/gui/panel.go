package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lokwai/hkaqi/internal/anim"
	"github.com/lokwai/hkaqi/internal/aqi"
	"github.com/lokwai/hkaqi/internal/dataset"
)

// District grid geometry. The grid spans rows of 200px cells starting at
// y=100; the bottom row ends at y=700.
const (
	gridMargin = 50
	gridTop    = 100
	gridBottom = 700
	gridCols   = 3
	cellHeight = 200
)

// cellWidth derives the column width from the window width.
func cellWidth(windowWidth int) int {
	return (windowWidth - 2*gridMargin) / gridCols
}

// HitTest maps a pointer press to a district index, or -1 when the press
// lands outside the grid. Division floors so presses left of the grid do not
// round into column zero.
func HitTest(mx, my, windowWidth int) int {
	if my < gridTop || my > gridBottom {
		return -1
	}
	row := floorDiv(my-gridTop, cellHeight)
	col := floorDiv(mx-gridMargin, cellWidth(windowWidth))
	idx := row*gridCols + col
	if idx < 0 || idx >= len(dataset.Districts) {
		return -1
	}
	return idx
}

func (a *App) drawDistricts() {
	cellW := cellWidth(a.cfg.Window.Width)
	year := a.ctrl.CurrentYear()

	for i, district := range dataset.Districts {
		row := i / gridCols
		col := i % gridCols
		x := gridMargin + col*cellW
		y := gridTop + row*cellHeight

		value := anim.InterpolateAt(a.byDistrict[district], year)
		c := aqi.ColorForValue(value, dataset.MinAQI, dataset.MaxAQI)

		cell := rl.NewRectangle(float32(x), float32(y), float32(cellW-10), float32(cellHeight-10))
		rl.DrawRectangleRec(cell, rl.NewColor(c.R, c.G, c.B, 255))

		drawText(a.font, district, x+10, y+10, 20, colText)
		drawText(a.font, fmt.Sprintf("AQI: %d", int(value)), x+10, y+35, 18, colText)

		if i == a.selected {
			rl.DrawRectangleLinesEx(cell, 3, colHighlight)
		}
	}
}
