package gui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lokwai/hkaqi/internal/dataset"
)

const yearLabelInterval = 5

// Graph renders the yearly-mean AQI timeline into a fixed rectangle.
type Graph struct {
	X, Y          int
	Width, Height int
}

func NewGraph(x, y, width, height int) *Graph {
	return &Graph{X: x, Y: y, Width: width, Height: height}
}

// xFor maps a year onto the widget's horizontal pixel span.
func (g *Graph) xFor(year int) int {
	return g.X + (year-dataset.FirstYear)*g.Width/(dataset.LastYear-dataset.FirstYear)
}

func (g *Graph) Draw(data map[int]dataset.YearlySample, font rl.Font) {
	rl.DrawRectangle(int32(g.X), int32(g.Y), int32(g.Width), int32(g.Height), colGraphBg)

	// Horizontal gridlines with AQI labels, 150 at the top down to 0.
	for i := 0; i < 6; i++ {
		y := g.Y + g.Height*i/5
		rl.DrawLine(int32(g.X), int32(y), int32(g.X+g.Width), int32(y), colGrid)
		drawText(font, strconv.Itoa(150-i*30), g.X-30, y-10, 18, colText)
	}

	// Vertical gridlines with year labels every 5 years.
	for year := dataset.FirstYear; year <= dataset.LastYear; year += yearLabelInterval {
		x := g.xFor(year)
		rl.DrawLine(int32(x), int32(g.Y), int32(x), int32(g.Y+g.Height), colGrid)

		label := strconv.Itoa(year)
		labelW := rl.MeasureTextEx(font, label, 18, 1).X
		drawText(font, label, x-int(labelW)/2, g.Y+g.Height+5, 18, colText)
	}

	// Polyline of yearly means.
	var prev rl.Vector2
	for year := dataset.FirstYear; year <= dataset.LastYear; year++ {
		mean := data[year].Mean()
		pt := rl.NewVector2(
			float32(g.xFor(year)),
			float32(g.Y+g.Height)-float32(mean/dataset.MaxAQI)*float32(g.Height),
		)
		if year > dataset.FirstYear {
			rl.DrawLineEx(prev, pt, 2, colHighlight)
		}
		prev = pt
	}
}
