package export

import (
	"fmt"
	"strings"

	"github.com/lokwai/hkaqi/internal/aqi"
	"github.com/lokwai/hkaqi/internal/dataset"
)

// TimelineSVG renders the yearly mean AQI series as a standalone SVG
// line chart with horizontal gridlines every 30 AQI and year labels
// every five years.
func TimelineSVG(yearly map[int]dataset.YearlySample, width, height int) string {
	if width <= 0 || height <= 0 || len(yearly) == 0 {
		return ""
	}

	const (
		marginLeft   = 50
		marginRight  = 20
		marginTop    = 20
		marginBottom = 40
	)
	plotW := float64(width - marginLeft - marginRight)
	plotH := float64(height - marginTop - marginBottom)
	span := float64(dataset.LastYear - dataset.FirstYear)

	xFor := func(year int) float64 {
		return marginLeft + float64(year-dataset.FirstYear)/span*plotW
	}
	yFor := func(v float64) float64 {
		return marginTop + plotH - v/dataset.MaxAQI*plotH
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a1e"/>
`, width, height, width, height))

	// Gridlines and axis labels.
	sb.WriteString(`<g stroke="#282840" stroke-width="1" fill="#a0a0a0" font-family="monospace" font-size="11">` + "\n")
	for v := 0; v <= dataset.MaxAQI; v += 30 {
		y := yFor(float64(v))
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.1f" x2="%d" y2="%.1f"/>
<text x="%d" y="%.1f" stroke="none" text-anchor="end">%d</text>
`, marginLeft, y, width-marginRight, y, marginLeft-6, y+4, v))
	}
	for year := dataset.FirstYear; year <= dataset.LastYear; year++ {
		if year%5 != 0 {
			continue
		}
		x := xFor(year)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%d" x2="%.1f" y2="%.1f"/>
<text x="%.1f" y="%d" stroke="none" text-anchor="middle">%d</text>
`, x, marginTop, x, marginTop+plotH, x, height-marginBottom+20, year))
	}
	sb.WriteString("</g>\n")

	// Mean AQI polyline, colored by the stroke of the final year.
	var last float64
	sb.WriteString(`<polyline fill="none" stroke-width="2" points="`)
	for year := dataset.FirstYear; year <= dataset.LastYear; year++ {
		sample, ok := yearly[year]
		if !ok {
			continue
		}
		mean := sample.Mean()
		last = mean
		sb.WriteString(fmt.Sprintf("%.1f,%.1f ", xFor(year), yFor(mean)))
	}
	stroke := aqi.ColorForValue(last, dataset.MinAQI, dataset.MaxAQI)
	sb.WriteString(fmt.Sprintf(`" stroke="%s"/>
</svg>`, stroke.Hex()))

	return sb.String()
}
