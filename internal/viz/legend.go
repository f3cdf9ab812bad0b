package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lokwai/hkaqi/internal/aqi"
)

// RenderLegend formats the full AQI level table for terminal output.
func RenderLegend() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("AQI GUIDE") + "\n")

	for _, level := range aqi.Levels {
		swatch := legendSwatchStyle.
			Background(lipgloss.Color(level.Color.Hex())).
			Render(fmt.Sprintf("%3d-%3d", level.Min, level.Max))
		s.WriteString(fmt.Sprintf("%s  %-24s %s\n", swatch, level.Name, level.Desc))
	}
	return s.String()
}
