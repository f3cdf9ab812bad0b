package aqi

import "fmt"

// RGB is a plain 8-bit color, independent of any rendering backend.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Level describes one band of the AQI scale.
type Level struct {
	Min, Max int
	Color    RGB
	Name     string
	Desc     string
}

// Levels is the full AQI scale in ascending order. The visualization itself
// only reaches 150, but the legend shows the whole table.
var Levels = [6]Level{
	{0, 50, RGB{50, 205, 50}, "Good",
		"Air quality is satisfactory with minimal air pollution"},
	{51, 100, RGB{255, 255, 0}, "Moderate",
		"Air quality is acceptable but may affect sensitive groups"},
	{101, 150, RGB{255, 165, 0}, "Unhealthy for Sensitive",
		"Members of sensitive groups may experience health effects"},
	{151, 200, RGB{255, 69, 0}, "Unhealthy",
		"Everyone may begin to experience health effects"},
	{201, 300, RGB{255, 0, 0}, "Very Unhealthy",
		"Health warnings of emergency conditions for everyone"},
	{301, 500, RGB{128, 0, 0}, "Hazardous",
		"Health alert: everyone may experience serious health effects"},
}

// ShortDesc is the compact legend wording used where space is tight.
var ShortDesc = map[string]string{
	"Good":                    "Safe for all",
	"Moderate":                "OK for most",
	"Unhealthy for Sensitive": "Sensitive at risk",
	"Unhealthy":               "Health effects",
	"Very Unhealthy":          "Serious effects",
	"Hazardous":               "Emergency",
}
