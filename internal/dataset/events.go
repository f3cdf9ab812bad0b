package dataset

// Event marks a milestone in Hong Kong air-quality policy.
type Event struct {
	Title string
	Desc  string
}

// Events maps years to policy milestones shown while the animation passes
// through them.
var Events = map[int]Event{
	1993: {
		Title: "Air Quality Monitoring Network Established",
		Desc:  "Hong Kong established its first air quality monitoring network for systematic data collection.",
	},
	1995: {
		Title: "Air Quality Objectives Implementation",
		Desc:  "Introduction of Air Quality Index (AQI) system to provide clearer air quality information.",
	},
	1997: {
		Title: "Vehicle Emission Standards Tightened",
		Desc:  "Implementation of stricter vehicle emission standards, requiring Euro II standards for new vehicles.",
	},
	2000: {
		Title: "Enhanced Vehicle Emission Control",
		Desc:  "Implementation of Euro III emission standards and multiple air quality improvement measures.",
	},
	2005: {
		Title: "Cleaner Production Partnership",
		Desc:  "Cooperation with Guangdong Province on cleaner production to reduce regional air pollution.",
	},
	2010: {
		Title: "Regional Air Quality Management",
		Desc:  "Joint implementation of regional air quality management strategy with Pearl River Delta.",
	},
	2015: {
		Title: "Air Quality Objectives Update",
		Desc:  "Adoption of stricter standards and addition of PM2.5 monitoring indicators.",
	},
	2020: {
		Title: "New Air Quality Targets",
		Desc:  "Set 2025 air quality improvement goals, promoting green transport and clean energy.",
	},
}
