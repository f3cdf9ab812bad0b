// Package viz provides the terminal rendition of the air-quality animation.
//
// The package implements a Bubble Tea program mirroring the GUI:
//
//   - [Model]: ticking year animation with the district heat grid
//   - [RenderLegend]: the AQI level table for the legend command
//
// # Key Bindings
//
//	Left/Right - Step the target year
//	1-9        - Select a district (0 clears)
//	Space      - Restart the autoplay countdown
//	?          - Toggle help
//	Q          - Quit
package viz
