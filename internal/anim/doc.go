// Package anim implements the year-transition state machine driving the
// visualization.
//
// A [Controller] owns a fractional current year and an integer target year.
// Each tick it covers a fixed fraction of the remaining gap, snapping once
// within a small epsilon, so stepping through years eases smoothly instead of
// jumping. [InterpolateAt] derives the AQI shown for a fractional year by
// blending the yearly means of the two bounding integer years; it is the
// single interpolation path used by the overall readout, the district grid,
// and the particle field.
package anim
