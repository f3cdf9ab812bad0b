package anim

import (
	"math"

	"github.com/lokwai/hkaqi/internal/dataset"
)

const (
	// DefaultTransitionRate is the fraction of the remaining year gap
	// covered each tick.
	DefaultTransitionRate = 0.05

	// DefaultAutoplayTicks is the number of ticks between automatic
	// target-year advances (5 seconds at 60 FPS).
	DefaultAutoplayTicks = 300

	// settleEpsilon is the gap below which the current year snaps to the
	// target exactly.
	settleEpsilon = 0.01
)

// Controller owns the fractional current year and eases it toward an integer
// target year. Every tick it covers a fixed fraction of the remaining gap, so
// year changes decelerate smoothly into the target.
type Controller struct {
	current  float64
	target   int
	rate     float64
	ticks    int
	interval int
}

func NewController(rate float64, autoplayTicks int) *Controller {
	if rate <= 0 {
		rate = DefaultTransitionRate
	}
	if autoplayTicks <= 0 {
		autoplayTicks = DefaultAutoplayTicks
	}
	return &Controller{
		current:  dataset.FirstYear,
		target:   dataset.FirstYear,
		rate:     rate,
		interval: autoplayTicks,
	}
}

func (c *Controller) CurrentYear() float64 { return c.current }
func (c *Controller) TargetYear() int      { return c.target }

// Settled reports whether the current year has reached the target.
func (c *Controller) Settled() bool {
	return math.Abs(c.current-float64(c.target)) <= settleEpsilon
}

// SetTarget sets the target year, clamped to the dataset range.
func (c *Controller) SetTarget(year int) {
	if year < dataset.FirstYear {
		year = dataset.FirstYear
	}
	if year > dataset.LastYear {
		year = dataset.LastYear
	}
	c.target = year
}

// StepTarget moves the target year by delta, clamped to the dataset range.
func (c *Controller) StepTarget(delta int) {
	c.SetTarget(c.target + delta)
}

// ResetAutoplay restarts the autoplay countdown. It does not pause the
// animation; the year keeps easing toward its target.
func (c *Controller) ResetAutoplay() {
	c.ticks = 0
}

// Tick advances the autoplay counter and eases the current year toward the
// target. When the countdown expires the target advances one year, wrapping
// from the last year back to the first.
func (c *Controller) Tick() {
	c.ticks++
	if c.ticks >= c.interval {
		c.ticks = 0
		if c.target < dataset.LastYear {
			c.target++
		} else {
			c.target = dataset.FirstYear
		}
	}

	if c.Settled() {
		c.current = float64(c.target)
		return
	}
	c.current += (float64(c.target) - c.current) * c.rate
}

// InterpolateAt returns the mean AQI at a fractional year, blending the means
// of the two bounding integer years. All call sites (overall AQI, district
// AQI, particle tiers) share this one function so the displayed values cannot
// drift apart.
func InterpolateAt(samples map[int]dataset.YearlySample, year float64) float64 {
	y0 := int(math.Floor(year))
	y1 := y0 + 1
	if y1 > dataset.LastYear {
		y1 = dataset.LastYear
	}
	frac := year - float64(y0)

	value := samples[y0].Mean()
	if frac > 0 {
		if next, ok := samples[y1]; ok {
			value += (next.Mean() - value) * frac
		}
	}
	return value
}
