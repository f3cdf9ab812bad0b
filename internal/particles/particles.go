package particles

import (
	"math"
	"math/rand"
	"sort"

	"github.com/lokwai/hkaqi/internal/aqi"
)

const (
	// DepthAmplitude bounds the synthetic z coordinate to [-50, 50].
	DepthAmplitude = 50.0

	// wanderStep is the maximum per-tick heading change in radians.
	wanderStep = 0.1
)

// Particle is a single wandering point. Position and heading are per
// particle; color, size and speed are shared across the whole field.
type Particle struct {
	X, Y  float64
	Z     float64
	Angle float64
}

// wrap teleports the particle to the opposite edge when it leaves the
// window. Edges wrap rather than reflect, so the field density stays even.
func (p *Particle) wrap(w, h float64) {
	if p.X < 0 {
		p.X = w
	} else if p.X > w {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = h
	} else if p.Y > h {
		p.Y = 0
	}
}

// Field holds a fixed-size particle population. Particles are created once
// and never added or removed; each tick mutates them in place.
type Field struct {
	P     []Particle
	Props aqi.ParticleProps

	width, height float64
	rng           *rand.Rand
}

// NewField scatters n particles across the window. Some start above the top
// edge so the field drifts in rather than popping on at once.
func NewField(n int, width, height float64, rng *rand.Rand, props aqi.ParticleProps) *Field {
	f := &Field{
		P:      make([]Particle, n),
		Props:  props,
		width:  width,
		height: height,
		rng:    rng,
	}
	for i := range f.P {
		f.P[i] = Particle{
			X:     rng.Float64() * width,
			Y:     -100 + rng.Float64()*(height+100),
			Z:     -DepthAmplitude + rng.Float64()*2*DepthAmplitude,
			Angle: rng.Float64() * 2 * math.Pi,
		}
	}
	return f
}

// SetProps replaces the shared color/size/speed for every particle.
func (f *Field) SetProps(props aqi.ParticleProps) {
	f.Props = props
}

// Update advances every particle one tick of Brownian-style wandering.
// elapsed is the monotonic time in seconds since startup; depth is a pure
// function of elapsed time and heading, not integrated.
func (f *Field) Update(elapsed float64) {
	for i := range f.P {
		p := &f.P[i]
		p.Angle += (f.rng.Float64()*2 - 1) * wanderStep
		p.X += math.Cos(p.Angle) * f.Props.Speed
		p.Y += math.Sin(p.Angle) * f.Props.Speed
		p.Z = DepthAmplitude * math.Sin(elapsed+p.Angle)
		p.wrap(f.width, f.height)
	}
}

// DepthFactor maps a z coordinate onto [0,1]; far particles render smaller
// and dimmer.
func DepthFactor(z float64) float64 {
	return (z + DepthAmplitude) / (2 * DepthAmplitude)
}

// DepthOrder returns particle indices sorted back to front so overlapping
// particles layer correctly.
func (f *Field) DepthOrder() []int {
	order := make([]int, len(f.P))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return f.P[order[a]].Z < f.P[order[b]].Z
	})
	return order
}
