package aqi

// gradientStops are the level colors used for piecewise-linear interpolation.
var gradientStops = func() [len(Levels)]RGB {
	var stops [len(Levels)]RGB
	for i, lv := range Levels {
		stops[i] = lv.Color
	}
	return stops
}()

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

// ColorForValue maps v onto the level gradient across [min, max]. Values at
// or below min return the first stop, at or above max the last; in between
// the two bounding stops are blended per channel.
func ColorForValue(v, min, max float64) RGB {
	if v <= min {
		return gradientStops[0]
	}
	if v >= max {
		return gradientStops[len(gradientStops)-1]
	}

	sectionSize := (max - min) / float64(len(gradientStops)-1)
	section := int((v - min) / sectionSize)
	if section >= len(gradientStops)-1 {
		section = len(gradientStops) - 2
	}
	factor := (v - min - float64(section)*sectionSize) / sectionSize

	return lerpRGB(gradientStops[section], gradientStops[section+1], factor)
}

// ParticleProps are the shared particle attributes for an AQI band. Every
// particle in the field carries the same props at any given tick.
type ParticleProps struct {
	Color RGB
	Size  float64
	Speed float64
}

// PropsForValue buckets v into the coarse four-tier particle mapping.
// Dirtier air means bigger, faster, redder particles.
func PropsForValue(v float64) ParticleProps {
	switch {
	case v < 50:
		return ParticleProps{RGB{50, 205, 50}, 3, 1}
	case v < 100:
		return ParticleProps{RGB{255, 255, 0}, 4, 1.5}
	case v < 150:
		return ParticleProps{RGB{255, 165, 0}, 5, 2}
	default:
		return ParticleProps{RGB{255, 0, 0}, 6, 2.5}
	}
}
