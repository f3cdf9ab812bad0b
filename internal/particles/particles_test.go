package particles

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lokwai/hkaqi/internal/aqi"
)

func TestWrapAround(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"right edge", 1201, 400, 0, 400},
		{"left edge", -1, 400, 1200, 400},
		{"bottom edge", 600, 801, 600, 0},
		{"top edge", 600, -1, 600, 800},
		{"inside", 600, 400, 600, 400},
	}

	for _, tt := range tests {
		p := Particle{X: tt.x, Y: tt.y}
		p.wrap(1200, 800)
		if p.X != tt.wantX || p.Y != tt.wantY {
			t.Errorf("%s: got (%f, %f), want (%f, %f)", tt.name, p.X, p.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestUpdateKeepsParticlesInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewField(50, 1200, 800, rng, aqi.PropsForValue(120))

	for tick := 0; tick < 500; tick++ {
		f.Update(float64(tick) / 60)
	}

	for i, p := range f.P {
		if p.X < 0 || p.X > 1200 || p.Y < 0 || p.Y > 800 {
			t.Errorf("particle %d out of bounds: (%f, %f)", i, p.X, p.Y)
		}
	}
}

func TestDepthStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	f := NewField(20, 1200, 800, rng, aqi.PropsForValue(30))

	for tick := 0; tick < 200; tick++ {
		f.Update(float64(tick) * 0.016)
		for i, p := range f.P {
			if p.Z < -DepthAmplitude || p.Z > DepthAmplitude {
				t.Fatalf("tick %d particle %d: z=%f outside [-50,50]", tick, i, p.Z)
			}
		}
	}
}

func TestDepthFactor(t *testing.T) {
	tests := []struct {
		z    float64
		want float64
	}{
		{-50, 0},
		{0, 0.5},
		{50, 1},
	}

	for _, tt := range tests {
		if got := DepthFactor(tt.z); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DepthFactor(%f) = %f, want %f", tt.z, got, tt.want)
		}
	}
}

func TestDepthOrderSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := NewField(30, 1200, 800, rng, aqi.PropsForValue(60))
	f.Update(1.5)

	order := f.DepthOrder()
	if len(order) != len(f.P) {
		t.Fatalf("expected %d indices, got %d", len(f.P), len(order))
	}
	for i := 1; i < len(order); i++ {
		if f.P[order[i-1]].Z > f.P[order[i]].Z {
			t.Fatalf("order not back to front at %d", i)
		}
	}
}

func TestSetPropsShared(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	f := NewField(10, 1200, 800, rng, aqi.PropsForValue(10))

	props := aqi.PropsForValue(160)
	f.SetProps(props)
	if f.Props != props {
		t.Errorf("expected props %+v, got %+v", props, f.Props)
	}

	count := len(f.P)
	f.Update(0.5)
	if len(f.P) != count {
		t.Errorf("particle count changed: %d -> %d", count, len(f.P))
	}
}
