package aqi

import "testing"

func TestColorForValueEndpoints(t *testing.T) {
	if got := ColorForValue(-10, 0, 150); got != gradientStops[0] {
		t.Errorf("below min: expected first stop, got %v", got)
	}
	if got := ColorForValue(0, 0, 150); got != gradientStops[0] {
		t.Errorf("at min: expected first stop, got %v", got)
	}
	if got := ColorForValue(150, 0, 150); got != gradientStops[len(gradientStops)-1] {
		t.Errorf("at max: expected last stop, got %v", got)
	}
	if got := ColorForValue(999, 0, 150); got != gradientStops[len(gradientStops)-1] {
		t.Errorf("above max: expected last stop, got %v", got)
	}
}

func TestColorForValueStopBoundaries(t *testing.T) {
	// With 6 stops over [0,150] the sections are 30 wide, so every multiple
	// of 30 lands exactly on a stop and comes back unblended.
	for i := range gradientStops {
		v := float64(i) * 30
		if got := ColorForValue(v, 0, 150); got != gradientStops[i] {
			t.Errorf("v=%.0f: expected stop %d %v, got %v", v, i, gradientStops[i], got)
		}
	}
}

func TestColorForValueBlends(t *testing.T) {
	// Halfway through the first section: each channel halfway between stops.
	got := ColorForValue(15, 0, 150)
	want := lerpRGB(gradientStops[0], gradientStops[1], 0.5)
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPropsForValueTiers(t *testing.T) {
	tests := []struct {
		v     float64
		size  float64
		speed float64
	}{
		{0, 3, 1},
		{49.9, 3, 1},
		{50, 4, 1.5},
		{99.9, 4, 1.5},
		{100, 5, 2},
		{149.9, 5, 2},
		{150, 6, 2.5},
		{400, 6, 2.5},
	}

	for _, tt := range tests {
		p := PropsForValue(tt.v)
		if p.Size != tt.size || p.Speed != tt.speed {
			t.Errorf("v=%.1f: got size %.1f speed %.1f, want %.1f %.1f",
				tt.v, p.Size, p.Speed, tt.size, tt.speed)
		}
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{50, 205, 50}).Hex(); got != "#32cd32" {
		t.Errorf("expected #32cd32, got %s", got)
	}
}
