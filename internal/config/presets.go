package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"calm": {
		Window: WindowConfig{
			Width: DefaultWidth, Height: DefaultHeight,
			Title: DefaultTitle, FPS: DefaultFPS,
		},
		Animation: AnimationConfig{TransitionRate: 0.02, AutoplayTicks: 600},
		Particles: 100,
	},
	"dense": {
		Window: WindowConfig{
			Width: DefaultWidth, Height: DefaultHeight,
			Title: DefaultTitle, FPS: DefaultFPS,
		},
		Animation: AnimationConfig{TransitionRate: DefaultTransitionRate, AutoplayTicks: DefaultAutoplayTicks},
		Particles: 500,
	},
	"rapid": {
		Window: WindowConfig{
			Width: DefaultWidth, Height: DefaultHeight,
			Title: DefaultTitle, FPS: DefaultFPS,
		},
		Animation: AnimationConfig{TransitionRate: 0.15, AutoplayTicks: 120},
		Particles: DefaultParticles,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
