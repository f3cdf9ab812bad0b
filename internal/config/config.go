package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth          = 1200
	DefaultHeight         = 800
	DefaultTitle          = "Hong Kong Air Quality Visualization (1993-2023)"
	DefaultFPS            = 60
	DefaultParticles      = 200
	DefaultTransitionRate = 0.05
	DefaultAutoplayTicks  = 300
)

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Particles int             `yaml:"particles"`
	Seed      int64           `yaml:"seed"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type AnimationConfig struct {
	// TransitionRate is the fraction of the remaining year gap covered per
	// tick; AutoplayTicks is the tick count between automatic year advances.
	TransitionRate float64 `yaml:"transition_rate"`
	AutoplayTicks  int     `yaml:"autoplay_ticks"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			FPS:    DefaultFPS,
		},
		Animation: AnimationConfig{
			TransitionRate: DefaultTransitionRate,
			AutoplayTicks:  DefaultAutoplayTicks,
		},
		Particles: DefaultParticles,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
