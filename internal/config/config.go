package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/galpot/internal/grid"
	"github.com/san-kum/galpot/internal/potential"
)

const (
	DefaultRMin = 0.1
	DefaultRMax = 10.0
	DefaultZMin = -2.0
	DefaultZMax = 2.0
	DefaultNR   = 64
	DefaultNz   = 33
)

// Config describes one field-evaluation scene: the sampling axes and the
// component list that defines the potential.
type Config struct {
	R          grid.Axis         `yaml:"r"`
	Z          grid.Axis         `yaml:"z"`
	Components []ComponentConfig `yaml:"components"`
	Workers    int               `yaml:"workers"`
}

// ComponentConfig names one potential component and carries its parameters
// in catalog order.
type ComponentConfig struct {
	Type   string    `yaml:"type"`
	Params []float64 `yaml:"params"`
}

// DefaultConfig is a Milky-Way-like three-component model on a moderate grid.
func DefaultConfig() *Config {
	return &Config{
		R: grid.Axis{Min: DefaultRMin, Max: DefaultRMax, N: DefaultNR},
		Z: grid.Axis{Min: DefaultZMin, Max: DefaultZMax, N: DefaultNz},
		Components: []ComponentConfig{
			{Type: "miyamotonagai", Params: []float64{1.0, 3.0, 0.28}},
			{Type: "nfw", Params: []float64{2.0, 16.0}},
			{Type: "pointmass", Params: []float64{0.05}},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Components = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Components) == 0 {
		cfg.Components = DefaultConfig().Components
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

// Pack flattens the component list into the wire format consumed by
// potential.Build: parallel type tags plus one packed parameter buffer.
func (c *Config) Pack() ([]int, []float64, error) {
	types := make([]int, 0, len(c.Components))
	params := make([]float64, 0)
	for _, comp := range c.Components {
		tag, err := potential.TagFor(comp.Type)
		if err != nil {
			return nil, nil, err
		}
		types = append(types, tag)
		params = append(params, comp.Params...)
	}
	return types, params, nil
}
