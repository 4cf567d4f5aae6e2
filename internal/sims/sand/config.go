package sand

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds tunable probabilities for the falling-sand rules.
type Params struct {
	// FireSpreadChance is the per-step probability that a fire cell acts:
	// spreading into flammable neighbors and then burning out.
	FireSpreadChance float64 `yaml:"fire_spread_chance"`
	// FireSmokeChance is the probability that a burned-out fire cell leaves
	// smoke behind rather than air.
	FireSmokeChance float64 `yaml:"fire_smoke_chance"`
	// SteamCondenseChance is the probability that expired steam condenses
	// back into water rather than vanishing.
	SteamCondenseChance float64 `yaml:"steam_condense_chance"`
	// SprayDensity is the fraction of brush disc cells filled per draw call.
	// At 1.0 the draw contract is deterministic and idempotent.
	SprayDensity float64 `yaml:"spray_density"`
	// PaintOverwrite allows drawing over smoke and water, not just air.
	PaintOverwrite bool `yaml:"paint_overwrite"`
}

// Config controls the falling-sand simulation dimensions and rules.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  400,
		Height: 300,
		Seed:   1337,
		Params: Params{
			FireSpreadChance:    1.0 / 64,
			FireSmokeChance:     0.125,
			SteamCondenseChance: 1.0 / 64,
			SprayDensity:        1.0,
			PaintOverwrite:      true,
		},
	}
}

// Validate rejects configurations the core cannot honor.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"fire_spread_chance", c.Params.FireSpreadChance},
		{"fire_smoke_chance", c.Params.FireSmokeChance},
		{"steam_condense_chance", c.Params.SteamCondenseChance},
		{"spray_density", c.Params.SprayDensity},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %g", p.name, p.value)
		}
	}
	return nil
}

// LoadFile reads a YAML config file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fire_spread_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.FireSpreadChance = parsed
		}
	}
	if v, ok := cfg["fire_smoke_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.FireSmokeChance = parsed
		}
	}
	if v, ok := cfg["steam_condense_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SteamCondenseChance = parsed
		}
	}
	if v, ok := cfg["spray_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SprayDensity = parsed
		}
	}
	if v, ok := cfg["paint_overwrite"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.PaintOverwrite = parsed
		}
	}
	return c
}
