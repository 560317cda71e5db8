package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-backed runtime configuration. Every field has a
// default, so a missing file is not an error.
type Config struct {
	FoodsPath string `yaml:"foods_path"`
	HistoryDB string `yaml:"history_db"`
	LogLevel  string `yaml:"log_level"`

	// Knobs overrides the tuned ranking constants when present.
	Knobs *Knobs `yaml:"knobs"`

	Tuner TunerSettings `yaml:"tuner"`
}

// TunerSettings is the config-file view of a search run.
type TunerSettings struct {
	Iterations int       `yaml:"iterations"`
	Seed       int64     `yaml:"seed"`
	Budgets    []float64 `yaml:"budgets"`
	TopK       int       `yaml:"topk"`
	Workers    int       `yaml:"workers"`
	HillClimb  bool      `yaml:"hill_climb"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	search := DefaultSearchConfig()
	return &Config{
		FoodsPath: "food_state.json",
		HistoryDB: "tuner_history.db",
		LogLevel:  "info",
		Tuner: TunerSettings{
			Iterations: search.Iterations,
			Seed:       search.Seed,
			Budgets:    search.Budgets,
			TopK:       search.TopK,
			HillClimb:  true,
		},
	}
}

// LoadConfig reads a YAML config file, applies defaults for anything
// unset, and validates. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyConfigDefaults(cfg)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyConfigDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.FoodsPath == "" {
		cfg.FoodsPath = def.FoodsPath
	}
	if cfg.HistoryDB == "" {
		cfg.HistoryDB = def.HistoryDB
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.Tuner.Iterations == 0 {
		cfg.Tuner.Iterations = def.Tuner.Iterations
	}
	if cfg.Tuner.Seed == 0 {
		cfg.Tuner.Seed = def.Tuner.Seed
	}
	if len(cfg.Tuner.Budgets) == 0 {
		cfg.Tuner.Budgets = def.Tuner.Budgets
	}
	if cfg.Tuner.TopK == 0 {
		cfg.Tuner.TopK = def.Tuner.TopK
	}
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.Tuner.Iterations < 1 {
		return fmt.Errorf("tuner.iterations must be positive")
	}
	for _, b := range c.Tuner.Budgets {
		if b <= 0 {
			return fmt.Errorf("tuner budgets must be positive, got %v", b)
		}
	}
	if c.Knobs != nil {
		if c.Knobs.CalFloor < 0 || c.Knobs.TieEpsilon < 0 {
			return fmt.Errorf("knob overrides must be non-negative")
		}
	}
	return nil
}

// PlannerKnobs returns the configured knob overrides, or the tuned
// defaults.
func (c *Config) PlannerKnobs() Knobs {
	if c.Knobs != nil {
		return *c.Knobs
	}
	return DefaultKnobs()
}

// SearchConfig assembles a search run from the config file settings.
func (c *Config) SearchConfig() SearchConfig {
	cfg := SearchConfig{
		Iterations: c.Tuner.Iterations,
		Seed:       c.Tuner.Seed,
		Budgets:    c.Tuner.Budgets,
		Ranges:     DefaultKnobRanges(),
		TopK:       c.Tuner.TopK,
		Workers:    c.Tuner.Workers,
	}
	if c.Tuner.HillClimb {
		hc := DefaultHillClimbConfig()
		cfg.HillClimb = &hc
	}
	return cfg
}
