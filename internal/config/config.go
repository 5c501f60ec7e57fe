// Package config loads agripredict settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Tab names accepted by InitialTab.
var TabNames = []string{"yield", "pest", "weather", "recommendations"}

// Config holds runtime settings.
type Config struct {
	InitialTab string `yaml:"initial_tab"`
	// Seed makes estimates reproducible. Nil seeds from the clock.
	Seed    *uint64 `yaml:"seed"`
	LogFile string  `yaml:"log_file"`
	Verbose bool    `yaml:"verbose"`
	// Theme is the glamour style used for section copy: dark, light or notty.
	Theme string `yaml:"theme"`

	NoticeDuration time.Duration `yaml:"notice_duration"`
	ResizeDebounce time.Duration `yaml:"resize_debounce"`
	RedrawDelay    time.Duration `yaml:"redraw_delay"`

	Telemetry Telemetry `yaml:"telemetry"`
}

// Telemetry configures OTLP trace export. Empty Endpoint disables export.
type Telemetry struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		InitialTab:     "yield",
		Theme:          "dark",
		NoticeDuration: 3 * time.Second,
		ResizeDebounce: 250 * time.Millisecond,
		RedrawDelay:    100 * time.Millisecond,
		Telemetry: Telemetry{
			ServiceName: "agripredict",
			Insecure:    true,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("AGRIPREDICT_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("AGRIPREDICT_SEED: %w", err)
		}
		c.Seed = &seed
	}
	if v := getenv("AGRIPREDICT_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Telemetry.Endpoint = v
	}
	if v := getenv("OTEL_SERVICE_NAME"); v != "" {
		c.Telemetry.ServiceName = v
	}
	return nil
}

// Validate rejects settings the UI cannot run with.
func (c *Config) Validate() error {
	if !validTab(c.InitialTab) {
		return fmt.Errorf("initial_tab %q: want one of %v", c.InitialTab, TabNames)
	}
	switch c.Theme {
	case "dark", "light", "notty":
	default:
		return fmt.Errorf("theme %q: want dark, light or notty", c.Theme)
	}
	for name, d := range map[string]time.Duration{
		"notice_duration": c.NoticeDuration,
		"resize_debounce": c.ResizeDebounce,
		"redraw_delay":    c.RedrawDelay,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	return nil
}

func validTab(name string) bool {
	for _, t := range TabNames {
		if t == name {
			return true
		}
	}
	return false
}
