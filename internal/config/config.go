// Package config loads runtime configuration for touchglide.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr     = "0.0.0.0:8788"
	defaultDataDir        = "./data"
	defaultHintVersion    = "v1"
	defaultScale          = 1.0
	defaultPaddingPercent = 4.0
	defaultSink           = SinkSurface
)

// SinkSurface dispatches synthesized events back to the overlay surface.
const SinkSurface = "surface"

// SinkNative dispatches synthesized events into the OS cursor.
const SinkNative = "native"

// Config holds runtime configuration values.
type Config struct {
	ListenAddr     string
	DataDir        string
	HintPath       string
	HintVersion    string
	Scale          float64
	PaddingPercent float64
	Sink           string
}

// fileConfig mirrors Config for the optional YAML config file.
type fileConfig struct {
	ListenAddr     *string  `yaml:"listen_addr"`
	HintVersion    *string  `yaml:"hint_version"`
	Scale          *float64 `yaml:"scale"`
	PaddingPercent *float64 `yaml:"padding_percent"`
	Sink           *string  `yaml:"sink"`
}

// Load reads configuration from defaults, data/config.yaml, then environment.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:     defaultListenAddr,
		DataDir:        defaultDataDir,
		HintVersion:    defaultHintVersion,
		Scale:          defaultScale,
		PaddingPercent: defaultPaddingPercent,
		Sink:           defaultSink,
	}

	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)

	if err := applyFile(&cfg, filepath.Join(cfg.DataDir, "config.yaml")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.HintPath = envString("HINT_PATH", filepath.Join(cfg.DataDir, "hints.json"))
	cfg.HintVersion = envString("HINT_VERSION", cfg.HintVersion)
	cfg.Sink = envString("SINK", cfg.Sink)

	scale, err := envFloat("TOUCH_SCALE", cfg.Scale)
	if err != nil {
		return Config{}, err
	}
	cfg.Scale = scale

	padding, err := envFloat("EDGE_PADDING_PERCENT", cfg.PaddingPercent)
	if err != nil {
		return Config{}, err
	}
	cfg.PaddingPercent = padding

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects configurations the core cannot run with.
func validate(cfg Config) error {
	if cfg.Scale <= 0 {
		return fmt.Errorf("TOUCH_SCALE must be > 0")
	}
	if cfg.PaddingPercent < 0 || cfg.PaddingPercent >= 50 {
		return fmt.Errorf("EDGE_PADDING_PERCENT must be in [0, 50)")
	}
	if cfg.Sink != SinkSurface && cfg.Sink != SinkNative {
		return fmt.Errorf("SINK must be %q or %q", SinkSurface, SinkNative)
	}
	if strings.TrimSpace(cfg.HintVersion) == "" {
		return fmt.Errorf("HINT_VERSION must not be empty")
	}
	return nil
}

// applyFile overlays values from a YAML config file when it exists.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if fc.ListenAddr != nil {
		cfg.ListenAddr = *fc.ListenAddr
	}
	if fc.HintVersion != nil {
		cfg.HintVersion = *fc.HintVersion
	}
	if fc.Scale != nil {
		cfg.Scale = *fc.Scale
	}
	if fc.PaddingPercent != nil {
		cfg.PaddingPercent = *fc.PaddingPercent
	}
	if fc.Sink != nil {
		cfg.Sink = *fc.Sink
	}
	return nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}
