package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/shapetools/keymirror"
	"github.com/shapetools/keymirror/geom"
	"github.com/shapetools/keymirror/keyvalues"
	"github.com/shapetools/keymirror/symmetry"
)

// Config is the optional YAML configuration. Every field has a working
// default, so running without a config file is fine.
type Config struct {
	Axis            string  `yaml:"axis" validate:"oneof=x y z"`
	MatchTolerance  float64 `yaml:"match_tolerance" validate:"gt=0"`
	CenterTolerance float64 `yaml:"center_tolerance" validate:"gt=0"`
	Compression     string  `yaml:"compression" validate:"oneof=none lz4 zstd"`
	LogLevel        string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat       string  `yaml:"log_format" validate:"oneof=text json"`
}

func defaultConfig() Config {
	return Config{
		Axis:            "x",
		MatchTolerance:  keymirror.DefaultMatchTolerance,
		CenterTolerance: symmetry.DefaultCenterTolerance,
		Compression:     "none",
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// loadConfig reads path over the defaults. An empty path means
// defaults only.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) axis() geom.Axis {
	switch c.Axis {
	case "y":
		return geom.AxisY
	case "z":
		return geom.AxisZ
	default:
		return geom.AxisX
	}
}

func (c Config) compression() keyvalues.Compression {
	switch c.Compression {
	case "lz4":
		return keyvalues.CompressionLZ4
	case "zstd":
		return keyvalues.CompressionZSTD
	default:
		return keyvalues.CompressionNone
	}
}

func (c Config) logLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) logger() *keymirror.Logger {
	if c.LogFormat == "json" {
		return keymirror.NewJSONLogger(c.logLevel())
	}
	return keymirror.NewTextLogger(c.logLevel())
}

func (c Config) engine() *keymirror.Engine {
	return keymirror.New(
		keymirror.WithLogger(c.logger()),
		keymirror.WithAxis(c.axis()),
		keymirror.WithMatchTolerance(c.MatchTolerance),
		keymirror.WithCenterTolerance(c.CenterTolerance),
	)
}
