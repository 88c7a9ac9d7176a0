// Package config reads the optional duim TOML file. It has three sections:
// [du] for how the external tool is run, [report] for bar and size output,
// and [logging].
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level configuration, mirroring the TOML sections.
type Config struct {
	Du      DuConfig      `toml:"du"      json:"du"`
	Report  ReportConfig  `toml:"report"  json:"report"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// DuConfig describes how the external disk usage tool is invoked.
type DuConfig struct {
	Command        string   `toml:"command"         json:"command"`
	Args           []string `toml:"args"            json:"args"`
	TimeoutSeconds int      `toml:"timeout_seconds" json:"timeout_seconds"`
}

type ReportConfig struct {
	Length        int    `toml:"length"         json:"length"`
	HumanReadable bool   `toml:"human_readable" json:"human_readable"`
	Fill          string `toml:"fill"           json:"fill"`
	Empty         string `toml:"empty"          json:"empty"`
	Color         string `toml:"color"          json:"color"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
}

// Colour modes accepted by report.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the settings duim uses with no config file: plain "du",
// a 20-character "=" bar, raw byte sizes, and info logging.
func Default() Config {
	return Config{
		Du: DuConfig{
			Command: "du",
		},
		Report: ReportConfig{
			Length:        20,
			HumanReadable: false,
			Fill:          "=",
			Empty:         " ",
			Color:         ColorAuto,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path, layers it on top of the defaults, and
// validates the result. An error is returned if the file can't be read,
// parsed, or if any constraint is violated.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the constraints every Config must satisfy, whether it
// came from a file or from command-line overrides.
func Validate(cfg Config) error {
	if cfg.Du.Command == "" {
		return errors.New("du.command must not be empty")
	}
	if cfg.Du.TimeoutSeconds < 0 {
		return errors.New("du.timeout_seconds must be >= 0")
	}
	if cfg.Report.Length < 0 {
		return errors.New("report.length must be >= 0")
	}
	if utf8.RuneCountInString(cfg.Report.Fill) != 1 {
		return errors.New("report.fill must be a single character")
	}
	if utf8.RuneCountInString(cfg.Report.Empty) != 1 {
		return errors.New("report.empty must be a single character")
	}
	switch cfg.Report.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("report.color must be one of auto, always, never (got %q)", cfg.Report.Color)
	}
	switch cfg.Logging.Level {
	case "info", "debug":
	default:
		return fmt.Errorf("logging.level must be info or debug (got %q)", cfg.Logging.Level)
	}
	return nil
}
