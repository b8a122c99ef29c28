// Package config loads the airnet CLI configuration.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (Default).
//  2. An optional YAML file.
//  3. Environment variables, after an optional .env file has been loaded
//     into the process environment.
//
// The merged result is checked with struct-tag validation before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/dijkstra"
	"github.com/katalvlaran/airnet/records"
)

// Environment variables that override file values.
const (
	EnvDataDir       = "AIRNET_DATA_DIR"
	EnvLogLevel      = "AIRNET_LOG_LEVEL"
	EnvMaxIterations = "AIRNET_MAX_ITERATIONS"
)

var (
	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrBadEnv indicates an environment override that could not be parsed.
	ErrBadEnv = errors.New("config: bad environment value")
)

// Files names the input files. Relative names resolve against DataDir.
// An empty Aircraft or Airlines name skips that file.
type Files struct {
	Aircraft string `yaml:"aircraft"`
	Airlines string `yaml:"airlines"`
	Airports string `yaml:"airports" validate:"required"`
	Routes   string `yaml:"routes" validate:"required"`
}

// Config is the merged CLI configuration.
type Config struct {
	DataDir            string `yaml:"data_dir" validate:"required"`
	Files              Files  `yaml:"files"`
	LogLevel           string `yaml:"log_level" validate:"oneof=debug info warn error off"`
	MaxIterations      int    `yaml:"max_iterations" validate:"gte=0"`
	StrictAirports     bool   `yaml:"strict_airports"`
	StrictDestinations bool   `yaml:"strict_destinations"`
}

var validate = validator.New()

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		DataDir: "data",
		Files: Files{
			Aircraft: records.AircraftFile,
			Airlines: records.AirlinesFile,
			Airports: records.AirportsFile,
			Routes:   records.RoutesFile,
		},
		LogLevel: "info",
	}
}

// Load merges the defaults, the YAML file at path (skipped when path is
// empty) and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decode unmarshals YAML over cfg, rejecting unknown keys. An empty
// document leaves cfg unchanged.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// LoadDotEnv loads the given .env files (".env" when none) into the process
// environment. Missing files are ignored; variables already set are kept.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debugf("config: no %s file", f)
				continue
			}

			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		c.DataDir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvMaxIterations); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrBadEnv, EnvMaxIterations, v, err)
		}
		c.MaxIterations = n
	}

	return nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Paths resolves Files against DataDir.
func (c Config) Paths() records.Paths {
	return records.Paths{
		Aircraft: c.resolve(c.Files.Aircraft),
		Airlines: c.resolve(c.Files.Airlines),
		Airports: c.resolve(c.Files.Airports),
		Routes:   c.resolve(c.Files.Routes),
	}
}

func (c Config) resolve(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(c.DataDir, name)
}

// BuildOptions translates the strictness switches into core options.
func (c Config) BuildOptions() []core.BuildOption {
	var opts []core.BuildOption
	if c.StrictAirports {
		opts = append(opts, core.WithStrictAirports())
	}
	if c.StrictDestinations {
		opts = append(opts, core.WithStrictDestinations())
	}

	return opts
}

// SearchOptions returns the shortest-path options implied by the config.
func (c Config) SearchOptions() []dijkstra.Option {
	if c.MaxIterations > 0 {
		return []dijkstra.Option{dijkstra.WithMaxIterations(c.MaxIterations)}
	}

	return nil
}

// Level maps LogLevel to a gommon level; unknown names fall back to INFO.
func (c Config) Level() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
