// Package config loads poker-odds settings from an HCL file.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/pokerodds/equity"
)

// DefaultFilename is the config file looked for in the working directory
const DefaultFilename = "poker-odds.hcl"

// maxHoles is the most two card holes a deck can hold while still
// completing a board: (52 - 5) / 2.
const maxHoles = 23

// Config represents the complete configuration
type Config struct {
	Equity EquitySettings
	Log    LogSettings
	Server ServerSettings
}

// EquitySettings configures the odds engines
type EquitySettings struct {
	SampleSize int    `hcl:"sample_size,optional"`
	Threshold  int    `hcl:"threshold,optional"`
	Workers    int    `hcl:"workers,optional"`
	Seed       *int64 `hcl:"seed,optional"`
}

// LogSettings configures logging
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// ServerSettings configures the websocket equity service
type ServerSettings struct {
	Address       string `hcl:"address,optional"`
	MaxHoles      int    `hcl:"max_holes,optional"`
	MaxSampleSize int    `hcl:"max_sample_size,optional"`
	MaxInFlight   int    `hcl:"max_inflight,optional"`
}

// file mirrors Config with every block optional
type file struct {
	Equity *EquitySettings `hcl:"equity,block"`
	Log    *LogSettings    `hcl:"log,block"`
	Server *ServerSettings `hcl:"server,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Equity: EquitySettings{
			SampleSize: equity.DefaultSampleSize,
			Threshold:  equity.DefaultThreshold,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
		Server: ServerSettings{
			Address:       "localhost:8080",
			MaxHoles:      10,
			MaxSampleSize: 1000000,
			MaxInFlight:   4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(f)
}

// Parse reads configuration from HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(f)
}

func decode(f *hcl.File) (*Config, error) {
	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if raw.Equity != nil {
		if raw.Equity.SampleSize != 0 {
			config.Equity.SampleSize = raw.Equity.SampleSize
		}
		if raw.Equity.Threshold != 0 {
			config.Equity.Threshold = raw.Equity.Threshold
		}
		config.Equity.Workers = raw.Equity.Workers
		config.Equity.Seed = raw.Equity.Seed
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			config.Log.Level = raw.Log.Level
		}
		if raw.Log.Format != "" {
			config.Log.Format = raw.Log.Format
		}
	}
	if raw.Server != nil {
		if raw.Server.Address != "" {
			config.Server.Address = raw.Server.Address
		}
		if raw.Server.MaxHoles != 0 {
			config.Server.MaxHoles = raw.Server.MaxHoles
		}
		if raw.Server.MaxSampleSize != 0 {
			config.Server.MaxSampleSize = raw.Server.MaxSampleSize
		}
		if raw.Server.MaxInFlight != 0 {
			config.Server.MaxInFlight = raw.Server.MaxInFlight
		}
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Equity.SampleSize <= 0 {
		return fmt.Errorf("equity: sample_size must be positive, got %d", c.Equity.SampleSize)
	}
	if c.Equity.Threshold < 0 {
		return fmt.Errorf("equity: threshold must not be negative, got %d", c.Equity.Threshold)
	}
	if c.Equity.Workers < 0 {
		return fmt.Errorf("equity: workers must not be negative, got %d", c.Equity.Workers)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: invalid level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log: invalid format %q", c.Log.Format)
	}

	if c.Server.Address == "" {
		return fmt.Errorf("server: address must be set")
	}
	if c.Server.MaxHoles < 1 || c.Server.MaxHoles > maxHoles {
		return fmt.Errorf("server: max_holes must be between 1 and %d", maxHoles)
	}
	if c.Server.MaxSampleSize < c.Equity.SampleSize {
		return fmt.Errorf("server: max_sample_size %d is below equity sample_size %d",
			c.Server.MaxSampleSize, c.Equity.SampleSize)
	}
	if c.Server.MaxInFlight < 1 {
		return fmt.Errorf("server: max_inflight must be positive, got %d", c.Server.MaxInFlight)
	}
	return nil
}

// NewLogger builds a logger writing to w at the configured level and format
func (c *Config) NewLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log: invalid level %q", c.Log.Level)
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	switch c.Log.Format {
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	}
	return logger, nil
}

// EquityOptions returns calculator options for the equity settings
func (c *Config) EquityOptions(logger *log.Logger) []equity.Option {
	opts := []equity.Option{
		equity.WithSampleSize(c.Equity.SampleSize),
		equity.WithThreshold(c.Equity.Threshold),
		equity.WithWorkers(c.Equity.Workers),
	}
	if c.Equity.Seed != nil {
		opts = append(opts, equity.WithSeed(*c.Equity.Seed))
	}
	if logger != nil {
		opts = append(opts, equity.WithLogger(logger))
	}
	return opts
}
