// Package config holds process-wide defaults for simulation and numerics.
package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/utils"
)

// Config collects the tunables shared by the command-line tools.
type Config struct {
	// NumPaths is the default Monte Carlo path count.
	NumPaths int `toml:"num_paths"`
	// NumSteps is the default number of simulation steps per path.
	NumSteps int `toml:"num_steps"`
	// Seed feeds the random source when no explicit shocks are supplied.
	Seed uint64 `toml:"seed"`
	// Tolerance is the default numerical tolerance.
	Tolerance float64 `toml:"tolerance"`
	// MaxIterations bounds iterative numerical routines.
	MaxIterations int `toml:"max_iterations"`
	// DayCount is the default day count convention name.
	DayCount string `toml:"day_count"`
	// LogLevel controls the process logger ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`
}

// Default returns the package defaults.
func Default() Config {
	return Config{
		NumPaths:      10000,
		NumSteps:      252,
		Seed:          42,
		Tolerance:     1e-6,
		MaxIterations: 1000,
		DayCount:      string(utils.Act360),
		LogLevel:      "info",
	}
}

// Load reads a TOML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config.Load")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config.Load")
	}
	return cfg, nil
}

// DayCountConvention returns the configured day count as a typed convention.
func (c Config) DayCountConvention() utils.Convention {
	return utils.Convention(c.DayCount)
}
