package cli

import (
	env "github.com/caarlos0/env/v11"

	"github.com/Ash-L2L/l2l-openapi/internal/errors"
	"github.com/Ash-L2L/l2l-openapi/internal/generator"
)

// EnvPrefix prefixes every environment variable read by LoadConfig
const EnvPrefix = "OPENAPIGEN_"

// Config holds the configuration for one generator run. Values come from
// the environment first and are overridden by command line flags.
type Config struct {
	// Paths are the files, directories or ./... patterns to process
	Paths []string

	Suffix   string `env:"SUFFIX" envDefault:"_openapi.go"`
	BuildTag string `env:"BUILD_TAG" envDefault:"openapigen"`
	Title    string `env:"TITLE" envDefault:""`
	Version  string `env:"VERSION" envDefault:"0.0.0"`

	Verbose bool `env:"VERBOSE" envDefault:"false"`
	Quiet   bool `env:"QUIET" envDefault:"false"`

	// DryRun prints generated files instead of writing them
	DryRun bool `env:"DRY_RUN" envDefault:"false"`
	// Clean removes generated files instead of generating them
	Clean bool `env:"CLEAN" envDefault:"false"`
}

// LoadConfig reads the configuration from OPENAPIGEN_ prefixed variables
func LoadConfig() (*Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: EnvPrefix,
	})
	if err != nil {
		return nil, errors.WrapConfigurationError("environment", "load", err)
	}
	return &cfg, nil
}

// GeneratorOptions maps the configuration onto generator options
func (c *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		Version:  c.Version,
		Title:    c.Title,
		Suffix:   c.Suffix,
		BuildTag: c.BuildTag,
	}
}
