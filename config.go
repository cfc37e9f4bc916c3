package canny

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

// Config is the file representation of the processing options.
//
//	workers: 4
//	high_threshold: 70
//	low_threshold: 35
//	debug: false
type Config struct {
	Workers       int  `yaml:"workers"`
	HighThreshold int  `yaml:"high_threshold"`
	LowThreshold  int  `yaml:"low_threshold"`
	Debug         bool `yaml:"debug"`
}

// LoadConfig parses a YAML configuration. Unknown keys are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		if te, ok := err.(*yaml.TypeError); ok {
			return nil, fmt.Errorf("invalid config: %s", strings.Join(te.Errors, "; "))
		}
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	return cfg, nil
}

// Processor returns the processing options described by the configuration.
func (c *Config) Processor(logger *zerolog.Logger) *Processor {
	return &Processor{
		Workers:       c.Workers,
		HighThreshold: c.HighThreshold,
		LowThreshold:  c.LowThreshold,
		Logger:        logger,
	}
}
