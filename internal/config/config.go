package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lakshmankumar12/rent-vs-buy/internal/model"
)

// File is the on-disk scenario file, YAML or TOML.
type File struct {
	Validation string `yaml:"validation" toml:"validation"`
	Output     struct {
		Pretty   *bool `yaml:"pretty" toml:"pretty"`
		LogLevel *int  `yaml:"log_level" toml:"log_level"`
	} `yaml:"output" toml:"output"`
	Scenario map[string]interface{} `yaml:"scenario" toml:"scenario"`
}

// Config holds everything needed for one run.
type Config struct {
	Path       string
	Validation ValidationMode
	Pretty     bool
	LogLevel   int
	Scenario   model.ScenarioParameters
}

// Overrides carries command-line settings. Nil fields leave lower layers alone.
type Overrides struct {
	Values     Source
	NoPretty   bool
	LogLevel   *int
	Validation string
}

// LoadFile reads a scenario file. The format follows the extension; a missing
// file yields an empty File.
func LoadFile(path string) (*File, error) {
	f := &File{}
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) == 0 {
		return f, nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse config: unsupported format %q", ext)
	}
	return f, nil
}

// Load reads the scenario file, then applies environment variable overrides,
// then command-line overrides, and resolves the scenario parameters.
func Load(path string, ov Overrides) (*Config, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Path:       path,
		Validation: ValidationStrict,
		Pretty:     true,
		LogLevel:   1,
	}

	// File
	validation := f.Validation
	if f.Output.Pretty != nil {
		cfg.Pretty = *f.Output.Pretty
	}
	if f.Output.LogLevel != nil {
		cfg.LogLevel = *f.Output.LogLevel
	}

	// Environment variable overrides
	if v := os.Getenv(EnvPrefix + "VALIDATION"); v != "" {
		validation = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%sLOG_LEVEL: %q is not an integer", EnvPrefix, v)
		}
		cfg.LogLevel = n
	}
	if v := os.Getenv(EnvPrefix + "NOPRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%sNOPRETTY: %q is not a boolean", EnvPrefix, v)
		}
		if b {
			cfg.Pretty = false
		}
	}

	// Command line
	if ov.Validation != "" {
		validation = ov.Validation
	}
	if ov.NoPretty {
		cfg.Pretty = false
	}
	if ov.LogLevel != nil {
		cfg.LogLevel = *ov.LogLevel
	}

	// Defaults
	if validation != "" {
		mode, err := ParseValidationMode(validation)
		if err != nil {
			return nil, err
		}
		cfg.Validation = mode
	}
	if cfg.LogLevel <= 0 {
		cfg.LogLevel = 0
		cfg.Pretty = false
	}

	p, err := Resolve(Fields, []Source{FileSource(f.Scenario), EnvSource{Prefix: EnvPrefix}, ov.Values}, cfg.Validation)
	if err != nil {
		return nil, err
	}
	cfg.Scenario = *p
	return cfg, nil
}

// Validate checks that the resolved scenario can be evaluated.
func (c *Config) Validate() error {
	return c.Scenario.Validate()
}
