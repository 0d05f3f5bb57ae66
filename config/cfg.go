// Package config loads, validates and dumps program configuration. Defaults
// come from the embedded template; a user supplied YAML file is superimposed
// on top of them.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// DefaultsConfig is the base typography every style read falls through
	// to when no authority has an opinion.
	DefaultsConfig struct {
		FontFamily string  `yaml:"font_family" validate:"required"`
		FontSize   float64 `yaml:"font_size" validate:"gte=6,lte=96"`
		FontWeight int     `yaml:"font_weight" validate:"gte=100,lte=900"`
		LineHeight float64 `yaml:"line_height" validate:"gte=0.5,lte=3"`
		TextColor  string  `yaml:"text_color" validate:"required,hexcolor"`
		TextAlign  string  `yaml:"text_align" validate:"oneof=left right center justify"`
	}

	ThemeConfig struct {
		// Path to a CSS stylesheet overriding the embedded theme.
		StylesheetPath string `yaml:"stylesheet_path" sanitize:"path_clean" validate:"omitempty,filepath"`
	}

	StorageConfig struct {
		// SQLite database keeping heading level style definitions between
		// sessions. Empty means in-memory only, nothing survives exit.
		StylesPath string `yaml:"styles_path" sanitize:"path_clean" validate:"omitempty,filepath"`
	}

	EditorConfig struct {
		ReadOnly bool           `yaml:"read_only"`
		Defaults DefaultsConfig `yaml:"defaults"`
		Theme    ThemeConfig    `yaml:"theme"`
		Storage  StorageConfig  `yaml:"storage"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Editor    EditorConfig   `yaml:"editor"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
